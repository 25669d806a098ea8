// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

// Standard JSON-RPC 2.0 errors.
var (
	ErrRPCInvalidRequest = &RPCError{
		Code:    -32600,
		Message: "Invalid request",
	}
	ErrRPCMethodNotFound = &RPCError{
		Code:    -32601,
		Message: "Method not found",
	}
	ErrRPCInvalidParams = &RPCError{
		Code:    -32602,
		Message: "Invalid parameters",
	}
	ErrRPCInternal = &RPCError{
		Code:    -32603,
		Message: "Internal error",
	}
	ErrRPCParse = &RPCError{
		Code:    -32700,
		Message: "Parse error",
	}
)

// General application defined errors the daemon reports.  These are the codes
// a client is most likely to find in the error payload of a decoded response.
const (
	// ErrRPCMisc indicates an exception was thrown during command handling.
	ErrRPCMisc RPCErrorCode = -1

	// ErrRPCForbiddenBySafeMode indicates the server is in safe mode and
	// the command is not allowed in safe mode.
	ErrRPCForbiddenBySafeMode RPCErrorCode = -2

	// ErrRPCType indicates an unexpected type was passed as parameter.
	ErrRPCType RPCErrorCode = -3

	// ErrRPCInvalidAddressOrKey indicates an invalid address or key.
	ErrRPCInvalidAddressOrKey RPCErrorCode = -5

	// ErrRPCOutOfMemory indicates the server ran out of memory during
	// operation.
	ErrRPCOutOfMemory RPCErrorCode = -7

	// ErrRPCInvalidParameter indicates an invalid, missing, or duplicate
	// parameter.
	ErrRPCInvalidParameter RPCErrorCode = -8

	// ErrRPCDatabase indicates a database error.
	ErrRPCDatabase RPCErrorCode = -20

	// ErrRPCDeserialization indicates an error parsing or validating
	// structure in raw format.
	ErrRPCDeserialization RPCErrorCode = -22

	// ErrRPCVerify indicates a general error during transaction or block
	// submission.
	ErrRPCVerify RPCErrorCode = -25

	// ErrRPCVerifyRejected indicates the transaction or block was rejected
	// by network rules.
	ErrRPCVerifyRejected RPCErrorCode = -26

	// ErrRPCVerifyAlreadyInChain indicates the submitted transaction is
	// already in the chain.
	ErrRPCVerifyAlreadyInChain RPCErrorCode = -27

	// ErrRPCInWarmup indicates the daemon is still warming up.
	ErrRPCInWarmup RPCErrorCode = -28
)

// Peer-to-peer client errors.
const (
	// ErrRPCClientNotConnected indicates the daemon is not connected.
	ErrRPCClientNotConnected RPCErrorCode = -9

	// ErrRPCClientInInitialDownload indicates the daemon is still
	// downloading initial blocks.
	ErrRPCClientInInitialDownload RPCErrorCode = -10

	// ErrRPCClientNodeAlreadyAdded indicates the node is already added.
	ErrRPCClientNodeAlreadyAdded RPCErrorCode = -23

	// ErrRPCClientNodeNotAdded indicates the node has not been added
	// before.
	ErrRPCClientNodeNotAdded RPCErrorCode = -24
)

// Wallet errors.
const (
	// ErrRPCWallet indicates an unspecified problem with the wallet, for
	// example, key not found.
	ErrRPCWallet RPCErrorCode = -4

	// ErrRPCWalletInsufficientFunds indicates there are not enough funds
	// in the wallet or account.
	ErrRPCWalletInsufficientFunds RPCErrorCode = -6

	// ErrRPCWalletInvalidAccountName indicates an invalid account name.
	ErrRPCWalletInvalidAccountName RPCErrorCode = -11

	// ErrRPCWalletKeypoolRanOut indicates the keypool ran out and
	// keypoolrefill must be called first.
	ErrRPCWalletKeypoolRanOut RPCErrorCode = -12

	// ErrRPCWalletUnlockNeeded indicates the wallet passphrase must be
	// entered first with the walletpassphrase RPC.
	ErrRPCWalletUnlockNeeded RPCErrorCode = -13

	// ErrRPCWalletPassphraseIncorrect indicates the wallet passphrase that
	// was entered was incorrect.
	ErrRPCWalletPassphraseIncorrect RPCErrorCode = -14

	// ErrRPCWalletWrongEncState indicates a command was given in the wrong
	// wallet encryption state, for example, encrypting an encrypted
	// wallet.
	ErrRPCWalletWrongEncState RPCErrorCode = -15

	// ErrRPCWalletEncryptionFailed indicates a failure to encrypt the
	// wallet.
	ErrRPCWalletEncryptionFailed RPCErrorCode = -16

	// ErrRPCWalletAlreadyUnlocked indicates an attempt to unlock a wallet
	// that was already unlocked.
	ErrRPCWalletAlreadyUnlocked RPCErrorCode = -17
)
