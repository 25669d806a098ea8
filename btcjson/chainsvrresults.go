// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// InfoResult models the data returned by the getinfo command.  Which fields
// the daemon sends depends on its version and build options, so every field
// is optional and absent fields are omitted again on re-encode.
type InfoResult struct {
	Version         *int32   `json:"version,omitempty"`
	ProtocolVersion *int32   `json:"protocolversion,omitempty"`
	WalletVersion   *int32   `json:"walletversion,omitempty"`
	Balance         *Amount  `json:"balance,omitempty"`
	Blocks          *int32   `json:"blocks,omitempty"`
	TimeOffset      *int64   `json:"timeoffset,omitempty"`
	Connections     *int32   `json:"connections,omitempty"`
	Proxy           *string  `json:"proxy,omitempty"`
	Difficulty      *float64 `json:"difficulty,omitempty"`
	TestNet         *bool    `json:"testnet,omitempty"`
	KeypoolOldest   *int64   `json:"keypoololdest,omitempty"`
	KeypoolSize     *int32   `json:"keypoolsize,omitempty"`
	PayTxFee        *Amount  `json:"paytxfee,omitempty"`
	Errors          *string  `json:"errors,omitempty"`

	Other OtherFields `json:"-"`
}

// GetBlockVerboseResult models the data from the getblock command when the
// verbose flag is set.  When the verbose flag is not set, getblock returns a
// hex-encoded string.
type GetBlockVerboseResult struct {
	Hash          string   `json:"hash"`
	Confirmations int64    `json:"confirmations"`
	Size          int32    `json:"size"`
	Height        int64    `json:"height"`
	Version       int32    `json:"version"`
	MerkleRoot    string   `json:"merkleroot"`
	Tx            []string `json:"tx"`
	Time          int64    `json:"time"`
	Nonce         uint32   `json:"nonce"`
	Bits          string   `json:"bits"`
	Difficulty    float64  `json:"difficulty"`
	PreviousHash  string   `json:"previousblockhash,omitempty"`
	NextHash      string   `json:"nextblockhash,omitempty"`

	Other OtherFields `json:"-"`
}

// BlockHash returns the block's hash parsed into a chainhash.Hash.
func (r *GetBlockVerboseResult) BlockHash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(r.Hash)
}

// PreviousBlockHash returns the parsed hash of the block's parent, or nil
// for the genesis block which has none.
func (r *GetBlockVerboseResult) PreviousBlockHash() (*chainhash.Hash, error) {
	if r.PreviousHash == "" {
		return nil, nil
	}
	return chainhash.NewHashFromStr(r.PreviousHash)
}

// GetBlockTemplateResultTx models the transactions field of the
// getblocktemplate command.
type GetBlockTemplateResultTx struct {
	Data    string  `json:"data"`
	Hash    string  `json:"hash"`
	Depends []int64 `json:"depends"`
	Fee     int64   `json:"fee"`
	SigOps  int64   `json:"sigops"`

	Other OtherFields `json:"-"`
}

// GetBlockTemplateResultAux models the coinbaseaux field of the
// getblocktemplate command.
type GetBlockTemplateResultAux struct {
	Flags string `json:"flags"`

	Other OtherFields `json:"-"`
}

// GetBlockTemplateResult models the data returned from the getblocktemplate
// command.  Field order follows the daemon's output per BIP 0022.
// CoinbaseAux is optional and exactly one of CoinbaseTxn or CoinbaseValue is
// present depending on the request.
type GetBlockTemplateResult struct {
	Version       int32                      `json:"version"`
	PreviousHash  string                     `json:"previousblockhash"`
	Transactions  []GetBlockTemplateResultTx `json:"transactions"`
	CoinbaseAux   *GetBlockTemplateResultAux `json:"coinbaseaux,omitempty"`
	CoinbaseTxn   *GetBlockTemplateResultTx  `json:"coinbasetxn,omitempty"`
	CoinbaseValue *int64                     `json:"coinbasevalue,omitempty"`
	Target        string                     `json:"target"`
	MinTime       int64                      `json:"mintime"`
	Mutable       []string                   `json:"mutable"`
	NonceRange    string                     `json:"noncerange"`
	SigOpLimit    *int64                     `json:"sigoplimit,omitempty"`
	SizeLimit     *int64                     `json:"sizelimit,omitempty"`
	CurTime       int64                      `json:"curtime"`
	Bits          string                     `json:"bits"`
	Height        int64                      `json:"height"`
	WorkID        *string                    `json:"workid,omitempty"`

	Other OtherFields `json:"-"`
}

// PreviousBlockHash returns the parsed hash of the current highest block.
func (r *GetBlockTemplateResult) PreviousBlockHash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(r.PreviousHash)
}

// GetMiningInfoResult models the data from the getmininginfo command.
type GetMiningInfoResult struct {
	Blocks           int64   `json:"blocks"`
	CurrentBlockSize uint64  `json:"currentblocksize"`
	CurrentBlockTx   uint64  `json:"currentblocktx"`
	Difficulty       float64 `json:"difficulty"`
	Errors           string  `json:"errors"`
	Generate         bool    `json:"generate"`
	GenProcLimit     int32   `json:"genproclimit"`
	HashesPerSec     int64   `json:"hashespersec"`
	PooledTx         uint64  `json:"pooledtx"`
	TestNet          bool    `json:"testnet"`

	Other OtherFields `json:"-"`
}

// GetAddedNodeInfoResultAddr models the data of the addresses portion of the
// getaddednodeinfo command.
type GetAddedNodeInfoResultAddr struct {
	Address   string `json:"address"`
	Connected string `json:"connected"`

	Other OtherFields `json:"-"`
}

// GetAddedNodeInfoResult models the data from the getaddednodeinfo command
// when its dns argument is true.
//
// When dns is false the daemon answers with a bare array of node names
// instead of objects of this shape.  Whether that divergence is intended is
// an unresolved upstream question (bitcoin/bitcoin#2467), so this package
// deliberately models only the dns=true form and leaves the other form to
// the caller via the envelope's raw error/other handling.
type GetAddedNodeInfoResult struct {
	AddedNode string                       `json:"addednode"`
	Connected *bool                        `json:"connected,omitempty"`
	Addresses []GetAddedNodeInfoResultAddr `json:"addresses,omitempty"`

	Other OtherFields `json:"-"`
}

// GetPeerInfoResult models the data returned from the getpeerinfo command.
type GetPeerInfoResult struct {
	Addr           string `json:"addr"`
	Services       string `json:"services"`
	LastSend       int64  `json:"lastsend"`
	LastRecv       int64  `json:"lastrecv"`
	BytesSent      uint64 `json:"bytessent"`
	BytesRecv      uint64 `json:"bytesrecv"`
	ConnTime       int64  `json:"conntime"`
	Version        uint32 `json:"version"`
	SubVer         string `json:"subver"`
	Inbound        bool   `json:"inbound"`
	StartingHeight int32  `json:"startingheight"`
	BanScore       *int32 `json:"banscore,omitempty"`

	Other OtherFields `json:"-"`
}

// ScriptPubKeyResult models the scriptPubKey data of a tx script.  It is
// defined separately since it is used by multiple commands.
type ScriptPubKeyResult struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex,omitempty"`
	ReqSigs   int32    `json:"reqSigs,omitempty"`
	Type      string   `json:"type"`
	Addresses []string `json:"addresses,omitempty"`

	Other OtherFields `json:"-"`
}

// GetTxOutResult models the data from the gettxout command.
type GetTxOutResult struct {
	BestBlock     string             `json:"bestblock"`
	Confirmations int64              `json:"confirmations"`
	Value         Amount             `json:"value"`
	ScriptPubKey  ScriptPubKeyResult `json:"scriptPubKey"`
	Version       int32              `json:"version"`
	Coinbase      bool               `json:"coinbase"`

	Other OtherFields `json:"-"`
}

// BestBlockHash returns the parsed hash of the block the output was looked
// up in.
func (r *GetTxOutResult) BestBlockHash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(r.BestBlock)
}

// GetTxOutSetInfoResult models the data from the gettxoutsetinfo command.
type GetTxOutSetInfoResult struct {
	Height          int64  `json:"height"`
	BestBlock       string `json:"bestblock"`
	Transactions    int64  `json:"transactions"`
	TxOuts          int64  `json:"txouts"`
	BytesSerialized int64  `json:"bytes_serialized"`
	HashSerialized  string `json:"hash_serialized"`
	TotalAmount     Amount `json:"total_amount"`

	Other OtherFields `json:"-"`
}

// GetWorkResult models the data from the getwork command.
type GetWorkResult struct {
	Data     string `json:"data"`
	Hash1    string `json:"hash1"`
	Midstate string `json:"midstate"`
	Target   string `json:"target"`

	Other OtherFields `json:"-"`
}

// ValidateAddressResult models the data returned by the validateaddress
// command.  Everything beyond isvalid appears only when the address is valid
// and, for the wallet fields, only when the daemon has a wallet.
type ValidateAddressResult struct {
	IsValid      bool    `json:"isvalid"`
	Address      string  `json:"address,omitempty"`
	IsMine       *bool   `json:"ismine,omitempty"`
	IsScript     *bool   `json:"isscript,omitempty"`
	PubKey       string  `json:"pubkey,omitempty"`
	IsCompressed *bool   `json:"iscompressed,omitempty"`
	Account      *string `json:"account,omitempty"`

	Other OtherFields `json:"-"`
}

// CreateMultiSigResult models the data returned from the createmultisig
// command.
type CreateMultiSigResult struct {
	Address      string `json:"address"`
	RedeemScript string `json:"redeemScript"`

	Other OtherFields `json:"-"`
}

// DecodeScriptResult models the data returned from the decodescript command.
type DecodeScriptResult struct {
	Asm       string   `json:"asm"`
	ReqSigs   int32    `json:"reqSigs,omitempty"`
	Type      string   `json:"type"`
	Addresses []string `json:"addresses,omitempty"`
	P2sh      string   `json:"p2sh,omitempty"`

	Other OtherFields `json:"-"`
}

// ScriptSig models a signature script.  It is defined separately since it
// only applies to non-coinbase inputs, so the field in the Vin structure
// needs to be a pointer.
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`

	Other OtherFields `json:"-"`
}

// Vin models parts of the tx data.  It is defined separately since
// getrawtransaction and decoderawtransaction use the same structure.
type Vin struct {
	Coinbase  string     `json:"coinbase"`
	Txid      string     `json:"txid"`
	Vout      uint32     `json:"vout"`
	ScriptSig *ScriptSig `json:"scriptSig"`
	Sequence  uint32     `json:"sequence"`

	Other OtherFields `json:"-"`
}

// IsCoinBase returns a bool to show if a Vin is a Coinbase one or not.
func (v *Vin) IsCoinBase() bool {
	return len(v.Coinbase) > 0
}

// MarshalJSON provides a custom Marshal method for Vin.  Coinbase inputs
// carry only the coinbase script and sequence on the wire; regular inputs
// carry the outpoint and signature script instead.  Either form re-emits
// any captured undeclared fields after the declared ones.
func (v *Vin) MarshalJSON() ([]byte, error) {
	if v.IsCoinBase() {
		coinbaseStruct := struct {
			Coinbase string `json:"coinbase"`
			Sequence uint32 `json:"sequence"`

			Other OtherFields `json:"-"`
		}{
			Coinbase: v.Coinbase,
			Sequence: v.Sequence,
			Other:    v.Other,
		}
		return MarshalResult(&coinbaseStruct)
	}

	txStruct := struct {
		Txid      string     `json:"txid"`
		Vout      uint32     `json:"vout"`
		ScriptSig *ScriptSig `json:"scriptSig"`
		Sequence  uint32     `json:"sequence"`

		Other OtherFields `json:"-"`
	}{
		Txid:      v.Txid,
		Vout:      v.Vout,
		ScriptSig: v.ScriptSig,
		Sequence:  v.Sequence,
		Other:     v.Other,
	}
	return MarshalResult(&txStruct)
}

// Vout models parts of the tx data.  It is defined separately since both
// getrawtransaction and decoderawtransaction use the same structure.
type Vout struct {
	Value        Amount             `json:"value"`
	N            uint32             `json:"n"`
	ScriptPubKey ScriptPubKeyResult `json:"scriptPubKey"`

	Other OtherFields `json:"-"`
}

// TxRawResult models the data from the getrawtransaction command when the
// verbose flag is set.  When the verbose flag is not set, getrawtransaction
// returns a hex-encoded string.  The block fields appear only once the
// transaction is mined.
type TxRawResult struct {
	Hex           string `json:"hex"`
	Txid          string `json:"txid"`
	Version       int32  `json:"version"`
	LockTime      uint32 `json:"locktime"`
	Vin           []Vin  `json:"vin"`
	Vout          []Vout `json:"vout"`
	BlockHash     string `json:"blockhash,omitempty"`
	Confirmations uint64 `json:"confirmations,omitempty"`
	Time          int64  `json:"time,omitempty"`
	Blocktime     int64  `json:"blocktime,omitempty"`

	Other OtherFields `json:"-"`
}

// TxHash returns the transaction's hash parsed into a chainhash.Hash.
func (r *TxRawResult) TxHash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(r.Txid)
}

// TxRawDecodeResult models the data from the decoderawtransaction command.
type TxRawDecodeResult struct {
	Txid     string `json:"txid"`
	Version  int32  `json:"version"`
	Locktime uint32 `json:"locktime"`
	Vin      []Vin  `json:"vin"`
	Vout     []Vout `json:"vout"`

	Other OtherFields `json:"-"`
}

func init() {
	// Chain server methods with structured results.
	MustRegisterResult("getinfo", (*InfoResult)(nil))
	MustRegisterResult("getblock", (*GetBlockVerboseResult)(nil))
	MustRegisterResult("getblocktemplate", (*GetBlockTemplateResult)(nil))
	MustRegisterResult("getmininginfo", (*GetMiningInfoResult)(nil))
	MustRegisterResult("getaddednodeinfo", (*[]GetAddedNodeInfoResult)(nil))
	MustRegisterResult("getpeerinfo", (*[]GetPeerInfoResult)(nil))
	MustRegisterResult("gettxout", (*GetTxOutResult)(nil))
	MustRegisterResult("gettxoutsetinfo", (*GetTxOutSetInfoResult)(nil))
	MustRegisterResult("getwork", (*GetWorkResult)(nil))
	MustRegisterResult("validateaddress", (*ValidateAddressResult)(nil))
	MustRegisterResult("createmultisig", (*CreateMultiSigResult)(nil))
	MustRegisterResult("decodescript", (*DecodeScriptResult)(nil))
	MustRegisterResult("getrawtransaction", (*TxRawResult)(nil))
	MustRegisterResult("decoderawtransaction", (*TxRawDecodeResult)(nil))

	// Methods whose results are plain JSON scalars or arrays thereof.
	MustRegisterResult("getblockcount", (*int64)(nil))
	MustRegisterResult("getconnectioncount", (*int64)(nil))
	MustRegisterResult("getdifficulty", (*float64)(nil))
	MustRegisterResult("getbestblockhash", (*string)(nil))
	MustRegisterResult("getblockhash", (*string)(nil))
	MustRegisterResult("getrawmempool", (*[]string)(nil))
}
