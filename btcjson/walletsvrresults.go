// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// OutPoint identifies the transaction output an unspent entry refers to.
// Its fields appear flattened into the containing object on the wire rather
// than nested under a key.
type OutPoint struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// TxHash returns the outpoint's transaction hash parsed into a
// chainhash.Hash.
func (o *OutPoint) TxHash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(o.TxID)
}

// ListUnspentResult models a successful response from the listunspent
// request.  The outpoint fields appear directly in the object, so OutPoint
// is embedded and flattens into it.
type ListUnspentResult struct {
	OutPoint
	Address       string `json:"address"`
	Account       string `json:"account,omitempty"`
	ScriptPubKey  string `json:"scriptPubKey"`
	RedeemScript  string `json:"redeemScript,omitempty"`
	Amount        Amount `json:"amount"`
	Confirmations int64  `json:"confirmations"`

	Other OtherFields `json:"-"`
}

// ListAccountsResult models the data from the listaccounts command: account
// names mapped to their balances.  Go maps do not preserve the daemon's key
// order, so this result re-encodes with sorted keys and round-trips
// semantically rather than byte-for-byte.
type ListAccountsResult map[string]Amount

// AddressGrouping models one entry of the listaddressgroupings command.  On
// the wire it is a positional array of two or three elements: address,
// amount, and optionally the account the address belongs to.
type AddressGrouping struct {
	Address string
	Amount  Amount
	Account *string
}

// MarshalJSON implements the json.Marshaler interface by re-emitting the
// positional array form.
func (g AddressGrouping) MarshalJSON() ([]byte, error) {
	arr := []interface{}{g.Address, g.Amount}
	if g.Account != nil {
		arr = append(arr, *g.Account)
	}
	return json.Marshal(arr)
}

// UnmarshalJSON implements the json.Unmarshaler interface on the positional
// array form.
func (g *AddressGrouping) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}
	if len(raws) != 2 && len(raws) != 3 {
		str := fmt.Sprintf("address grouping has %d elements, want 2 "+
			"or 3", len(raws))
		return makeError(ErrTypeMismatch, str)
	}
	if err := json.Unmarshal(raws[0], &g.Address); err != nil {
		return err
	}
	if err := json.Unmarshal(raws[1], &g.Amount); err != nil {
		return err
	}
	g.Account = nil
	if len(raws) == 3 {
		var account string
		if err := json.Unmarshal(raws[2], &account); err != nil {
			return err
		}
		g.Account = &account
	}
	return nil
}

// ListReceivedByAccountResult models the data from the listreceivedbyaccount
// command.
type ListReceivedByAccountResult struct {
	Account       string `json:"account"`
	Amount        Amount `json:"amount"`
	Confirmations int64  `json:"confirmations"`

	Other OtherFields `json:"-"`
}

// ListReceivedByAddressResult models the data from the listreceivedbyaddress
// command.
type ListReceivedByAddressResult struct {
	Address       string   `json:"address"`
	Account       string   `json:"account"`
	Amount        Amount   `json:"amount"`
	Confirmations int64    `json:"confirmations"`
	TxIDs         []string `json:"txids,omitempty"`

	Other OtherFields `json:"-"`
}

// ListTransactionsResult models the data from the listtransactions command.
// Several fields appear only for particular transaction categories: the
// block fields once the transaction is mined, the fee only for sends, and
// otheraccount only for moves.
type ListTransactionsResult struct {
	Account       string  `json:"account"`
	Address       string  `json:"address,omitempty"`
	Category      string  `json:"category"`
	Amount        Amount  `json:"amount"`
	Fee           *Amount `json:"fee,omitempty"`
	Confirmations *int64  `json:"confirmations,omitempty"`
	BlockHash     string  `json:"blockhash,omitempty"`
	BlockIndex    *int64  `json:"blockindex,omitempty"`
	BlockTime     *int64  `json:"blocktime,omitempty"`
	TxID          string  `json:"txid,omitempty"`
	Time          int64   `json:"time"`
	TimeReceived  *int64  `json:"timereceived,omitempty"`
	Comment       string  `json:"comment,omitempty"`
	OtherAccount  string  `json:"otheraccount,omitempty"`

	Other OtherFields `json:"-"`
}

// ListSinceBlockResult models the data from the listsinceblock command.
type ListSinceBlockResult struct {
	Transactions []ListTransactionsResult `json:"transactions"`
	LastBlock    string                   `json:"lastblock"`

	Other OtherFields `json:"-"`
}

// GetTransactionDetailsResult models the details data from the
// gettransaction command.
type GetTransactionDetailsResult struct {
	Account  string  `json:"account"`
	Address  string  `json:"address,omitempty"`
	Category string  `json:"category"`
	Amount   Amount  `json:"amount"`
	Fee      *Amount `json:"fee,omitempty"`

	Other OtherFields `json:"-"`
}

// GetTransactionResult models the data from the gettransaction command.
type GetTransactionResult struct {
	Amount        Amount                        `json:"amount"`
	Fee           *Amount                       `json:"fee,omitempty"`
	Confirmations int64                         `json:"confirmations"`
	BlockHash     string                        `json:"blockhash,omitempty"`
	BlockIndex    *int64                        `json:"blockindex,omitempty"`
	BlockTime     *int64                        `json:"blocktime,omitempty"`
	TxID          string                        `json:"txid"`
	Time          int64                         `json:"time"`
	TimeReceived  int64                         `json:"timereceived"`
	Details       []GetTransactionDetailsResult `json:"details"`

	Other OtherFields `json:"-"`
}

// SignRawTransactionResult models the data from the signrawtransaction
// command.
type SignRawTransactionResult struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`

	Other OtherFields `json:"-"`
}

func init() {
	// Wallet server methods with structured results.
	MustRegisterResult("listunspent", (*[]ListUnspentResult)(nil))
	MustRegisterResult("listaccounts", (*ListAccountsResult)(nil))
	MustRegisterResult("listaddressgroupings", (*[][]AddressGrouping)(nil))
	MustRegisterResult("listreceivedbyaccount", (*[]ListReceivedByAccountResult)(nil))
	MustRegisterResult("listreceivedbyaddress", (*[]ListReceivedByAddressResult)(nil))
	MustRegisterResult("listtransactions", (*[]ListTransactionsResult)(nil))
	MustRegisterResult("listsinceblock", (*ListSinceBlockResult)(nil))
	MustRegisterResult("gettransaction", (*GetTransactionResult)(nil))
	MustRegisterResult("signrawtransaction", (*SignRawTransactionResult)(nil))

	// Methods whose results are plain JSON scalars or arrays thereof.
	MustRegisterResult("getbalance", (*Amount)(nil))
	MustRegisterResult("getreceivedbyaccount", (*Amount)(nil))
	MustRegisterResult("getreceivedbyaddress", (*Amount)(nil))
	MustRegisterResult("getnewaddress", (*string)(nil))
	MustRegisterResult("getaccount", (*string)(nil))
	MustRegisterResult("getaccountaddress", (*string)(nil))
	MustRegisterResult("getaddressesbyaccount", (*[]string)(nil))
	MustRegisterResult("sendtoaddress", (*string)(nil))
	MustRegisterResult("sendfrom", (*string)(nil))
	MustRegisterResult("sendmany", (*string)(nil))
	MustRegisterResult("settxfee", (*bool)(nil))
	MustRegisterResult("dumpprivkey", (*string)(nil))
	MustRegisterResult("backupwallet", (*struct{})(nil))
}
