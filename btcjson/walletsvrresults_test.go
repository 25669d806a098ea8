// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson_test

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/bluflew/bitcoind-client/btcjson"
)

// TestListUnspentFlattened ensures the outpoint fields of a listunspent
// entry are claimed by the embedded OutPoint rather than landing in the
// catch-all bucket, and that the whole response round-trips byte for byte.
func TestListUnspentFlattened(t *testing.T) {
	t.Parallel()

	data := []byte(`{"result":[{"txid":` +
		`"0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb44a74b1efd512098",` +
		`"vout":0,"address":"1Q1pE5vPGEEMqRcVRMbtBK842Y6Pzo6nK9",` +
		`"account":"test","scriptPubKey":"76a914",` +
		`"amount":1.99800000,"confirmations":6,"spendable":true}],` +
		`"error":null,"id":1}`)

	resp, err := btcjson.DecodeResponse("listunspent", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unspent, ok := resp.Result.(*[]btcjson.ListUnspentResult)
	if !ok {
		t.Fatalf("wrong result type %T", resp.Result)
	}
	if len(*unspent) != 1 {
		t.Fatalf("entry count - got %d, want 1", len(*unspent))
	}

	entry := (*unspent)[0]
	if entry.TxID != "0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb4"+
		"4a74b1efd512098" {
		t.Errorf("txid not claimed by outpoint - got %q", entry.TxID)
	}
	if entry.Vout != 0 {
		t.Errorf("vout - got %d, want 0", entry.Vout)
	}
	if _, claimed := entry.Other["txid"]; claimed {
		t.Error("txid leaked into the catch-all bucket")
	}
	if _, ok := entry.Other["spendable"]; !ok {
		t.Errorf("spendable missing from catch-all bucket: %s",
			spew.Sdump(entry.Other))
	}

	hash, err := entry.TxHash()
	if err != nil {
		t.Fatalf("unexpected hash parse error: %v", err)
	}
	if hash.String() != entry.TxID {
		t.Errorf("hash - got %s, want %s", hash, entry.TxID)
	}

	encoded, err := btcjson.EncodeResponse(resp)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if string(encoded) != string(data) {
		t.Errorf("round trip - got %s, want %s", encoded, data)
	}
}

// TestAddressGroupings ensures the positional array form of
// listaddressgroupings decodes into the typed model and re-encodes
// identically.
func TestAddressGroupings(t *testing.T) {
	t.Parallel()

	data := []byte(`{"result":[[["1Q1pE5vPGEEMqRcVRMbtBK842Y6Pzo6nK9",` +
		`0.00100000,"test"],["1J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",` +
		`0.00000000]]],"error":null,"id":1}`)

	resp, err := btcjson.DecodeResponse("listaddressgroupings", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	groupings, ok := resp.Result.(*[][]btcjson.AddressGrouping)
	if !ok {
		t.Fatalf("wrong result type %T", resp.Result)
	}
	if len(*groupings) != 1 || len((*groupings)[0]) != 2 {
		t.Fatalf("unexpected shape: %s", spew.Sdump(groupings))
	}

	first := (*groupings)[0][0]
	if first.Address != "1Q1pE5vPGEEMqRcVRMbtBK842Y6Pzo6nK9" {
		t.Errorf("address - got %q", first.Address)
	}
	if first.Account == nil || *first.Account != "test" {
		t.Errorf("account - got %v, want test", first.Account)
	}
	second := (*groupings)[0][1]
	if second.Account != nil {
		t.Errorf("account - got %v, want nil", second.Account)
	}

	encoded, err := btcjson.EncodeResponse(resp)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if string(encoded) != string(data) {
		t.Errorf("round trip - got %s, want %s", encoded, data)
	}
}

// TestAddressGroupingBadArity ensures grouping entries that are not two or
// three elements long are rejected.
func TestAddressGroupingBadArity(t *testing.T) {
	t.Parallel()

	var grouping btcjson.AddressGrouping
	err := btcjson.UnmarshalResult([]byte(`["addr"]`), &grouping)
	if err == nil {
		t.Fatal("expected error for single element grouping")
	}
	jerr, ok := err.(btcjson.Error)
	if !ok {
		t.Fatalf("wrong error type %T", err)
	}
	if jerr.ErrorCode != btcjson.ErrTypeMismatch {
		t.Errorf("wrong error code - got %v, want %v", jerr.ErrorCode,
			btcjson.ErrTypeMismatch)
	}
}

// TestListAccountsSemanticRoundTrip ensures map shaped results survive a
// decode and re-encode with equivalent content.  Go maps don't preserve the
// daemon's key order, so the re-encoded form is sorted by key instead of
// byte-identical.
func TestListAccountsSemanticRoundTrip(t *testing.T) {
	t.Parallel()

	data := []byte(`{"result":{"tabby":0.00100000,"":1.99800000},` +
		`"error":null,"id":1}`)

	resp, err := btcjson.DecodeResponse("listaccounts", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	accounts, ok := resp.Result.(*btcjson.ListAccountsResult)
	if !ok {
		t.Fatalf("wrong result type %T", resp.Result)
	}
	if len(*accounts) != 2 {
		t.Fatalf("account count - got %d, want 2", len(*accounts))
	}
	if got := (*accounts)["tabby"].String(); got != "0.00100000" {
		t.Errorf("tabby balance - got %s, want 0.00100000", got)
	}

	encoded, err := btcjson.EncodeResponse(resp)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	expected := `{"result":{"":1.99800000,"tabby":0.00100000},` +
		`"error":null,"id":1}`
	if string(encoded) != expected {
		t.Errorf("sorted re-encode - got %s, want %s", encoded, expected)
	}

	again, err := btcjson.DecodeResponse("listaccounts", []byte(encoded))
	if err != nil {
		t.Fatalf("unexpected redecode error: %v", err)
	}
	if !reflect.DeepEqual(resp.Result, again.Result) {
		t.Errorf("semantic round trip - got %s, want %s",
			spew.Sdump(again.Result), spew.Sdump(resp.Result))
	}
}

// TestGetTransactionDecode ensures the nested details of a gettransaction
// response decode and the category dependent optional fields round-trip.
func TestGetTransactionDecode(t *testing.T) {
	t.Parallel()

	data := []byte(`{"result":{"amount":-0.00100000,"fee":-0.00010000,` +
		`"confirmations":10,` +
		`"blockhash":"000000000000000082ccf8f1557c5d40b21edabb18d2d691cfbf87118bac7254",` +
		`"blockindex":1,"blocktime":1401538403,` +
		`"txid":"60ac4b057247b3d0b9a8173de56b5e1be8c1d1da970511c626ef53706c66be04",` +
		`"time":1401538390,"timereceived":1401538390,` +
		`"details":[{"account":"","address":` +
		`"1Q1pE5vPGEEMqRcVRMbtBK842Y6Pzo6nK9","category":"send",` +
		`"amount":-0.00100000,"fee":-0.00010000}]},"error":null,"id":1}`)

	resp, err := btcjson.DecodeResponse("gettransaction", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx, ok := resp.Result.(*btcjson.GetTransactionResult)
	if !ok {
		t.Fatalf("wrong result type %T", resp.Result)
	}
	if tx.Fee == nil || tx.Fee.String() != "-0.00010000" {
		t.Errorf("fee - got %v, want -0.00010000", tx.Fee)
	}
	if got := tx.Amount.Satoshis(); got != -100000 {
		t.Errorf("satoshis - got %d, want -100000", got)
	}
	if len(tx.Details) != 1 || tx.Details[0].Category != "send" {
		t.Errorf("details - got %s", spew.Sdump(tx.Details))
	}

	encoded, err := btcjson.EncodeResponse(resp)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if string(encoded) != string(data) {
		t.Errorf("round trip - got %s, want %s", encoded, data)
	}
}
