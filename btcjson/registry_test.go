// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson_test

import (
	"sort"
	"testing"

	"github.com/bluflew/bitcoind-client/btcjson"
)

// TestRegisterResultErrors ensures RegisterResult returns the expected errors
// for invalid registrations.
func TestRegisterResultErrors(t *testing.T) {
	// Not parallel since registrations mutate package level state.

	tests := []struct {
		name      string
		method    string
		prototype interface{}
		err       btcjson.Error
	}{
		{
			name:      "empty method",
			method:    "",
			prototype: (*int64)(nil),
			err:       btcjson.Error{ErrorCode: btcjson.ErrInvalidType},
		},
		{
			name:      "duplicate method",
			method:    "getinfo",
			prototype: (*btcjson.InfoResult)(nil),
			err:       btcjson.Error{ErrorCode: btcjson.ErrDuplicateMethod},
		},
		{
			name:      "non-pointer prototype",
			method:    "registrytestbogus",
			prototype: btcjson.InfoResult{},
			err:       btcjson.Error{ErrorCode: btcjson.ErrInvalidType},
		},
		{
			name:      "nil prototype",
			method:    "registrytestbogus",
			prototype: nil,
			err:       btcjson.Error{ErrorCode: btcjson.ErrInvalidType},
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		err := btcjson.RegisterResult(test.method, test.prototype)
		if err == nil {
			t.Errorf("Test #%d (%s) expected error", i, test.name)
			continue
		}
		jerr, ok := err.(btcjson.Error)
		if !ok {
			t.Errorf("Test #%d (%s) wrong error type %T", i,
				test.name, err)
			continue
		}
		if jerr.ErrorCode != test.err.ErrorCode {
			t.Errorf("Test #%d (%s) mismatched error code - got "+
				"%v, want %v", i, test.name, jerr.ErrorCode,
				test.err.ErrorCode)
			continue
		}
	}
}

// TestRegisteredMethods ensures the methods registered by the package init
// functions are reported sorted and include the expected entries.
func TestRegisteredMethods(t *testing.T) {
	methods := btcjson.RegisteredMethods()
	if !sort.StringsAreSorted(methods) {
		t.Error("registered methods are not sorted")
	}

	registered := make(map[string]struct{}, len(methods))
	for _, method := range methods {
		registered[method] = struct{}{}
	}
	for _, method := range []string{
		"getinfo", "getblock", "getblocktemplate", "getrawtransaction",
		"listunspent", "listaccounts", "getbalance", "gettransaction",
	} {
		if _, ok := registered[method]; !ok {
			t.Errorf("method %q is not registered", method)
		}
	}
}

// TestDecodeResponseUnregisteredMethod ensures decoding a response for an
// unknown method fails with the expected error.
func TestDecodeResponseUnregisteredMethod(t *testing.T) {
	_, err := btcjson.DecodeResponse("bogusmethod",
		[]byte(`{"result":null,"error":null,"id":1}`))
	if err == nil {
		t.Fatal("expected error for unregistered method")
	}
	jerr, ok := err.(btcjson.Error)
	if !ok {
		t.Fatalf("wrong error type %T", err)
	}
	if jerr.ErrorCode != btcjson.ErrUnregisteredMethod {
		t.Errorf("wrong error code - got %v, want %v", jerr.ErrorCode,
			btcjson.ErrUnregisteredMethod)
	}
}
