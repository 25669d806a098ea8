// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package btcjson models the JSON-RPC responses of a bitcoind-compatible
daemon as statically typed Go values.

The daemon answers every call with an envelope of the form:

	{"result":SOMETHING,"error":null,"id":"SOMEID"}

This package provides one result type per supported method with the daemon's
exact field names and ordering, together with a tolerant codec that connects
the two representations.  It deliberately contains no transport: a caller
performs the HTTP request itself and hands the raw bytes to DecodeResponse.

Tolerant decoding

The daemon grows new response fields over releases, and a binding that
rejects unknown fields would break on every upgrade.  The decoder therefore
never fails on an unrecognized field; it parks the value in the OtherFields
bucket of the surrounding type instead.  A non-empty bucket after decoding
means the typed model is missing a declaration - the conformance tests in
this package assert every bucket is empty for every sample document, which
is how the model is kept complete.

Decoding fails only for malformed JSON (ErrMalformedInput) or when a value
conflicts with a declared field's type (ErrTypeMismatch, with the path of
the offending field in the description).

Round-tripping

Encoding a decoded response reproduces the original document byte for byte:
declared fields encode in wire order, optional fields that were absent on
input stay absent on output, and nested objects whose fields appear
flattened into the parent re-flatten on encode.  The single exception is
map-shaped results such as listaccounts, which normalize to sorted key
order and therefore round-trip semantically instead.

A response whose error field is non-null is not a decode failure.  The
decoded envelope carries the daemon's RPCError and callers check it
explicitly:

	resp, err := btcjson.DecodeResponse("getinfo", raw)
	if err != nil {
		// Malformed or structurally incompatible response.
	}
	if err := resp.Err(); err != nil {
		// The daemon reported an error, e.g. ErrRPCInWarmup.
	}
	info := resp.Result.(*btcjson.InfoResult)
*/
package btcjson
