// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson_test

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/require"

	"github.com/bluflew/bitcoind-client/btcjson"
)

// TestAmountRoundTrip ensures amount literals keep their original scale
// through a decode and re-encode, including trailing zeros that a float
// would collapse.
func TestAmountRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "trailing zeros", in: `0.00100000`, out: `0.00100000`},
		{name: "zero", in: `0.00000000`, out: `0.00000000`},
		{name: "integral", in: `50`, out: `50`},
		{name: "integral with scale", in: `50.00000000`, out: `50.00000000`},
		{name: "negative", in: `-0.00010000`, out: `-0.00010000`},
		{name: "quoted", in: `"1.99800000"`, out: `1.99800000`},
		{name: "scientific normalizes", in: `1.998e-3`, out: `0.001998`},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		var amount btcjson.Amount
		err := json.Unmarshal([]byte(test.in), &amount)
		require.NoErrorf(t, err, "Test #%d (%s)", i, test.name)

		encoded, err := json.Marshal(amount)
		require.NoErrorf(t, err, "Test #%d (%s)", i, test.name)
		require.Equalf(t, test.out, string(encoded),
			"Test #%d (%s)", i, test.name)
	}
}

// TestAmountInvalid ensures values that are not decimal numbers are rejected
// with a type mismatch error.
func TestAmountInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`true`, `"pennies"`, `[1]`, `{}`} {
		var amount btcjson.Amount
		err := json.Unmarshal([]byte(in), &amount)
		require.Errorf(t, err, "input %s", in)
		jerr, ok := err.(btcjson.Error)
		require.Truef(t, ok, "input %s: wrong error type %T", in, err)
		require.Equalf(t, btcjson.ErrTypeMismatch, jerr.ErrorCode,
			"input %s", in)
	}
}

// TestAmountSatoshis ensures conversions to and from satoshis agree with the
// daemon's eight decimal place convention.
func TestAmountSatoshis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   string
		satoshis btcutil.Amount
	}{
		{amount: "0.00100000", satoshis: 100000},
		{amount: "1.99800000", satoshis: 199800000},
		{amount: "-0.00010000", satoshis: -10000},
		{amount: "0.00000000", satoshis: 0},
		{amount: "21000000.00000000", satoshis: 21000000 * btcutil.SatoshiPerBitcoin},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		amount := btcjson.MustAmount(test.amount)
		require.Equalf(t, test.satoshis, amount.Satoshis(),
			"Test #%d (%s)", i, test.amount)

		back := btcjson.AmountFromSatoshis(test.satoshis)
		require.Equalf(t, test.amount, back.String(),
			"Test #%d (%s)", i, test.amount)
	}
}

// TestNewAmount ensures the string constructor accepts decimals and rejects
// everything else.
func TestNewAmount(t *testing.T) {
	t.Parallel()

	amount, err := btcjson.NewAmount("1.99800000")
	require.NoError(t, err)
	require.Equal(t, "1.99800000", amount.String())

	_, err = btcjson.NewAmount("one bitcoin")
	require.Error(t, err)
	jerr, ok := err.(btcjson.Error)
	require.True(t, ok)
	require.Equal(t, btcjson.ErrInvalidType, jerr.ErrorCode)
}
