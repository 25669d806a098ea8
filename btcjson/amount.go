// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// Amount is a bitcoin amount exactly as the daemon represents it: a decimal
// number of bitcoin with up to eight fractional digits.  It keeps the scale
// of the literal it was decoded from, so "0.00100000" re-encodes with all of
// its trailing zeros intact instead of collapsing to "0.001" the way a float
// would.  Scientific notation on input is normalized to plain notation.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns the Amount the provided string represents.
func NewAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		str := fmt.Sprintf("invalid amount %q: %v", s, err)
		return Amount{}, makeError(ErrInvalidType, str)
	}
	return Amount{Decimal: d}, nil
}

// MustAmount returns the Amount the provided string represents and panics if
// the string is not a valid decimal.  It is intended for tests and constant
// tables.
func MustAmount(s string) Amount {
	a, err := NewAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the amount in plain notation at its original scale.  The
// embedded decimal's String trims trailing fractional zeros, which would turn
// "0.00100000" into "0.001" on re-encode, so amounts with a negative exponent
// render at fixed precision instead.
func (a Amount) String() string {
	if e := a.Exponent(); e < 0 {
		return a.StringFixed(-e)
	}
	return a.Decimal.String()
}

// MarshalJSON implements the json.Marshaler interface.  Amounts encode as
// bare JSON numbers in plain notation.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.  Both quoted and
// bare numbers are accepted since some daemon versions quote amounts in a
// few spots.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return makeError(ErrTypeMismatch,
			fmt.Sprintf("invalid amount %s: %v", b, err))
	}
	a.Decimal = d
	return nil
}

var satoshiPerBitcoin = decimal.New(btcutil.SatoshiPerBitcoin, 0)

// Satoshis converts the amount to an integral number of satoshis.  Fractions
// of a satoshi, which the daemon never produces, are truncated.
func (a Amount) Satoshis() btcutil.Amount {
	return btcutil.Amount(a.Mul(satoshiPerBitcoin).IntPart())
}

// AmountFromSatoshis returns the Amount representing the provided number of
// satoshis, rendered with the daemon's customary eight fractional digits.
func AmountFromSatoshis(sat btcutil.Amount) Amount {
	return Amount{Decimal: decimal.New(int64(sat), -8)}
}
