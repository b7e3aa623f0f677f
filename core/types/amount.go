// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013, 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import (
	"strconv"
)

// SatoshiPerBitcoin is the number of satoshi in one bitcoin (1 BTC).
const SatoshiPerBitcoin = 1e8

// Amount represents the base bitcoin monetary unit (colloquially referred
// to as a `Satoshi').  A single Amount is equal to 1e-8 of a bitcoin.
type Amount uint64

// ToBTC returns the amount in bitcoin.
func (a Amount) ToBTC() float64 {
	return float64(a) / SatoshiPerBitcoin
}

// String is the stringer interface for Amount.  The amount is printed with
// all eight decimals and no float rounding.
func (a Amount) String() string {
	whole := uint64(a) / SatoshiPerBitcoin
	frac := uint64(a) % SatoshiPerBitcoin
	f := strconv.FormatUint(frac, 10)
	for len(f) < 8 {
		f = "0" + f
	}
	return strconv.FormatUint(whole, 10) + "." + f + " BTC"
}
