// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 implements the modified base58 encoding used by bitcoin
// and the Base58Check envelope built on top of it.
//
// Decode returns the plain big-endian export of the decoded integer, so
// leading '1' characters do not come back as leading zero bytes. Encode
// does emit them. Callers that need a total round trip for data starting
// with zero bytes must track those bytes themselves.
package base58

import (
	"math/big"

	"github.com/pkg/errors"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const alphabetIdx0 = '1'

// ErrInvalidCharacter indicates a character outside the base58 alphabet.
var ErrInvalidCharacter = errors.New("invalid base58 character")

var bigRadix = big.NewInt(58)
var bigZero = big.NewInt(0)

var b58 [256]byte

func init() {
	for i := range b58 {
		b58[i] = 0xff
	}
	for i := 0; i < len(alphabet); i++ {
		b58[alphabet[i]] = byte(i)
	}
}

// IsValidChar reports whether c belongs to the base58 alphabet.
func IsValidChar(c byte) bool {
	return b58[c] != 0xff
}

// Encode encodes a byte slice to a modified base58 string.
func Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)

	// log(256)/log(58), rounded up.
	answer := make([]byte, 0, len(b)*138/100+1)
	mod := new(big.Int)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	// leading zero bytes
	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabetIdx0)
	}

	// reverse
	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}

	return string(answer)
}

// Decode decodes a modified base58 string to a byte slice.
func Decode(s string) ([]byte, error) {
	answer := big.NewInt(0)
	scratch := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx := b58[s[i]]
		if idx == 0xff {
			return nil, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", s[i], i)
		}
		answer.Mul(answer, bigRadix)
		scratch.SetInt64(int64(idx))
		answer.Add(answer, scratch)
	}
	return answer.Bytes(), nil
}
