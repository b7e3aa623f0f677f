// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package privkey

import (
	"fmt"

	"github.com/Qitmeer/btk/common/encode/base58"
	"github.com/Qitmeer/btk/params"
)

// Format names an input or output encoding of a private key.
type Format int

const (
	FormatNew Format = iota
	FormatWIF
	FormatHex
	FormatRaw
	FormatPassphrase
	FormatDecimal
	FormatBlob
	FormatGuess
)

var formatStrings = map[Format]string{
	FormatNew:        "new",
	FormatWIF:        "wif",
	FormatHex:        "hex",
	FormatRaw:        "raw",
	FormatPassphrase: "passphrase",
	FormatDecimal:    "decimal",
	FormatBlob:       "blob",
	FormatGuess:      "guess",
}

func (f Format) String() string {
	if s, ok := formatStrings[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Decoded is the result of Guess.  Net is only meaningful when Format is
// FormatWIF; it is MainNet otherwise.
type Decoded struct {
	Key    *PrivateKey
	Format Format
	Net    params.NetworkMode
}

// guessRule pairs a predicate with the converter used once it matches.  The
// predicate sees the input with one trailing newline removed and the input
// as given.
type guessRule struct {
	format  Format
	match   func(text, orig []byte) bool
	convert func(text, orig []byte) (*PrivateKey, params.NetworkMode, error)
}

func all(b []byte, pred func(byte) bool) bool {
	for _, c := range b {
		if !pred(c) {
			return false
		}
	}
	return true
}

func onlyKey(k *PrivateKey, err error) (*PrivateKey, params.NetworkMode, error) {
	return k, params.MainNet, err
}

// guessRules is evaluated in order and the first match decides.
var guessRules = []guessRule{
	{
		format: FormatDecimal,
		match:  func(text, _ []byte) bool { return all(text, isDigit) },
		convert: func(text, _ []byte) (*PrivateKey, params.NetworkMode, error) {
			return onlyKey(FromDecimal(string(text)))
		},
	},
	{
		format: FormatHex,
		match: func(text, _ []byte) bool {
			return (len(text) == 2*KeyLen || len(text) == 2*KeyLen+2) && all(text, isHexChar)
		},
		convert: func(text, _ []byte) (*PrivateKey, params.NetworkMode, error) {
			return onlyKey(FromHex(string(text)))
		},
	},
	{
		format: FormatWIF,
		match: func(text, _ []byte) bool {
			return len(text) >= MinWIFLen && len(text) <= MaxWIFLen && all(text, base58.IsValidChar)
		},
		convert: func(text, _ []byte) (*PrivateKey, params.NetworkMode, error) {
			return FromWIF(string(text))
		},
	},
	{
		format: FormatPassphrase,
		match: func(text, _ []byte) bool {
			return all(text, func(c byte) bool { return c >= 1 && c <= 127 })
		},
		convert: func(text, _ []byte) (*PrivateKey, params.NetworkMode, error) {
			return onlyKey(FromPassphrase(string(text)))
		},
	},
	{
		format: FormatRaw,
		match: func(_, orig []byte) bool {
			switch len(orig) {
			case KeyLen:
				return true
			case KeyLen + 1:
				return orig[KeyLen] == 0x00 || orig[KeyLen] == CompressFlag
			}
			return false
		},
		convert: func(_, orig []byte) (*PrivateKey, params.NetworkMode, error) {
			return onlyKey(FromRaw(orig))
		},
	},
}

// Guess detects the encoding of data and decodes it.  The error of the first
// matching format is returned as is; later formats are not tried.
func Guess(data []byte) (*Decoded, error) {
	text := data
	if n := len(text); n > 0 && text[n-1] == '\n' {
		text = text[:n-1]
	}
	if len(text) == 0 {
		return nil, ErrUnrecognizedFormat
	}

	for _, r := range guessRules {
		if !r.match(text, data) {
			continue
		}
		log.Debug("Guessed private key format", "format", r.format, "len", len(data))
		k, net, err := r.convert(text, data)
		if err != nil {
			return nil, err
		}
		return &Decoded{Key: k, Format: r.format, Net: net}, nil
	}
	return nil, ErrUnrecognizedFormat
}
