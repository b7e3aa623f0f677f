// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package privkey

import (
	"encoding/hex"
	"math/big"

	"github.com/Qitmeer/btk/common/hash"
	"github.com/Qitmeer/btk/common/util"
	"github.com/pkg/errors"
)

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FromHex decodes 64 hex characters, or 66 where the last byte is the 01
// compression flag.  Either case is accepted.  Only the 66 character form
// yields a compressed key.
func FromHex(s string) (*PrivateKey, error) {
	if len(s) != 2*KeyLen && len(s) != 2*KeyLen+2 {
		return nil, errors.Wrapf(ErrInvalidFormat, "hex key is %d characters", len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isHexChar(s[i]) {
			return nil, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", s[i], i)
		}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidFormat, err.Error())
	}
	if len(b) > KeyLen && b[KeyLen] != CompressFlag {
		return nil, errors.Wrapf(ErrInvalidFormat, "compression byte %02x", b[KeyLen])
	}
	return FromRaw(b)
}

// ToHex returns the lowercase hex of the scalar, followed by 01 when k is
// compressed.
func (k *PrivateKey) ToHex() string {
	return hex.EncodeToString(k.ToRaw())
}

// FromRaw accepts the 32 byte scalar, or 33 bytes where the last is 00 for
// an uncompressed key or 01 for a compressed one.
func FromRaw(b []byte) (*PrivateKey, error) {
	switch len(b) {
	case KeyLen:
		return newKey(b, false)
	case KeyLen + 1:
		switch b[KeyLen] {
		case 0x00:
			return newKey(b[:KeyLen], false)
		case CompressFlag:
			return newKey(b[:KeyLen], true)
		}
		return nil, errors.Wrapf(ErrInvalidFormat, "compression byte %02x", b[KeyLen])
	}
	return nil, errors.Wrapf(ErrInvalidFormat, "raw key is %d bytes", len(b))
}

// ToRaw returns the scalar, followed by the flag byte when k is compressed.
func (k *PrivateKey) ToRaw() []byte {
	b := make([]byte, 0, KeyLen+1)
	b = append(b, k.scalar[:]...)
	if k.compressed {
		b = append(b, CompressFlag)
	}
	return b
}

// FromDecimal parses a base 10 scalar.  The key is compressed.
func FromDecimal(s string) (*PrivateKey, error) {
	if len(s) == 0 {
		return nil, errors.Wrap(ErrInvalidFormat, "empty decimal key")
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return nil, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", s[i], i)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidFormat, "decimal key %q", s)
	}
	if v.BitLen() > 8*KeyLen {
		return nil, ErrOutOfRange
	}
	return newKey(util.PaddedBytes(KeyLen, v), true)
}

// ToDecimal returns the scalar in base 10 without leading zeros.
func (k *PrivateKey) ToDecimal() string {
	return new(big.Int).SetBytes(k.scalar[:]).String()
}

// FromPassphrase derives a compressed key from the sha256 of s.
func FromPassphrase(s string) (*PrivateKey, error) {
	if len(s) == 0 {
		return nil, errors.Wrap(ErrInvalidFormat, "empty passphrase")
	}
	return FromBlob([]byte(s))
}

// FromBlob derives a compressed key from the sha256 of b.
func FromBlob(b []byte) (*PrivateKey, error) {
	if len(b) == 0 {
		return nil, errors.Wrap(ErrInvalidFormat, "empty blob")
	}
	return newKey(hash.Sha256(b), true)
}
