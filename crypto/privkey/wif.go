// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package privkey

import (
	"github.com/Qitmeer/btk/common/encode/base58"
	"github.com/Qitmeer/btk/params"
	"github.com/pkg/errors"
)

const (
	// MinWIFLen is the length of an uncompressed WIF string.
	MinWIFLen = 51

	// MaxWIFLen is the length of a compressed WIF string.
	MaxWIFLen = 52
)

// FromWIF decodes a Wallet Import Format string.  The returned mode is taken
// from the version byte.
//
// The decoded payload is one of:
//  * prefix || scalar                 (uncompressed)
//  * prefix || scalar || 0x01         (compressed)
func FromWIF(wif string) (*PrivateKey, params.NetworkMode, error) {
	payload, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, 0, base58Error(err)
	}

	var compressed bool
	switch len(payload) {
	case 1 + KeyLen:
	case 1 + KeyLen + 1:
		if payload[1+KeyLen] != CompressFlag {
			return nil, 0, errors.Wrapf(ErrInvalidFormat, "compression byte %02x", payload[1+KeyLen])
		}
		compressed = true
	default:
		return nil, 0, errors.Wrapf(ErrInvalidFormat, "WIF payload is %d bytes", len(payload))
	}

	p, err := params.ForPrivateKeyID(payload[0])
	if err != nil {
		return nil, 0, errors.Wrap(ErrInvalidFormat, err.Error())
	}

	k, err := newKey(payload[1:1+KeyLen], compressed)
	if err != nil {
		return nil, 0, err
	}
	return k, p.Mode, nil
}

// ToWIF encodes k for the network mode.
func (k *PrivateKey) ToWIF(mode params.NetworkMode) (string, error) {
	p, err := params.ForMode(mode)
	if err != nil {
		return "", err
	}
	a := make([]byte, 0, 1+KeyLen+1)
	a = append(a, p.PrivateKeyID)
	a = append(a, k.scalar[:]...)
	if k.compressed {
		a = append(a, CompressFlag)
	}
	return base58.CheckEncode(a)
}
