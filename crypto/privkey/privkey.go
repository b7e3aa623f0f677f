// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package privkey converts secp256k1 private keys between the encodings
// bitcoin tools accept: WIF, hex, raw bytes, decimal, and the sha256 of a
// passphrase or blob.
package privkey

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

const (
	// KeyLen is the length of a private key scalar in bytes.
	KeyLen = 32

	// CompressFlag follows the scalar when the public key is to be
	// serialized compressed.
	CompressFlag = 0x01
)

// curveOrder is the order N of the secp256k1 group.
var curveOrder = btcec.S256().N

// PrivateKey is a 32 byte big-endian scalar together with the compression
// flag of its public key.
type PrivateKey struct {
	scalar     [KeyLen]byte
	compressed bool
}

// inRange reports whether 1 <= b < N.
func inRange(b []byte) bool {
	v := new(big.Int).SetBytes(b)
	return v.Sign() > 0 && v.Cmp(curveOrder) < 0
}

// newKey copies b, which must be KeyLen bytes, after checking its range.
func newKey(b []byte, compressed bool) (*PrivateKey, error) {
	if len(b) != KeyLen {
		return nil, errors.Wrapf(ErrInvalidFormat, "scalar is %d bytes, want %d", len(b), KeyLen)
	}
	if !inRange(b) {
		return nil, ErrOutOfRange
	}
	k := &PrivateKey{compressed: compressed}
	copy(k.scalar[:], b)
	return k, nil
}

// NewRandom returns a compressed key drawn from the system random source.
func NewRandom() (*PrivateKey, error) {
	return NewRandomFrom(rand.Reader)
}

// NewRandomFrom draws 32 bytes from r until they form a valid scalar.
func NewRandomFrom(r io.Reader) (*PrivateKey, error) {
	var buf [KeyLen]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, errors.Wrap(err, "reading random scalar")
		}
		if inRange(buf[:]) {
			return &PrivateKey{scalar: buf, compressed: true}, nil
		}
		log.Trace("Random scalar out of range, drawing again")
	}
}

// Compress marks the public key of k as compressed.
func (k *PrivateKey) Compress() { k.compressed = true }

// Uncompress marks the public key of k as uncompressed.
func (k *PrivateKey) Uncompress() { k.compressed = false }

// IsCompressed returns the compression flag.
func (k *PrivateKey) IsCompressed() bool { return k.compressed }

// Scalar returns a copy of the 32 byte scalar.
func (k *PrivateKey) Scalar() []byte {
	b := make([]byte, KeyLen)
	copy(b, k.scalar[:])
	return b
}

// IsZero reports whether every byte of the scalar is zero.
func (k *PrivateKey) IsZero() bool {
	for _, b := range k.scalar {
		if b != 0 {
			return false
		}
	}
	return true
}

// Zero clears the scalar.
func (k *PrivateKey) Zero() {
	for i := range k.scalar {
		k.scalar[i] = 0
	}
}
