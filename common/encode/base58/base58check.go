// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"

	"github.com/Qitmeer/btk/common/hash"
	"github.com/pkg/errors"
)

// ErrChecksum indicates that the checksum of a check-encoded string does not verify against
// the checksum.
var ErrChecksum = errors.New("checksum error")

// ErrInvalidFormat indicates that the check-encoded string has an invalid format.
var ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")

// ErrInputTooLarge is returned for inputs beyond maxInputSize.
var ErrInputTooLarge = errors.New("value too large")

const maxInputSize = 64 * 1024 * 1024

// ChecksumFunc computes the checksum appended by ChecksumEncode.
type ChecksumFunc func([]byte) []byte

// btc checksum: first four bytes of double-sha256.
func checksumBtc(input []byte) []byte {
	return hash.Checksum(input)
}

func SingleHashChecksumFunc(hasher hash.Hasher, cksumSize int) ChecksumFunc {
	return func(input []byte) []byte {
		h := hash.CalcHash(input, hasher)
		var cksum []byte
		cksum = append(cksum, h[:cksumSize]...)
		return cksum
	}
}

func DoubleHashChecksumFunc(hasher hash.Hasher, cksumSize int) ChecksumFunc {
	return func(input []byte) []byte {
		first := hash.CalcHash(input, hasher)
		second := hash.CalcHash(first, hasher)
		var cksum []byte
		cksum = append(cksum, second[:cksumSize]...)
		return cksum
	}
}

func checkInputOverflow(n int) error {
	if n > maxInputSize {
		return ErrInputTooLarge
	}
	return nil
}

// CheckEncode appends the four byte double-sha256 checksum of payload and
// base58 encodes the result. Any version prefix is part of payload.
func CheckEncode(payload []byte) (string, error) {
	return ChecksumEncode(payload, nil, hash.ChecksumSize, checksumBtc)
}

// CheckDecode reverses CheckEncode. The returned payload still carries its
// version prefix.
func CheckDecode(input string) ([]byte, error) {
	payload, _, err := ChecksumDecode(input, 0, hash.ChecksumSize, checksumBtc)
	return payload, err
}

// BtcCheckEncode prepends a version byte and appends a four byte checksum.
func BtcCheckEncode(input []byte, version byte) (string, error) {
	return ChecksumEncode(input, []byte{version}, hash.ChecksumSize, checksumBtc)
}

// BtcCheckDecode decodes a string that was encoded with a one byte version
// and verifies the double-sha256 checksum.
func BtcCheckDecode(input string) (result []byte, version byte, err error) {
	r, v, err := ChecksumDecode(input, 1, hash.ChecksumSize, checksumBtc)
	if err != nil {
		return nil, 0, err
	}
	return r, v[0], nil
}

// ChecksumEncode base58 encodes version ++ input ++ cksumfunc(version ++ input).
func ChecksumEncode(input []byte, version []byte, cksumSize int, cksumfunc ChecksumFunc) (string, error) {
	if err := checkInputOverflow(len(input)); err != nil {
		return "", err
	}
	if len(version)+len(input) == 0 || cksumSize <= 0 {
		return "", ErrInvalidFormat
	}
	b := make([]byte, 0, len(version)+len(input)+cksumSize)
	b = append(b, version...)
	b = append(b, input...)
	b = append(b, cksumfunc(b)...)
	return Encode(b), nil
}

// ChecksumDecode decodes input, verifies the trailing cksumSize bytes
// against cksumfunc and splits off versionSize leading version bytes. The
// payload between version and checksum must not be empty when versionSize
// is zero.
func ChecksumDecode(input string, versionSize, cksumSize int, cksumfunc ChecksumFunc) (result []byte, version []byte, err error) {
	if err := checkInputOverflow(len(input)); err != nil {
		return nil, nil, err
	}
	decoded, err := Decode(input)
	if err != nil {
		return nil, nil, err
	}
	if versionSize < 0 {
		return nil, nil, ErrInvalidFormat
	}
	minLen := cksumSize + versionSize
	if versionSize == 0 {
		minLen++
	}
	if cksumSize <= 0 || len(decoded) < minLen {
		return nil, nil, ErrInvalidFormat
	}
	body := decoded[:len(decoded)-cksumSize]
	if !bytes.Equal(cksumfunc(body), decoded[len(decoded)-cksumSize:]) {
		return nil, nil, ErrChecksum
	}
	version = append(version, body[:versionSize]...)
	result = append(result, body[versionSize:]...)
	return result, version, nil
}
