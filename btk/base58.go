// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btk

import (
	"fmt"
	"strings"

	"github.com/Qitmeer/btk/common/encode/base58"
	"github.com/Qitmeer/btk/common/hash"
	"github.com/Qitmeer/btk/common/util"
	"github.com/pkg/errors"
)

// checksumFunc resolves a hasher name to a checksum function.  A leading
// "d" selects the double hash, so "dsha256" is the bitcoin checksum.
func checksumFunc(hasherName string, cksumSize int) (base58.ChecksumFunc, error) {
	double := false
	name := hasherName
	if strings.HasPrefix(name, "d") {
		double = true
		name = name[1:]
	}
	ht, err := hash.ParseHashType(name)
	if err != nil {
		return nil, err
	}
	hasher := hash.GetHasher(ht)
	if cksumSize <= 0 || cksumSize > hasher.Size() {
		return nil, errors.Errorf("invalid checksum size %d, %s digests are %d bytes",
			cksumSize, ht, hasher.Size())
	}
	if double {
		return base58.DoubleHashChecksumFunc(hasher, cksumSize), nil
	}
	return base58.SingleHashChecksumFunc(hasher, cksumSize), nil
}

// Base58CheckEncode encodes the base16 input under version.  An empty hasher
// produces the bitcoin form: double sha256 with a four byte checksum.
func Base58CheckEncode(version []byte, hasher string, cksumSize int, input string) (string, error) {
	data, err := decodeHex(input)
	if err != nil {
		return "", err
	}
	if hasher == "" {
		if len(version) != 1 {
			return "", fmt.Errorf("invalid version size for btc base58check encode. input = %x (len = %d, required 1)", version, len(version))
		}
		return base58.BtcCheckEncode(data, version[0])
	}
	cksumfunc, err := checksumFunc(hasher, cksumSize)
	if err != nil {
		return "", err
	}
	return base58.ChecksumEncode(data, version, cksumSize, cksumfunc)
}

// Base58CheckDecode decodes input and returns the payload in base16.  With
// showDetails the hasher, version and checksum are listed as well.
func Base58CheckDecode(hasher string, versionSize, cksumSize int, input string, showDetails bool) (string, error) {
	input = strings.TrimSpace(input)
	var (
		data    []byte
		version []byte
		err     error
	)
	if hasher == "" {
		var v byte
		data, v, err = base58.BtcCheckDecode(input)
		version = []byte{v}
		cksumSize = 4
		hasher = "dsha256"
	} else {
		var cksumfunc base58.ChecksumFunc
		cksumfunc, err = checksumFunc(hasher, cksumSize)
		if err != nil {
			return "", err
		}
		data, version, err = base58.ChecksumDecode(input, versionSize, cksumSize, cksumfunc)
	}
	if err != nil {
		return "", err
	}
	if !showDetails {
		return fmt.Sprintf("%x", data), nil
	}

	decoded, err := base58.Decode(input)
	if err != nil {
		return "", err
	}
	cksum := decoded[len(decoded)-cksumSize:]
	var b strings.Builder
	fmt.Fprintf(&b, "hasher  : %s\n", hasher)
	fmt.Fprintf(&b, "version : %x (hex) %v (BE) %v (LE)\n", version, beUint(version), leUint(version))
	fmt.Fprintf(&b, "payload : %x\n", data)
	fmt.Fprintf(&b, "checksum: %x (hex) %v (BE) %v (LE)", cksum, beUint(cksum), leUint(cksum))
	return b.String(), nil
}

// beUint and leUint read up to eight bytes as an unsigned integer.
func beUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

func leUint(b []byte) uint64 {
	r := util.CopyBytes(b)
	util.ReverseBytes(r)
	return beUint(r)
}

// Base58Encode encodes a base16 string to base58.
func Base58Encode(input string) (string, error) {
	data, err := decodeHex(input)
	if err != nil {
		return "", err
	}
	return base58.Encode(data), nil
}

// Base58Decode decodes a base58 string to base16.
func Base58Decode(input string) (string, error) {
	data, err := base58.Decode(strings.TrimSpace(input))
	if err != nil {
		return "", errors.Wrap(err, "base58 decode")
	}
	return fmt.Sprintf("%x", data), nil
}
