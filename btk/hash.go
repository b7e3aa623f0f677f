// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btk

import (
	"fmt"

	"github.com/Qitmeer/btk/common/hash"
	"github.com/pkg/errors"
)

// Hash returns the base16 digest of the base16 input under ht.
func Hash(ht hash.HashType, input string) (string, error) {
	data, err := decodeHex(input)
	if err != nil {
		return "", err
	}
	hasher := hash.GetHasher(ht)
	if hasher == nil {
		return "", errors.Errorf("unknown hasher %s", ht)
	}
	return fmt.Sprintf("%x", hash.CalcHash(data, hasher)), nil
}

// Bitcoin160 returns ripemd160(sha256(data)) of the base16 input.
func Bitcoin160(input string) (string, error) {
	data, err := decodeHex(input)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("bitcoin160 of empty input")
	}
	return fmt.Sprintf("%x", hash.Hash160(data)), nil
}
