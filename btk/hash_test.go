// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btk

import (
	"encoding/hex"
	"testing"

	"github.com/Qitmeer/btk/common/hash"
	"github.com/dchest/blake256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestHash(t *testing.T) {
	abc := []byte("abc")
	h := blake256.New()
	h.Write(abc)
	b256 := h.Sum(nil)
	b2b256 := blake2b.Sum256(abc)
	b2b512 := blake2b.Sum512(abc)

	tests := []struct {
		ht   hash.HashType
		want string
	}{
		{hash.SHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{hash.RIPEMD160, "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{hash.Blake256, hex.EncodeToString(b256[:])},
		{hash.Blake2b_256, hex.EncodeToString(b2b256[:])},
		{hash.Blake2b_512, hex.EncodeToString(b2b512[:])},
	}
	for _, test := range tests {
		s, err := Hash(test.ht, "616263")
		require.NoError(t, err, test.ht.String())
		assert.Equal(t, test.want, s, test.ht.String())
	}

	s, err := Hash(hash.SHA256, "")
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", s)

	_, err = Hash(hash.SHA256, "abc")
	assert.Error(t, err)
	_, err = Hash(hash.HashType(99), "00")
	assert.Error(t, err)
}

func TestBitcoin160(t *testing.T) {
	s, err := Bitcoin160("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)
	assert.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", s)

	_, err = Bitcoin160("")
	assert.Error(t, err)
}
