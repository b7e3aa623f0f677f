// Copyright 2017-2018 The qitmeer developers

package util

import (
	"math/big"
)

// PaddedAppend appends the src byte slice to dst, returning the new slice.
// If the length of the source is smaller than the passed size, leading zero
// bytes are appended to the dst slice before appending src.
func PaddedAppend(size uint, dst, src []byte) []byte {
	for i := 0; i < int(size)-len(src); i++ {
		dst = append(dst, 0)
	}
	return append(dst, src...)
}

// PaddedBytes encodes a big integer as a big-endian byte slice, if the length of
// byte slice is smaller than the passed size, leading zero bytes will be added.
// Example :
// secp256k1 private key scalar
//   scalar := PaddedBytes(32, d)
func PaddedBytes(size uint, n *big.Int) []byte {
	if n.BitLen()/8 >= int(size) {
		return n.Bytes()
	}
	return PaddedAppend(size, nil, n.Bytes())
}

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// ReverseBytes reverses b in place.
func ReverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
