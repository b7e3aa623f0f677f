// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

// mustNotBeEmpty guards the digest primitives. Hashing nothing is always a
// caller bug in this codebase, never a user error.
func mustNotBeEmpty(fn string, buf []byte) {
	if len(buf) == 0 {
		panic("hash: " + fn + " called with empty input")
	}
}

// Sha256 returns the SHA-256 digest of buf.
func Sha256(buf []byte) []byte {
	mustNotBeEmpty("Sha256", buf)
	return CalcHash(buf, GetHasher(SHA256))
}

// Ripemd160 returns the RIPEMD-160 digest of buf.
func Ripemd160(buf []byte) []byte {
	mustNotBeEmpty("Ripemd160", buf)
	return CalcHash(buf, GetHasher(RIPEMD160))
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return Ripemd160(Sha256(buf))
}

// DoubleSha256 calculates sha256(sha256(b)).
func DoubleSha256(buf []byte) []byte {
	return Sha256(Sha256(buf))
}

// Checksum returns the first four bytes of the double SHA-256 of buf, the
// checksum used by Base58Check.
func Checksum(buf []byte) []byte {
	h := DoubleSha256(buf)
	var cksum [ChecksumSize]byte
	copy(cksum[:], h[:ChecksumSize])
	return cksum[:]
}
