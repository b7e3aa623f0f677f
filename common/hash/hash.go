// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

import (
	"crypto"
	_ "crypto/sha256"
	"fmt"
	"hash"
	"sync"

	"github.com/dchest/blake256"
	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/ripemd160"
)

const (
	// HashSize is the size of a SHA-256 digest.
	HashSize = 32

	// RipemdSize is the size of a RIPEMD-160 digest.
	RipemdSize = 20

	// ChecksumSize is the number of digest bytes kept by Checksum.
	ChecksumSize = 4
)

type Hasher interface {
	hash.Hash
}

type HashType byte

const (
	SHA256 HashType = iota
	RIPEMD160
	Blake2b_256
	Blake2b_512
	Blake256
)

var hashTypeNames = map[HashType]string{
	SHA256:      "sha256",
	RIPEMD160:   "ripemd160",
	Blake2b_256: "blake2b256",
	Blake2b_512: "blake2b512",
	Blake256:    "blake256",
}

// registered lists the hashes resolved through the crypto registry. They are
// only available when the implementing package has been linked in.
var registered = []crypto.Hash{
	crypto.SHA256,
	crypto.RIPEMD160,
	crypto.BLAKE2b_256,
	crypto.BLAKE2b_512,
}

var initOnce sync.Once

// ensureInitialized verifies once per process that every registered hash
// implementation is linked into the binary.
func ensureInitialized() {
	initOnce.Do(func() {
		for _, h := range registered {
			if !h.Available() {
				panic(fmt.Sprintf("hash: implementation of %v is not linked", h))
			}
		}
	})
}

func (ht HashType) String() string {
	if name, ok := hashTypeNames[ht]; ok {
		return name
	}
	return fmt.Sprintf("HashType(%d)", byte(ht))
}

// ParseHashType returns the hash type for one of the names printed by
// HashType.String.
func ParseHashType(name string) (HashType, error) {
	for ht, n := range hashTypeNames {
		if n == name {
			return ht, nil
		}
	}
	return 0, fmt.Errorf("unknown hasher %s", name)
}

func GetHasher(ht HashType) Hasher {
	ensureInitialized()
	switch ht {
	case SHA256:
		return crypto.SHA256.New()
	case RIPEMD160:
		return crypto.RIPEMD160.New()
	case Blake2b_256:
		return crypto.BLAKE2b_256.New()
	case Blake2b_512:
		return crypto.BLAKE2b_512.New()
	case Blake256:
		return blake256.New()
	}
	return nil
}

// Calculate the hash of hasher over buf.
func CalcHash(buf []byte, hasher Hasher) []byte {
	defer hasher.Reset()
	hasher.Write(buf)
	return hasher.Sum(nil)
}
