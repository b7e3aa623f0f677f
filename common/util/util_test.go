// Copyright 2017-2018 The qitmeer developers

package util

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadding(t *testing.T) {
	out := PaddedBytes(32, new(big.Int).SetBytes([]byte{0, 1, 2, 3}))
	assert.Len(t, out, 32)
	assert.Equal(t, []byte{1, 2, 3}, out[29:])

	out = PaddedAppend(16, []byte{1}, []byte{0, 1, 2, 3})
	assert.Len(t, out, 17)

	// wider values are returned unpadded
	wide := new(big.Int).Lsh(big.NewInt(1), 264)
	assert.Len(t, PaddedBytes(32, wide), 34)
}

func TestCopyReverse(t *testing.T) {
	b := []byte{1, 2, 3}
	c := CopyBytes(b)
	ReverseBytes(c)
	assert.Equal(t, []byte{3, 2, 1}, c)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.Nil(t, CopyBytes(nil))
}

func TestCleanAndExpandPath(t *testing.T) {
	assert.Equal(t, "", CleanAndExpandPath(""))
	os.Setenv("BTK_UTIL_TEST", "/tmp/btk")
	assert.Equal(t, filepath.Clean("/tmp/btk/logs"), CleanAndExpandPath("$BTK_UTIL_TEST/./logs/"))
	assert.NotContains(t, CleanAndExpandPath("~/logs"), "~")
}
