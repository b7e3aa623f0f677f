// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serialization

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/Qitmeer/btk/core/protocol"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVarIntWire tests the wire encoding and decoding for variable length
// integers at every discriminant boundary.
func TestVarIntWire(t *testing.T) {
	tests := []struct {
		in   uint64
		wire string
		size int
	}{
		{0, "00", 1},
		{0xfc, "fc", 1},
		{0xfd, "fdfd00", 3},
		{0xffff, "fdffff", 3},
		{0x10000, "fe00000100", 5},
		{0xffffffff, "feffffffff", 5},
		{0x100000000, "ff0000000001000000", 9},
		{0xffffffffffffffff, "ffffffffffffffffff", 9},
	}

	for i, test := range tests {
		var buf bytes.Buffer
		require.NoError(t, WriteVarInt(&buf, test.in), "test #%d", i)
		assert.Equal(t, test.wire, hex.EncodeToString(buf.Bytes()), "test #%d", i)
		assert.Equal(t, test.size, VarIntSerializeSize(test.in), "test #%d", i)

		val, err := ReadVarInt(&buf)
		require.NoError(t, err, "test #%d", i)
		assert.Equal(t, test.in, val, "test #%d", i)
	}
}

// TestVarIntNonCanonical ensures variable length integers that are not encoded
// canonically return the expected error.
func TestVarIntNonCanonical(t *testing.T) {
	tests := []string{
		"fd0000",
		"fdfc00",
		"fe00000000",
		"feffff0000",
		"ff0000000000000000",
		"ffffffffff00000000",
	}
	for _, test := range tests {
		b, _ := hex.DecodeString(test)
		_, err := ReadVarInt(bytes.NewReader(b))
		assert.True(t, errors.Cause(err) == ErrNonCanonicalVarInt, "%s: %v", test, err)
	}
}

func TestVarIntShortRead(t *testing.T) {
	_, err := ReadVarInt(bytes.NewReader(nil))
	assert.Equal(t, io.EOF, err)
	_, err = ReadVarInt(bytes.NewReader([]byte{0xfe, 0x01}))
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestElements(t *testing.T) {
	var (
		cmd   = [12]byte{'p', 'i', 'n', 'g'}
		cksum = [4]byte{0x5d, 0xf6, 0xe0, 0xe2}
		buf   bytes.Buffer
	)
	err := WriteElements(&buf, protocol.MainNet, cmd, uint32(7), cksum,
		uint8(1), uint16(0x0102), int32(-1), int64(-2), uint64(3), true)
	require.NoError(t, err)
	assert.Equal(t, "f9beb4d9"+"70696e670000000000000000"+"07000000"+"5df6e0e2", hex.EncodeToString(buf.Bytes()[:24]))

	var (
		net  protocol.Network
		gcmd [12]byte
		l    uint32
		gck  [4]byte
		u8   uint8
		u16  uint16
		i32  int32
		i64  int64
		u64  uint64
		b    bool
	)
	err = ReadElements(&buf, &net, &gcmd, &l, &gck, &u8, &u16, &i32, &i64, &u64, &b)
	require.NoError(t, err)
	assert.Equal(t, protocol.MainNet, net)
	assert.Equal(t, cmd, gcmd)
	assert.Equal(t, uint32(7), l)
	assert.Equal(t, cksum, gck)
	assert.Equal(t, uint8(1), u8)
	assert.Equal(t, uint16(0x0102), u16)
	assert.Equal(t, int32(-1), i32)
	assert.Equal(t, int64(-2), i64)
	assert.Equal(t, uint64(3), u64)
	assert.True(t, b)
	assert.Equal(t, 0, buf.Len())
}

func TestUint32BE(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUint32BE(&buf, 0x5df6e0e2))
	assert.Equal(t, []byte{0x5d, 0xf6, 0xe0, 0xe2}, buf.Bytes())
	v, err := ReadUint32BE(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x5df6e0e2), v)
}

func TestFreeListConcurrent(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(v uint64) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				var buf bytes.Buffer
				if err := WriteVarInt(&buf, v); err != nil {
					t.Error(err)
					return
				}
				got, err := ReadVarInt(&buf)
				if err != nil || got != v {
					t.Errorf("got %d, %v want %d", got, err, v)
					return
				}
			}
		}(uint64(i) << 30)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestVarString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVarString(&buf, "/btk:0.1.0/"))
	assert.Equal(t, byte(11), buf.Bytes()[0])

	str, err := ReadVarString(bytes.NewReader(buf.Bytes()), 256)
	require.NoError(t, err)
	assert.Equal(t, "/btk:0.1.0/", str)

	_, err = ReadVarString(bytes.NewReader(buf.Bytes()), 4)
	assert.True(t, errors.Cause(err) == ErrVarBytesTooLong, "%v", err)

	_, err = ReadVarBytes(bytes.NewReader([]byte{0x03, 0x01}), 8, "script")
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}
