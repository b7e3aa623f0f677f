// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package privkey

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/Qitmeer/btk/common/encode/base58"
	"github.com/Qitmeer/btk/params"
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ones = bytes.Repeat([]byte{0x01}, KeyLen)

// pubKey serializes the secp256k1 public key of k per its compression flag.
func pubKey(k *PrivateKey) []byte {
	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), k.Scalar())
	if k.IsCompressed() {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}

var wifTests = []struct {
	wif        string
	mode       params.NetworkMode
	compressed bool
}{
	{"KwFfNUhSDaASSAwtG7ssQM1uVX8RgX5GHWnnLfhfiQDigjioWXHH", params.MainNet, true},
	{"5HpjE2Hs7vjU4SN3YyPQCdhzCu92WoEeuE6PWNuiPyTu3ESGnzn", params.MainNet, false},
	{"cMceqPhHedrhbcR9eXgzmfWy7kRqLyAxMYwFT6ABDWsiwUp9Nsq9", params.TestNet, true},
	{"91bMom7Qi9oc2VsLBKHK5EFwrZVjfxmrFAxLb1GDjiCwpGS6u85", params.TestNet, false},
}

func TestWIF(t *testing.T) {
	for i, test := range wifTests {
		k, mode, err := FromWIF(test.wif)
		require.NoError(t, err, "test #%d", i)
		assert.Equal(t, test.mode, mode, "test #%d", i)
		assert.Equal(t, test.compressed, k.IsCompressed(), "test #%d", i)
		assert.Equal(t, ones, k.Scalar(), "test #%d", i)

		s, err := k.ToWIF(test.mode)
		require.NoError(t, err)
		assert.Equal(t, test.wif, s, "test #%d", i)
	}
}

// btcutil is an independent implementation of the same encoding.
func TestWIFAgainstBtcutil(t *testing.T) {
	nets := map[params.NetworkMode]*chaincfg.Params{
		params.MainNet: &chaincfg.MainNetParams,
		params.TestNet: &chaincfg.TestNet3Params,
	}
	for i := 0; i < 16; i++ {
		k, err := NewRandom()
		require.NoError(t, err)
		if i%2 == 1 {
			k.Uncompress()
		}
		for mode, net := range nets {
			priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), k.Scalar())
			want, err := btcutil.NewWIF(priv, net, k.IsCompressed())
			require.NoError(t, err)

			got, err := k.ToWIF(mode)
			require.NoError(t, err)
			assert.Equal(t, want.String(), got)

			back, err := btcutil.DecodeWIF(got)
			require.NoError(t, err)
			assert.True(t, back.IsForNet(net))
			assert.Equal(t, k.IsCompressed(), back.CompressPubKey)
			assert.Equal(t, want.SerializePubKey(), pubKey(k))
		}
	}
}

func TestWIFErrors(t *testing.T) {
	enc := func(b ...[]byte) string {
		s, err := base58.CheckEncode(bytes.Join(b, nil))
		require.NoError(t, err)
		return s
	}
	tests := []struct {
		in  string
		err error
	}{
		{"KwFfNUhSDaASSAwtG7ssQM1uVX8RgX5GHWnnLfhfiQDigjioWXHJ", ErrInvalidChecksum},
		{"KwFfNUhSDaASSAwtG7ssQM1uVX8RgX5GHWnnLfhfiQDigjioWXH0", ErrInvalidCharacter},
		{"", ErrInvalidFormat},
		{enc([]byte{0x05}, ones), ErrInvalidFormat},
		{enc([]byte{0x80}, ones, []byte{0x02}), ErrInvalidFormat},
		{enc([]byte{0x80}, ones[:31]), ErrInvalidFormat},
		{enc([]byte{0x80}, make([]byte, KeyLen)), ErrOutOfRange},
	}
	for i, test := range tests {
		_, _, err := FromWIF(test.in)
		assert.True(t, errors.Cause(err) == test.err, "test #%d: %v", i, err)
	}

	k, err := FromRaw(ones)
	require.NoError(t, err)
	_, err = k.ToWIF(params.NetworkMode(9))
	assert.True(t, errors.Cause(err) == params.ErrUnknownNetwork, "%v", err)
}

func TestHex(t *testing.T) {
	h := strings.Repeat("ab", KeyLen)
	k, err := FromHex(h)
	require.NoError(t, err)
	assert.False(t, k.IsCompressed())
	assert.Equal(t, h, k.ToHex())

	k, err = FromHex(strings.ToUpper(h) + "01")
	require.NoError(t, err)
	assert.True(t, k.IsCompressed())
	assert.Equal(t, h+"01", k.ToHex())

	tests := []struct {
		in  string
		err error
	}{
		{h[:63], ErrInvalidFormat},
		{h + "0", ErrInvalidFormat},
		{h + "02", ErrInvalidFormat},
		{h + "00", ErrInvalidFormat},
		{"zz" + h[2:], ErrInvalidCharacter},
		{strings.Repeat("00", KeyLen), ErrOutOfRange},
		{"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", ErrOutOfRange},
	}
	for i, test := range tests {
		_, err := FromHex(test.in)
		assert.True(t, errors.Cause(err) == test.err, "test #%d: %v", i, err)
	}

	_, err = FromHex("0x" + h[2:])
	assert.Contains(t, err.Error(), "position 1")

	// N-1 is the largest valid scalar
	_, err = FromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	assert.NoError(t, err)
}

func TestRaw(t *testing.T) {
	k, err := FromRaw(ones)
	require.NoError(t, err)
	assert.False(t, k.IsCompressed())
	assert.Equal(t, ones, k.ToRaw())

	k, err = FromRaw(append(append([]byte(nil), ones...), 0x00))
	require.NoError(t, err)
	assert.False(t, k.IsCompressed())
	assert.Len(t, k.ToRaw(), KeyLen)

	k, err = FromRaw(append(append([]byte(nil), ones...), 0x01))
	require.NoError(t, err)
	assert.True(t, k.IsCompressed())
	assert.Equal(t, append(append([]byte(nil), ones...), 0x01), k.ToRaw())

	for _, b := range [][]byte{nil, ones[:31], append(append([]byte(nil), ones...), 0x02), make([]byte, 34)} {
		_, err = FromRaw(b)
		assert.True(t, errors.Cause(err) == ErrInvalidFormat, "%x: %v", b, err)
	}

	// the result does not alias the input
	in := append([]byte(nil), ones...)
	k, err = FromRaw(in)
	require.NoError(t, err)
	in[0] = 0xff
	assert.Equal(t, ones, k.Scalar())
}

func TestDecimal(t *testing.T) {
	k, err := FromDecimal("1")
	require.NoError(t, err)
	assert.True(t, k.IsCompressed())
	assert.Equal(t, strings.Repeat("00", 31)+"01"+"01", k.ToHex())
	assert.Equal(t, "1", k.ToDecimal())
	s, err := k.ToWIF(params.MainNet)
	require.NoError(t, err)
	assert.Equal(t, "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn", s)
	assert.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hex.EncodeToString(pubKey(k)))

	k.Uncompress()
	s, err = k.ToWIF(params.MainNet)
	require.NoError(t, err)
	assert.Equal(t, "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf", s)

	n := "115792089237316195423570985008687907852837564279074904382605163141518161494337"
	k, err = FromDecimal("115792089237316195423570985008687907852837564279074904382605163141518161494336")
	require.NoError(t, err)
	assert.Equal(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"+"01", k.ToHex())

	tests := []struct {
		in  string
		err error
	}{
		{"", ErrInvalidFormat},
		{"0", ErrOutOfRange},
		{"000", ErrOutOfRange},
		{n, ErrOutOfRange},
		{strings.Repeat("5", 80), ErrOutOfRange},
		{"12a", ErrInvalidCharacter},
		{"-1", ErrInvalidCharacter},
		{" 1", ErrInvalidCharacter},
	}
	for i, test := range tests {
		_, err := FromDecimal(test.in)
		assert.True(t, errors.Cause(err) == test.err, "test #%d: %v", i, err)
	}
}

func TestPassphraseAndBlob(t *testing.T) {
	const phrase = "correct horse battery staple"
	sum := sha256.Sum256([]byte(phrase))

	k, err := FromPassphrase(phrase)
	require.NoError(t, err)
	assert.True(t, k.IsCompressed())
	assert.Equal(t, sum[:], k.Scalar())

	b, err := FromBlob([]byte(phrase))
	require.NoError(t, err)
	assert.Equal(t, k, b)

	_, err = FromPassphrase("")
	assert.True(t, errors.Cause(err) == ErrInvalidFormat, "%v", err)
	_, err = FromBlob(nil)
	assert.True(t, errors.Cause(err) == ErrInvalidFormat, "%v", err)
}

func TestNewRandomFrom(t *testing.T) {
	n, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	var src bytes.Buffer
	src.Write(make([]byte, KeyLen)) // zero
	src.Write(n)                    // the order itself
	src.Write(bytes.Repeat([]byte{0xff}, KeyLen))
	src.Write(ones)

	k, err := NewRandomFrom(&src)
	require.NoError(t, err)
	assert.True(t, k.IsCompressed())
	assert.Equal(t, ones, k.Scalar())
	assert.Equal(t, 0, src.Len())

	_, err = NewRandomFrom(bytes.NewReader(ones[:10]))
	assert.Equal(t, io.ErrUnexpectedEOF, errors.Cause(err))

	k, err = NewRandom()
	require.NoError(t, err)
	assert.True(t, k.IsCompressed())
	assert.False(t, k.IsZero())
}

func TestFlags(t *testing.T) {
	k, err := FromRaw(ones)
	require.NoError(t, err)
	k.Compress()
	assert.True(t, k.IsCompressed())
	assert.Len(t, pubKey(k), 33)
	k.Uncompress()
	assert.False(t, k.IsCompressed())
	assert.Len(t, pubKey(k), 65)

	assert.False(t, k.IsZero())
	k.Zero()
	assert.True(t, k.IsZero())
}
