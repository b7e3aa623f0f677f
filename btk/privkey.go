// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btk

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/Qitmeer/btk/crypto/privkey"
	"github.com/Qitmeer/btk/params"
	"github.com/pkg/errors"
)

// Compression overrides the compression flag of the decoded key.
type Compression int

const (
	KeepCompression Compression = iota
	Compress
	Uncompress
)

// PrivKeyOptions are the options of the privkey command.
type PrivKeyOptions struct {
	Input       privkey.Format
	Output      privkey.Format
	Compression Compression
	NoNewline   bool
	TestNet     bool

	// Rand is the entropy source for FormatNew; crypto/rand when nil.
	Rand io.Reader
}

// ErrZeroKey is returned for a key whose value is zero.
var ErrZeroKey = errors.New("invalid private key, key value cannot be zero")

// trimSpace removes trailing white space from typed key text.
func trimSpace(b []byte) string {
	return string(bytes.TrimRight(b, " \t\r\n\v\f"))
}

// decodeKey builds the key from input according to opts.Input.  The returned
// mode is the network of a WIF input, if any.
func decodeKey(input []byte, opts *PrivKeyOptions) (*privkey.PrivateKey, *params.NetworkMode, error) {
	var (
		k   *privkey.PrivateKey
		err error
	)
	switch opts.Input {
	case privkey.FormatNew:
		r := opts.Rand
		if r == nil {
			r = rand.Reader
		}
		k, err = privkey.NewRandomFrom(r)
	case privkey.FormatWIF:
		var mode params.NetworkMode
		k, mode, err = privkey.FromWIF(trimSpace(input))
		if err == nil {
			return k, &mode, nil
		}
	case privkey.FormatHex:
		k, err = privkey.FromHex(trimSpace(input))
	case privkey.FormatRaw:
		k, err = privkey.FromRaw(input)
	case privkey.FormatPassphrase:
		s := input
		if n := len(s); n > 0 && s[n-1] == '\n' {
			s = s[:n-1]
		}
		k, err = privkey.FromPassphrase(string(s))
	case privkey.FormatDecimal:
		k, err = privkey.FromDecimal(trimSpace(input))
	case privkey.FormatBlob:
		k, err = privkey.FromBlob(input)
	case privkey.FormatGuess:
		var d *privkey.Decoded
		d, err = privkey.Guess(input)
		if err == nil {
			k = d.Key
			if d.Format == privkey.FormatWIF {
				return k, &d.Net, nil
			}
		} else if errors.Cause(err) == privkey.ErrUnrecognizedFormat {
			err = errors.Wrap(err, "unable to determine input format automatically, use a command option to specify input format")
		}
	default:
		err = errors.Errorf("unsupported input format %s", opts.Input)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s input", opts.Input)
	}
	return k, nil, nil
}

// PrivKey decodes, and for FormatNew creates, a private key and returns it
// in the output format.
func PrivKey(input []byte, opts *PrivKeyOptions) ([]byte, error) {
	k, wifMode, err := decodeKey(input, opts)
	if err != nil {
		return nil, err
	}
	defer k.Zero()

	if k.IsZero() {
		return nil, ErrZeroKey
	}

	switch opts.Compression {
	case Compress:
		k.Compress()
	case Uncompress:
		k.Uncompress()
	}

	var out []byte
	switch opts.Output {
	case privkey.FormatWIF:
		mode := params.MainNet
		if wifMode != nil {
			mode = *wifMode
		} else if opts.TestNet {
			mode = params.TestNet
		}
		s, err := k.ToWIF(mode)
		if err != nil {
			return nil, err
		}
		out = []byte(s)
	case privkey.FormatHex:
		out = []byte(k.ToHex())
	case privkey.FormatRaw:
		out = k.ToRaw()
	case privkey.FormatDecimal:
		out = []byte(k.ToDecimal())
	default:
		return nil, errors.Errorf("unsupported output format %s", opts.Output)
	}
	if !opts.NoNewline {
		out = append(out, '\n')
	}
	return out, nil
}
