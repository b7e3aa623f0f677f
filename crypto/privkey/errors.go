// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package privkey

import (
	"github.com/Qitmeer/btk/common/encode/base58"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCharacter is returned for a character outside the alphabet
	// of the input format.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidFormat is returned for input of the wrong length, an
	// unknown WIF prefix or a bad compression byte.
	ErrInvalidFormat = errors.New("invalid private key format")

	// ErrInvalidChecksum is returned when a WIF checksum does not verify.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrOutOfRange is returned for a scalar of zero or not below the
	// secp256k1 group order.
	ErrOutOfRange = errors.New("private key out of range")

	// ErrUnrecognizedFormat is returned by Guess when no format matches.
	ErrUnrecognizedFormat = errors.New("unrecognized private key format")
)

// base58Error maps a base58 decoding failure onto the errors of this
// package, keeping the original message as context.
func base58Error(err error) error {
	switch errors.Cause(err) {
	case base58.ErrInvalidCharacter:
		return errors.Wrap(ErrInvalidCharacter, err.Error())
	case base58.ErrChecksum:
		return ErrInvalidChecksum
	case base58.ErrInvalidFormat, base58.ErrInputTooLarge:
		return errors.Wrap(ErrInvalidFormat, err.Error())
	}
	return err
}
