// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package btk holds the command handlers of the btk tool.  Each handler
// takes already parsed options and returns the text to print.
package btk

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrExit prints err in the tool's error format and exits with status 1.
func ErrExit(err error) {
	PrintErr(os.Stderr, err)
	os.Exit(1)
}

// PrintErr writes err the way ErrExit reports it.
func PrintErr(w io.Writer, err error) {
	fmt.Fprintf(w, "btk error : %q\n", err)
}

// decodeHex decodes a base16 argument, ignoring surrounding white space.
func decodeHex(input string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return nil, errors.Wrap(err, "invalid base16 input")
	}
	return data, nil
}
