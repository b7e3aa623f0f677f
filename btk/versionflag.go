// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btk

import (
	"encoding/hex"

	"github.com/Qitmeer/btk/params"
)

// Base58checkVersionFlag is the version prefix of base58check-encode.  It
// accepts a network name, which selects that network's WIF prefix, or the
// prefix in base16.
type Base58checkVersionFlag struct {
	Ver  []byte
	flag string
}

// Set implements flag.Value.
func (n *Base58checkVersionFlag) Set(s string) error {
	n.Ver = []byte{}
	if p, err := params.ParseNetwork(s); err == nil {
		n.Ver = append(n.Ver, p.PrivateKeyID)
	} else {
		v, err := hex.DecodeString(s)
		if err != nil {
			return err
		}
		n.Ver = append(n.Ver, v...)
	}
	n.flag = s
	return nil
}

func (n *Base58checkVersionFlag) String() string {
	return n.flag
}

// UnmarshalFlag implements flags.Unmarshaler.
func (n *Base58checkVersionFlag) UnmarshalFlag(value string) error {
	return n.Set(value)
}

// MarshalFlag implements flags.Marshaler.
func (n *Base58checkVersionFlag) MarshalFlag() (string, error) {
	return n.flag, nil
}
