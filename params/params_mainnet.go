// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"github.com/Qitmeer/btk/core/protocol"
)

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:        "mainnet",
	Mode:        MainNet,
	Net:         protocol.MainNet,
	DefaultPort: 8333,

	// WIF keys start with 5 (uncompressed) or K/L (compressed)
	PrivateKeyID: 0x80,
}
