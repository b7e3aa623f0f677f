// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"github.com/Qitmeer/btk/core/protocol"
)

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:        "testnet",
	Mode:        TestNet,
	Net:         protocol.TestNet,
	DefaultPort: 18333,

	// WIF keys start with 9 (uncompressed) or c (compressed)
	PrivateKeyID: 0xef,
}
