// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"fmt"
)

const (
	// ProtocolVersion is the latest protocol version this package supports.
	ProtocolVersion uint32 = 70015
)

// Network represents which bitcoin network a message belongs to.
type Network uint32

// Constants used to indicate the message of network.  They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main network.
	MainNet Network = 0xd9b4bef9

	// TestNet represents the test network (version 3).
	TestNet Network = 0x0709110b
)

// bnStrings is a map of networks back to their constant names for
// pretty printing.
var bnStrings = map[Network]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Network (%d)", uint32(n))
}

// ServiceFlag identifies services supported by a peer node.
type ServiceFlag uint64

const (
	// SFNodeNetwork is a flag used to indicate a peer is a full node.
	SFNodeNetwork ServiceFlag = 1 << iota
)

// IsKnown reports whether n is one of the networks above.
func (n Network) IsKnown() bool {
	_, ok := bnStrings[n]
	return ok
}
