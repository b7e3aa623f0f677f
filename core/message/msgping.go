// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"io"

	s "github.com/Qitmeer/btk/core/serialization"
)

// MsgPing implements the Payload interface and represents a ping message.
//
// The payload for this message just consists of a nonce used for identifying
// it later.
type MsgPing struct {
	// Unique value associated with message that is used to identify
	// specific ping message.
	Nonce uint64
}

// Decode decodes r using the protocol encoding into the receiver.
// This is part of the Payload interface implementation.
func (msg *MsgPing) Decode(r io.Reader) error {
	return s.ReadElements(r, &msg.Nonce)
}

// Encode encodes the receiver to w using the protocol encoding.
// This is part of the Payload interface implementation.
func (msg *MsgPing) Encode(w io.Writer) error {
	return s.WriteElements(w, msg.Nonce)
}

// Command returns the protocol command string for the message.  This is part
// of the Payload interface implementation.
func (msg *MsgPing) Command() string {
	return CmdPing
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Payload interface implementation.
func (msg *MsgPing) MaxPayloadLength() uint32 {
	// Nonce 8 bytes.
	return 8
}

// NewMsgPing returns a new ping message that conforms to the Payload
// interface.  See MsgPing for details.
func NewMsgPing(nonce uint64) *MsgPing {
	return &MsgPing{
		Nonce: nonce,
	}
}

// MsgPong implements the Payload interface and represents a pong message
// which is used primarily to confirm that a connection is still valid in
// response to a ping message (MsgPing).
type MsgPong struct {
	// Unique value associated with message that is used to identify
	// specific ping message.
	Nonce uint64
}

// Decode decodes r using the protocol encoding into the receiver.
func (msg *MsgPong) Decode(r io.Reader) error {
	return s.ReadElements(r, &msg.Nonce)
}

// Encode encodes the receiver to w using the protocol encoding.
func (msg *MsgPong) Encode(w io.Writer) error {
	return s.WriteElements(w, msg.Nonce)
}

// Command returns the protocol command string for the message.
func (msg *MsgPong) Command() string {
	return CmdPong
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.
func (msg *MsgPong) MaxPayloadLength() uint32 {
	return 8
}

// NewMsgPong returns a new pong message answering the ping with nonce.
func NewMsgPong(nonce uint64) *MsgPong {
	return &MsgPong{
		Nonce: nonce,
	}
}
