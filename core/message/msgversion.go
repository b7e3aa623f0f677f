// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"bytes"
	"io"
	"net"
	"strings"
	"time"

	"github.com/Qitmeer/btk/core/protocol"
	s "github.com/Qitmeer/btk/core/serialization"
	"github.com/Qitmeer/btk/core/types"
	"github.com/pkg/errors"
)

// MaxUserAgentLen bounds the user agent of a version message.
const MaxUserAgentLen = 256

// DefaultUserAgent is the user agent btk announces.
const DefaultUserAgent = "/btk:0.1.0/"

// MsgVersion is the first message sent on an outbound connection.  The peer
// answers with its own version followed by a verack.
type MsgVersion struct {
	ProtocolVersion int32
	Services        protocol.ServiceFlag

	// Timestamp travels as unix seconds.
	Timestamp time.Time

	AddrYou types.NetAddress
	AddrMe  types.NetAddress

	// Nonce lets a node detect a connection to itself.
	Nonce uint64

	// UserAgent is a var string of at most MaxUserAgentLen bytes.
	UserAgent string

	LastBlock int32

	// DisableRelayTx is the inverse of the relay flag on the wire.
	DisableRelayTx bool
}

// Decode reads a version payload.  Everything after the remote address is
// optional for old peers, so r must be a *bytes.Buffer to tell how much is
// left.
func (msg *MsgVersion) Decode(r io.Reader) error {
	buf, ok := r.(*bytes.Buffer)
	if !ok {
		return errors.New("MsgVersion.Decode needs a *bytes.Buffer")
	}

	var services uint64
	var timestamp int64
	if err := s.ReadElements(buf, &msg.ProtocolVersion, &services, &timestamp); err != nil {
		return err
	}
	msg.Services = protocol.ServiceFlag(services)
	msg.Timestamp = time.Unix(timestamp, 0)
	if err := types.ReadNetAddress(buf, &msg.AddrYou); err != nil {
		return err
	}

	relayTx := true
	optional := []func() error{
		func() error { return types.ReadNetAddress(buf, &msg.AddrMe) },
		func() error { return s.ReadElements(buf, &msg.Nonce) },
		func() (err error) {
			msg.UserAgent, err = s.ReadVarString(buf, MaxUserAgentLen)
			return err
		},
		func() error { return s.ReadElements(buf, &msg.LastBlock) },
		func() error { return s.ReadElements(buf, &relayTx) },
	}
	for _, read := range optional {
		if buf.Len() == 0 {
			break
		}
		if err := read(); err != nil {
			return err
		}
	}
	msg.DisableRelayTx = !relayTx
	return nil
}

// Encode writes every field, including the optional ones.
func (msg *MsgVersion) Encode(w io.Writer) error {
	if err := validateUserAgent(msg.UserAgent); err != nil {
		return err
	}
	err := s.WriteElements(w, msg.ProtocolVersion, uint64(msg.Services), msg.Timestamp.Unix())
	if err != nil {
		return err
	}
	if err := types.WriteNetAddress(w, &msg.AddrYou); err != nil {
		return err
	}
	if err := types.WriteNetAddress(w, &msg.AddrMe); err != nil {
		return err
	}
	if err := s.WriteElements(w, msg.Nonce); err != nil {
		return err
	}
	if err := s.WriteVarString(w, msg.UserAgent); err != nil {
		return err
	}
	return s.WriteElements(w, msg.LastBlock, !msg.DisableRelayTx)
}

func (msg *MsgVersion) Command() string {
	return CmdVersion
}

// MaxPayloadLength is the size of every fixed field (33 bytes), two
// addresses and the longest user agent with its length prefix.
func (msg *MsgVersion) MaxPayloadLength() uint32 {
	return 33 + types.NetAddressPayload*2 + s.MaxVarIntPayload + MaxUserAgentLen
}

// NewMsgVersion builds a version message from me to you stamped with the
// current time, truncated to seconds.
func NewMsgVersion(me, you *types.NetAddress, nonce uint64, lastBlock int32) *MsgVersion {
	return &MsgVersion{
		ProtocolVersion: int32(protocol.ProtocolVersion),
		Timestamp:       time.Unix(time.Now().Unix(), 0),
		AddrYou:         *you,
		AddrMe:          *me,
		Nonce:           nonce,
		UserAgent:       DefaultUserAgent,
		LastBlock:       lastBlock,
	}
}

// NewMsgVersionFromConn takes both addresses from conn and announces no
// services.
func NewMsgVersionFromConn(conn net.Conn, nonce uint64, lastBlock int32) (*MsgVersion, error) {
	me, err := types.NewNetAddress(conn.LocalAddr(), 0)
	if err != nil {
		return nil, err
	}
	you, err := types.NewNetAddress(conn.RemoteAddr(), 0)
	if err != nil {
		return nil, err
	}
	return NewMsgVersion(me, you, nonce, lastBlock), nil
}

func validateUserAgent(userAgent string) error {
	if len(userAgent) > MaxUserAgentLen {
		return errors.Errorf("user agent is %d bytes, max %d", len(userAgent), MaxUserAgentLen)
	}
	return nil
}

// AddUserAgent appends "name:version(comments)/" to the user agent.
func (msg *MsgVersion) AddUserAgent(name, version string, comments ...string) error {
	agent := name + ":" + version
	if len(comments) != 0 {
		agent += "(" + strings.Join(comments, "; ") + ")"
	}
	agent = msg.UserAgent + agent + "/"
	if err := validateUserAgent(agent); err != nil {
		return err
	}
	msg.UserAgent = agent
	return nil
}
