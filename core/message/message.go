// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"bytes"
	"io"
	"strings"

	"github.com/Qitmeer/btk/common/hash"
	"github.com/Qitmeer/btk/core/protocol"
	s "github.com/Qitmeer/btk/core/serialization"
	"github.com/pkg/errors"
)

const (
	// CommandSize is the fixed size of all commands in the common bitcoin message
	// header.  Shorter commands must be zero padded.
	CommandSize = 12

	// MessageHeaderSize is the number of bytes in a bitcoin message header.
	// network (magic) 4 bytes + command 12 bytes + payload length 4 bytes +
	// checksum 4 bytes.
	MessageHeaderSize = 24

	// MaxPayloadLength is the maximum bytes a message can be regardless of other
	// individual limits imposed by messages themselves.
	MaxPayloadLength = 1024 * 1024 * 32 // 32MB
)

// Commands used in bitcoin message headers which describe the type of message.
const (
	CmdVersion = "version"
	CmdVerAck  = "verack"
	CmdPing    = "ping"
	CmdPong    = "pong"
)

var (
	// ErrCommandTooLong is returned for commands longer than CommandSize.
	ErrCommandTooLong = errors.New("command too long")

	// ErrPayloadTooLarge is returned for payloads above MaxPayloadLength or
	// above the limit of their message type.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrChecksumMismatch is returned when the header checksum does not
	// match the payload.
	ErrChecksumMismatch = errors.New("payload checksum failed")

	// ErrUnknownNetwork is returned when the header magic is not one of
	// the known networks.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrUnknownCommand is returned by DecodePayload for commands this
	// package has no payload type for.
	ErrUnknownCommand = errors.New("unknown command")
)

// emptyChecksum is the first four bytes of the double sha256 of nothing.
var emptyChecksum = [4]byte{0x5d, 0xf6, 0xe0, 0xe2}

// Payload is an interface that describes the body of a bitcoin message.
type Payload interface {
	Decode(io.Reader) error
	Encode(io.Writer) error
	Command() string
	MaxPayloadLength() uint32
}

// Message is a framed bitcoin wire message: the 24 byte header followed by
// the payload it describes.
type Message struct {
	Net      protocol.Network
	Command  [CommandSize]byte
	Length   uint32
	Checksum [4]byte
	Payload  []byte
}

func checksum(payload []byte) [4]byte {
	if len(payload) == 0 {
		return emptyChecksum
	}
	var c [4]byte
	copy(c[:], hash.Checksum(payload))
	return c
}

// New frames payload under command for the network net.
func New(net protocol.Network, command string, payload []byte) (*Message, error) {
	if len(command) > CommandSize {
		return nil, errors.Wrapf(ErrCommandTooLong, "%q is %d bytes, max %d", command, len(command), CommandSize)
	}
	if len(payload) > MaxPayloadLength {
		return nil, errors.Wrapf(ErrPayloadTooLarge, "%d bytes, max %d", len(payload), MaxPayloadLength)
	}
	m := &Message{
		Net:      net,
		Length:   uint32(len(payload)),
		Checksum: checksum(payload),
		Payload:  payload,
	}
	copy(m.Command[:], command)
	return m, nil
}

// NewFromPayload encodes p and frames it under its own command.
func NewFromPayload(net protocol.Network, p Payload) (*Message, error) {
	var bw bytes.Buffer
	if err := p.Encode(&bw); err != nil {
		return nil, err
	}
	if uint32(bw.Len()) > p.MaxPayloadLength() {
		return nil, errors.Wrapf(ErrPayloadTooLarge, "%s payload is %d bytes, max %d",
			p.Command(), bw.Len(), p.MaxPayloadLength())
	}
	return New(net, p.Command(), bw.Bytes())
}

// CommandString returns the command with its zero padding removed.
func (m *Message) CommandString() string {
	return strings.TrimRight(string(m.Command[:]), "\x00")
}

// SerializeSize returns the number of bytes Encode writes.
func (m *Message) SerializeSize() int {
	return MessageHeaderSize + len(m.Payload)
}

// Encode writes the header and payload to w.
func (m *Message) Encode(w io.Writer) error {
	err := s.WriteElements(w, m.Net, m.Command, m.Length, m.Checksum)
	if err != nil {
		return err
	}
	_, err = w.Write(m.Payload)
	return err
}

// Bytes returns the wire form of the message.
func (m *Message) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, m.SerializeSize()))
	// Writes to a bytes.Buffer never fail.
	_ = m.Encode(buf)
	return buf.Bytes()
}

// Decode reads one message from r, verifying the magic, the length bound and
// the payload checksum.
func Decode(r io.Reader) (*Message, error) {
	var m Message
	err := s.ReadElements(r, &m.Net, &m.Command, &m.Length, &m.Checksum)
	if err != nil {
		return nil, err
	}

	if !m.Net.IsKnown() {
		return nil, errors.Wrapf(ErrUnknownNetwork, "magic %08x", uint32(m.Net))
	}

	// Enforce maximum message payload before reading it.
	if m.Length > MaxPayloadLength {
		return nil, errors.Wrapf(ErrPayloadTooLarge, "header announces %d bytes, max %d", m.Length, MaxPayloadLength)
	}

	if m.Length > 0 {
		m.Payload = make([]byte, m.Length)
		if _, err := io.ReadFull(r, m.Payload); err != nil {
			return nil, err
		}
	}

	if want := checksum(m.Payload); want != m.Checksum {
		return nil, errors.Wrapf(ErrChecksumMismatch, "header %x, payload %x", m.Checksum, want)
	}
	return &m, nil
}

// FromRaw decodes a message from the front of raw.  Bytes after the payload
// are ignored.
func FromRaw(raw []byte) (*Message, error) {
	m, err := Decode(bytes.NewReader(raw))
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return m, err
}

// makeEmptyPayload creates a payload of the appropriate concrete type based
// on the command.
func makeEmptyPayload(command string) (Payload, error) {
	switch command {
	case CmdVersion:
		return &MsgVersion{}, nil
	case CmdVerAck:
		return &MsgVerAck{}, nil
	case CmdPing:
		return &MsgPing{}, nil
	case CmdPong:
		return &MsgPong{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownCommand, "%q", command)
}

// DecodePayload parses the payload according to the message command.
func (m *Message) DecodePayload() (Payload, error) {
	p, err := makeEmptyPayload(m.CommandString())
	if err != nil {
		return nil, err
	}
	if uint32(len(m.Payload)) > p.MaxPayloadLength() {
		return nil, errors.Wrapf(ErrPayloadTooLarge, "%s payload is %d bytes, max %d",
			p.Command(), len(m.Payload), p.MaxPayloadLength())
	}
	if err := p.Decode(bytes.NewBuffer(m.Payload)); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", p.Command())
	}
	return p, nil
}
