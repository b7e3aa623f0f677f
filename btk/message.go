// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btk

import (
	"fmt"
	"strings"

	"github.com/Qitmeer/btk/core/message"
	"github.com/Qitmeer/btk/core/types"
	"github.com/Qitmeer/btk/params"
)

// MessageEncode frames the base16 payload under command for the network
// mode and returns the message in base16.
func MessageEncode(mode params.NetworkMode, command string, payload string) (string, error) {
	p, err := params.ForMode(mode)
	if err != nil {
		return "", err
	}
	data, err := decodeHex(payload)
	if err != nil {
		return "", err
	}
	m, err := message.New(p.Net, command, data)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", m.Bytes()), nil
}

// MessageDecode parses a base16 message and describes its header and
// payload.
func MessageDecode(input string) (string, error) {
	data, err := decodeHex(input)
	if err != nil {
		return "", err
	}
	m, err := message.FromRaw(data)
	if err != nil {
		return "", err
	}
	return describeMessage(m), nil
}

func describeMessage(m *message.Message) string {
	name := m.Net.String()
	if p, err := params.ForNet(m.Net); err == nil {
		name = p.Name
	}
	var b strings.Builder
	fmt.Fprintf(&b, "network : %s (%08x)\n", name, uint32(m.Net))
	fmt.Fprintf(&b, "command : %s\n", m.CommandString())
	fmt.Fprintf(&b, "length  : %d\n", m.Length)
	fmt.Fprintf(&b, "checksum: %x\n", m.Checksum)
	fmt.Fprintf(&b, "payload : %x", m.Payload)
	if s := message.Summary(m); s != "" {
		fmt.Fprintf(&b, "\nsummary : %s", s)
	}
	return b.String()
}

// TxOutputDecode parses a base16 transaction output.
func TxOutputDecode(input string) (string, error) {
	data, err := decodeHex(input)
	if err != nil {
		return "", err
	}
	to, n, err := types.TxOutputFromRaw(data)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "amount  : %s (%d)\n", to.Amount, uint64(to.Amount))
	fmt.Fprintf(&b, "script  : %x\n", to.PkScript)
	fmt.Fprintf(&b, "size    : %d", n)
	if rest := len(data) - n; rest > 0 {
		fmt.Fprintf(&b, "\nremains : %d bytes", rest)
	}
	return b.String(), nil
}
