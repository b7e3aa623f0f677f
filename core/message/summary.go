// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"fmt"
	"strings"
)

// Summary returns a human-readable string which summarizes a message.
// Not all messages have or need a summary.  This is used for debug logging.
func Summary(m *Message) string {
	p, err := m.DecodePayload()
	if err != nil {
		return fmt.Sprintf("cmd %s, %d bytes", sanitizeString(m.CommandString(), CommandSize), m.Length)
	}
	switch msg := p.(type) {
	case *MsgVersion:
		return fmt.Sprintf("agent %s, pver %d, block %d",
			sanitizeString(msg.UserAgent, MaxUserAgentLen), msg.ProtocolVersion, msg.LastBlock)
	case *MsgVerAck:
		// No summary.
	case *MsgPing:
		return fmt.Sprintf("nonce %d", msg.Nonce)
	case *MsgPong:
		return fmt.Sprintf("nonce %d", msg.Nonce)
	}

	// No summary for other messages.
	return ""
}

// sanitizeString strips any characters which are even remotely dangerous, such
// as html control characters, from the passed string.  It also limits it to
// the passed maximum size, which can be 0 for unlimited.  When the string is
// limited, it will also add "..." to the string to indicate it was truncated.
func sanitizeString(str string, maxLength uint) string {
	const safeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXY" +
		"Z01234567890 .,;_/:?@"

	// Strip any characters not in the safeChars string removed.
	str = strings.Map(func(r rune) rune {
		if strings.ContainsRune(safeChars, r) {
			return r
		}
		return -1
	}, str)

	// Limit the string to the max allowed length.
	if maxLength > 0 && uint(len(str)) > maxLength {
		str = str[:maxLength]
		str = str + "..."
	}
	return str
}
