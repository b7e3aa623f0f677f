// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btk

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Qitmeer/btk/core/message"
	"github.com/Qitmeer/btk/node"
	"github.com/Qitmeer/btk/params"
)

// NodeSendOptions are the options of the node-send command.
type NodeSendOptions struct {
	Host    string
	Port    int

	// Proxy is the address of a SOCKS5 proxy to reach the node through.
	Proxy string
	Mode    params.NetworkMode
	Command string
	Payload string

	// Replies is the number of messages to read back after sending.
	Replies int
}

// NodeSend connects to a peer, sends one message and describes the replies.
// A version command without payload sends a version message built from the
// connection addresses.
func NodeSend(ctx context.Context, opts *NodeSendOptions) (string, error) {
	p, err := params.ForMode(opts.Mode)
	if err != nil {
		return "", err
	}
	port := opts.Port
	if port == 0 {
		port = p.DefaultPort
	}

	var n *node.Node
	if opts.Proxy != "" {
		n, err = node.ConnectProxy(ctx, opts.Proxy, opts.Host, port)
	} else {
		n, err = node.Connect(ctx, opts.Host, port)
	}
	if err != nil {
		return "", err
	}
	defer n.Disconnect()

	var m *message.Message
	if opts.Command == message.CmdVersion && strings.TrimSpace(opts.Payload) == "" {
		v, err := message.NewMsgVersionFromConn(n.Conn(), rand.Uint64(), 0)
		if err != nil {
			return "", err
		}
		m, err = message.NewFromPayload(p.Net, v)
		if err != nil {
			return "", err
		}
	} else {
		data, err := decodeHex(opts.Payload)
		if err != nil {
			return "", err
		}
		m, err = message.New(p.Net, opts.Command, data)
		if err != nil {
			return "", err
		}
	}

	if err := n.Send(ctx, m); err != nil {
		return "", err
	}

	replies := make([]string, 0, opts.Replies)
	for i := 0; i < opts.Replies; i++ {
		r, err := n.Receive(ctx)
		if err != nil {
			return strings.Join(replies, "\n\n"), err
		}
		replies = append(replies, describeMessage(r))
	}
	if len(replies) == 0 {
		return fmt.Sprintf("sent %s to %s", m.CommandString(), n.Addr()), nil
	}
	return strings.Join(replies, "\n\n"), nil
}
