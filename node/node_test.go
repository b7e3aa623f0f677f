// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/Qitmeer/btk/core/message"
	"github.com/Qitmeer/btk/core/protocol"
	"github.com/Qitmeer/btk/metrics"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listen starts a loopback peer that runs serve on the first connection.
func listen(t *testing.T, serve func(net.Conn)) (string, int, net.Listener) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		serve(conn)
	}()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return host, p, ln
}

// echo answers every ping with a pong carrying the same nonce.
func echo(conn net.Conn) {
	for {
		m, err := message.Decode(conn)
		if err != nil {
			return
		}
		p, err := m.DecodePayload()
		if err != nil {
			return
		}
		ping, ok := p.(*message.MsgPing)
		if !ok {
			continue
		}
		reply, _ := message.NewFromPayload(m.Net, message.NewMsgPong(ping.Nonce))
		if reply.Encode(conn) != nil {
			return
		}
	}
}

func TestSendReceive(t *testing.T) {
	host, port, ln := listen(t, echo)
	defer ln.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := Connect(ctx, host, port)
	require.NoError(t, err)
	defer n.Disconnect()
	assert.Equal(t, net.JoinHostPort(host, strconv.Itoa(port)), n.Addr())

	for i := uint64(1); i <= 3; i++ {
		ping, err := message.NewFromPayload(protocol.MainNet, message.NewMsgPing(i))
		require.NoError(t, err)
		require.NoError(t, n.Send(ctx, ping))

		m, err := n.Receive(ctx)
		require.NoError(t, err)
		assert.Equal(t, message.CmdPong, m.CommandString())
		p, err := m.DecodePayload()
		require.NoError(t, err)
		assert.Equal(t, &message.MsgPong{Nonce: i}, p)
	}
}

func TestReceiveDeadline(t *testing.T) {
	// a peer that never answers
	host, port, ln := listen(t, func(conn net.Conn) {
		time.Sleep(2 * time.Second)
	})
	defer ln.Close()

	n, err := Connect(context.Background(), host, port)
	require.NoError(t, err)
	defer n.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err = n.Receive(ctx)
	require.Error(t, err)
	assert.Equal(t, context.DeadlineExceeded, errors.Cause(err))
	assert.True(t, time.Since(start) < time.Second)
}

func TestReceiveCancel(t *testing.T) {
	host, port, ln := listen(t, func(conn net.Conn) {
		time.Sleep(2 * time.Second)
	})
	defer ln.Close()

	n, err := Connect(context.Background(), host, port)
	require.NoError(t, err)
	defer n.Disconnect()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()
	_, err = n.Receive(ctx)
	assert.Equal(t, context.Canceled, errors.Cause(err))
}

func TestReceiveBadChecksum(t *testing.T) {
	host, port, ln := listen(t, func(conn net.Conn) {
		m, _ := message.NewFromPayload(protocol.MainNet, message.NewMsgPing(9))
		b := m.Bytes()
		b[len(b)-1] ^= 0xff
		conn.Write(b)
	})
	defer ln.Close()

	n, err := Connect(context.Background(), host, port)
	require.NoError(t, err)
	defer n.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = n.Receive(ctx)
	assert.Equal(t, message.ErrChecksumMismatch, errors.Cause(err))
}

func TestDisconnectIdempotent(t *testing.T) {
	host, port, ln := listen(t, echo)
	defer ln.Close()
	n, err := Connect(context.Background(), host, port)
	require.NoError(t, err)

	assert.NoError(t, n.Disconnect())
	assert.NoError(t, n.Disconnect())

	ping, _ := message.NewFromPayload(protocol.MainNet, message.NewMsgPing(1))
	assert.Equal(t, ErrDisconnected, n.Send(context.Background(), ping))
	_, err = n.Receive(context.Background())
	assert.Equal(t, ErrDisconnected, err)
}

func TestConnectRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	ln.Close()
	p, _ := strconv.Atoi(port)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = Connect(ctx, "127.0.0.1", p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to 127.0.0.1:"+port)
}

// socks5 runs a no-auth SOCKS5 proxy that accepts one IPv4 CONNECT and
// relays it.
func socks5(t *testing.T) (string, net.Listener) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		defer c.Close()

		// greeting: version, method count, methods
		buf := make([]byte, 262)
		if _, err := io.ReadFull(c, buf[:2]); err != nil {
			return
		}
		if _, err := io.ReadFull(c, buf[:buf[1]]); err != nil {
			return
		}
		c.Write([]byte{0x05, 0x00})

		// request: version, cmd, reserved, ipv4 type, address, port
		if _, err := io.ReadFull(c, buf[:10]); err != nil || buf[3] != 0x01 {
			return
		}
		target := net.JoinHostPort(net.IP(buf[4:8]).String(),
			strconv.Itoa(int(buf[8])<<8|int(buf[9])))
		up, err := net.Dial("tcp", target)
		if err != nil {
			c.Write([]byte{0x05, 0x05, 0x00, 0x01, 0, 0, 0, 0, 0, 0})
			return
		}
		defer up.Close()
		c.Write([]byte{0x05, 0x00, 0x00, 0x01, 0, 0, 0, 0, 0, 0})

		go io.Copy(up, c)
		io.Copy(c, up)
	}()
	return ln.Addr().String(), ln
}

func TestConnectProxy(t *testing.T) {
	metrics.SetEnabled(true)
	defer metrics.SetEnabled(false)

	host, port, ln := listen(t, echo)
	defer ln.Close()
	proxyAddr, pln := socks5(t)
	defer pln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	n, err := ConnectProxy(ctx, proxyAddr, host, port)
	require.NoError(t, err)
	defer n.Disconnect()

	sent := metrics.Count("node/messages/sent")
	received := metrics.Count("node/messages/received")

	ping, err := message.NewFromPayload(protocol.MainNet, message.NewMsgPing(42))
	require.NoError(t, err)
	require.NoError(t, n.Send(ctx, ping))
	m, err := n.Receive(ctx)
	require.NoError(t, err)
	p, err := m.DecodePayload()
	require.NoError(t, err)
	assert.Equal(t, &message.MsgPong{Nonce: 42}, p)

	assert.Equal(t, sent+1, metrics.Count("node/messages/sent"))
	assert.Equal(t, received+1, metrics.Count("node/messages/received"))
	assert.True(t, metrics.Count("node/bytes/received") >= int64(m.SerializeSize()))
}

func TestConnectProxyRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	_, err = ConnectProxy(context.Background(), addr, "127.0.0.1", 8333)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "via "+addr)
}
