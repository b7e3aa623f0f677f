// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node is a minimal bitcoin peer client: it dials a node, writes
// framed messages and reads them back.  It keeps no protocol state.
package node

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/Qitmeer/btk/core/message"
	l "github.com/Qitmeer/btk/log"
	"github.com/Qitmeer/btk/metrics"
	"github.com/pkg/errors"
	"golang.org/x/net/proxy"
)

// ErrDisconnected is returned by Send and Receive after Disconnect.
var ErrDisconnected = errors.New("node disconnected")

// aLongTimeAgo is a deadline in the past, used to abort blocked I/O.
var aLongTimeAgo = time.Unix(1, 0)

// Node is a TCP connection to a peer.  It is meant to be used from a single
// goroutine; Disconnect may be called from any goroutine.
type Node struct {
	conn net.Conn
	addr string

	closeOnce sync.Once
	closeErr  error
	closed    chan struct{}
}

// Connect dials host:port.  The dial is bounded by ctx.
func Connect(ctx context.Context, host string, port int) (*Node, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "connect to %s", addr)
	}
	log.Debug("Connected", "addr", addr)
	return newNode(conn, addr), nil
}

// ConnectProxy dials host:port through the SOCKS5 proxy at proxyAddr.  The
// proxy dialer takes no context, so a cancelled dial is abandoned and its
// connection closed once it completes.
func ConnectProxy(ctx context.Context, proxyAddr, host string, port int) (*Node, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
	if err != nil {
		return nil, errors.Wrapf(err, "proxy %s", proxyAddr)
	}

	type result struct {
		conn net.Conn
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		conn, err := dialer.Dial("tcp", addr)
		ch <- result{conn, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, errors.Wrapf(r.err, "connect to %s via %s", addr, proxyAddr)
		}
		log.Debug("Connected", "addr", addr, "proxy", proxyAddr)
		return newNode(r.conn, addr), nil
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.conn != nil {
				r.conn.Close()
			}
		}()
		return nil, errors.Wrapf(ctx.Err(), "connect to %s via %s", addr, proxyAddr)
	}
}

func newNode(conn net.Conn, addr string) *Node {
	return &Node{
		conn:   conn,
		addr:   addr,
		closed: make(chan struct{}),
	}
}

// Addr returns the host:port the node was dialed at.
func (n *Node) Addr() string {
	return n.addr
}

// Conn returns the underlying connection.
func (n *Node) Conn() net.Conn {
	return n.conn
}

func (n *Node) isClosed() bool {
	select {
	case <-n.closed:
		return true
	default:
		return false
	}
}

// watch applies the deadline of ctx to the connection and aborts pending I/O
// when ctx is cancelled.  The returned func must be called once the I/O is
// done.
func (n *Node) watch(ctx context.Context) func() {
	if d, ok := ctx.Deadline(); ok {
		n.conn.SetDeadline(d)
	} else {
		n.conn.SetDeadline(time.Time{})
	}
	if ctx.Done() == nil {
		return func() {}
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
			n.conn.SetDeadline(aLongTimeAgo)
		case <-stop:
		}
	}()
	return func() {
		close(stop)
		<-done
	}
}

// ioError prefers the context error over the deadline error it caused.
func (n *Node) ioError(ctx context.Context, err error, op string) error {
	if n.isClosed() {
		return ErrDisconnected
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrapf(ctxErr, "%s %s", op, n.addr)
	}
	// The connection deadline can fire just before the context timer.
	if d, ok := ctx.Deadline(); ok && !time.Now().Before(d) {
		return errors.Wrapf(context.DeadlineExceeded, "%s %s", op, n.addr)
	}
	return errors.Wrapf(err, "%s %s", op, n.addr)
}

// Send writes m to the peer.
func (n *Node) Send(ctx context.Context, m *message.Message) error {
	if n.isClosed() {
		return ErrDisconnected
	}
	defer n.watch(ctx)()

	if err := m.Encode(n.conn); err != nil {
		return n.ioError(ctx, err, "send to")
	}
	metrics.NewCounter("node/messages/sent").Inc(1)
	metrics.NewCounter("node/bytes/sent").Inc(int64(m.SerializeSize()))
	log.Debug("Sent message", "addr", n.addr, "cmd", m.CommandString(),
		"summary", l.NewLogClosure(func() string { return message.Summary(m) }))
	return nil
}

// Receive reads the next message from the peer.
func (n *Node) Receive(ctx context.Context) (*message.Message, error) {
	if n.isClosed() {
		return nil, ErrDisconnected
	}
	defer n.watch(ctx)()

	m, err := message.Decode(n.conn)
	if err != nil {
		return nil, n.ioError(ctx, err, "receive from")
	}
	metrics.NewCounter("node/messages/received").Inc(1)
	metrics.NewCounter("node/bytes/received").Inc(int64(m.SerializeSize()))
	log.Debug("Received message", "addr", n.addr, "cmd", m.CommandString(),
		"summary", l.NewLogClosure(func() string { return message.Summary(m) }))
	return m, nil
}

// Disconnect closes the connection.  Calling it more than once is harmless
// and returns the result of the first call.
func (n *Node) Disconnect() error {
	n.closeOnce.Do(func() {
		close(n.closed)
		n.closeErr = n.conn.Close()
		log.Debug("Disconnected", "addr", n.addr)
	})
	return n.closeErr
}
