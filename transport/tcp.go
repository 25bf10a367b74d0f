// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"sync"
	"time"
)

// TCP is a Transport backed by a plain TCP connection to the remote
// host. This is the default: IRC's plaintext port with no TLS, matching
// what the peer expects on 6667.
type TCP struct {
	conn   net.Conn
	remote string

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

// DialTCP connects to the given address and port. The context bounds
// the connection attempt; Timeout guards against peers that neither
// accept nor refuse.
func DialTCP(ctx context.Context, addr netip.Addr, port int) (*TCP, error) {
	endpoint := net.JoinHostPort(addr.String(), strconv.Itoa(port))

	dialer := &net.Dialer{Timeout: 30 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", endpoint)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", endpoint, err)
	}

	return &TCP{
		conn:   conn,
		remote: endpoint,
		done:   make(chan struct{}),
	}, nil
}

func (t *TCP) Read(p []byte) (int, error) { return t.conn.Read(p) }

func (t *TCP) Write(p []byte) (int, error) { return t.conn.Write(p) }

// Close tears down the connection. Safe to call more than once; only
// the first call closes the socket.
func (t *TCP) Close() error {
	t.closeOnce.Do(func() {
		t.closeErr = t.conn.Close()
		close(t.done)
	})
	return t.closeErr
}

// Done is closed when the transport is closed. Peer-initiated closure
// surfaces as an EOF from Read rather than through this channel.
func (t *TCP) Done() <-chan struct{} { return t.done }

// Remote returns the "host:port" endpoint string.
func (t *TCP) Remote() string { return t.remote }
