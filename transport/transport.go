// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import "io"

// Compile-time interface checks.
var (
	_ Transport = (*TCP)(nil)
	_ Transport = (*Subprocess)(nil)
)

// Transport is a duplex byte channel to the remote peer. Reads deliver
// inbound peer bytes; writes carry outbound bytes. Close must be
// idempotent: the relay, the signal path, and deferred cleanup may all
// reach it.
type Transport interface {
	io.ReadWriteCloser

	// Done is closed when the transport terminates on its own — the
	// peer disconnects or the underlying subprocess exits. It is also
	// closed by Close.
	Done() <-chan struct{}

	// Remote describes the endpoint for logging and status output.
	Remote() string
}
