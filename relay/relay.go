// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/muesli/cancelreader"

	"github.com/ircat-project/ircat/lib/clock"
	"github.com/ircat-project/ircat/lib/netutil"
	"github.com/ircat-project/ircat/transport"
)

// Options configures a Relay. Zero values get sensible defaults; only
// the transport is mandatory (passed to New directly).
type Options struct {
	// Input is the local input stream. Wrap terminal input with
	// NewCancelableInput so shutdown can release a pending read. Nil
	// means no local input: the relay only carries peer data.
	Input io.ReadCloser

	// Output is the local output stream for peer data. Defaults to
	// io.Discard when nil; the command wires os.Stdout.
	Output io.Writer

	// Logger receives diagnostic events. Defaults to a discard logger.
	Logger *slog.Logger

	// Clock is used for session accounting. Defaults to clock.Real().
	Clock clock.Clock

	// ChunkSize caps the bytes moved per read. Defaults to 1024.
	ChunkSize int
}

// Relay owns one transport for its lifetime and drives the two data
// directions: peer-to-terminal (with probe answering) and
// terminal-to-peer. Construct a fresh Relay per connection.
type Relay struct {
	transport transport.Transport
	input     io.ReadCloser
	output    io.Writer
	logger    *slog.Logger
	clk       clock.Clock
	chunkSize int

	startedAt time.Time

	// stop unblocks the pump goroutines when the loop exits before
	// they do.
	stop      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// New creates a Relay over the given transport.
func New(t transport.Transport, options Options) *Relay {
	if options.Output == nil {
		options.Output = io.Discard
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.ChunkSize <= 0 {
		options.ChunkSize = 1024
	}

	return &Relay{
		transport: t,
		input:     options.Input,
		output:    options.Output,
		logger:    options.Logger,
		clk:       options.Clock,
		chunkSize: options.ChunkSize,
		startedAt: options.Clock.Now(),
		stop:      make(chan struct{}),
	}
}

// Run drives the relay until the context is cancelled, the peer closes
// the connection, or the transport terminates on its own (subprocess
// exit). It returns nil for all of those; only an unexpected peer read
// error is reported. The relay is closed when Run returns, whichever
// path exits the loop.
func (r *Relay) Run(ctx context.Context) error {
	defer r.Close()

	peerChunks := make(chan []byte)
	peerFailed := make(chan error, 1)
	go r.pump(r.transport, peerChunks, peerFailed)

	var localChunks chan []byte
	if r.input != nil {
		localChunks = make(chan []byte)
		go r.pump(r.input, localChunks, nil)
	}

	r.logger.Debug("relay running", "remote", r.transport.Remote())

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("interrupt received, stopping relay")
			return nil

		case <-r.transport.Done():
			r.logger.Debug("transport terminated, stopping relay")
			return nil

		case chunk, ok := <-peerChunks:
			if !ok {
				var err error
				select {
				case err = <-peerFailed:
				default:
				}
				if err != nil {
					return fmt.Errorf("reading from peer: %w", err)
				}
				r.logger.Info("peer closed the connection",
					"remote", r.transport.Remote(),
					"session", r.sessionDuration())
				return nil
			}
			r.handlePeerChunk(chunk)

		case chunk, ok := <-localChunks:
			if !ok {
				// Local input hit EOF. Keep relaying peer data; the
				// session ends when the peer or the operator says so.
				r.logger.Debug("local input closed")
				localChunks = nil
				continue
			}
			r.handleLocalChunk(chunk)
		}
	}
}

// pump reads fixed-size chunks from source and delivers them to the
// loop until the source fails or the relay stops. Unexpected read
// errors go to failed (when non-nil) before the channel closes.
func (r *Relay) pump(source io.Reader, chunks chan<- []byte, failed chan<- error) {
	defer close(chunks)

	buffer := make([]byte, r.chunkSize)
	for {
		n, err := source.Read(buffer)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buffer[:n])
			select {
			case chunks <- chunk:
			case <-r.stop:
				return
			}
		}
		if err != nil {
			if failed != nil && !isShutdownError(err) {
				failed <- err
			}
			return
		}
	}
}

// handlePeerChunk answers a keep-alive probe on the transport, or
// passes the chunk through to local output untouched.
func (r *Relay) handlePeerChunk(chunk []byte) {
	if reply, ok := ProbeReply(chunk); ok {
		if _, err := r.transport.Write(reply); err != nil {
			r.logger.Warn("writing probe reply", "error", err)
			return
		}
		r.logger.Debug("answered keep-alive probe",
			"reply", strings.TrimSuffix(string(reply), "\n"))
		return
	}

	if _, err := r.output.Write(chunk); err != nil {
		r.logger.Warn("writing to local output", "error", err)
	}
}

// handleLocalChunk forwards local input verbatim. The terminal already
// echoes keystrokes, so nothing is written back to local output.
func (r *Relay) handleLocalChunk(chunk []byte) {
	if _, err := r.transport.Write(chunk); err != nil {
		r.logger.Warn("forwarding local input", "error", err)
	}
}

// Close tears the relay down: pending local input reads are cancelled
// and the transport is closed. Safe to call more than once, and called
// automatically when Run returns.
func (r *Relay) Close() error {
	r.closeOnce.Do(func() {
		close(r.stop)

		if canceler, ok := r.input.(cancelreader.CancelReader); ok {
			canceler.Cancel()
		}
		if r.input != nil {
			r.input.Close()
		}

		r.closeErr = r.transport.Close()
		r.logger.Debug("relay stopped", "session", r.sessionDuration())
	})
	return r.closeErr
}

func (r *Relay) sessionDuration() time.Duration {
	return r.clk.Now().Sub(r.startedAt).Round(time.Millisecond)
}

// isShutdownError reports whether a pump read error is part of normal
// teardown rather than a peer-side failure.
func isShutdownError(err error) bool {
	return netutil.IsExpectedCloseError(err) || errors.Is(err, cancelreader.ErrCanceled)
}
