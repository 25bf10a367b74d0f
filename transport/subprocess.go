// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ircat-project/ircat/lib/clock"
)

// Subprocess is a Transport backed by a spawned external terminal
// client (e.g. telnet). The child's standard input and output form the
// duplex channel; the child owns the actual network connection. Its
// stderr passes through to ours so connection diagnostics stay visible.
type Subprocess struct {
	command *exec.Cmd
	stdin   io.WriteCloser
	stdout  io.ReadCloser
	remote  string

	clk   clock.Clock
	grace time.Duration

	// done is closed by the reaper goroutine once Wait returns.
	done    chan struct{}
	waitErr error

	closeOnce sync.Once
}

// StartSubprocess spawns binary with the given arguments and wires its
// standard streams as a transport. The grace period bounds how long
// Close waits for the child to exit after its stdin is closed before
// killing it.
func StartSubprocess(binary string, args []string, clk clock.Clock, grace time.Duration) (*Subprocess, error) {
	command := exec.Command(binary, args...)
	command.Stderr = os.Stderr

	stdin, err := command.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdin pipe: %w", err)
	}
	stdout, err := command.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}

	if err := command.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("starting %s: %w", binary, err)
	}

	t := &Subprocess{
		command: command,
		stdin:   stdin,
		stdout:  stdout,
		remote:  strings.TrimSpace(filepath.Base(binary) + " " + strings.Join(args, " ")),
		clk:     clk,
		grace:   grace,
		done:    make(chan struct{}),
	}

	// Reap the child to avoid zombies and to signal Done. Wait also
	// closes the parent ends of the pipes, so a pending Read unblocks
	// when the child exits.
	go func() {
		t.waitErr = command.Wait()
		close(t.done)
	}()

	return t, nil
}

func (t *Subprocess) Read(p []byte) (int, error) { return t.stdout.Read(p) }

func (t *Subprocess) Write(p []byte) (int, error) { return t.stdin.Write(p) }

// Close shuts the child down: closes its stdin (the conventional exit
// signal for pipe-driven clients), waits up to the grace period for it
// to exit, then kills it. Safe to call more than once.
func (t *Subprocess) Close() error {
	t.closeOnce.Do(func() {
		t.stdin.Close()

		select {
		case <-t.done:
		case <-t.clk.After(t.grace):
			t.command.Process.Kill()
			<-t.done
		}
	})
	return nil
}

// Done is closed when the child process exits, however that happens.
func (t *Subprocess) Done() <-chan struct{} { return t.done }

// Remote returns the child's command line for logging.
func (t *Subprocess) Remote() string { return t.remote }

// WaitError returns the child's exit error, if any. Only meaningful
// after Done is closed.
func (t *Subprocess) WaitError() error {
	select {
	case <-t.done:
		return t.waitErr
	default:
		return nil
	}
}
