// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

// Package relay moves bytes between the local terminal and a transport
// to the remote IRC peer, answering keep-alive PING probes on the way
// so idle sessions are not disconnected.
//
// Peer bytes flow to local standard output untouched, except that a
// chunk containing a PING probe is consumed and answered with the
// matching PONG directly on the transport. Local input flows to the
// transport verbatim. A single loop goroutine services both directions,
// so at most one handler runs at a time and transport writes are never
// interleaved.
package relay
