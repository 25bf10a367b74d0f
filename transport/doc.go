// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport provides the duplex byte channel between ircat and
// the remote IRC peer.
//
// Two implementations exist: a direct TCP connection, and a spawned
// external terminal client spoken to over its standard input and output.
// The relay is transport-agnostic; it sees only the Transport interface.
package transport
