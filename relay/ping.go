// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import "bytes"

const (
	probeCommand = "PING"
	replyCommand = "PONG"
)

// ProbeReply scans a chunk of peer data for a keep-alive probe and, if
// one is present, composes the reply to send back: "PONG <origin>\n",
// where origin is the whitespace-delimited token following "PING".
//
// Detection is per-chunk and case-sensitive, as IRC servers send the
// command capitalized. A probe whose origin token is split across two
// reads is not recognized; the fragments pass through to local output
// instead.
func ProbeReply(chunk []byte) ([]byte, bool) {
	index := bytes.Index(chunk, []byte(probeCommand))
	if index < 0 {
		return nil, false
	}

	fields := bytes.Fields(chunk[index+len(probeCommand):])
	if len(fields) == 0 {
		// "PING" with no origin token yet — truncated probe.
		return nil, false
	}
	origin := fields[0]

	reply := make([]byte, 0, len(replyCommand)+1+len(origin)+1)
	reply = append(reply, replyCommand...)
	reply = append(reply, ' ')
	reply = append(reply, origin...)
	reply = append(reply, '\n')
	return reply, true
}
