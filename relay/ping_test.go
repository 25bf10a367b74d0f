// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import "testing"

func TestProbeReply(t *testing.T) {
	tests := []struct {
		name      string
		chunk     string
		wantReply string
		wantFound bool
	}{
		{
			name:      "plain probe",
			chunk:     "PING :irc.example.org\n",
			wantReply: "PONG :irc.example.org\n",
			wantFound: true,
		},
		{
			name:      "crlf probe",
			chunk:     "PING :tmi.twitch.tv\r\n",
			wantReply: "PONG :tmi.twitch.tv\n",
			wantFound: true,
		},
		{
			name:      "probe without colon",
			chunk:     "PING irc.example.org\n",
			wantReply: "PONG irc.example.org\n",
			wantFound: true,
		},
		{
			name:      "probe mid-chunk",
			chunk:     ":server NOTICE * :ok\r\nPING :abc123\r\n",
			wantReply: "PONG :abc123\n",
			wantFound: true,
		},
		{
			name:  "no probe",
			chunk: ":nick!user@host PRIVMSG #go :hello\r\n",
		},
		{
			name:  "lowercase is not a probe",
			chunk: "ping :irc.example.org\n",
		},
		{
			name:  "probe truncated before origin",
			chunk: ":server NOTICE * :ok\r\nPING",
		},
		{
			name:  "probe truncated with trailing space",
			chunk: "PING \t\r\n",
		},
		{
			name:  "empty chunk",
			chunk: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, found := ProbeReply([]byte(tt.chunk))
			if found != tt.wantFound {
				t.Fatalf("ProbeReply(%q) found = %v, want %v", tt.chunk, found, tt.wantFound)
			}
			if string(reply) != tt.wantReply {
				t.Errorf("ProbeReply(%q) = %q, want %q", tt.chunk, reply, tt.wantReply)
			}
		})
	}
}
