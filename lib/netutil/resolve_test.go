// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"context"
	"testing"
)

func TestResolveIPv4Literal(t *testing.T) {
	addr, err := ResolveIPv4(context.Background(), "192.0.2.7")
	if err != nil {
		t.Fatalf("ResolveIPv4() error: %v", err)
	}
	if addr.String() != "192.0.2.7" {
		t.Errorf("ResolveIPv4() = %s, want 192.0.2.7", addr)
	}
}

func TestResolveIPv4Localhost(t *testing.T) {
	addr, err := ResolveIPv4(context.Background(), "localhost")
	if err != nil {
		t.Fatalf("ResolveIPv4(localhost) error: %v", err)
	}
	if !addr.Is4() && !addr.Is4In6() {
		t.Errorf("ResolveIPv4(localhost) = %s, want an IPv4 address", addr)
	}
}

func TestResolveIPv4Unresolvable(t *testing.T) {
	_, err := ResolveIPv4(context.Background(), "host.invalid")
	if err == nil {
		t.Fatal("ResolveIPv4(host.invalid) succeeded, want error")
	}
}
