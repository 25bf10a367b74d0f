// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
)

// ErrNoAddress indicates that a hostname resolved successfully but
// returned no usable IPv4 address records.
var ErrNoAddress = errors.New("no IPv4 address")

// ResolveIPv4 resolves host to its first IPv4 address record, matching
// the traditional "first A record wins" behavior of terminal clients.
// Literal IPv4 addresses pass through unchanged.
func ResolveIPv4(ctx context.Context, host string) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil && addr.Is4() {
		return addr, nil
	}

	addrs, err := net.DefaultResolver.LookupNetIP(ctx, "ip4", host)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("resolving %q: %w", host, err)
	}
	if len(addrs) == 0 {
		return netip.Addr{}, fmt.Errorf("resolving %q: %w", host, ErrNoAddress)
	}
	return addrs[0].Unmap(), nil
}
