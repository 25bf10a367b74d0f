// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"fmt"
	"strconv"
)

// ValidatePort parses s as a TCP port number. Values outside 1-65535
// are rejected; port 0 is not a connectable endpoint.
func ValidatePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	return CheckPort(port)
}

// CheckPort validates an already-parsed port number.
func CheckPort(port int) (int, error) {
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range 1-65535", port)
	}
	return port, nil
}
