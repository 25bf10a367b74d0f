// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"fmt"
	"io"

	"github.com/muesli/cancelreader"
)

// NewCancelableInput wraps the local input stream (normally os.Stdin)
// so that a pending Read can be released during shutdown. Without this
// a blocked terminal read would pin its goroutine until the next
// keystroke, and Close could not guarantee prompt teardown.
//
// The relay recognizes the returned reader and cancels it from Close.
func NewCancelableInput(source io.Reader) (io.ReadCloser, error) {
	reader, err := cancelreader.NewReader(source)
	if err != nil {
		return nil, fmt.Errorf("wrapping local input: %w", err)
	}
	return reader, nil
}
