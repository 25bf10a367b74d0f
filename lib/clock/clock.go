// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time operations for testability. Production
// code injects Real(); tests inject Fake() with deterministic control
// over when timers fire.
package clock

import "time"

// Clock provides the time operations ircat needs: reading the current
// time (session accounting) and one-shot delays (subprocess shutdown
// grace). Production code should accept a Clock instead of calling the
// time package directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time after
	// duration d elapses. Equivalent to time.After. If d <= 0, the
	// channel receives immediately.
	After(d time.Duration) <-chan time.Time
}
