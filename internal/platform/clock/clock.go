// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package clock supplies the current wall-clock time to services that must
// stay testable against a fixed "now".
package clock

import "time"

// System reads the host clock.
type System struct{}

// New returns the system clock.
func New() System { return System{} }

// Now returns the current local time.
func (System) Now() time.Time { return time.Now() }
