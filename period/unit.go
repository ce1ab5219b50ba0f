// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "strconv"

// A TimeUnit is the unit of a Period.
type TimeUnit int

const (
	Days TimeUnit = iota
	Weeks
	Months
	Years
)

// Valid reports whether u is one of Days, Weeks, Months or Years.
func (u TimeUnit) Valid() bool {
	return u >= Days && u <= Years
}

// String returns the English name of u, e.g. "Months".
func (u TimeUnit) String() string {
	switch u {
	case Days:
		return "Days"
	case Weeks:
		return "Weeks"
	case Months:
		return "Months"
	case Years:
		return "Years"
	}
	return "TimeUnit(" + strconv.Itoa(int(u)) + ")"
}

// Letter returns the single letter used for u in period strings: 'D', 'W',
// 'M' or 'Y'. It returns '?' for invalid units.
func (u TimeUnit) Letter() byte {
	if !u.Valid() {
		return '?'
	}
	return "DWMY"[u]
}

// dayBased reports whether u is a whole number of days.
func (u TimeUnit) dayBased() bool {
	return u == Days || u == Weeks
}

// unitOf returns the TimeUnit for a letter, in either case.
func unitOf(c byte) (TimeUnit, bool) {
	switch c {
	case 'D', 'd':
		return Days, true
	case 'W', 'w':
		return Weeks, true
	case 'M', 'm':
		return Months, true
	case 'Y', 'y':
		return Years, true
	}
	return 0, false
}

// dayRange returns the smallest and largest number of days n units can
// span. It returns false for invalid units.
func (u TimeUnit) dayRange(n int) (lo, hi int, ok bool) {
	switch u {
	case Days:
		lo, hi = n, n
	case Weeks:
		lo, hi = 7*n, 7*n
	case Months:
		lo, hi = 28*n, 31*n
	case Years:
		lo, hi = 365*n, 366*n
	default:
		return 0, 0, false
	}
	if lo > hi {
		// negative lengths
		lo, hi = hi, lo
	}
	return lo, hi, true
}
