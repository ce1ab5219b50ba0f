// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every *RangeError. Use it with errors.Is.
var ErrOutOfRange = errors.New("out of range")

// RangeError describes a parameter outside its valid range.
type RangeError struct {
	// Param is the name of the offending parameter, e.g. "year", "month",
	// "day" or "serialNumber".
	Param string
	// Value is the rejected value.
	Value int
	// Range describes the valid values.
	Range string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("calendar: %s %d out of range, must be in %s", e.Param, e.Value, e.Range)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
