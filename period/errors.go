// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"errors"
	"fmt"
)

// Sentinel errors, for use with errors.Is. Each is wrapped by one of the
// structured error types below.
var (
	ErrUnsupportedValue      = errors.New("unsupported value")
	ErrUnsupportedUnit       = errors.New("unsupported time unit")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrIncompatibleOperands  = errors.New("incompatible operands")
	ErrUndecidable           = errors.New("undecidable comparison")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrNotDivisible          = errors.New("not divisible")
)

// ValueError reports a tag that has no corresponding Period, such as
// OtherFrequency.
type ValueError struct {
	Param string
	Value int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("period: unsupported %s %d", e.Param, e.Value)
}

func (e *ValueError) Unwrap() error {
	return ErrUnsupportedValue
}

// UnitError reports a Period whose unit is not one of Days, Weeks, Months or
// Years.
type UnitError struct {
	Unit   TimeUnit
	Length int
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("period: unknown time unit %d (length %d)", int(e.Unit), e.Length)
}

func (e *UnitError) Unwrap() error {
	return ErrUnsupportedUnit
}

// ConversionError reports a conversion between units that have no fixed
// ratio, such as Days to Years.
type ConversionError struct {
	From, To TimeUnit
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("period: cannot convert %s into %s", e.From, e.To)
}

func (e *ConversionError) Unwrap() error {
	return ErrUnsupportedConversion
}

// OperandError reports a binary operation whose result cannot be determined
// from its operands. Err is ErrIncompatibleOperands or ErrUndecidable.
type OperandError struct {
	Op       string
	LHS, RHS Period
	Err      error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("period: %s %s %s: %v", e.LHS, e.Op, e.RHS, e.Err)
}

func (e *OperandError) Unwrap() error {
	return e.Err
}

// DivisionError reports a division that has no exact result. Err is
// ErrDivisionByZero or ErrNotDivisible.
type DivisionError struct {
	Period  Period
	Divisor int
	Err     error
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("period: %s / %d: %v", e.Period, e.Divisor, e.Err)
}

func (e *DivisionError) Unwrap() error {
	return e.Err
}

// ParseError describes a problem parsing a period string.
type ParseError struct {
	Value   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing period %q: %s", e.Value, e.Message)
}
