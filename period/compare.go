// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "errors"

// Less reports whether p is shorter than q.
//
// A zero period compares against the sign of the other one. Periods in the
// same unit, in Months and Years or in Weeks and Days are compared exactly.
// Otherwise Less compares the ranges of days both periods can span and
// returns an *OperandError wrapping ErrUndecidable if they overlap.
func Less(p, q Period) (bool, error) {
	lt, err := less(p, q)
	return lt, operandError("<", p, q, err)
}

// Greater reports whether p is longer than q.
func Greater(p, q Period) (bool, error) {
	gt, err := less(q, p)
	return gt, operandError(">", p, q, err)
}

// LessOrEqual reports whether p is not longer than q.
func LessOrEqual(p, q Period) (bool, error) {
	gt, err := less(q, p)
	return !gt && err == nil, operandError("<=", p, q, err)
}

// GreaterOrEqual reports whether p is not shorter than q.
func GreaterOrEqual(p, q Period) (bool, error) {
	lt, err := less(p, q)
	return !lt && err == nil, operandError(">=", p, q, err)
}

// Equal reports whether p and q are the same length of time, that is neither
// is shorter than the other.
func Equal(p, q Period) (bool, error) {
	c, err := compare(p, q)
	return c == 0 && err == nil, operandError("==", p, q, err)
}

// NotEqual reports whether p and q are different lengths of time.
func NotEqual(p, q Period) (bool, error) {
	c, err := compare(p, q)
	return c != 0 && err == nil, operandError("!=", p, q, err)
}

// Compare returns -1 if p is shorter than q, +1 if it is longer and 0 if both
// are equal. The error is non-nil whenever Less would fail.
func Compare(p, q Period) (int, error) {
	c, err := compare(p, q)
	return c, operandError("<=>", p, q, err)
}

// EqualPtr is like Equal, but for optional periods. Two nil periods are equal,
// a nil and a non-nil period are not.
func EqualPtr(p, q *Period) (bool, error) {
	if p == nil || q == nil {
		return p == q, nil
	}
	return Equal(*p, *q)
}

// operandError wraps ErrUndecidable into an *OperandError for op. Other
// errors are returned unchanged.
func operandError(op string, p, q Period, err error) error {
	if !errors.Is(err, ErrUndecidable) {
		return err
	}
	return &OperandError{Op: op, LHS: p, RHS: q, Err: err}
}

func compare(p, q Period) (int, error) {
	lt, err := less(p, q)
	if err != nil {
		return 0, err
	}
	if lt {
		return -1, nil
	}
	gt, err := less(q, p)
	if err != nil {
		return 0, err
	}
	if gt {
		return 1, nil
	}
	return 0, nil
}

// less implements Less. Undecidable comparisons return ErrUndecidable,
// which the exported functions wrap into an *OperandError.
func less(p, q Period) (bool, error) {
	if p.length == 0 {
		return q.length > 0, nil
	}
	if q.length == 0 {
		return p.length < 0, nil
	}
	if p.units == q.units && p.units.Valid() {
		return p.length < q.length, nil
	}
	switch {
	case p.units == Months && q.units == Years:
		return p.length < 12*q.length, nil
	case p.units == Years && q.units == Months:
		return 12*p.length < q.length, nil
	case p.units == Days && q.units == Weeks:
		return p.length < 7*q.length, nil
	case p.units == Weeks && q.units == Days:
		return 7*p.length < q.length, nil
	}
	plo, phi, ok := p.units.dayRange(p.length)
	if !ok {
		return false, &UnitError{Unit: p.units, Length: p.length}
	}
	qlo, qhi, ok := q.units.dayRange(q.length)
	if !ok {
		return false, &UnitError{Unit: q.units, Length: q.length}
	}
	if phi < qlo {
		return true, nil
	}
	if plo > qhi {
		return false, nil
	}
	return false, ErrUndecidable
}
