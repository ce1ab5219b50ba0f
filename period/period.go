// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package period implements tenors: signed lengths of time measured in days,
// weeks, months or years, and not anchored to any date.
//
// The same span of time has several representations. 12 months are exactly
// one year and 7 days are exactly one week, but a month lasts between 28 and
// 31 days and a year between 365 and 366. Operations that have to mix days or
// weeks with months or years therefore either fail or reason about the range
// of days each period can span:
//
//   - Add and Sub convert between Months and Years, or between Days and
//     Weeks, and return ErrIncompatibleOperands for any other mix.
//   - Years, Months, Weeks and Days return ErrUnsupportedConversion for
//     conversions without a fixed ratio.
//   - Less and the other comparisons return ErrUndecidable when the ranges of
//     days overlap, as for one month and 30 days.
//
// A Period is comparable, but == compares representations: New(12, Months)
// and New(1, Years) are different values that are Equal. Use [Period.Key] to
// get a value that can be compared with == or used as a map key consistently
// with Equal.
package period

import (
	"strconv"
)

// A Period is a length of time in a given unit.
//
// The zero value is a zero-length period of Days.
type Period struct {
	length int
	units  TimeUnit
}

// New returns the period of length units.
func New(length int, units TimeUnit) Period {
	return Period{length, units}
}

// Length returns the signed length of p, in p's units.
func (p Period) Length() int {
	return p.length
}

// Units returns the unit of p.
func (p Period) Units() TimeUnit {
	return p.units
}

// IsZero reports whether p has zero length, in any unit.
func (p Period) IsZero() bool {
	return p.length == 0
}

// Normalize rewrites p into its canonical form: zero periods become zero
// Days, whole years of Months become Years and whole weeks of Days become
// Weeks.
func (p *Period) Normalize() {
	if p.length == 0 {
		p.units = Days
		return
	}
	switch p.units {
	case Months:
		if p.length%12 == 0 {
			p.length /= 12
			p.units = Years
		}
	case Days:
		if p.length%7 == 0 {
			p.length /= 7
			p.units = Weeks
		}
	}
}

// Normalized returns the canonical form of p, leaving p unchanged.
func (p Period) Normalized() Period {
	p.Normalize()
	return p
}

// Key returns a value that is the same for all exactly equal periods, so it
// can be used as a map key. Periods that are Equal have the same Key.
func (p Period) Key() Period {
	return p.Normalized()
}

// Years returns p measured in years. It returns a *ConversionError if p is
// measured in Days or Weeks, unless p has zero length.
func (p Period) Years() (float64, error) {
	if p.length == 0 {
		return 0, nil
	}
	switch p.units {
	case Months:
		return float64(p.length) / 12, nil
	case Years:
		return float64(p.length), nil
	case Days, Weeks:
		return 0, &ConversionError{From: p.units, To: Years}
	}
	return 0, &UnitError{Unit: p.units, Length: p.length}
}

// Months returns p measured in months. It returns a *ConversionError if p is
// measured in Days or Weeks, unless p has zero length.
func (p Period) Months() (float64, error) {
	if p.length == 0 {
		return 0, nil
	}
	switch p.units {
	case Months:
		return float64(p.length), nil
	case Years:
		return float64(p.length) * 12, nil
	case Days, Weeks:
		return 0, &ConversionError{From: p.units, To: Months}
	}
	return 0, &UnitError{Unit: p.units, Length: p.length}
}

// Weeks returns p measured in weeks. It returns a *ConversionError if p is
// measured in Months or Years, unless p has zero length.
func (p Period) Weeks() (float64, error) {
	if p.length == 0 {
		return 0, nil
	}
	switch p.units {
	case Days:
		return float64(p.length) / 7, nil
	case Weeks:
		return float64(p.length), nil
	case Months, Years:
		return 0, &ConversionError{From: p.units, To: Weeks}
	}
	return 0, &UnitError{Unit: p.units, Length: p.length}
}

// Days returns p measured in days. It returns a *ConversionError if p is
// measured in Months or Years, unless p has zero length.
func (p Period) Days() (float64, error) {
	if p.length == 0 {
		return 0, nil
	}
	switch p.units {
	case Days:
		return float64(p.length), nil
	case Weeks:
		return float64(p.length) * 7, nil
	case Months, Years:
		return 0, &ConversionError{From: p.units, To: Days}
	}
	return 0, &UnitError{Unit: p.units, Length: p.length}
}

// Add returns p+q.
//
// If either period has zero length, the result is the other one. Periods in
// the same unit add their lengths. Years and Months add up to Months, Weeks
// and Days to Days. Any other combination returns an *OperandError wrapping
// ErrIncompatibleOperands.
func (p Period) Add(q Period) (Period, error) {
	if p.length == 0 {
		return q, nil
	}
	if q.length == 0 {
		return p, nil
	}
	if !p.units.Valid() {
		return Period{}, &UnitError{Unit: p.units, Length: p.length}
	}
	if !q.units.Valid() {
		return Period{}, &UnitError{Unit: q.units, Length: q.length}
	}
	if p.units == q.units {
		return Period{p.length + q.length, p.units}, nil
	}
	switch {
	case p.units == Years && q.units == Months:
		return Period{12*p.length + q.length, Months}, nil
	case p.units == Months && q.units == Years:
		return Period{p.length + 12*q.length, Months}, nil
	case p.units == Weeks && q.units == Days:
		return Period{7*p.length + q.length, Days}, nil
	case p.units == Days && q.units == Weeks:
		return Period{p.length + 7*q.length, Days}, nil
	}
	return Period{}, &OperandError{Op: "+", LHS: p, RHS: q, Err: ErrIncompatibleOperands}
}

// Sub returns p-q, that is p.Add(q.Neg()).
func (p Period) Sub(q Period) (Period, error) {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Period) Neg() Period {
	return Period{-p.length, p.units}
}

// Mul returns p*k.
func (p Period) Mul(k int) Period {
	return Period{p.length * k, p.units}
}

// Scale returns k*p. It is the same as p.Mul(k).
func Scale(k int, p Period) Period {
	return p.Mul(k)
}

// Div returns p/k.
//
// If the length of p is not a multiple of k, Years are refined into Months
// and Weeks into Days before dividing. If that does not help either, Div
// returns a *DivisionError wrapping ErrNotDivisible. Dividing by zero returns
// a *DivisionError wrapping ErrDivisionByZero.
func (p Period) Div(k int) (Period, error) {
	if k == 0 {
		return Period{}, &DivisionError{Period: p, Divisor: k, Err: ErrDivisionByZero}
	}
	if p.length%k == 0 {
		return Period{p.length / k, p.units}, nil
	}
	r := p
	switch p.units {
	case Years:
		r = Period{12 * p.length, Months}
	case Weeks:
		r = Period{7 * p.length, Days}
	case Months, Days:
	default:
		return Period{}, &UnitError{Unit: p.units, Length: p.length}
	}
	if r.length%k != 0 {
		return Period{}, &DivisionError{Period: p, Divisor: k, Err: ErrNotDivisible}
	}
	return Period{r.length / k, r.units}, nil
}

// String returns p as its length followed by the letter of its unit, e.g.
// "6M" or "-2W".
func (p Period) String() string {
	var buf [24]byte
	return string(p.AppendText(buf[:0]))
}

// AppendText appends the String form of p to b and returns the extended
// buffer.
func (p Period) AppendText(b []byte) []byte {
	b = strconv.AppendInt(b, int64(p.length), 10)
	return append(b, p.units.Letter())
}

// GoString implements fmt.GoStringer and formats p to be printed in Go source code.
func (p Period) GoString() string {
	if p.units.Valid() {
		return "period.New(" + strconv.Itoa(p.length) + ", period." + p.units.String() + ")"
	}
	return "period.New(" + strconv.Itoa(p.length) + ", " + strconv.Itoa(int(p.units)) + ")"
}
