// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"errors"
	"strconv"
)

// Parse parses a period written as one or more groups of a signed integer
// followed by a unit letter, like "3M", "-2w" or "1Y6M". The letters are
// D, W, M and Y in either case. The groups are summed with Add, so "1Y6M"
// is 18 Months. Groups measured in days or weeks can not be mixed with groups
// measured in months or years, even if some of them cancel out: both "1Y3D"
// and "1Y-12M3D" are errors.
func Parse(s string) (Period, error) {
	if s == "" {
		return Period{}, &ParseError{Value: s, Message: "empty period"}
	}
	var (
		p     Period
		first TimeUnit
		v     = s
	)
	for v != "" {
		i := 0
		if v[0] == '+' || v[0] == '-' {
			i++
		}
		for i < len(v) && '0' <= v[i] && v[i] <= '9' {
			i++
		}
		if i == len(v) {
			return Period{}, &ParseError{Value: s, Message: "missing unit after " + strconv.Quote(v)}
		}
		n, err := strconv.Atoi(v[:i])
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Period{}, &ParseError{Value: s, Message: "length " + v[:i] + " out of range"}
			}
			return Period{}, &ParseError{Value: s, Message: "expected number at " + strconv.Quote(v)}
		}
		u, ok := unitOf(v[i])
		if !ok {
			return Period{}, &ParseError{Value: s, Message: "unknown unit " + strconv.Quote(v[i:i+1])}
		}
		if v == s {
			first = u
		} else if first.dayBased() != u.dayBased() {
			return Period{}, &ParseError{Value: s, Message: "cannot combine " + first.String() + " and " + u.String()}
		}
		sum, err := p.Add(Period{n, u})
		if err != nil {
			return Period{}, &ParseError{Value: s, Message: "cannot combine " + p.units.String() + " and " + u.String()}
		}
		p, v = sum, v[i+1:]
	}
	return p, nil
}

// MustParse is like Parse, but panics on error. It simplifies safe
// initialization of package-level variables holding periods.
func MustParse(s string) Period {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText implements encoding.TextMarshaler, using the String form.
func (p Period) MarshalText() ([]byte, error) {
	if !p.units.Valid() {
		return nil, &UnitError{Unit: p.units, Length: p.length}
	}
	return p.AppendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, using Parse.
func (p *Period) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
