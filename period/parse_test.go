// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tcs := []struct {
		in   string
		want Period
	}{
		{"0D", Period{0, Days}},
		{"6M", Period{6, Months}},
		{"6m", Period{6, Months}},
		{"-2W", Period{-2, Weeks}},
		{"+3d", Period{3, Days}},
		{"10Y", Period{10, Years}},
		{"1Y6M", Period{18, Months}},
		{"1y-6m", Period{6, Months}},
		{"2W3D", Period{17, Days}},
		{"1M1M", Period{2, Months}},
		{"0Y5M", Period{5, Months}},
		{"1Y-12M", Period{0, Months}},
		{"1W-7D2D", Period{2, Days}},
	}
	for _, tc := range tcs {
		got, err := Parse(tc.in)
		require.NoError(t, err, "Parse(%q)", tc.in)
		assert.Equal(t, tc.want, got, "Parse(%q)", tc.in)
	}
}

func TestParseErrors(t *testing.T) {
	tcs := []struct {
		in  string
		msg string
	}{
		{"", "empty period"},
		{"6", `missing unit after "6"`},
		{"M", `expected number at "M"`},
		{"-M", `expected number at "-M"`},
		{"6X", `unknown unit "X"`},
		{"6 M", `unknown unit " "`},
		{"1Y3D", "cannot combine Years and Days"},
		{"1Y-12M3D", "cannot combine Years and Days"},
		{"0Y5D", "cannot combine Years and Days"},
		{"2W1M", "cannot combine Weeks and Months"},
		{"99999999999999999999D", "length 99999999999999999999 out of range"},
	}
	for _, tc := range tcs {
		_, err := Parse(tc.in)
		var pe *ParseError
		if assert.ErrorAs(t, err, &pe, "Parse(%q)", tc.in) {
			assert.Equal(t, ParseError{Value: tc.in, Message: tc.msg}, *pe)
		}
	}
	assert.Panics(t, func() { MustParse("1Q") })
}

func TestParseRoundTrip(t *testing.T) {
	for _, u := range []TimeUnit{Days, Weeks, Months, Years} {
		for _, n := range []int{-100, -1, 0, 1, 7, 12, 365} {
			p := New(n, u)
			got, err := Parse(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	}
}

func TestText(t *testing.T) {
	b, err := Period{-18, Months}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-18M", string(b))

	var p Period
	require.NoError(t, p.UnmarshalText([]byte("3w")))
	assert.Equal(t, Period{3, Weeks}, p)

	assert.Error(t, p.UnmarshalText([]byte("3q")))
	assert.Equal(t, Period{3, Weeks}, p, "failed UnmarshalText modified its receiver")

	_, err = Period{1, TimeUnit(12)}.MarshalText()
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func FuzzParse(f *testing.F) {
	f.Add("1Y6M")
	f.Add("-2w")
	f.Add("0D")
	f.Fuzz(func(t *testing.T, s string) {
		p, err := Parse(s)
		if err != nil {
			return
		}
		q, err := Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%q) = %v, but Parse(%q) = %v", s, p, p.String(), err)
		}
		if q != p {
			t.Fatalf("Parse(%q) = %v, but Parse(%q) = %v", s, p, p.String(), q)
		}
	})
}
