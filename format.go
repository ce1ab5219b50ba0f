// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gonih.org/calendar/internal/cache"
)

// These are predefined layouts for use in [Date.Format] and [Parse]. The
// reference date used in these layouts is the specific date:
//
//	January 2, 2006
//
// That value is recorded as the constant named [Layout], listed below. The
// recognized components are
//
//	Year: "2006" "06"
//	Month: "Jan" "January" "01" "1"
//	Day of the week: "Mon" "Monday"
//	Day of the month: "2" "_2", "02"
//	Day of the year: "__2" "002"
//
// Everything else is copied verbatim.
const (
	Layout    = "01/02 '06" // The reference date, in numerical order
	Canonical = "02-Jan-2006"
	ISO8601   = "2006-01-02"
	Long      = "January 2, 2006"
	Short     = "01/02/2006"
)

var longDayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var shortDayNames = []string{
	"Sun",
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
}

var shortMonthNames = []string{
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"May",
	"Jun",
	"Jul",
	"Aug",
	"Sep",
	"Oct",
	"Nov",
	"Dec",
}

var longMonthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// inst is one step of a compiled layout: a literal or a field operator.
type inst struct {
	op  fmtOp
	lit string
}

// String implements fmt.Stringer, for error messages.
func (i inst) String() string {
	if i.op == opLiteral {
		return i.lit
	}
	return i.op.String()
}

// fmtOp is a layout field.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Layout fields are matched in this order, do not re-order!
	opLongMonth
	opMonth
	opLongWeekDay
	opWeekDay
	opZeroYearDay
	opZeroMonth
	opZeroDay
	opYear
	opNumMonth
	opLongYear
	opDay
	opUnderLongYear // "_" followed by opLongYear, as in package time
	opUnderDay
	opUnderYearDay

	opInvalid
)

var opNames = [...]string{
	opLiteral:       "<literal>",
	opLongMonth:     "January",
	opMonth:         "Jan",
	opLongWeekDay:   "Monday",
	opWeekDay:       "Mon",
	opZeroYearDay:   "002",
	opZeroMonth:     "01",
	opZeroDay:       "02",
	opYear:          "06",
	opNumMonth:      "1",
	opLongYear:      "2006",
	opDay:           "2",
	opUnderLongYear: "_2006",
	opUnderDay:      "_2",
	opUnderYearDay:  "__2",
}

// String implements fmt.Stringer. Except for opLiteral, it returns the layout
// component of the operator.
func (op fmtOp) String() string {
	if op < 0 || op >= opInvalid {
		return "<invalid>"
	}
	return opNames[op]
}

// endsWord returns whether op must be a full word, that is must not be
// followed by a lower-case letter.
func (op fmtOp) endsWord() bool {
	return op == opMonth || op == opWeekDay
}

// memo holds compiled layouts.
var memo cache.Cache[string, []inst]

// compileLayout splits layout into literals and field operators.
func compileLayout(layout string) []inst {
	var prog []inst
	for layout != "" {
		lit, op, rest := cutOp(layout)
		if lit != "" {
			prog = append(prog, inst{lit: lit})
		}
		if op != opLiteral {
			prog = append(prog, inst{op: op})
		}
		layout = rest
	}
	return prog
}

// cutOp finds the first field operator in layout and returns the literal text
// before it, the operator and the remaining layout.
func cutOp(layout string) (lit string, op fmtOp, rest string) {
	for i := 0; i < len(layout); i++ {
		for op := opLongMonth; op < opInvalid; op++ {
			rest, ok := strings.CutPrefix(layout[i:], op.String())
			if !ok {
				continue
			}
			if op.endsWord() && len(rest) > 0 && 'a' <= rest[0] && rest[0] <= 'z' {
				// e.g. "Month" must not match "Mon"
				continue
			}
			return layout[:i], op, rest
		}
	}
	return layout, opLiteral, ""
}

// Format returns a textual representation of d formatted according to
// layout. See the documentation for the constant called Layout to see how to
// represent the layout format. The null date formats as "null date",
// regardless of layout.
func (d Date) Format(layout string) string {
	var buf [32]byte
	return string(d.AppendFormat(buf[:0], layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, layout string) []byte {
	if d.IsZero() {
		return append(b, "null date"...)
	}
	year, month, day := d.Date()
	yday := d.serial - yearOffset[year-firstTableYear]

	for _, i := range memo.Get(layout, compileLayout) {
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opYear:
			b = appendPadded(b, year%100, 2, '0')
		case opUnderLongYear:
			b = append(b, '_')
			fallthrough
		case opLongYear:
			b = strconv.AppendInt(b, int64(year), 10)
		case opMonth:
			b = append(b, shortMonthNames[month-1]...)
		case opLongMonth:
			b = append(b, longMonthNames[month-1]...)
		case opNumMonth:
			b = strconv.AppendInt(b, int64(month), 10)
		case opZeroMonth:
			b = appendPadded(b, int(month), 2, '0')
		case opWeekDay:
			b = append(b, shortDayNames[d.Weekday()]...)
		case opLongWeekDay:
			b = append(b, longDayNames[d.Weekday()]...)
		case opDay:
			b = strconv.AppendInt(b, int64(day), 10)
		case opUnderDay:
			b = appendPadded(b, day, 2, ' ')
		case opZeroDay:
			b = appendPadded(b, day, 2, '0')
		case opUnderYearDay:
			b = appendPadded(b, yday, 3, ' ')
		case opZeroYearDay:
			b = appendPadded(b, yday, 3, '0')
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
	}
	return b
}

// appendPadded appends the decimal representation of the non-negative v,
// left-padded with pad to at least width bytes.
func appendPadded(b []byte, v, width int, pad byte) []byte {
	for n, lim := 1, 10; n < width; n, lim = n+1, lim*10 {
		if v < lim {
			b = append(b, pad)
		}
	}
	return strconv.AppendInt(b, int64(v), 10)
}

// Parse parses a formatted string and returns the date value it represents.
// See the documentation for the constant called Layout to see how to represent
// the format. The second argument must be parseable using the format string
// (layout) provided as the first argument.
//
// The layout must contain a year. A missing month or day of the month is
// assumed to be 1. The day of the week is checked for syntax but is otherwise
// ignored. For layouts specifying the two-digit year 06, a value NN >= 69 will
// be treated as 19NN and a value NN < 69 will be treated as 20NN.
//
// Values that are syntactically valid but describe a date outside the
// supported range, or a day that does not exist, are reported as *RangeError.
// All other failures are reported as *ParseError.
func Parse(layout, value string) (Date, error) {
	p := &parser{value: value}
	var (
		year  = -1
		month = -1
		day   = -1
		yday  = -1
	)

	for _, i := range memo.Get(layout, compileLayout) {
		p.inst, p.elem = i, p.value
		switch i.op {
		case opLiteral:
			p.accept(i.lit)
		case opYear:
			year = p.fixed(2)
			if year >= 69 {
				year += 1900
			} else {
				year += 2000
			}
		case opUnderLongYear:
			p.accept("_")
			if p.failed {
				break
			}
			fallthrough
		case opLongYear:
			year = p.fixed(4)
		case opMonth:
			month = p.lookup(shortMonthNames) + 1
		case opLongMonth:
			month = p.lookup(longMonthNames) + 1
		case opNumMonth, opZeroMonth:
			month = p.number(2, i.op == opZeroMonth)
		case opWeekDay:
			p.lookup(shortDayNames)
		case opLongWeekDay:
			p.lookup(longDayNames)
		case opUnderDay:
			p.skip(' ', 1)
			day = p.number(2, false)
		case opDay, opZeroDay:
			day = p.number(2, i.op == opZeroDay)
		case opUnderYearDay:
			p.skip(' ', 2)
			yday = p.number(3, false)
		case opZeroYearDay:
			yday = p.number(3, true)
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
		if p.failed {
			return Date{}, p.syntaxError(layout, value)
		}
	}
	if p.value != "" {
		return Date{}, p.invalid(layout, value, "extra text: "+strconv.Quote(p.value))
	}
	if year < 0 {
		return Date{}, p.invalid(layout, value, "missing year")
	}

	if yday < 0 {
		if month < 0 {
			month = int(time.January)
		}
		if day < 0 {
			day = 1
		}
		return Of(year, time.Month(month), day)
	}

	if _, err := Of(year, time.January, 1); err != nil {
		return Date{}, err
	}
	if n := YearLength(year); yday < 1 || yday > n {
		return Date{}, &RangeError{Param: "dayOfYear", Value: yday, Range: fmt.Sprintf("[1,%d] for %d", n, year)}
	}
	d, err := FromSerial(yearOffset[year-firstTableYear] + yday)
	if err != nil {
		return Date{}, err
	}
	// If month or day were given as well, they must agree with the day of
	// the year.
	_, m, dd := d.Date()
	if month >= 0 && month != int(m) {
		return Date{}, p.invalid(layout, value, "day-of-year does not match month")
	}
	if day >= 0 && day != dd {
		return Date{}, p.invalid(layout, value, "day-of-year does not match day")
	}
	return d, nil
}

// parser holds the state of a single call to Parse.
type parser struct {
	value  string // unconsumed input
	inst   inst   // instruction being executed
	elem   string // input at the start of inst
	failed bool
}

// skip consumes up to n leading copies of c.
func (p *parser) skip(c byte, n int) {
	for ; n > 0 && p.value != "" && p.value[0] == c; n-- {
		p.value = p.value[1:]
	}
}

// accept consumes the literal lit, treating runs of spaces as equivalent.
func (p *parser) accept(lit string) {
	for lit != "" {
		if lit[0] == ' ' {
			if p.value != "" && p.value[0] != ' ' {
				p.failed = true
				return
			}
			p.value = strings.TrimLeft(p.value, " ")
			lit = strings.TrimLeft(lit, " ")
			continue
		}
		if p.value == "" || p.value[0] != lit[0] {
			p.failed = true
			return
		}
		lit, p.value = lit[1:], p.value[1:]
	}
}

// fixed consumes exactly n digits.
func (p *parser) fixed(n int) int {
	return p.number(n, true)
}

// number consumes between one and width digits, or exactly width digits if
// exact is set.
func (p *parser) number(width int, exact bool) int {
	var v, i int
	for ; i < width && i < len(p.value) && '0' <= p.value[i] && p.value[i] <= '9'; i++ {
		v = v*10 + int(p.value[i]-'0')
	}
	if i == 0 || (exact && i != width) {
		p.failed = true
		return 0
	}
	p.value = p.value[i:]
	return v
}

// lookup consumes a case-insensitive match of an entry of table and returns
// its index.
func (p *parser) lookup(table []string) int {
	for i, v := range table {
		if len(p.value) >= len(v) && strings.EqualFold(p.value[:len(v)], v) {
			p.value = p.value[len(v):]
			return i
		}
	}
	p.failed = true
	return 0
}

// syntaxError reports that the current instruction did not match.
func (p *parser) syntaxError(layout, value string) error {
	return &ParseError{
		Layout:     layout,
		Value:      value,
		LayoutElem: p.inst.String(),
		ValueElem:  p.elem,
	}
}

// invalid reports that parsing succeeded but the result is inconsistent.
func (p *parser) invalid(layout, value, msg string) error {
	return &ParseError{
		Layout:  layout,
		Value:   value,
		Message: msg,
	}
}

// ParseError describes a problem parsing a date string.
type ParseError struct {
	Layout     string
	Value      string
	LayoutElem string
	ValueElem  string
	Message    string
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("parsing date %q as %q: cannot parse %q as %q", e.Value, e.Layout, e.ValueElem, e.LayoutElem)
	}
	return fmt.Sprintf("parsing date %q: %s", e.Value, e.Message)
}
