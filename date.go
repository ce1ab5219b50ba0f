// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar contains a serial-number based date type for financial
// calendar arithmetic.
//
// A Date is stored as a single integer, its serial number: the number of days
// since the epoch 1899-12-31, counting 1900-02-29 as a real day. This is the
// convention used by spreadsheet software, so serial numbers produced by this
// package can be exchanged with spreadsheets for every date in the supported
// range.
//
// The supported range is 1901-01-01 (serial 367) to 2199-12-31 (serial
// 109574). Constructors validate their input and return a *RangeError if it
// falls outside that range. The day, month and year of a Date are derived
// from the serial number on demand and never stored.
//
// Dates can be compared with == and used as map keys. For ordering, use
// [Date.Before], [Date.After] or [Date.Compare].
package calendar

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

const (
	// MinSerial is the serial number of the earliest supported date,
	// 1901-01-01.
	MinSerial = 367
	// MaxSerial is the serial number of the latest supported date,
	// 2199-12-31.
	MaxSerial = 109574

	// MinYear and MaxYear bound the years accepted by Of.
	MinYear = 1901
	MaxYear = 2199

	// The lookup tables extend one year past the supported range on each
	// side, so that Year can correct its guess at the edges.
	firstTableYear = 1900
	lastTableYear  = 2200
	tableYears     = lastTableYear - firstTableYear + 1
)

// yearIsLeap[y-1900] reports whether y is a leap year. 1900 is marked as a
// leap year, even though it is not one in the Gregorian calendar.
var yearIsLeap = func() (t [tableYears]bool) {
	for i := range t {
		y := firstTableYear + i
		t[i] = y%4 == 0 && (y%100 != 0 || y%400 == 0)
	}
	t[0] = true
	return t
}()

// yearOffset[y-1900] counts the days from the epoch to the last day of year
// y-1, so that January 1st of y has serial number yearOffset[y-1900]+1.
var yearOffset = func() (t [tableYears]int) {
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] + 365
		if yearIsLeap[i-1] {
			t[i]++
		}
	}
	return t
}()

// monthOffset[leap][m] counts the days in a year before month m begins. There
// is an entry for m=13, counting the number of days in the year.
var monthOffset = [2][14]int{
	{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	{0, 0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

// monthLength[leap][m] is the number of days in month m.
var monthLength = [2][13]int{
	{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

func leapIndex(year int) int {
	if yearIsLeap[year-firstTableYear] {
		return 1
	}
	return 0
}

// IsLeap reports whether year is a leap year. Following spreadsheet
// convention, 1900 is a leap year. IsLeap returns false for years outside
// [1900, 2200].
func IsLeap(year int) bool {
	if year < firstTableYear || year > lastTableYear {
		return false
	}
	return yearIsLeap[year-firstTableYear]
}

// MonthLength returns the number of days in the given month of year. It
// returns 0 if year or month are out of range.
func MonthLength(month time.Month, year int) int {
	if year < firstTableYear || year > lastTableYear || month < time.January || month > time.December {
		return 0
	}
	return monthLength[leapIndex(year)][month]
}

// YearLength returns the number of days in year, or 0 if it is out of range.
func YearLength(year int) int {
	if year < firstTableYear || year > lastTableYear {
		return 0
	}
	return monthOffset[leapIndex(year)][13]
}

// A Date represents a calendar day by its serial number.
//
// The zero value is the null date. It is not a valid date: its year, month
// and day are 0, arithmetic on it fails and it can not be marshaled. Use
// IsZero to detect it.
type Date struct {
	serial int
}

// Of returns the Date corresponding to the given year, month and day.
//
// Unlike time.Date, the arguments are not normalized. Of returns a *RangeError
// if year is outside [MinYear, MaxYear], month is not a valid month, or day is
// not a day of that month.
func Of(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, &RangeError{Param: "year", Value: year, Range: fmt.Sprintf("[%d,%d]", MinYear, MaxYear)}
	}
	if month < time.January || month > time.December {
		return Date{}, &RangeError{Param: "month", Value: int(month), Range: "[1,12]"}
	}
	leap := leapIndex(year)
	if n := monthLength[leap][month]; day < 1 || day > n {
		return Date{}, &RangeError{Param: "day", Value: day, Range: fmt.Sprintf("[1,%d] for %s %d", n, month, year)}
	}
	return FromSerial(day + monthOffset[leap][month] + yearOffset[year-firstTableYear])
}

// MustOf is like Of, but panics if the date is invalid. It is intended for
// initializing package level variables and in tests.
func MustOf(year int, month time.Month, day int) Date {
	d, err := Of(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromSerial returns the Date with the given serial number. It returns a
// *RangeError if serial is outside [MinSerial, MaxSerial].
func FromSerial(serial int) (Date, error) {
	if serial < MinSerial || serial > MaxSerial {
		return Date{}, &RangeError{
			Param: "serialNumber",
			Value: serial,
			Range: fmt.Sprintf("[%d,%d] or dates [%s,%s]", MinSerial, MaxSerial, Min(), Max()),
		}
	}
	return Date{serial}, nil
}

// MustFromSerial is like FromSerial, but panics if serial is out of range.
func MustFromSerial(serial int) Date {
	d, err := FromSerial(serial)
	if err != nil {
		panic(err)
	}
	return d
}

// Min returns the earliest supported date, 1901-01-01.
func Min() Date {
	return Date{MinSerial}
}

// Max returns the latest supported date, 2199-12-31.
func Max() Date {
	return Date{MaxSerial}
}

// Today returns the current date in the given location.
func Today(loc *time.Location) (Date, error) {
	return Of(time.Now().In(loc).Date())
}

// IsZero reports whether d is the null date.
func (d Date) IsZero() bool {
	return d.serial == 0
}

// SerialNumber returns the serial number of d.
func (d Date) SerialNumber() int {
	return d.serial
}

// Year returns the year in which d occurs, or 0 for the null date.
func (d Date) Year() int {
	if d.IsZero() {
		return 0
	}
	// serial/365 overestimates the number of elapsed years by at most one
	// over the whole table.
	year := d.serial/365 + firstTableYear
	if d.serial <= yearOffset[year-firstTableYear] {
		year--
	}
	return year
}

// DayOfYear returns the day of the year specified by d, in the range [1,365]
// for non-leap years, and [1,366] in leap years. It returns 0 for the null
// date.
func (d Date) DayOfYear() int {
	if d.IsZero() {
		return 0
	}
	return d.serial - yearOffset[d.Year()-firstTableYear]
}

// Month returns the month of the year specified by d.
func (d Date) Month() time.Month {
	month, _ := d.monthAndDay(d.Year())
	return month
}

// monthAndDay returns the month and day of the month of d, given that d
// occurs in year. The null date has month and day 0.
func (d Date) monthAndDay(year int) (time.Month, int) {
	if d.IsZero() {
		return 0, 0
	}
	yday := d.serial - yearOffset[year-firstTableYear]
	offsets := &monthOffset[leapIndex(year)]

	// No month is shorter than 28 days, so this guess is off by at most one
	// month in either direction. The entry for m=13 bounds the upwards scan.
	m := yday/30 + 1
	for yday <= offsets[m] {
		m--
	}
	for yday > offsets[m+1] {
		m++
	}
	return time.Month(m), yday - offsets[m]
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	_, day := d.monthAndDay(d.Year())
	return day
}

// DayOfMonth is an alias for Day.
func (d Date) DayOfMonth() int {
	return d.Day()
}

// Date returns the year, month and day specified by d.
func (d Date) Date() (year int, month time.Month, day int) {
	year = d.Year()
	month, day = d.monthAndDay(year)
	return year, month, day
}

// IsEndOfMonth reports whether d is the last day of its month.
func (d Date) IsEndOfMonth() bool {
	if d.IsZero() {
		return false
	}
	year, month, day := d.Date()
	return day == monthLength[leapIndex(year)][month]
}

// EndOfMonth returns the last day of the month in which d occurs. The null
// date is returned unchanged.
func (d Date) EndOfMonth() Date {
	if d.IsZero() {
		return d
	}
	year, month, day := d.Date()
	return Date{d.serial - day + monthLength[leapIndex(year)][month]}
}

// Weekday returns the day of the week specified by d.
func (d Date) Weekday() time.Weekday {
	// Serial number 1 (1900-01-01) was a Sunday.
	return time.Weekday((d.serial + 6) % 7)
}

// NextWeekday returns the first date on or after d that falls on wd.
func (d Date) NextWeekday(wd time.Weekday) (Date, error) {
	return d.Add(int(wd-d.Weekday()+7) % 7)
}

// NthWeekday returns the n-th occurrence of wd in the given month and year.
// n must be in [1,5]. If the month has fewer than n such days, NthWeekday
// returns a *RangeError for the day.
func NthWeekday(n int, wd time.Weekday, month time.Month, year int) (Date, error) {
	if n < 1 || n > 5 {
		return Date{}, &RangeError{Param: "nth", Value: n, Range: "[1,5]"}
	}
	if wd < time.Sunday || wd > time.Saturday {
		return Date{}, &RangeError{Param: "weekday", Value: int(wd), Range: "[0,6]"}
	}
	first, err := Of(year, month, 1)
	if err != nil {
		return Date{}, err
	}
	skip := int(wd-first.Weekday()+7) % 7
	return Of(year, month, 1+skip+7*(n-1))
}

// Add returns the date n days after d. It returns a *RangeError if the result
// is out of range or d is the null date.
func (d Date) Add(n int) (Date, error) {
	if d.IsZero() {
		return FromSerial(0)
	}
	return FromSerial(d.serial + n)
}

// SubDays returns the date n days before d. It returns a *RangeError if the
// result is out of range or d is the null date.
func (d Date) SubDays(n int) (Date, error) {
	return d.Add(-n)
}

// Next returns the day after d.
func (d Date) Next() (Date, error) {
	return d.Add(1)
}

// Prev returns the day before d.
func (d Date) Prev() (Date, error) {
	return d.Add(-1)
}

// Sub returns the number of days from e to d.
func (d Date) Sub(e Date) int {
	return d.serial - e.serial
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return d.serial < e.serial
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return d.serial > e.serial
}

// Compare compares d and e. It returns -1 if d is before e, +1 if d is after
// e and 0 if they are the same date.
func (d Date) Compare(e Date) int {
	switch {
	case d.serial < e.serial:
		return -1
	case d.serial > e.serial:
		return +1
	}
	return 0
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source code.
func (d Date) GoString() string {
	if d.IsZero() {
		return "calendar.Date{}"
	}
	year, month, day := d.Date()
	return fmt.Sprintf("calendar.MustOf(%d, %d, %d)", year, month, day)
}

// String returns d in the fixed-width Canonical layout, e.g. "15-Jul-2024".
//
// The returned string is meant for display; for a stable serialized
// representation, use d.MarshalText or d.MarshalBinary.
func (d Date) String() string {
	if d.IsZero() {
		return "null date"
	}
	return d.Format(Canonical)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as a [binary.Varint] of its serial number. The null date can not
// be marshaled.
func (d Date) MarshalBinary() ([]byte, error) {
	if d.IsZero() {
		return nil, errMarshalNull
	}
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, int64(d.serial))], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Date) UnmarshalBinary(b []byte) error {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0 || int64(int(v)) != v:
		return errors.New("encoded date overflows int")
	case i != len(b):
		return errors.New("extra data after date")
	}
	nd, err := FromSerial(int(v))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

var errMarshalNull = errors.New("calendar: cannot marshal null date")

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted in ISO 8601 format.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, errMarshalNull
	}
	return d.AppendFormat(nil, ISO8601), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// must be in ISO 8601 format.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := Parse(ISO8601, string(b))
	if err == nil {
		*d = v
	}
	return err
}
