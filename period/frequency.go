// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "strconv"

// A Frequency is a number of events per year. The value of the monthly and
// weekly frequencies is the number of events in a year.
type Frequency int

const (
	NoFrequency      Frequency = -1  // null frequency
	Once             Frequency = 0   // only once, e.g., a zero-coupon
	Annual           Frequency = 1   // once a year
	Semiannual       Frequency = 2   // twice a year
	EveryFourthMonth Frequency = 3   // every fourth month
	Quarterly        Frequency = 4   // every third month
	Bimonthly        Frequency = 6   // every second month
	Monthly          Frequency = 12  // once a month
	EveryFourthWeek  Frequency = 13  // every fourth week
	Biweekly         Frequency = 26  // every second week
	Weekly           Frequency = 52  // once a week
	Daily            Frequency = 365 // once a day
	OtherFrequency   Frequency = 999 // some other unknown frequency
)

// FromTimesPerYear returns the month based Frequency for n events per year,
// or OtherFrequency if there is none.
func FromTimesPerYear(n int) Frequency {
	switch f := Frequency(n); f {
	case Annual, Semiannual, EveryFourthMonth, Quarterly, Bimonthly, Monthly:
		return f
	}
	return OtherFrequency
}

func (f Frequency) String() string {
	switch f {
	case NoFrequency:
		return "No-Frequency"
	case Once:
		return "Once"
	case Annual:
		return "Annual"
	case Semiannual:
		return "Semiannual"
	case EveryFourthMonth:
		return "Every-Fourth-Month"
	case Quarterly:
		return "Quarterly"
	case Bimonthly:
		return "Bimonthly"
	case Monthly:
		return "Monthly"
	case EveryFourthWeek:
		return "Every-Fourth-Week"
	case Biweekly:
		return "Biweekly"
	case Weekly:
		return "Weekly"
	case Daily:
		return "Daily"
	case OtherFrequency:
		return "Unknown frequency"
	}
	return "Frequency(" + strconv.Itoa(int(f)) + ")"
}

// FromFrequency returns the Period between two events of frequency f.
// NoFrequency and Once map to zero periods of Days and Years respectively.
// It returns a *ValueError for OtherFrequency and unknown values.
func FromFrequency(f Frequency) (Period, error) {
	switch f {
	case NoFrequency:
		return Period{0, Days}, nil
	case Once:
		return Period{0, Years}, nil
	case Annual:
		return Period{1, Years}, nil
	case Semiannual, EveryFourthMonth, Quarterly, Bimonthly, Monthly:
		return Period{12 / int(f), Months}, nil
	case EveryFourthWeek, Biweekly, Weekly:
		return Period{52 / int(f), Weeks}, nil
	case Daily:
		return Period{1, Days}, nil
	}
	return Period{}, &ValueError{Param: "frequency", Value: int(f)}
}

// Frequency returns the Frequency with p as the time between events. The sign
// of p is ignored. A zero period maps to Once if its unit is Years and to
// NoFrequency otherwise. Periods that do not divide a year evenly into one of
// the known frequencies map to OtherFrequency.
func (p Period) Frequency() (Frequency, error) {
	n := p.length
	if n < 0 {
		n = -n
	}
	if n == 0 {
		if p.units == Years {
			return Once, nil
		}
		return NoFrequency, nil
	}
	switch p.units {
	case Years:
		if n == 1 {
			return Annual, nil
		}
		return OtherFrequency, nil
	case Months:
		if 12%n == 0 && n <= 12 {
			return FromTimesPerYear(12 / n), nil
		}
		return OtherFrequency, nil
	case Weeks:
		switch n {
		case 1:
			return Weekly, nil
		case 2:
			return Biweekly, nil
		case 4:
			return EveryFourthWeek, nil
		}
		return OtherFrequency, nil
	case Days:
		if n == 1 {
			return Daily, nil
		}
		return OtherFrequency, nil
	}
	return OtherFrequency, &UnitError{Unit: p.units, Length: p.length}
}
