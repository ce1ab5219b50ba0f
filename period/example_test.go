// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period_test

import (
	"errors"
	"fmt"

	"gonih.org/calendar/period"
)

func Example() {
	tenor := period.MustParse("18M")
	fmt.Println(tenor, tenor.Normalized())

	y, _ := tenor.Years()
	fmt.Println(y)

	// Months and years convert exactly, days and months do not.
	sum, err := tenor.Add(period.New(1, period.Years))
	fmt.Println(sum, err)
	_, err = tenor.Add(period.New(3, period.Days))
	fmt.Println(errors.Is(err, period.ErrIncompatibleOperands))

	// Output:
	// 18M 18M
	// 1.5
	// 30M <nil>
	// true
}

// ExampleLess shows that comparisons which depend on the length of a month
// are reported as undecidable.
func ExampleLess() {
	fmt.Println(period.Less(period.New(1, period.Months), period.New(5, period.Weeks)))
	fmt.Println(period.Equal(period.New(12, period.Months), period.New(1, period.Years)))

	_, err := period.Less(period.New(1, period.Months), period.New(30, period.Days))
	fmt.Println(err)
	fmt.Println(errors.Is(err, period.ErrUndecidable))

	// Output:
	// true <nil>
	// true <nil>
	// period: 1M < 30D: undecidable comparison
	// true
}

func ExamplePeriod_Div() {
	fmt.Println(period.New(6, period.Months).Div(3))
	fmt.Println(period.New(5, period.Years).Div(2))
	fmt.Println(period.New(7, period.Months).Div(2))

	// Output:
	// 2M <nil>
	// 30M <nil>
	// 0D period: 7M / 2: not divisible
}

func ExampleFromFrequency() {
	for _, f := range []period.Frequency{period.Annual, period.Quarterly, period.Biweekly, period.OtherFrequency} {
		p, err := period.FromFrequency(f)
		if err != nil {
			fmt.Println(f, err)
			continue
		}
		back, _ := p.Frequency()
		fmt.Println(f, p, back)
	}

	// Output:
	// Annual 1Y Annual
	// Quarterly 3M Quarterly
	// Biweekly 2W Biweekly
	// Unknown frequency period: unsupported frequency 999
}
