// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gonih.org/calendar"
	"gonih.org/calendar/period"
)

// leg is a simple schedule definition, as found in configuration files.
type leg struct {
	Start     calendar.Date   `yaml:"start"`
	Tenor     period.Period   `yaml:"tenor"`
	Frequency period.Period   `yaml:"frequency"`
	Fixings   []calendar.Date `yaml:"fixings,omitempty"`
}

const legYAML = `
start: "2024-07-15"
tenor: 1Y6M
frequency: 3m
fixings:
  - "2024-10-15"
  - "2025-01-15"
`

func TestDecodeYAML(t *testing.T) {
	var l leg
	require.NoError(t, yaml.Unmarshal([]byte(legYAML), &l))

	assert.Equal(t, calendar.MustOf(2024, time.July, 15), l.Start)
	assert.Equal(t, period.New(18, period.Months), l.Tenor)
	assert.Equal(t, period.New(3, period.Months), l.Frequency)
	assert.Equal(t, []calendar.Date{
		calendar.MustOf(2024, time.October, 15),
		calendar.MustOf(2025, time.January, 15),
	}, l.Fixings)

	f, err := l.Frequency.Frequency()
	require.NoError(t, err)
	assert.Equal(t, period.Quarterly, f)

	n, err := l.Tenor.Div(3)
	require.NoError(t, err)
	assert.Equal(t, "6M", n.String())
}

func TestDecodeYAMLErrors(t *testing.T) {
	tcs := []string{
		"start: \"2023-02-29\"\n",
		"start: \"29-Feb-2024\"\n",
		"tenor: 1Y3D\n",
		"frequency: M\n",
	}
	for _, tc := range tcs {
		var l leg
		assert.Error(t, yaml.Unmarshal([]byte(tc), &l), "%q", tc)
	}
}

func TestEncodeYAML(t *testing.T) {
	in := leg{
		Start:     calendar.MustOf(2024, time.July, 15),
		Tenor:     period.MustParse("2Y"),
		Frequency: period.New(-1, period.Weeks),
	}
	b, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), "tenor: 2Y\n")
	assert.Contains(t, string(b), "frequency: -1W\n")

	var out leg
	require.NoError(t, yaml.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}
