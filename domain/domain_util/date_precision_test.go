package domain_util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestFormatRecordingDate(t *testing.T) {
	cases := []struct {
		name      string
		date      *time.Time
		year      int
		precision string
		want      string
	}{
		{"year precision shows release year", datePtr(1995, 6, 1), 1995, PrecisionYear, "1995"},
		{"year precision ignores date", datePtr(2001, 3, 3), 1995, PrecisionYear, "1995"},
		{"year precision without year", nil, 0, PrecisionYear, ""},
		{"full precision long form", datePtr(2023, 4, 10), 2023, PrecisionFull, "10 April 2023"},
		{"legacy document defaults to full", datePtr(2023, 4, 10), 2023, "", "10 April 2023"},
		{"full without date falls back to year", nil, 1987, PrecisionFull, "1987"},
		{"nothing known", nil, 0, PrecisionFull, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatRecordingDate(tc.date, tc.year, tc.precision))
		})
	}
}

func TestFormatRecordingDate_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	local := time.Date(2023, 4, 11, 5, 0, 0, 0, loc)

	assert.Equal(t, "10 April 2023", FormatRecordingDate(&local, 2023, PrecisionFull))
}

func TestFormatRecordingDateInput(t *testing.T) {
	assert.Equal(t, "1995", FormatRecordingDateInput(datePtr(1995, 1, 1), PrecisionYear))
	assert.Equal(t, "2023-04-10", FormatRecordingDateInput(datePtr(2023, 4, 10), PrecisionFull))
	assert.Equal(t, "", FormatRecordingDateInput(nil, PrecisionFull))
}

func TestParseRecordingDateInput(t *testing.T) {
	now := time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC)

	date, year := ParseRecordingDateInput("1995", PrecisionYear, now)
	assert.Equal(t, time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, 1995, year)

	date, year = ParseRecordingDateInput("2023-04-10", PrecisionFull, now)
	assert.Equal(t, time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, 2023, year)

	for _, raw := range []string{"", "95", "19955", "abcd", "1995-02-01"} {
		date, year = ParseRecordingDateInput(raw, PrecisionYear, now)
		assert.Equal(t, now, date, raw)
		assert.Equal(t, 2025, year, raw)
	}

	date, year = ParseRecordingDateInput("10/04/2023", PrecisionFull, now)
	assert.Equal(t, now, date)
	assert.Equal(t, 2025, year)
}

func TestConvertDateInputPrecision(t *testing.T) {
	assert.Equal(t, "2023", ConvertDateInputPrecision("2023-04-10", PrecisionYear))
	assert.Equal(t, "1995", ConvertDateInputPrecision("1995", PrecisionYear))
	assert.Equal(t, "1995", ConvertDateInputPrecision("1995", PrecisionFull))
	assert.Equal(t, "", ConvertDateInputPrecision("", PrecisionYear))
}

func TestNormalizePrecision(t *testing.T) {
	assert.Equal(t, PrecisionYear, NormalizePrecision("year"))
	assert.Equal(t, PrecisionFull, NormalizePrecision(""))
	assert.Equal(t, PrecisionFull, NormalizePrecision("month"))
}
