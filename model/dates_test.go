package model

import (
	"testing"
	"time"
)

func TestDateSerial(t *testing.T) {
	for _, r := range []struct {
		y      int
		m      time.Month
		d      int
		expect int
	}{
		{1899, time.December, 30, 0},
		{1899, time.December, 31, 1},
		{1900, time.January, 1, 2},
		{2024, time.January, 1, 45292},
		{2024, time.January, 15, 45306},
	} {
		day := time.Date(r.y, r.m, r.d, 0, 0, 0, 0, time.UTC)
		if serial := DateSerial(day); serial != r.expect {
			t.Errorf("DateSerial(%s) = %d, expected %d", day.Format("2006-01-02"), serial, r.expect)
		}
	}
}

func TestDateSerialIgnoresTimeOfDay(t *testing.T) {
	day := time.Date(2024, time.January, 1, 23, 59, 59, 0, time.UTC)
	if serial := DateSerial(day); serial != 45292 {
		t.Errorf("DateSerial = %d, expected 45292", serial)
	}
}

func TestDateLayout(t *testing.T) {
	for _, r := range []struct {
		pattern string
		expect  string
	}{
		{"%Y-%m-%d", "2006-01-02"},
		{"%d/%m/%Y", "02/01/2006"},
		{"%d %b %Y", "02 Jan 2006"},
		{"%Y-%m-%d %H:%M:%S", "2006-01-02 15:04:05"},
		{"100%%", "100%"},
		{"2006-01-02", "2006-01-02"},
		{"Jan _2 2006", "Jan _2 2006"},
	} {
		layout, err := DateLayout(r.pattern)
		if err != nil {
			t.Errorf("DateLayout(%q) failed: %s", r.pattern, err)
			continue
		}
		if layout != r.expect {
			t.Errorf("DateLayout(%q) = %q, expected %q", r.pattern, layout, r.expect)
		}
	}
}

func TestDateLayoutRejectsUnknownDirectives(t *testing.T) {
	for _, pattern := range []string{"%Q", "%Y-%m-%"} {
		if _, err := DateLayout(pattern); err == nil {
			t.Errorf("DateLayout(%q) should have failed", pattern)
		}
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-15", "%Y-%m-%d")
	if err != nil {
		t.Fatalf("ParseDate failed: %s", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.January || parsed.Day() != 15 {
		t.Errorf("ParseDate returned %s", parsed)
	}

	if _, err = ParseDate("15/01/2024", "%Y-%m-%d"); err == nil {
		t.Error("ParseDate should have failed on a mismatched pattern")
	}
}
