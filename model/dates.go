package model

import (
	"fmt"
	"strings"
	"time"
)

// serialEpoch anchors the 1900 date system. December 31 1899 counts as
// day one and the phantom leap day of 1900 is baked in, which makes
// 1899-12-30 the zero point rather than a real calendar anchor.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DateSerial converts a calendar date to the workbook's day-count
// numeral.
func DateSerial(t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(serialEpoch).Hours() / 24)
}

// strptime conversion tokens accepted by --date-format.
var strptimeTokens = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'H': "15",
	'M': "04",
	'S': "05",
	'j': "002",
	'B': "January",
	'b': "Jan",
	'A': "Monday",
	'a': "Mon",
	'p': "PM",
	'%': "%",
}

// DateLayout translates a strptime-style pattern into a Go time layout.
// A pattern without '%' directives is assumed to already be a Go
// reference layout and is returned unchanged.
func DateLayout(pattern string) (string, error) {
	if !strings.ContainsRune(pattern, '%') {
		return pattern, nil
	}
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			b.WriteByte(pattern[i])
			continue
		}
		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("date format ends with a bare %%")
		}
		token, ok := strptimeTokens[pattern[i]]
		if !ok {
			return "", fmt.Errorf("unsupported date format directive %%%c", pattern[i])
		}
		b.WriteString(token)
	}
	return b.String(), nil
}

// ParseDate parses a date string against a strptime-style or Go layout
// pattern.
func ParseDate(value, pattern string) (time.Time, error) {
	layout, err := DateLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q with format %q: %w", value, pattern, err)
	}
	return t, nil
}
