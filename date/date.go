// Package date provides calendar dates with day granularity, inclusive
// date ranges, and standard accounting periods.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format is the canonical representation of dates, ISO-8601.
const Format = "2006-01-02"

// readFormats are the accepted input formats, most common first. Ledger
// files written by hand or exported from spreadsheets use all of them.
var readFormats = []string{
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"20060102",
}

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns the canonical time.Time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return New(d.y, d.m+time.Month(i), d.d) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// String formats the date in its canonical format.
func (d Date) String() string { return d.time().Format(Format) }

// Fmt returns a textual representation of the date according to the
// layout, see [time.Time.Format].
func (d Date) Fmt(layout string) string { return d.time().Format(layout) }

// Parse parses a Date from a string. It is lenient: it accepts
// "2025-7-1", "2025/07/01", "2025.07.01" and "20250701" alike.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, f := range readFormats {
		if on, err := time.Parse(f, str); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want format %q", str, Format)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON implements json.Marshaler. The zero date marshals as the
// empty string.
func (d Date) MarshalJSON() ([]byte, error) {
	var str string
	if !d.IsZero() {
		str = d.String()
	}
	return json.Marshal(&str)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
