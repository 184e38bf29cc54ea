package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	want := New(2024, time.January, 15)
	testCases := []struct {
		name  string
		input string
	}{
		{"iso", "2024-01-15"},
		{"iso single digit", "2024-1-15"},
		{"slashes", "2024/01/15"},
		{"dots", "2024.01.15"},
		{"compact", "20240115"},
		{"padded", "  2024-01-15 "},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
			}
			if got != want {
				t.Errorf("Parse(%q) = %s, want %s", tc.input, got, want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2024-13-40", "15/01/2024"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) should have failed", input)
		}
	}
}

func TestParseNormalizes(t *testing.T) {
	// New normalizes overflowing components the same way time.Date does.
	if got := New(2024, time.January, 32); got != New(2024, time.February, 1) {
		t.Errorf("New(2024, 1, 32) = %s, want 2024-02-01", got)
	}
}

func TestString(t *testing.T) {
	d := New(2024, time.March, 5)
	if got := d.String(); got != "2024-03-05" {
		t.Errorf("String() = %q, want %q", got, "2024-03-05")
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParse("2024-01-10"), MustParse("2024-01-20"))
	testCases := []struct {
		name string
		day  string
		want bool
	}{
		{"before", "2024-01-09", false},
		{"lower bound", "2024-01-10", true},
		{"inside", "2024-01-15", true},
		{"upper bound", "2024-01-20", true},
		{"after", "2024-01-21", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(MustParse(tc.day)); got != tc.want {
				t.Errorf("Contains(%s) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestRangeOpenEnded(t *testing.T) {
	r := Range{From: MustParse("2024-01-10")}
	if !r.Contains(MustParse("2999-12-31")) {
		t.Error("open-ended range should contain any later date")
	}
	if r.Contains(MustParse("2024-01-09")) {
		t.Error("open-ended range should still enforce its lower bound")
	}
	var all Range
	if !all.Contains(MustParse("1970-01-01")) {
		t.Error("zero range should contain everything")
	}
}

func TestPeriodBoundaries(t *testing.T) {
	d := MustParse("2024-02-14") // a Wednesday
	testCases := []struct {
		name      string
		period    Period
		wantStart string
		wantEnd   string
	}{
		{"daily", Daily, "2024-02-14", "2024-02-14"},
		{"weekly", Weekly, "2024-02-12", "2024-02-18"},
		{"monthly leap", Monthly, "2024-02-01", "2024-02-29"},
		{"quarterly", Quarterly, "2024-01-01", "2024-03-31"},
		{"yearly", Yearly, "2024-01-01", "2024-12-31"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.StartOf(tc.period); got.String() != tc.wantStart {
				t.Errorf("StartOf(%s) = %s, want %s", tc.period, got, tc.wantStart)
			}
			if got := d.EndOf(tc.period); got.String() != tc.wantEnd {
				t.Errorf("EndOf(%s) = %s, want %s", tc.period, got, tc.wantEnd)
			}
		})
	}
}

func TestPeriodRoundTrip(t *testing.T) {
	for _, name := range []string{"day", "week", "month", "quarter", "year"} {
		p, err := ParsePeriod(name)
		if err != nil {
			t.Fatalf("ParsePeriod(%q) returned error: %v", name, err)
		}
		if _, err := ParsePeriod(p.String()); err != nil {
			t.Errorf("ParsePeriod(%q.String()) failed: %v", name, err)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod should reject unknown periods")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2024-06-01")
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON(%s): %v", data, err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
