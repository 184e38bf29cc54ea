package cmd

import (
	"flag"
	"fmt"

	"github.com/hyunwoo/cashbook"
	"github.com/hyunwoo/cashbook/date"
)

// filterFlags is the record selection shared by the listing and editing
// commands. Every command exposing it accepts the same flags with the
// same meaning.
type filterFlags struct {
	period   string
	start    string
	end      string
	kind     string
	category string
	keyword  string
	recent   bool
}

func (ff *filterFlags) register(f *flag.FlagSet) {
	f.StringVar(&ff.period, "p", "", "Predefined period containing the -d date (day, week, month, quarter, year).")
	f.StringVar(&ff.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&ff.end, "d", "", "The end date for the range, defaults to today when a range is requested.")
	f.StringVar(&ff.kind, "k", "", "Keep only records of this kind (income, expense).")
	f.StringVar(&ff.category, "c", "", "Keep only records of this category.")
	f.StringVar(&ff.keyword, "q", "", "Keep only records whose description contains this keyword.")
	f.BoolVar(&ff.recent, "r", false, "List most recent records first.")
}

// criteria translates the flags into selection criteria. No range flag
// at all means the full ledger.
func (ff *filterFlags) criteria() (cashbook.Criteria, error) {
	var c cashbook.Criteria

	if ff.period != "" || ff.start != "" || ff.end != "" {
		end := date.Today()
		if ff.end != "" {
			var err error
			end, err = date.Parse(ff.end)
			if err != nil {
				return c, fmt.Errorf("parsing end date: %w", err)
			}
		}
		switch {
		case ff.start != "":
			start, err := date.Parse(ff.start)
			if err != nil {
				return c, fmt.Errorf("parsing start date: %w", err)
			}
			c.Range = date.NewRange(start, end)
		case ff.period != "":
			period, err := date.ParsePeriod(ff.period)
			if err != nil {
				return c, err
			}
			c.Range = period.Range(end)
		default:
			// Only -d given: everything up to that date.
			c.Range = date.NewRange(date.Date{}, end)
		}
	}

	if ff.kind != "" {
		kind, err := cashbook.ParseKind(ff.kind)
		if err != nil {
			return c, err
		}
		c.Kind = &kind
	}
	c.Category = ff.category
	c.Keyword = ff.keyword
	c.MostRecentFirst = ff.recent
	return c, nil
}
