package cashbook

import (
	"reflect"
	"testing"
)

func TestSummarize(t *testing.T) {
	testCases := []struct {
		name    string
		records []Record
		want    Summary
	}{
		{"empty", nil, Summary{}},
		{
			"mixed kinds",
			[]Record{
				{ID: 1, Kind: Expense, Category: "food", Amount: 10000},
				{ID: 2, Kind: Income, Amount: 50000},
			},
			Summary{Income: 50000, Expense: 10000, Balance: 40000},
		},
		{
			"expense only",
			[]Record{{ID: 1, Kind: Expense, Amount: 300}},
			Summary{Expense: 300, Balance: -300},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summarize(tc.records); got != tc.want {
				t.Errorf("Summarize = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSummarize_Additive(t *testing.T) {
	a := []Record{
		{ID: 1, Kind: Income, Amount: 1000},
		{ID: 2, Kind: Expense, Amount: 300},
	}
	b := []Record{
		{ID: 3, Kind: Expense, Amount: 200},
		{ID: 4, Kind: Income, Amount: 50},
	}
	sa, sb := Summarize(a), Summarize(b)
	combined := Summarize(append(append([]Record{}, a...), b...))
	want := Summary{
		Income:  sa.Income + sb.Income,
		Expense: sa.Expense + sb.Expense,
		Balance: sa.Balance + sb.Balance,
	}
	if combined != want {
		t.Errorf("Summarize(A++B) = %+v, want component-wise sum %+v", combined, want)
	}
}

func TestCategoryTotals(t *testing.T) {
	records := []Record{
		{ID: 1, Kind: Expense, Category: "food", Amount: 10000},
		{ID: 2, Kind: Income, Category: "salary", Amount: 50000},
		{ID: 3, Kind: Expense, Category: "food", Amount: 2500},
		{ID: 4, Kind: Expense, Category: "transport", Amount: 1500},
	}
	got := CategoryTotals(records)
	want := map[string]int64{"food": 12500, "transport": 1500}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryTotals = %v, want %v", got, want)
	}
}

func TestCategoryTotalsFixed(t *testing.T) {
	records := []Record{
		{ID: 1, Kind: Expense, Category: "food", Amount: 10000},
		{ID: 2, Kind: Expense, Category: "hobby", Amount: 7000},
	}
	universe := []string{"food", "transport", "living", "etc"}
	got := CategoryTotalsFixed(records, universe)
	want := map[string]int64{
		"food":      10000,
		"transport": 0,
		"living":    0,
		"etc":       0,
		"hobby":     7000, // outside the universe but never dropped
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryTotalsFixed = %v, want %v", got, want)
	}
}

func TestKeywordSpend(t *testing.T) {
	records := []Record{
		{ID: 1, Kind: Expense, Description: "Subway to work", Amount: 1500},
		{ID: 2, Kind: Expense, Description: "lunch near the subway station", Amount: 9000},
		{ID: 3, Kind: Income, Description: "subway refund", Amount: 1500},
		{ID: 4, Kind: Expense, Description: "groceries", Amount: 30000},
	}
	count, total := KeywordSpend(records, "SUBWAY")
	if count != 2 || total != 10500 {
		t.Errorf("KeywordSpend = %d, %d, want 2, 10500 (expenses only, case-insensitive)", count, total)
	}
	if c, tot := KeywordSpend(records, "  "); c != 0 || tot != 0 {
		t.Errorf("blank keyword = %d, %d, want zeros", c, tot)
	}
}
