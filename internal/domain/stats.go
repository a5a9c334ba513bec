package domain

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// Stats are the aggregate numbers reported over all orders.
type Stats struct {
	Total      int
	Sum        decimal.Decimal
	Completed  int
	InProgress int
}

func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Total      int    `json:"total"`
		Sum        string `json:"sum"`
		Completed  int    `json:"completed"`
		InProgress int    `json:"in_progress"`
	}{s.Total, s.Sum.StringFixed(AmountPlaces), s.Completed, s.InProgress})
}

// ComputeStats aggregates orders. InProgress is Total minus Completed, so any
// status other than Completed lands there.
func ComputeStats(orders []Order) Stats {
	st := Stats{Total: len(orders), Sum: decimal.Zero}
	for _, o := range orders {
		st.Sum = st.Sum.Add(o.Amount)
		if o.Status.IsCompleted() {
			st.Completed++
		}
	}
	st.InProgress = st.Total - st.Completed
	return st
}

// StatusSeries feeds the status proportion chart.
type StatusSeries struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
}

// Total is the number of orders in the series.
func (s StatusSeries) Total() int { return s.Completed + s.InProgress }

func ComputeStatusSeries(orders []Order) StatusSeries {
	st := ComputeStats(orders)
	return StatusSeries{Completed: st.Completed, InProgress: st.InProgress}
}

// DateCount is the number of orders placed on one date.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ComputeDateSeries buckets orders by distinct date, oldest first.
func ComputeDateSeries(orders []Order) []DateCount {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.DateText()]++
	}
	series := make([]DateCount, 0, len(counts))
	for d, n := range counts {
		series = append(series, DateCount{Date: d, Count: n})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// CompareMode selects how order amounts are ranked by Largest.
type CompareMode string

const (
	// CompareText ranks the two-decimal amount text lexicographically, so
	// "999.00" beats "1000.00". This matches how existing data files have
	// always been ranked.
	CompareText CompareMode = "text"
	// CompareNumeric ranks amounts by value.
	CompareNumeric CompareMode = "numeric"
)

var ValidCompareModes = []CompareMode{CompareText, CompareNumeric}

// Largest returns the order with the greatest amount under mode. The first
// maximum wins ties. ok is false when orders is empty.
func Largest(orders []Order, mode CompareMode) (largest Order, ok bool) {
	if len(orders) == 0 {
		return Order{}, false
	}
	largest = orders[0]
	for _, o := range orders[1:] {
		if greater(o, largest, mode) {
			largest = o
		}
	}
	return largest, true
}

func greater(a, b Order, mode CompareMode) bool {
	if mode == CompareNumeric {
		return a.Amount.GreaterThan(b.Amount)
	}
	return a.AmountText() > b.AmountText()
}
