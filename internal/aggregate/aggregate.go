// Package aggregate derives dashboard summaries from expense records.
// All reducers are pure: they never mutate their input and produce the
// same output for the same input regardless of call order.
package aggregate

import (
	"github.com/chloroplast/expense-server/internal/apiserver/database"
)

// Stat accumulates a count and a total amount
type Stat struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

// MonthStat accumulates a month's totals with a per-department breakdown
type MonthStat struct {
	Count        int                    `json:"count"`
	TotalAmount  float64                `json:"totalAmount"`
	ByDepartment map[database.Role]Stat `json:"byDepartment"`
}

// CategoryStat accumulates a category's totals and its share of the grand total
type CategoryStat struct {
	Count             int     `json:"count"`
	TotalAmount       float64 `json:"totalAmount"`
	PercentageOfTotal float64 `json:"percentageOfTotal"`
}

// ByDepartment buckets expenses per department
func ByDepartment(expenses []*database.Expense) map[database.Role]Stat {
	out := make(map[database.Role]Stat, 8)
	for _, e := range expenses {
		s := out[e.Department]
		s.Count++
		s.TotalAmount += e.Amount
		out[e.Department] = s
	}
	return out
}

// ByMonth buckets expenses per calendar month with a department breakdown.
// Month keys are "YYYY-MM" derived from the expense date in UTC.
func ByMonth(expenses []*database.Expense) map[string]MonthStat {
	out := make(map[string]MonthStat)
	for _, e := range expenses {
		key := e.Date.UTC().Format("2006-01")
		m, ok := out[key]
		if !ok {
			m = MonthStat{ByDepartment: make(map[database.Role]Stat, 8)}
		}
		m.Count++
		m.TotalAmount += e.Amount

		d := m.ByDepartment[e.Department]
		d.Count++
		d.TotalAmount += e.Amount
		m.ByDepartment[e.Department] = d

		out[key] = m
	}
	return out
}

// ByCategory buckets expenses per category and computes each category's
// percentage of the grand total. When the grand total is zero every
// percentage is zero.
func ByCategory(expenses []*database.Expense) map[string]CategoryStat {
	out := make(map[string]CategoryStat)
	var grand float64
	for _, e := range expenses {
		s := out[e.Category]
		s.Count++
		s.TotalAmount += e.Amount
		out[e.Category] = s
		grand += e.Amount
	}
	if grand == 0 {
		return out
	}
	for category, s := range out {
		s.PercentageOfTotal = s.TotalAmount / grand * 100
		out[category] = s
	}
	return out
}

// Total returns the overall count and amount of the expense set
func Total(expenses []*database.Expense) Stat {
	var s Stat
	for _, e := range expenses {
		s.Count++
		s.TotalAmount += e.Amount
	}
	return s
}
