package calculator

import (
	"sort"
	"time"

	"github.com/mmynk/tripledger/internal/models"
)

// MemberTotal is the gross amount a participant fronted.
type MemberTotal struct {
	Name  string
	Total float64
}

// DayTotal is the amount spent on one calendar day.
type DayTotal struct {
	Date  time.Time // Midnight of the day, in the grouping location
	Total float64
}

// Day formats the date as YYYY-MM-DD.
func (d DayTotal) Day() string {
	return d.Date.Format(time.DateOnly)
}

// TotalSpent sums every expense, self-paid included.
func TotalSpent(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// SpendingTotals returns, for each participant in order, the sum of the
// expenses they paid. This is the gross amount fronted, not the net position.
func SpendingTotals(participants []string, expenses []models.Expense) []MemberTotal {
	paid := make(map[string]float64, len(participants))
	for _, e := range expenses {
		if name, ok := e.PaidBy.Participant(); ok {
			paid[name] += e.Amount
		}
	}

	names := distinct(participants)
	totals := make([]MemberTotal, len(names))
	for i, name := range names {
		totals[i] = MemberTotal{Name: name, Total: paid[name]}
	}
	return totals
}

// DayWiseTotals groups expenses by calendar day and returns the totals in
// chronological order. Every expense counts, self-paid included.
//
// Days are taken from each timestamp in loc; a nil loc uses the timestamp's
// own location.
func DayWiseTotals(expenses []models.Expense, loc *time.Location) []DayTotal {
	byDay := make(map[time.Time]float64)
	for _, e := range expenses {
		ts := e.Timestamp
		if loc != nil {
			ts = ts.In(loc)
		}
		y, m, d := ts.Date()
		byDay[time.Date(y, m, d, 0, 0, 0, 0, ts.Location())] += e.Amount
	}

	days := make([]DayTotal, 0, len(byDay))
	for day, total := range byDay {
		days = append(days, DayTotal{Date: day, Total: total})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}
