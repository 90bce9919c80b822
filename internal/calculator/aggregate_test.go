package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/tripledger/internal/models"
)

func at(ts time.Time, payer models.Payer, amount float64) models.Expense {
	return models.Expense{PaidBy: payer, Amount: amount, Timestamp: ts}
}

func TestSpendingTotals(t *testing.T) {
	expenses := []models.Expense{
		paid("Alice", 40),
		paid("Bob", 10),
		paid("Alice", 5.5),
		selfPaid(100),
	}
	got := SpendingTotals([]string{"Alice", "Bob", "Charlie"}, expenses)

	want := []MemberTotal{{"Alice", 45.5}, {"Bob", 10}, {"Charlie", 0}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Name != want[i].Name || math.Abs(got[i].Total-want[i].Total) > Tolerance {
			t.Errorf("index %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDayWiseTotals(t *testing.T) {
	d1 := time.Date(2025, 3, 1, 9, 15, 0, 0, time.UTC)
	d1Late := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 2, 0, 1, 0, 0, time.UTC)
	d0 := time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC)

	expenses := []models.Expense{
		at(d2, models.PaidBy("Bob"), 20),
		at(d1, models.PaidBy("Alice"), 30),
		at(d1Late, models.SelfPaid(), 12.5),
		at(d0, models.PaidBy("Alice"), 7),
	}

	got := DayWiseTotals(expenses, nil)
	want := []struct {
		day   string
		total float64
	}{
		{"2025-02-28", 7},
		{"2025-03-01", 42.5},
		{"2025-03-02", 20},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d days, want %d: %+v", len(got), len(want), got)
	}
	var sum float64
	for i := range want {
		if got[i].Day() != want[i].day {
			t.Errorf("day %d = %s, want %s", i, got[i].Day(), want[i].day)
		}
		if math.Abs(got[i].Total-want[i].total) > Tolerance {
			t.Errorf("%s total = %v, want %v", got[i].Day(), got[i].Total, want[i].total)
		}
		sum += got[i].Total
	}
	if math.Abs(sum-TotalSpent(expenses)) > Tolerance {
		t.Errorf("day totals sum to %v, want %v", sum, TotalSpent(expenses))
	}
}

func TestDayWiseTotals_Location(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on Mar 1 is already Mar 2 in IST.
	ts := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	expenses := []models.Expense{at(ts, models.PaidBy("Alice"), 10)}

	if got := DayWiseTotals(expenses, nil); got[0].Day() != "2025-03-01" {
		t.Errorf("UTC day = %s, want 2025-03-01", got[0].Day())
	}
	if got := DayWiseTotals(expenses, kolkata); got[0].Day() != "2025-03-02" {
		t.Errorf("IST day = %s, want 2025-03-02", got[0].Day())
	}
}

func TestDayWiseTotals_Empty(t *testing.T) {
	if got := DayWiseTotals(nil, time.UTC); len(got) != 0 {
		t.Errorf("expected no days, got %v", got)
	}
}

func TestTotalSpent(t *testing.T) {
	got := TotalSpent([]models.Expense{paid("A", 10), selfPaid(5), paid("B", 2.5)})
	if got != 17.5 {
		t.Errorf("TotalSpent() = %v, want 17.5", got)
	}
}
