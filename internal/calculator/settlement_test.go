package calculator

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/mmynk/tripledger/internal/models"
)

func nets(pairs ...any) Balances {
	var b Balances
	for i := 0; i < len(pairs); i += 2 {
		b = append(b, MemberBalance{Name: pairs[i].(string), Net: pairs[i+1].(float64)})
	}
	return b
}

// replay applies transfers to the balances: the payer's balance rises and the
// receiver's falls by the transferred amount.
func replay(b Balances, transfers []Transfer) map[string]float64 {
	out := b.Map()
	for _, tr := range transfers {
		out[tr.From] += tr.Amount
		out[tr.To] -= tr.Amount
	}
	return out
}

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name     string
		balances Balances
		want     []Transfer
	}{
		{
			name:     "one debtor one creditor",
			balances: nets("Alice", 50.0, "Bob", -50.0),
			want:     []Transfer{{From: "Bob", To: "Alice", Amount: 50}},
		},
		{
			name:     "two debtors one creditor",
			balances: nets("A", 60.0, "B", -30.0, "C", -30.0),
			want: []Transfer{
				{From: "B", To: "A", Amount: 30},
				{From: "C", To: "A", Amount: 30},
			},
		},
		{
			name:     "order-stable matching, not by magnitude",
			balances: nets("A", -10.0, "B", -40.0, "C", 20.0, "D", 30.0),
			want: []Transfer{
				{From: "A", To: "C", Amount: 10},
				{From: "B", To: "C", Amount: 10},
				{From: "B", To: "D", Amount: 30},
			},
		},
		{
			name:     "dust below tolerance is ignored",
			balances: nets("A", 0.004, "B", -0.004, "C", 10.0, "D", -10.0),
			want:     []Transfer{{From: "D", To: "C", Amount: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeSettlement(tt.balances)
			if err != nil {
				t.Fatalf("ComputeSettlement() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d transfers %+v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i].From != tt.want[i].From || got[i].To != tt.want[i].To {
					t.Errorf("transfer %d: got %s->%s, want %s->%s",
						i, got[i].From, got[i].To, tt.want[i].From, tt.want[i].To)
				}
				if math.Abs(got[i].Amount-tt.want[i].Amount) > Tolerance {
					t.Errorf("transfer %d amount = %v, want %v", i, got[i].Amount, tt.want[i].Amount)
				}
			}
		})
	}
}

func TestComputeSettlement_AllSettled(t *testing.T) {
	got, err := ComputeSettlement(nets("A", 0.0, "B", 0.005, "C", -0.005))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
}

func TestComputeSettlement_Empty(t *testing.T) {
	got, err := ComputeSettlement(ComputeBalances(nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no transfers, got %v", got)
	}
}

func TestComputeSettlement_Inconsistent(t *testing.T) {
	got, err := ComputeSettlement(nets("A", 50.0, "B", -20.0))
	if !errors.Is(err, ErrInconsistentLedger) {
		t.Fatalf("error = %v, want ErrInconsistentLedger", err)
	}
	if got != nil {
		t.Errorf("expected no transfers on inconsistent ledger, got %v", got)
	}
}

func TestComputeSettlement_Properties(t *testing.T) {
	trips := []struct {
		participants []string
		expenses     []models.Expense
	}{
		{
			participants: []string{"Alice", "Bob", "Charlie", "Diana"},
			expenses: []models.Expense{
				paid("Alice", 120.5), paid("Bob", 33.3), paid("Alice", 14.25),
				paid("Diana", 77), selfPaid(40),
			},
		},
		{
			participants: []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"},
			expenses: []models.Expense{
				paid("P1", 10), paid("P2", 20), paid("P3", 30.33), paid("P4", 0.99),
				paid("P5", 1000), paid("P1", 3.33), paid("P7", 17.17),
			},
		},
		{
			participants: []string{"Solo"},
			expenses:     []models.Expense{paid("Solo", 42)},
		},
	}

	for _, trip := range trips {
		balances := ComputeBalances(trip.participants, trip.expenses)
		transfers, err := ComputeSettlement(balances)
		if err != nil {
			t.Fatalf("ComputeSettlement() error = %v", err)
		}

		if limit := max(0, len(trip.participants)-1); len(transfers) > limit {
			t.Errorf("%d transfers exceeds bound %d", len(transfers), limit)
		}
		for _, tr := range transfers {
			if tr.Amount <= 0 {
				t.Errorf("non-positive transfer %+v", tr)
			}
		}
		for name, rest := range replay(balances, transfers) {
			if math.Abs(rest) > Tolerance {
				t.Errorf("%s left with %v after settlement", name, rest)
			}
		}

		again, _ := ComputeSettlement(balances)
		if !reflect.DeepEqual(transfers, again) {
			t.Errorf("settlement not idempotent: %v vs %v", transfers, again)
		}
	}
}

// Scenarios from the ledger's acceptance notes.
func TestScenarios(t *testing.T) {
	t.Run("A", func(t *testing.T) {
		b := ComputeBalances([]string{"Alice", "Bob"}, []models.Expense{paid("Alice", 100)})
		m := b.Map()
		if m["Alice"] != 50 || m["Bob"] != -50 {
			t.Errorf("balances = %v", m)
		}
		tr, err := ComputeSettlement(b)
		if err != nil {
			t.Fatal(err)
		}
		want := []Transfer{{From: "Bob", To: "Alice", Amount: 50}}
		if !reflect.DeepEqual(tr, want) {
			t.Errorf("settlement = %v, want %v", tr, want)
		}
	})

	t.Run("B", func(t *testing.T) {
		exp := []models.Expense{paid("A", 90), paid("B", 0), paid("C", 0), selfPaid(30)}
		if SharedPool(exp) != 90 {
			t.Errorf("shared pool = %v, want 90", SharedPool(exp))
		}
		b := ComputeBalances([]string{"A", "B", "C"}, exp)
		tr, err := ComputeSettlement(b)
		if err != nil {
			t.Fatal(err)
		}
		want := []Transfer{{From: "B", To: "A", Amount: 30}, {From: "C", To: "A", Amount: 30}}
		if !reflect.DeepEqual(tr, want) {
			t.Errorf("settlement = %v, want %v", tr, want)
		}
	})

	t.Run("C", func(t *testing.T) {
		tr, err := ComputeSettlement(nets("X", 0.001, "Y", -0.001))
		if err != nil || len(tr) != 0 {
			t.Errorf("got %v, %v; want empty list", tr, err)
		}
	})

	t.Run("D", func(t *testing.T) {
		b := ComputeBalances([]string{}, []models.Expense{paid("A", 10)})
		if len(b) != 0 {
			t.Errorf("got %v, want empty", b)
		}
	})
}
