package calculator

import "github.com/mmynk/tripledger/internal/models"

// MemberBalance represents the balance information for one trip participant.
type MemberBalance struct {
	Name  string
	Paid  float64 // Total fronted for shared expenses
	Share float64 // Equal share of the shared pool
	Net   float64 // Positive = owed money, Negative = owes money
}

// Balances is a list of member balances in participant order.
type Balances []MemberBalance

// Sum returns the sum of all net balances. It is zero within Tolerance for a
// consistent ledger.
func (b Balances) Sum() float64 {
	var sum float64
	for _, m := range b {
		sum += m.Net
	}
	return sum
}

// Lookup returns the balance for name.
func (b Balances) Lookup(name string) (MemberBalance, bool) {
	for _, m := range b {
		if m.Name == name {
			return m, true
		}
	}
	return MemberBalance{}, false
}

// Map returns net balances keyed by participant name.
func (b Balances) Map() map[string]float64 {
	out := make(map[string]float64, len(b))
	for _, m := range b {
		out[m.Name] = m.Net
	}
	return out
}

// AllSettled reports whether every member is settled within Tolerance.
// An empty list is not considered settled; see ComputeBalances.
func (b Balances) AllSettled() bool {
	if len(b) == 0 {
		return false
	}
	for _, m := range b {
		if !IsSettled(m.Net) {
			return false
		}
	}
	return true
}

// ComputeBalances computes each participant's net position for a trip.
//
// Algorithm:
//   - shared pool = sum of all expenses not paid for self
//   - share = pool / number of participants
//   - paid(p) = sum of expenses paid by p
//   - net(p) = paid(p) - share
//
// Duplicate names keep their first position and count once. With no
// participants the result is empty and no division takes place.
func ComputeBalances(participants []string, expenses []models.Expense) Balances {
	names := distinct(participants)
	if len(names) == 0 {
		return Balances{}
	}

	share := PerPersonShare(SharedPool(expenses), len(names))

	paid := make(map[string]float64, len(names))
	for _, e := range expenses {
		if name, ok := e.PaidBy.Participant(); ok {
			paid[name] += e.Amount
		}
	}

	balances := make(Balances, len(names))
	for i, name := range names {
		balances[i] = MemberBalance{
			Name:  name,
			Paid:  paid[name],
			Share: share,
			Net:   paid[name] - share,
		}
	}
	return balances
}

func distinct(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
