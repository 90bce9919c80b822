package models

import "time"

// Payer records who covered an expense: either a named participant or
// nobody in particular (SelfPaid), meaning everyone covered their own cost.
//
// The zero value is SelfPaid.
type Payer struct {
	name string
}

// PaidBy returns a Payer for the named participant.
// An empty name yields SelfPaid.
func PaidBy(name string) Payer {
	return Payer{name: name}
}

// SelfPaid returns the Payer for expenses that are excluded from the shared split.
func SelfPaid() Payer {
	return Payer{}
}

// IsSelfPaid reports whether the expense was paid for self.
func (p Payer) IsSelfPaid() bool {
	return p.name == ""
}

// Participant returns the paying participant's name, and false for SelfPaid.
func (p Payer) Participant() (string, bool) {
	return p.name, p.name != ""
}

// Is reports whether the payer is the named participant.
func (p Payer) Is(name string) bool {
	return p.name != "" && p.name == name
}

func (p Payer) String() string {
	if p.IsSelfPaid() {
		return "self-paid"
	}
	return p.name
}

// Expense represents money spent during a trip.
// Expenses are never updated; they are added and deleted.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the trip this expense belongs to.
	TripID string

	// PaidBy is the participant who paid, or SelfPaid.
	PaidBy Payer

	// Amount is the non-negative amount spent.
	Amount float64

	// Category is a free-form label (e.g., "Food", "Travel").
	Category string

	// Description is an optional note.
	Description string

	// Timestamp is when the expense was recorded.
	Timestamp time.Time
}
