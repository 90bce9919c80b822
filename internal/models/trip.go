package models

import (
	"fmt"
	"strings"
	"time"
)

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	// TripOngoing accepts new expenses.
	TripOngoing TripStatus = "ONGOING"
	// TripCompleted is closed for new expenses.
	TripCompleted TripStatus = "COMPLETED"
)

// ParseTripStatus converts a status string (case-insensitive) into a TripStatus.
func ParseTripStatus(s string) (TripStatus, error) {
	switch TripStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case TripOngoing:
		return TripOngoing, nil
	case TripCompleted:
		return TripCompleted, nil
	}
	return "", fmt.Errorf("unknown trip status %q", s)
}

// Toggle returns the other status.
func (s TripStatus) Toggle() TripStatus {
	if s == TripCompleted {
		return TripOngoing
	}
	return TripCompleted
}

// Trip represents a journey whose shared costs are split among participants.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// OwnerID is the user who created the trip.
	OwnerID string

	// Name is the display name of the trip (e.g., "Goa 2025").
	Name string

	// StartDate and EndDate are optional calendar dates. The zero value means unset.
	StartDate time.Time
	EndDate   time.Time

	// Status is ONGOING or COMPLETED.
	Status TripStatus

	// Participants is the list of participant names, ordered by name.
	Participants []string

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// TripSummary is a trip as shown in listings, with figures derived from its expenses.
type TripSummary struct {
	Trip

	// TotalExpense is the sum of every expense amount, self-paid included.
	TotalExpense float64

	// LastExpenseAt is the timestamp of the most recent expense, zero if none.
	LastExpenseAt time.Time
}

// EffectiveEndDate returns the trip's end date, falling back to the day of
// the last expense when no end date was set.
func (s TripSummary) EffectiveEndDate() time.Time {
	if !s.EndDate.IsZero() {
		return s.EndDate
	}
	return s.LastExpenseAt
}

// NormalizeParticipants trims names, drops blanks and collapses duplicates to
// their first occurrence.
func NormalizeParticipants(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
