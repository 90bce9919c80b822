package models

import (
	"testing"
	"time"
)

func TestPayer(t *testing.T) {
	alice := PaidBy("Alice")
	if alice.IsSelfPaid() {
		t.Error("PaidBy(Alice) should not be self-paid")
	}
	if name, ok := alice.Participant(); !ok || name != "Alice" {
		t.Errorf("Participant() = %q, %v; want Alice, true", name, ok)
	}
	if !alice.Is("Alice") || alice.Is("Bob") {
		t.Error("Is() mismatch for Alice")
	}

	self := SelfPaid()
	if !self.IsSelfPaid() {
		t.Error("SelfPaid() should be self-paid")
	}
	if _, ok := self.Participant(); ok {
		t.Error("SelfPaid() should not name a participant")
	}
	// A participant literally called SELF_PAID is an ordinary payer.
	if PaidBy("SELF_PAID").IsSelfPaid() {
		t.Error("a participant named SELF_PAID must not be treated as self-paid")
	}
	if self.Is("") {
		t.Error("SelfPaid() must not match the empty name")
	}
}

func TestParseTripStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    TripStatus
		wantErr bool
	}{
		{"ONGOING", TripOngoing, false},
		{"completed", TripCompleted, false},
		{" Ongoing ", TripOngoing, false},
		{"archived", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTripStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTripStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTripStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if TripOngoing.Toggle() != TripCompleted || TripCompleted.Toggle() != TripOngoing {
		t.Error("Toggle() should flip between ONGOING and COMPLETED")
	}
}

func TestNormalizeParticipants(t *testing.T) {
	got := NormalizeParticipants([]string{" Alice", "Bob ", "", "Alice", "  ", "Charlie"})
	want := []string{"Alice", "Bob", "Charlie"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEffectiveEndDate(t *testing.T) {
	last := time.Date(2025, 3, 4, 18, 30, 0, 0, time.UTC)
	s := TripSummary{LastExpenseAt: last}
	if !s.EffectiveEndDate().Equal(last) {
		t.Errorf("expected fallback to last expense, got %v", s.EffectiveEndDate())
	}

	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s.EndDate = end
	if !s.EffectiveEndDate().Equal(end) {
		t.Errorf("expected explicit end date, got %v", s.EffectiveEndDate())
	}
}
