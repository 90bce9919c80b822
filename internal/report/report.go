// Package report assembles the settlement summary of a trip: overview,
// day-wise and per-participant spending, balances and the transfers that
// settle them.
package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/tripledger/internal/calculator"
	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/storage"
)

// Standing describes a participant's net position in words.
type Standing string

const (
	Gets    Standing = "Gets"
	Owes    Standing = "Owes"
	Settled Standing = "Settled"
)

// StandingOf classifies a net balance using calculator.Tolerance.
func StandingOf(net float64) Standing {
	switch {
	case calculator.IsSettled(net):
		return Settled
	case net > 0:
		return Gets
	default:
		return Owes
	}
}

// Report is everything needed to present a trip's settlement.
type Report struct {
	Trip models.TripSummary

	// TotalExpense includes self-paid expenses; SharedPool does not.
	TotalExpense   float64
	SharedPool     float64
	PerPersonShare float64

	Days      []calculator.DayTotal
	Spending  []calculator.MemberTotal
	Balances  calculator.Balances
	Transfers []calculator.Transfer

	// NoParticipants distinguishes a trip nobody joined from one where
	// everyone is already settled; both have no transfers.
	NoParticipants bool
}

// AllSettled reports whether the trip has participants and none of them
// owes or is owed anything.
func (r *Report) AllSettled() bool {
	return r.Balances.AllSettled()
}

// Build assembles a report from a trip, its participants and its expenses.
// Days are grouped in loc; a nil loc keeps each expense's own location.
func Build(trip models.TripSummary, participants []string, expenses []models.Expense, loc *time.Location) (*Report, error) {
	balances := calculator.ComputeBalances(participants, expenses)

	transfers, err := calculator.ComputeSettlement(balances)
	if err != nil {
		return nil, fmt.Errorf("failed to settle trip %s: %w", trip.ID, err)
	}

	pool := calculator.SharedPool(expenses)
	return &Report{
		Trip:           trip,
		TotalExpense:   calculator.TotalSpent(expenses),
		SharedPool:     pool,
		PerPersonShare: calculator.PerPersonShare(pool, len(balances)),
		Days:           calculator.DayWiseTotals(expenses, loc),
		Spending:       calculator.SpendingTotals(participants, expenses),
		Balances:       balances,
		Transfers:      transfers,
		NoParticipants: len(balances) == 0,
	}, nil
}

// Load reads a trip and its expenses from store and builds its report.
func Load(ctx context.Context, store storage.Store, tripID string, loc *time.Location) (*Report, error) {
	var (
		trip     *models.TripSummary
		expenses []models.Expense
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trip, err = store.GetTripSummary(ctx, tripID)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = store.ListExpenses(ctx, tripID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Build(*trip, trip.Participants, expenses, loc)
}
