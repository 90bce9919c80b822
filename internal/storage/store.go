// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripledger/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for trip ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateTrip persists a new trip with its participants.
	// The trip.ID, Status and CreatedAt fields are populated by the store when empty.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip with its participants.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// GetTripSummary retrieves a trip together with its expense total and
	// last expense timestamp.
	GetTripSummary(ctx context.Context, tripID string) (*models.TripSummary, error)

	// ListTrips returns trips newest first. An empty ownerID lists every
	// owner's trips; an empty status lists every status.
	ListTrips(ctx context.Context, ownerID string, status models.TripStatus) ([]models.TripSummary, error)

	// UpdateTripStatus sets the trip's status.
	UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) error

	// DeleteTrip removes a trip along with its participants and expenses.
	DeleteTrip(ctx context.Context, tripID string) error

	// ListParticipants returns the trip's participant names ordered by name.
	ListParticipants(ctx context.Context, tripID string) ([]string, error)

	// AddExpense persists a new expense. ID and Timestamp are populated when empty.
	AddExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves a single expense.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpenses returns the trip's expenses, newest first.
	ListExpenses(ctx context.Context, tripID string) ([]models.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
