// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/storage"
)

// Ensure SQLiteStore implements the storage interfaces.
var (
	_ storage.Store     = (*SQLiteStore)(nil)
	_ storage.UserStore = (*SQLiteStore)(nil)
)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Foreign keys are a per-connection setting, so they go in the DSN.
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateTrip persists a new trip and its participants in one transaction.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = time.Now().Unix()
	}
	if trip.Status == "" {
		trip.Status = models.TripOngoing
	}
	trip.Name = strings.TrimSpace(trip.Name)
	trip.Participants = models.NormalizeParticipants(trip.Participants)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO trips (id, owner_id, name, start_date, end_date, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		trip.ID, trip.OwnerID, trip.Name, formatDate(trip.StartDate), formatDate(trip.EndDate),
		string(trip.Status), trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	for _, name := range trip.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO participants (trip_id, name) VALUES (?, ?)",
			trip.ID, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	// Match the order ListParticipants returns.
	trip.Participants = sortedCopy(trip.Participants)
	return nil
}

// GetTrip retrieves a trip by ID, including its participants.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	summary, err := s.GetTripSummary(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return &summary.Trip, nil
}

const summaryColumns = `
	t.id, t.owner_id, t.name, t.start_date, t.end_date, t.status, t.created_at,
	COALESCE((SELECT SUM(e.amount) FROM expenses e WHERE e.trip_id = t.id), 0),
	(SELECT MAX(e.created_at) FROM expenses e WHERE e.trip_id = t.id)`

// GetTripSummary retrieves a trip with its expense total and last expense time.
func (s *SQLiteStore) GetTripSummary(ctx context.Context, tripID string) (*models.TripSummary, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+summaryColumns+" FROM trips t WHERE t.id = ?",
		tripID,
	)
	summary, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	summary.Participants, err = s.ListParticipants(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// ListTrips returns trip summaries newest first. Participants are not loaded.
func (s *SQLiteStore) ListTrips(ctx context.Context, ownerID string, status models.TripStatus) ([]models.TripSummary, error) {
	query := "SELECT " + summaryColumns + " FROM trips t WHERE 1 = 1"
	var args []any
	if ownerID != "" {
		query += " AND t.owner_id = ?"
		args = append(args, ownerID)
	}
	if status != "" {
		query += " AND t.status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY t.created_at DESC, t.rowid DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []models.TripSummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, *summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}
	return trips, nil
}

// UpdateTripStatus sets a trip's status.
func (s *SQLiteStore) UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE trips SET status = ? WHERE id = ?",
		string(status), tripID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	return expectOneRow(res, "trip", tripID)
}

// DeleteTrip removes a trip and everything it owns.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Foreign keys cascade too; deleting children first keeps databases
	// opened without the pragma free of orphans.
	if _, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE trip_id = ?", tripID); err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE trip_id = ?", tripID); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if err := expectOneRow(res, "trip", tripID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListParticipants returns a trip's participant names ordered by name.
func (s *SQLiteStore) ListParticipants(ctx context.Context, tripID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM participants WHERE trip_id = ? ORDER BY name",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	participants := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (*models.TripSummary, error) {
	var (
		summary         models.TripSummary
		startDate, end  sql.NullString
		status          string
		lastExpenseUnix sql.NullInt64
	)
	err := row.Scan(
		&summary.ID, &summary.OwnerID, &summary.Name, &startDate, &end, &status,
		&summary.CreatedAt, &summary.TotalExpense, &lastExpenseUnix,
	)
	if err != nil {
		return nil, err
	}

	summary.Status = models.TripStatus(status)
	if summary.StartDate, err = parseDate(startDate); err != nil {
		return nil, err
	}
	if summary.EndDate, err = parseDate(end); err != nil {
		return nil, err
	}
	if lastExpenseUnix.Valid {
		summary.LastExpenseAt = time.Unix(lastExpenseUnix.Int64, 0)
	}
	return &summary, nil
}

// formatDate stores a calendar date as YYYY-MM-DD, or NULL when unset.
func formatDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.DateOnly)
}

func parseDate(s sql.NullString) (time.Time, error) {
	if !s.Valid || s.String == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s.String, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", s.String, err)
	}
	return t, nil
}

func expectOneRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}

func sortedCopy(names []string) []string {
	out := append([]string(nil), names...)
	slices.Sort(out)
	return out
}
