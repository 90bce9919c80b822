package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/storage"
)

const expenseColumns = "id, trip_id, paid_by, self_paid, amount, category, description, created_at"

// AddExpense persists a new expense.
// A named payer must be one of the trip's participants.
func (s *SQLiteStore) AddExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.Timestamp.IsZero() {
		expense.Timestamp = time.Now()
	}

	var paidBy any
	if name, ok := expense.PaidBy.Participant(); ok {
		paidBy = name
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (`+expenseColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, paidBy, expense.PaidBy.IsSelfPaid(), expense.Amount,
		expense.Category, expense.Description, expense.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id = ?",
		expenseID,
	)
	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// ListExpenses returns a trip's expenses, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, tripID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE trip_id = ? ORDER BY created_at DESC, rowid DESC",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return expectOneRow(res, "expense", expenseID)
}

func scanExpense(row scanner) (*models.Expense, error) {
	var (
		expense   models.Expense
		paidBy    sql.NullString
		selfPaid  bool
		createdAt int64
	)
	err := row.Scan(
		&expense.ID, &expense.TripID, &paidBy, &selfPaid, &expense.Amount,
		&expense.Category, &expense.Description, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if selfPaid || !paidBy.Valid {
		expense.PaidBy = models.SelfPaid()
	} else {
		expense.PaidBy = models.PaidBy(paidBy.String)
	}
	expense.Timestamp = time.Unix(createdAt, 0)
	return &expense, nil
}
