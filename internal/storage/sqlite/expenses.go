package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/money"
	"github.com/mmynk/tripsplit/internal/storage"
)

// CreateExpense persists a new expense with its participants.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.SplitStrategy == "" {
		expense.SplitStrategy = models.SplitEqual
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, trip_id, description, paid_by, amount_cents, split_strategy, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, expense.Description, expense.PaidBy,
		money.FromFloat(expense.Amount), expense.SplitStrategy, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertSplits(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including its participants.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var cents int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, trip_id, description, paid_by, amount_cents, split_strategy, created_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.TripID, &expense.Description, &expense.PaidBy,
		&cents, &expense.SplitStrategy, &expense.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expense.Amount = money.ToFloat(cents)

	if err := s.loadSplits(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense replaces the fields and participants of an existing expense.
// The trip an expense belongs to never changes.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.SplitStrategy == "" {
		expense.SplitStrategy = models.SplitEqual
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses SET description = ?, paid_by = ?, amount_cents = ?, split_strategy = ?
		 WHERE id = ?`,
		expense.Description, expense.PaidBy, money.FromFloat(expense.Amount), expense.SplitStrategy, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if err := requireAffected(res, "expense", expense.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear expense splits: %w", err)
	}
	if err := insertSplits(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense. Its splits cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireAffected(res, "expense", expenseID)
}

// ListExpensesByTrip retrieves all expenses of a trip in the order they were recorded.
func (s *SQLiteStore) ListExpensesByTrip(ctx context.Context, tripID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, description, paid_by, amount_cents, split_strategy, created_at
		 FROM expenses WHERE trip_id = ? ORDER BY created_at, rowid`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by trip: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var cents int64
		if err := rows.Scan(&expense.ID, &expense.TripID, &expense.Description, &expense.PaidBy,
			&cents, &expense.SplitStrategy, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = money.ToFloat(cents)
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	for _, expense := range expenses {
		if err := s.loadSplits(ctx, expense); err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

// insertSplits writes one row per participant. share_cents is NULL unless
// the expense carries an explicit share for that participant.
func insertSplits(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	participants := make([]string, 0, len(expense.SplitAmong)+len(expense.Shares))
	seen := make(map[string]bool, cap(participants))
	for _, id := range expense.SplitAmong {
		if !seen[id] {
			seen[id] = true
			participants = append(participants, id)
		}
	}
	for _, id := range slices.Sorted(maps.Keys(expense.Shares)) {
		if !seen[id] {
			seen[id] = true
			participants = append(participants, id)
		}
	}

	for i, id := range participants {
		var share interface{}
		if v, ok := expense.Shares[id]; ok && expense.SplitStrategy == models.SplitExact {
			share = money.FromFloat(v)
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, user_id, share_cents, position) VALUES (?, ?, ?, ?)",
			expense.ID, id, share, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadSplits(ctx context.Context, expense *models.Expense) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, share_cents FROM expense_splits WHERE expense_id = ? ORDER BY position",
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var share sql.NullInt64
		if err := rows.Scan(&userID, &share); err != nil {
			return fmt.Errorf("failed to scan expense split: %w", err)
		}
		expense.SplitAmong = append(expense.SplitAmong, userID)
		if share.Valid {
			if expense.Shares == nil {
				expense.Shares = make(map[string]float64)
			}
			expense.Shares[userID] = money.ToFloat(share.Int64)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expense splits: %w", err)
	}
	return nil
}
