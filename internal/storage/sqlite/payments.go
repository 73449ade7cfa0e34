package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/money"
	"github.com/mmynk/tripsplit/internal/storage"
)

// CreatePayment persists a new payment to the database.
func (s *SQLiteStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	// Generate ID if not set
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}

	var note interface{} = nil
	if payment.Note != "" {
		note = payment.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, trip_id, from_user_id, to_user_id, amount_cents, note, created_at, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.TripID, payment.FromUserID, payment.ToUserID,
		money.FromFloat(payment.Amount), note, payment.CreatedAt, payment.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

// ListPaymentsByTrip retrieves all payments of a trip in the order they were recorded.
func (s *SQLiteStore) ListPaymentsByTrip(ctx context.Context, tripID string) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, from_user_id, to_user_id, amount_cents, note, created_at, created_by
		 FROM payments WHERE trip_id = ? ORDER BY created_at, rowid`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by trip: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		var cents int64
		var note sql.NullString

		if err := rows.Scan(&payment.ID, &payment.TripID, &payment.FromUserID, &payment.ToUserID,
			&cents, &note, &payment.CreatedAt, &payment.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}

		payment.Amount = money.ToFloat(cents)
		if note.Valid {
			payment.Note = note.String
		}

		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// DeletePayment removes a payment by ID.
func (s *SQLiteStore) DeletePayment(ctx context.Context, paymentID string) error {
	// Check if payment exists
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM payments WHERE id = ?", paymentID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("payment %s: %w", paymentID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check payment existence: %w", err)
	}

	_, err = s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}
