package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// AddTripMembers appends members to a trip's roster, skipping userIds
// that are already on it.
func (s *SQLiteStore) AddTripMembers(ctx context.Context, tripID string, members []models.Member) ([]models.Member, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE((SELECT MAX(position) + 1 FROM trip_members WHERE trip_id = t.id), 0)
		 FROM trips t WHERE t.id = ?`,
		tripID,
	).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster position: %w", err)
	}

	var added []models.Member
	for _, m := range members {
		if m.UserID == "" {
			m.UserID = uuid.New().String()
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO trip_members (trip_id, user_id, user_name, position) VALUES (?, ?, ?, ?)
			 ON CONFLICT (trip_id, user_id) DO NOTHING`,
			tripID, m.UserID, m.UserName, next,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert member %s: %w", m.UserID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			continue
		}
		next++
		added = append(added, m)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return added, nil
}

// listMembers returns a trip's roster in insertion order.
func (s *SQLiteStore) listMembers(ctx context.Context, tripID string) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, user_name FROM trip_members WHERE trip_id = ? ORDER BY position",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.UserID, &m.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}
