// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripsplit/internal/models"
)

// ErrNotFound is wrapped by every lookup that finds no row.
var ErrNotFound = errors.New("not found")

// Store defines the interface for trip, expense and payment storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateTrip persists a new trip with its initial members.
	// trip.ID, trip.CreatedAt and blank member userIds are filled in by the store.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip with its roster in insertion order.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips returns all trips, newest first.
	ListTrips(ctx context.Context) ([]*models.Trip, error)

	// UpdateTripName renames a trip.
	UpdateTripName(ctx context.Context, tripID, name string) error

	// DeleteTrip removes a trip with all of its expenses and payments.
	DeleteTrip(ctx context.Context, tripID string) error

	// AddTripMembers appends members to the roster. Members whose userId is
	// already present are skipped. It returns the members actually added.
	AddTripMembers(ctx context.Context, tripID string, members []models.Member) ([]models.Member, error)

	// CreateExpense persists a new expense; expense.ID and CreatedAt are filled in.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces an existing expense.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpensesByTrip returns a trip's expenses in the order they were recorded.
	ListExpensesByTrip(ctx context.Context, tripID string) ([]*models.Expense, error)

	// CreatePayment persists a recorded payment; payment.ID and CreatedAt are filled in.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// DeletePayment removes a payment by ID.
	DeletePayment(ctx context.Context, paymentID string) error

	// ListPaymentsByTrip returns a trip's payments in the order they were recorded.
	ListPaymentsByTrip(ctx context.Context, tripID string) ([]*models.Payment, error)

	// Close releases any resources held by the store.
	Close() error
}
