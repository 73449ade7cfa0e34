package models

// Split strategies stored with an expense.
const (
	SplitEqual = "equal"
	SplitExact = "exact"
)

// Expense represents a payment made by one member for several members.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the trip this expense belongs to.
	TripID string

	// Description is what was paid for (e.g., "Hotel", "Dinner").
	Description string

	// PaidBy is the userId of the member who paid.
	PaidBy string

	// Amount is the paid amount, in the trip's single currency.
	Amount float64

	// SplitStrategy is SplitEqual or SplitExact.
	SplitStrategy string

	// SplitAmong lists the userIds sharing this expense.
	SplitAmong []string

	// Shares maps userId to an explicit share amount.
	// Only set for SplitExact; the values sum to Amount.
	Shares map[string]float64

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
