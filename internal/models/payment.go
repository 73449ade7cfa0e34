package models

// Payment represents money one member handed to another to clear debts.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// TripID is the trip this payment belongs to.
	TripID string

	// FromUserID is the member who paid (debtor settling up).
	FromUserID string

	// ToUserID is the member who received the money (creditor being paid).
	ToUserID string

	// Amount is the payment amount.
	Amount float64

	// Note is an optional description for the payment.
	Note string

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64

	// CreatedBy is the userId of whoever recorded the payment.
	CreatedBy string
}
