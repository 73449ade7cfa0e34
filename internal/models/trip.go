package models

// Trip represents a group of people sharing expenses while travelling.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Name is the display name of the trip (e.g., "Lisbon 2026").
	Name string

	// Members is the roster in the order members were added.
	Members []Member

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// Member is one participant of a trip.
type Member struct {
	// UserID identifies the member; unique within a trip.
	UserID string

	// UserName is the display name shown next to balances.
	UserName string
}

