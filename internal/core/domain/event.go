package domain

import "time"

// EventType identifies a committed state change pushed to observers.
type EventType string

const (
	UnitBooked   EventType = "unit_booked"
	UnitReturned EventType = "unit_returned"
)

// Event is the normalized notification published after every committed
// allocator transition. Purely informational; observers that miss events
// resynchronize through the read projections.
type Event struct {
	Type      EventType `json:"type"`
	HeadsetID string    `json:"unitId"`
	UserID    string    `json:"borrowerId"`
	At        time.Time `json:"at"`
}
