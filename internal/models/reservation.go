package models

import "time"

// ReservationStatus mirrors domain.ReservationStatus at the storage layer.
type ReservationStatus string

const (
	Borrowed ReservationStatus = "borrowed"
	Returned ReservationStatus = "returned"
)

// Reservation is the database representation of one borrow/return record.
type Reservation struct {
	ReservationID string            `db:"reservation_id"`
	UserID        string            `db:"user_id"`
	HeadsetID     string            `db:"headset_id"`
	Status        ReservationStatus `db:"status"`
	RequestedAt   time.Time         `db:"requested_at"`
	ReturnedAt    *time.Time        `db:"returned_at"`
}
