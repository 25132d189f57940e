package domain

import "time"

// ReservationStatus indicates the state of a reservation.
type ReservationStatus string

const (
	Borrowed ReservationStatus = "borrowed"
	Returned ReservationStatus = "returned"
)

// Reservation records one borrow-to-return lifecycle of a headset.
// Append/update only: it transitions exactly once from borrowed to returned
// and never reverts.
type Reservation struct {
	ReservationID string            `json:"reservationID"`
	UserID        string            `json:"userID"`
	HeadsetID     string            `json:"headsetID"`
	Status        ReservationStatus `json:"status"`
	RequestedAt   time.Time         `json:"requestedAt"`
	ReturnedAt    *time.Time        `json:"returnedAt,omitempty"`
}

// BorrowerSnapshot is the committed-state view of one borrower that a
// BorrowPolicy judges. It is assembled inside the same transaction that
// commits the borrow, so policies see no in-flight state.
type BorrowerSnapshot struct {
	// Active is the borrower's current borrowed reservation, if any.
	Active *Reservation
	// RequestedToday counts reservations the borrower created on the current
	// calendar day, regardless of whether they were returned since.
	RequestedToday int
}

// BorrowPolicy decides whether a borrower may take a unit right now.
// Implementations return nil to allow, or a typed rejection to deny; they
// must be pure functions of the snapshot so the allocator's commit logic
// stays policy-agnostic.
type BorrowPolicy interface {
	Evaluate(snapshot BorrowerSnapshot, now time.Time) error
}
