package repositories

import (
	"context"
	"time"

	"headset-lending-backend/internal/core/domain"
)

// BorrowRequest carries everything the storage layer needs to attempt one
// atomic borrow commit for a specific headset.
type BorrowRequest struct {
	ReservationID string
	UserID        string
	HeadsetID     string
	Policy        domain.BorrowPolicy
	Now           time.Time
}

// AllocationWriter defines the two atomic state transitions of the system.
// Each call is a single isolated transaction: it either commits the
// reservation change together with the availability flip, or leaves no
// observable state change at all.
type AllocationWriter interface {
	// BorrowHeadset locks the headset row, re-checks availability and the
	// borrow policy against committed state, then inserts the reservation and
	// flips the availability flag in one transaction.
	BorrowHeadset(ctx context.Context, req BorrowRequest) (*domain.Reservation, error)

	// ReturnHeadset transitions the caller's borrowed reservation for the
	// headset to returned and flips the availability flag in one transaction.
	ReturnHeadset(ctx context.Context, userID string, headsetID string, now time.Time) (*domain.Reservation, error)
}

// ReservationReader defines read operations over the reservation journal.
type ReservationReader interface {
	// FindActiveReservationByUser retrieves the borrower's current borrowed
	// reservation, or ErrNotFound when they hold none.
	FindActiveReservationByUser(ctx context.Context, userID string) (*domain.Reservation, error)

	// ListRecentReservations retrieves a most-recent-first page of
	// reservations using token-based pagination. It returns the page, a token
	// for the next page (nil when exhausted), and an error.
	ListRecentReservations(ctx context.Context, limit int, nextToken *string) ([]domain.Reservation, *string, error)
}

// ReservationRepositoryFacade combines all reservation repository capabilities.
type ReservationRepositoryFacade interface {
	AllocationWriter
	ReservationReader
}

// RepositoryProvider holds instances of all repositories needed by the
// service layer.
type RepositoryProvider struct {
	HeadsetRepo     HeadsetRepositoryFacade
	ReservationRepo ReservationRepositoryFacade
}
