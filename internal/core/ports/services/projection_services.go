package services

import (
	"context"

	"headset-lending-backend/internal/core/domain"
	"headset-lending-backend/internal/dto"
)

// ProjectionSvcFacade exposes the derived read-only views computed from
// committed ledger and journal state. Clients use these to seed their initial
// view and to resynchronize after missed fan-out events.
type ProjectionSvcFacade interface {
	// ListHeadsets returns the full pool with availability flags.
	ListHeadsets(ctx context.Context) ([]domain.Headset, error)

	// GetHeadset returns a single headset, or ErrNotFound.
	GetHeadset(ctx context.Context, headsetID string) (*domain.Headset, error)

	// Counts returns total/available/unavailable counts.
	Counts(ctx context.Context) (domain.HeadsetCounts, error)

	// ListRecentReservations returns a bounded most-recent-first page of the
	// reservation history.
	ListRecentReservations(ctx context.Context, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error)

	// ActiveReservation returns the borrower's current borrowed reservation,
	// or ErrNotFound when they hold none.
	ActiveReservation(ctx context.Context, userID string) (*domain.Reservation, error)
}
