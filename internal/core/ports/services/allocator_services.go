package services

import (
	"context"

	"headset-lending-backend/internal/core/domain"
)

// AllocatorSvcFacade is the atomic decision/commit engine for borrow and
// return. It is the only writer of headset availability and reservation
// state.
type AllocatorSvcFacade interface {
	// Borrow reserves a headset for the borrower. When headsetID is nil the
	// allocator picks the lowest-id available unit. Expected rejections come
	// back as *apperrors.RejectionError with a stable code.
	//
	// Retried calls are independent attempts: the allocator does not
	// deduplicate, so a client retrying a successful-but-unacknowledged
	// borrow may legitimately end up holding a different unit.
	Borrow(ctx context.Context, userID string, headsetID *string) (*domain.Reservation, error)

	// Return closes the borrower's borrowed reservation for the headset.
	Return(ctx context.Context, userID string, headsetID string) (*domain.Reservation, error)
}

// EventPublisherSvc is the outbound port the allocator notifies after every
// committed transition. Implementations must never fail the calling
// transaction; delivery is best-effort.
type EventPublisherSvc interface {
	Publish(event domain.Event)
}
