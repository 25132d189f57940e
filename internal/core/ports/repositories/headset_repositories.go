package repositories

import (
	"context"

	"headset-lending-backend/internal/core/domain"
)

// HeadsetReader defines read operations over the headset pool.
// All reads reflect committed state only.
type HeadsetReader interface {
	// FindHeadsetByID retrieves a single headset by its identifier.
	FindHeadsetByID(ctx context.Context, headsetID string) (*domain.Headset, error)

	// FindFirstAvailableHeadsetID returns the lowest-id headset that is
	// currently available, or ErrNotFound when the pool is exhausted.
	FindFirstAvailableHeadsetID(ctx context.Context) (string, error)

	// ListHeadsets retrieves the full pool with availability flags.
	ListHeadsets(ctx context.Context) ([]domain.Headset, error)

	// CountHeadsets returns total/available/unavailable counts in one read.
	CountHeadsets(ctx context.Context) (domain.HeadsetCounts, error)
}

// HeadsetRepositoryFacade combines all headset repository capabilities.
type HeadsetRepositoryFacade interface {
	HeadsetReader
}
