package services

import (
	portsrepo "headset-lending-backend/internal/core/ports/repositories"
	portssvc "headset-lending-backend/internal/core/ports/services"
	"headset-lending-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, publisher portssvc.EventPublisherSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	policy := DefaultBorrowPolicy()
	if !cfg.DailyLimitEnabled {
		policy = SingleActivePolicy{}
	}

	container.Allocator = NewAllocatorService(
		repos.HeadsetRepo,
		repos.ReservationRepo,
		publisher,
		WithBorrowPolicy(policy),
	)
	container.Projection = NewProjectionService(repos.HeadsetRepo, repos.ReservationRepo)

	return container
}
