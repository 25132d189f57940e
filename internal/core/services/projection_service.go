package services

import (
	"context"

	"headset-lending-backend/internal/core/domain"
	portsrepo "headset-lending-backend/internal/core/ports/repositories"
	portssvc "headset-lending-backend/internal/core/ports/services"
	"headset-lending-backend/internal/dto"
)

// projectionService computes the derived read-only views from committed
// ledger and journal state. It never writes.
type projectionService struct {
	headsetRepo     portsrepo.HeadsetRepositoryFacade
	reservationRepo portsrepo.ReservationRepositoryFacade
}

// NewProjectionService creates the read-projection service.
func NewProjectionService(
	headsetRepo portsrepo.HeadsetRepositoryFacade,
	reservationRepo portsrepo.ReservationRepositoryFacade,
) portssvc.ProjectionSvcFacade {
	return &projectionService{
		headsetRepo:     headsetRepo,
		reservationRepo: reservationRepo,
	}
}

// Ensure projectionService implements portssvc.ProjectionSvcFacade
var _ portssvc.ProjectionSvcFacade = (*projectionService)(nil)

func (s *projectionService) ListHeadsets(ctx context.Context) ([]domain.Headset, error) {
	return s.headsetRepo.ListHeadsets(ctx)
}

func (s *projectionService) GetHeadset(ctx context.Context, headsetID string) (*domain.Headset, error) {
	return s.headsetRepo.FindHeadsetByID(ctx, headsetID)
}

func (s *projectionService) Counts(ctx context.Context) (domain.HeadsetCounts, error) {
	return s.headsetRepo.CountHeadsets(ctx)
}

func (s *projectionService) ListRecentReservations(ctx context.Context, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error) {
	reservations, nextToken, err := s.reservationRepo.ListRecentReservations(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return dto.ToListReservationsResponse(reservations, nextToken), nil
}

func (s *projectionService) ActiveReservation(ctx context.Context, userID string) (*domain.Reservation, error) {
	return s.reservationRepo.FindActiveReservationByUser(ctx, userID)
}
