package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"headset-lending-backend/internal/apperrors"
	"headset-lending-backend/internal/core/domain"
	portsrepo "headset-lending-backend/internal/core/ports/repositories"
	portssvc "headset-lending-backend/internal/core/ports/services"

	"github.com/google/uuid"
)

const (
	// How many times a transient commit failure is retried before it
	// surfaces to the caller.
	defaultTransientRetries = 3
	transientRetryBackoff   = 50 * time.Millisecond

	// How many times an auto-selecting borrow re-picks a candidate unit after
	// losing the race for it.
	maxSelectAttempts = 5
)

// allocatorService is the only writer of headset availability and
// reservation state. Every mutation funnels through one repository
// transaction; the service adds unit selection, policy wiring, bounded
// retries and post-commit event publication.
type allocatorService struct {
	headsetRepo     portsrepo.HeadsetRepositoryFacade
	reservationRepo portsrepo.ReservationRepositoryFacade
	publisher       portssvc.EventPublisherSvc
	policy          domain.BorrowPolicy

	// unitLocks serializes commit+publish per headset so events for one unit
	// reach the fan-out in commit order. The pool is small and fixed, so
	// entries are never evicted.
	unitLocks sync.Map // headsetID -> *sync.Mutex

	transientRetries int
	now              func() time.Time
}

// AllocatorOption configures the allocator service.
type AllocatorOption func(*allocatorService)

// WithBorrowPolicy replaces the default borrow policy.
func WithBorrowPolicy(policy domain.BorrowPolicy) AllocatorOption {
	return func(s *allocatorService) { s.policy = policy }
}

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) AllocatorOption {
	return func(s *allocatorService) { s.now = now }
}

// WithTransientRetries overrides the bounded retry count for transient
// storage failures.
func WithTransientRetries(n int) AllocatorOption {
	return func(s *allocatorService) { s.transientRetries = n }
}

// NewAllocatorService creates the borrow/return engine.
func NewAllocatorService(
	headsetRepo portsrepo.HeadsetRepositoryFacade,
	reservationRepo portsrepo.ReservationRepositoryFacade,
	publisher portssvc.EventPublisherSvc,
	opts ...AllocatorOption,
) portssvc.AllocatorSvcFacade {
	s := &allocatorService{
		headsetRepo:      headsetRepo,
		reservationRepo:  reservationRepo,
		publisher:        publisher,
		policy:           DefaultBorrowPolicy(),
		transientRetries: defaultTransientRetries,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure allocatorService implements portssvc.AllocatorSvcFacade
var _ portssvc.AllocatorSvcFacade = (*allocatorService)(nil)

// Borrow reserves a headset for the borrower. When headsetID is nil it picks
// the lowest-id available unit and re-picks if a concurrent borrow takes the
// candidate first; correctness never depends on the pick, only on the
// repository's locked re-check.
func (s *allocatorService) Borrow(ctx context.Context, userID string, headsetID *string) (*domain.Reservation, error) {
	if headsetID != nil {
		return s.borrowUnit(ctx, userID, *headsetID)
	}

	var lastErr error
	for attempt := 0; attempt < maxSelectAttempts; attempt++ {
		candidateID, err := s.headsetRepo.FindFirstAvailableHeadsetID(ctx)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewRejection(apperrors.CodeNoUnitsAvailable, apperrors.ErrConflict,
					"no headsets available")
			}
			return nil, err
		}

		reservation, err := s.borrowUnit(ctx, userID, candidateID)
		if err != nil {
			// Another borrower may have taken the candidate between the pick
			// and the locked commit; pick again.
			if code, ok := apperrors.RejectionCodeOf(err); ok && code == apperrors.CodeNoUnitsAvailable {
				lastErr = err
				continue
			}
			return nil, err
		}
		return reservation, nil
	}
	return nil, lastErr
}

// Return closes the borrower's borrowed reservation for the headset and
// publishes the unit_returned event.
func (s *allocatorService) Return(ctx context.Context, userID string, headsetID string) (*domain.Reservation, error) {
	unlock := s.lockUnit(headsetID)
	defer unlock()

	var reservation *domain.Reservation
	err := s.withTransientRetry(ctx, func() error {
		var err error
		reservation, err = s.reservationRepo.ReturnHeadset(ctx, userID, headsetID, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(domain.Event{
		Type:      domain.UnitReturned,
		HeadsetID: reservation.HeadsetID,
		UserID:    reservation.UserID,
		At:        *reservation.ReturnedAt,
	})
	return reservation, nil
}

func (s *allocatorService) borrowUnit(ctx context.Context, userID string, headsetID string) (*domain.Reservation, error) {
	unlock := s.lockUnit(headsetID)
	defer unlock()

	req := portsrepo.BorrowRequest{
		ReservationID: uuid.NewString(),
		UserID:        userID,
		HeadsetID:     headsetID,
		Policy:        s.policy,
		Now:           s.now(),
	}

	var reservation *domain.Reservation
	err := s.withTransientRetry(ctx, func() error {
		var err error
		reservation, err = s.reservationRepo.BorrowHeadset(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(domain.Event{
		Type:      domain.UnitBooked,
		HeadsetID: reservation.HeadsetID,
		UserID:    reservation.UserID,
		At:        reservation.RequestedAt,
	})
	return reservation, nil
}

// withTransientRetry runs fn and retries it a bounded number of times when
// the storage layer reports a transient failure. The final transient error is
// surfaced to the caller, never swallowed.
func (s *allocatorService) withTransientRetry(ctx context.Context, fn func() error) error {
	attempts := s.transientRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, apperrors.ErrTransient) {
			return err
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * transientRetryBackoff):
		}
	}
	return err
}

func (s *allocatorService) lockUnit(headsetID string) func() {
	muAny, _ := s.unitLocks.LoadOrStore(headsetID, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
