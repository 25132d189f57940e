package services

import (
	"time"

	"headset-lending-backend/internal/apperrors"
	"headset-lending-backend/internal/core/domain"
)

// SingleActivePolicy denies a borrow while the borrower still holds a unit.
// This is the binding invariant of the system: it applies regardless of any
// calendar-based limit layered on top, so a reservation held across midnight
// still blocks a second borrow.
type SingleActivePolicy struct{}

func (SingleActivePolicy) Evaluate(snapshot domain.BorrowerSnapshot, _ time.Time) error {
	if snapshot.Active != nil {
		return apperrors.NewRejection(apperrors.CodeBorrowerAlreadyHolds, apperrors.ErrConflict,
			"you already hold headset "+snapshot.Active.HeadsetID)
	}
	return nil
}

// DailyLimitPolicy denies a borrow once the borrower has created a
// reservation on the current calendar day, returned or not.
type DailyLimitPolicy struct {
	// MaxPerDay defaults to 1 when zero.
	MaxPerDay int
}

func (p DailyLimitPolicy) Evaluate(snapshot domain.BorrowerSnapshot, _ time.Time) error {
	maxPerDay := p.MaxPerDay
	if maxPerDay <= 0 {
		maxPerDay = 1
	}
	if snapshot.RequestedToday >= maxPerDay {
		return apperrors.NewRejection(apperrors.CodePolicyWindowExceeded, apperrors.ErrPolicyViolation,
			"you have already booked a headset today")
	}
	return nil
}

// CompositePolicy evaluates policies in order and denies on the first
// rejection.
type CompositePolicy []domain.BorrowPolicy

func (ps CompositePolicy) Evaluate(snapshot domain.BorrowerSnapshot, now time.Time) error {
	for _, p := range ps {
		if err := p.Evaluate(snapshot, now); err != nil {
			return err
		}
	}
	return nil
}

// DefaultBorrowPolicy is the production rule set: one unit at a time,
// one reservation per calendar day.
func DefaultBorrowPolicy() domain.BorrowPolicy {
	return CompositePolicy{SingleActivePolicy{}, DailyLimitPolicy{MaxPerDay: 1}}
}
