package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"headset-lending-backend/internal/apperrors"
	"headset-lending-backend/internal/core/domain"
	portsrepo "headset-lending-backend/internal/core/ports/repositories"
	"headset-lending-backend/internal/models"
	"headset-lending-backend/internal/utils/mapping"
	"headset-lending-backend/internal/utils/pagination"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultListLimit = 5
	maxListLimit     = 100
)

// Partial unique index names from the migrations; a 23505 on either means a
// concurrent transaction won the race despite the row locks.
const (
	idxOneBorrowedPerHeadset = "uq_reservations_headset_borrowed"
	idxOneBorrowedPerUser    = "uq_reservations_user_borrowed"
)

type PgxReservationRepository struct {
	BaseRepository
}

// NewPgxReservationRepository creates a new repository for reservation
// journal data and the atomic borrow/return transitions.
func NewPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepositoryFacade {
	return &PgxReservationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReservationRepository implements portsrepo.ReservationRepositoryFacade
var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

// BorrowHeadset performs the borrow as one transaction:
//
//  1. lock the headset row (FOR UPDATE) and re-check availability,
//  2. assemble the borrower snapshot from committed reservations,
//  3. evaluate the borrow policy,
//  4. insert the reservation and flip the availability flag.
//
// Reading availability and writing it under the same row lock is what makes
// two racing borrows for the last unit impossible; the partial unique indexes
// are a storage-level backstop for the same invariants.
func (r *PgxReservationRepository) BorrowHeadset(ctx context.Context, req portsrepo.BorrowRequest) (*domain.Reservation, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op once committed

	lockQuery := `
		SELECT headset_id, is_available
		FROM headsets
		WHERE headset_id = $1
		FOR UPDATE;
	`
	var lockedID string
	var isAvailable bool
	err = tx.QueryRow(ctx, lockQuery, req.HeadsetID).Scan(&lockedID, &isAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewRejection(apperrors.CodeUnitNotFound, apperrors.ErrNotFound,
				"headset "+req.HeadsetID+" does not exist")
		}
		return nil, classifyError("failed to lock headset "+req.HeadsetID, err)
	}
	if !isAvailable {
		return nil, apperrors.NewRejection(apperrors.CodeNoUnitsAvailable, apperrors.ErrConflict,
			"headset "+req.HeadsetID+" is not available")
	}

	snapshot, err := r.borrowerSnapshotInTx(ctx, tx, req.UserID, req.Now)
	if err != nil {
		return nil, err
	}
	if err := req.Policy.Evaluate(snapshot, req.Now); err != nil {
		return nil, err
	}

	reservation := domain.Reservation{
		ReservationID: req.ReservationID,
		UserID:        req.UserID,
		HeadsetID:     req.HeadsetID,
		Status:        domain.Borrowed,
		RequestedAt:   req.Now,
	}
	modelRes := mapping.ToModelReservation(reservation)

	insertQuery := `
		INSERT INTO reservations (reservation_id, user_id, headset_id, status, requested_at, returned_at)
		VALUES ($1, $2, $3, $4, $5, NULL);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelRes.ReservationID,
		modelRes.UserID,
		modelRes.HeadsetID,
		modelRes.Status,
		modelRes.RequestedAt,
	)
	if err != nil {
		return nil, mapBorrowInsertError(err)
	}

	updateQuery := `
		UPDATE headsets
		SET is_available = FALSE, updated_at = $2
		WHERE headset_id = $1;
	`
	if _, err = tx.Exec(ctx, updateQuery, req.HeadsetID, req.Now); err != nil {
		return nil, classifyError("failed to mark headset "+req.HeadsetID+" unavailable", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ReturnHeadset closes the borrower's borrowed reservation for the headset
// and flips the availability flag in one transaction. The UPDATE's WHERE
// clause on status makes a double return lose the race deterministically.
func (r *PgxReservationRepository) ReturnHeadset(ctx context.Context, userID string, headsetID string, now time.Time) (*domain.Reservation, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op once committed

	closeQuery := `
		UPDATE reservations
		SET status = $4, returned_at = $5
		WHERE user_id = $1 AND headset_id = $2 AND status = $3
		RETURNING reservation_id, requested_at;
	`
	var reservationID string
	var requestedAt time.Time
	err = tx.QueryRow(ctx, closeQuery, userID, headsetID, models.Borrowed, models.Returned, now).
		Scan(&reservationID, &requestedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewRejection(apperrors.CodeNoActiveReservation, apperrors.ErrConflict,
				"no active booking found for this user and headset")
		}
		return nil, classifyError("failed to close reservation for headset "+headsetID, err)
	}

	updateQuery := `
		UPDATE headsets
		SET is_available = TRUE, updated_at = $2
		WHERE headset_id = $1;
	`
	if _, err = tx.Exec(ctx, updateQuery, headsetID, now); err != nil {
		return nil, classifyError("failed to mark headset "+headsetID+" available", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	returnedAt := now
	return &domain.Reservation{
		ReservationID: reservationID,
		UserID:        userID,
		HeadsetID:     headsetID,
		Status:        domain.Returned,
		RequestedAt:   requestedAt,
		ReturnedAt:    &returnedAt,
	}, nil
}

// borrowerSnapshotInTx reads the borrower facts the policy judges, inside the
// borrow transaction. The active reservation row is locked so a concurrent
// return of it serializes against this borrow.
func (r *PgxReservationRepository) borrowerSnapshotInTx(ctx context.Context, tx pgx.Tx, userID string, now time.Time) (domain.BorrowerSnapshot, error) {
	var snapshot domain.BorrowerSnapshot

	activeQuery := `
		SELECT reservation_id, user_id, headset_id, status, requested_at, returned_at
		FROM reservations
		WHERE user_id = $1 AND status = $2
		LIMIT 1
		FOR UPDATE;
	`
	var m models.Reservation
	err := tx.QueryRow(ctx, activeQuery, userID, models.Borrowed).Scan(
		&m.ReservationID,
		&m.UserID,
		&m.HeadsetID,
		&m.Status,
		&m.RequestedAt,
		&m.ReturnedAt,
	)
	switch {
	case err == nil:
		active := mapping.ToDomainReservation(m)
		snapshot.Active = &active
	case errors.Is(err, pgx.ErrNoRows):
		// no active borrow
	default:
		return snapshot, classifyError("failed to read active reservation for user "+userID, err)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	countQuery := `
		SELECT COUNT(*)
		FROM reservations
		WHERE user_id = $1 AND requested_at >= $2 AND requested_at < $3;
	`
	if err := tx.QueryRow(ctx, countQuery, userID, dayStart, dayEnd).Scan(&snapshot.RequestedToday); err != nil {
		return snapshot, classifyError("failed to count today's reservations for user "+userID, err)
	}

	return snapshot, nil
}

// FindActiveReservationByUser retrieves the borrower's current borrowed
// reservation from committed state.
func (r *PgxReservationRepository) FindActiveReservationByUser(ctx context.Context, userID string) (*domain.Reservation, error) {
	query := `
		SELECT reservation_id, user_id, headset_id, status, requested_at, returned_at
		FROM reservations
		WHERE user_id = $1 AND status = $2
		LIMIT 1;
	`
	var m models.Reservation
	err := r.Pool.QueryRow(ctx, query, userID, models.Borrowed).Scan(
		&m.ReservationID,
		&m.UserID,
		&m.HeadsetID,
		&m.Status,
		&m.RequestedAt,
		&m.ReturnedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, classifyError("failed to find active reservation for user "+userID, err)
	}

	reservation := mapping.ToDomainReservation(m)
	return &reservation, nil
}

// ListRecentReservations retrieves a most-recent-first page of the journal
// using token-based pagination. It returns the page, a token for the next
// page, and an error.
func (r *PgxReservationRepository) ListRecentReservations(ctx context.Context, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT reservation_id, user_id, headset_id, status, requested_at, returned_at
		FROM reservations
	`
	// Ordering must be stable: requested_at DESC with reservation_id as the
	// tie-breaker, matching the cursor fields.
	orderByClause := `ORDER BY requested_at DESC, reservation_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastRequestedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `WHERE (requested_at, reservation_id) < ($1, $2)`
		args = append(args, lastRequestedAt, lastID)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}

	if err != nil {
		return nil, nil, classifyError("failed to query recent reservations", err)
	}
	defer rows.Close()

	reservations := make([]models.Reservation, 0, fetchLimit)
	for rows.Next() {
		var m models.Reservation
		if scanErr := rows.Scan(
			&m.ReservationID,
			&m.UserID,
			&m.HeadsetID,
			&m.Status,
			&m.RequestedAt,
			&m.ReturnedAt,
		); scanErr != nil {
			return nil, nil, classifyError("failed to scan reservation row", scanErr)
		}
		reservations = append(reservations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, classifyError("error iterating reservation rows", err)
	}

	var nextTokenVal *string
	results := reservations
	if len(reservations) > limit {
		last := reservations[limit-1]
		token := pagination.EncodeToken(last.RequestedAt, last.ReservationID)
		nextTokenVal = &token
		results = reservations[:limit]
	}

	return mapping.ToDomainReservationSlice(results), nextTokenVal, nil
}

// mapBorrowInsertError turns a unique-violation on the borrowed partial
// indexes into the matching typed rejection. The row locks normally prevent
// these from firing; they exist so a bug elsewhere cannot corrupt state.
func mapBorrowInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case idxOneBorrowedPerUser:
			return apperrors.NewRejection(apperrors.CodeBorrowerAlreadyHolds, apperrors.ErrConflict,
				"user already holds a borrowed headset")
		case idxOneBorrowedPerHeadset:
			return apperrors.NewRejection(apperrors.CodeNoUnitsAvailable, apperrors.ErrConflict,
				"headset already borrowed")
		}
	}
	return classifyError("failed to insert reservation", err)
}
