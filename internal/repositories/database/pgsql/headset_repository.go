package pgsql

import (
	"context"
	"errors"

	"headset-lending-backend/internal/apperrors"
	"headset-lending-backend/internal/core/domain"
	portsrepo "headset-lending-backend/internal/core/ports/repositories"
	"headset-lending-backend/internal/models"
	"headset-lending-backend/internal/utils/mapping"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHeadsetRepository struct {
	BaseRepository
}

// NewPgxHeadsetRepository creates a new repository for headset pool data.
func NewPgxHeadsetRepository(pool *pgxpool.Pool) portsrepo.HeadsetRepositoryFacade {
	return &PgxHeadsetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxHeadsetRepository implements portsrepo.HeadsetRepositoryFacade
var _ portsrepo.HeadsetRepositoryFacade = (*PgxHeadsetRepository)(nil)

// FindHeadsetByID retrieves a headset by its ID.
func (r *PgxHeadsetRepository) FindHeadsetByID(ctx context.Context, headsetID string) (*domain.Headset, error) {
	query := `
		SELECT headset_id, label, is_available, created_at, updated_at
		FROM headsets
		WHERE headset_id = $1;
	`
	var m models.Headset
	err := r.Pool.QueryRow(ctx, query, headsetID).Scan(
		&m.HeadsetID,
		&m.Label,
		&m.IsAvailable,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, classifyError("failed to find headset by ID "+headsetID, err)
	}

	headset := mapping.ToDomainHeadset(m)
	return &headset, nil
}

// FindFirstAvailableHeadsetID returns the lowest-id available headset.
// Lowest id keeps the selection deterministic when several units are free.
func (r *PgxHeadsetRepository) FindFirstAvailableHeadsetID(ctx context.Context) (string, error) {
	query := `
		SELECT headset_id
		FROM headsets
		WHERE is_available = TRUE
		ORDER BY headset_id
		LIMIT 1;
	`
	var headsetID string
	err := r.Pool.QueryRow(ctx, query).Scan(&headsetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", classifyError("failed to find an available headset", err)
	}
	return headsetID, nil
}

// ListHeadsets retrieves the full pool ordered by id.
func (r *PgxHeadsetRepository) ListHeadsets(ctx context.Context) ([]domain.Headset, error) {
	query := `
		SELECT headset_id, label, is_available, created_at, updated_at
		FROM headsets
		ORDER BY headset_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, classifyError("failed to query headsets", err)
	}
	defer rows.Close()

	headsets := []models.Headset{}
	for rows.Next() {
		var m models.Headset
		if err := rows.Scan(
			&m.HeadsetID,
			&m.Label,
			&m.IsAvailable,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, classifyError("failed to scan headset row", err)
		}
		headsets = append(headsets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("error iterating headset rows", err)
	}

	return mapping.ToDomainHeadsetSlice(headsets), nil
}

// CountHeadsets computes the aggregate availability counts in a single read
// so the three numbers always come from the same committed snapshot.
func (r *PgxHeadsetRepository) CountHeadsets(ctx context.Context) (domain.HeadsetCounts, error) {
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_available) AS available,
		       COUNT(*) FILTER (WHERE NOT is_available) AS unavailable
		FROM headsets;
	`
	var counts domain.HeadsetCounts
	err := r.Pool.QueryRow(ctx, query).Scan(&counts.Total, &counts.Available, &counts.Unavailable)
	if err != nil {
		return domain.HeadsetCounts{}, classifyError("failed to count headsets", err)
	}
	return counts, nil
}
