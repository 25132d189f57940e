package pgsql

import (
	portsrepo "headset-lending-backend/internal/core/ports/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates all pgsql repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		HeadsetRepo:     NewPgxHeadsetRepository(pool),
		ReservationRepo: NewPgxReservationRepository(pool),
	}
}
