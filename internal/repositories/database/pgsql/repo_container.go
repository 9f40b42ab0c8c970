package pgsql

import (
	portsrepo "github.com/hsolorzn/finve_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories into the provider
// struct consumed by the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		MissionRepo:     newPgxMissionRepository(dbPool),
		RecurringRepo:   newPgxRecurringRepository(dbPool),
	}
}
