package services

import (
	"log/slog"

	portsrepo "github.com/hsolorzn/finve_backend/internal/core/ports/repositories"
	portssvc "github.com/hsolorzn/finve_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, rateProvider portssvc.RateProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate service comes first: transactions normalize against it.
	container.Rates = NewRateService(rateProvider, logger)

	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Rates)
	container.Mission = NewMissionService(repos.MissionRepo)
	container.Recurring = NewRecurringService(repos.RecurringRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.RateSvcFacade        = (*RateService)(nil)
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.MissionSvcFacade     = (*MissionService)(nil)
	_ portssvc.RecurringSvcFacade   = (*RecurringService)(nil)
)
