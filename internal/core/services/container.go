package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/platform/config"
	"github.com/SscSPs/household_finance/internal/platform/logging"
)

// Container holds all the services and manages their dependencies
type Container struct {
	Household portssvc.HouseholdSvcFacade

	// Logger is the base logger services pick up through WithLogger.
	Logger *slog.Logger
}

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *Container {
	return &Container{
		Household: NewHouseholdService(
			repos.FamilyRepo,
			WithReportingCurrency(cfg.ReportingCurrency),
		),
		Logger: slog.Default(),
	}
}

// NewContainerFromEnv loads configuration from the environment, builds the
// logger writing to w, and wires the services.
func NewContainerFromEnv(repos portsrepo.RepositoryProvider, w io.Writer) (*Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	container := NewContainer(repos, cfg)
	container.Logger = logging.New(cfg, w)
	container.Logger.Debug("Container initialized",
		slog.String("reporting_currency", string(cfg.ReportingCurrency)))
	return container, nil
}

// WithLogger returns ctx carrying the container's logger.
func (c *Container) WithLogger(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, c.Logger)
}
