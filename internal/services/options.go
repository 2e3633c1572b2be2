package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/get_simulation"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/list_events"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/list_simulations"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/repo"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/usecases/compare_discounts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/usecases/run_simulation"
	"github.com/light-bringer/discount-impact-service/internal/config"
	"github.com/light-bringer/discount-impact-service/internal/narrative"
	"github.com/light-bringer/discount-impact-service/internal/pkg/clock"
	"github.com/light-bringer/discount-impact-service/internal/pkg/committer"
	"github.com/light-bringer/discount-impact-service/internal/transport/grpc/simulation"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient     *spanner.Client // nil when history is disabled
	SimulationHandler *simulation.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	// 1. Risk policy and engine
	policy, err := domain.LoadRiskPolicy(cfg.RiskPolicyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load risk policy: %w", err)
	}
	engine, err := domain.NewDiscountImpactEngine(policy)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	// 2. Narrator
	narrator, err := newNarrator(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// 3. History (optional)
	opts := &ServiceOptions{}
	var (
		history     *run_simulation.History
		readModel   contracts.ReadModel       = repo.DisabledReadModel{}
		eventsModel contracts.EventsReadModel = repo.DisabledReadModel{}
	)
	if cfg.HistoryEnabled {
		spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		opts.SpannerClient = spannerClient

		history = &run_simulation.History{
			Simulations: repo.NewSimulationRepo(),
			Outbox:      repo.NewOutboxRepo(),
			Applier:     committer.NewCommitter(spannerClient),
		}
		readModel = repo.NewReadModel(spannerClient)
		eventsModel = repo.NewEventsReadModel(spannerClient)
	} else {
		logger.Info("simulation history disabled")
	}

	// 4. Command use cases
	runSimulation := run_simulation.NewInteractor(engine, narrator, cfg.NarrativeTimeout, history, clock.NewRealClock(), logger)
	compareDiscounts := compare_discounts.NewInteractor(engine, logger)

	// 5. Queries
	getSimulation := get_simulation.NewQuery(readModel)
	listSimulations := list_simulations.NewQuery(readModel)
	listEvents := list_events.NewQuery(eventsModel)

	// 6. gRPC handler, also served over HTTP
	opts.SimulationHandler = simulation.NewHandler(
		runSimulation,
		compareDiscounts,
		getSimulation,
		listSimulations,
		listEvents,
		logger,
	)

	return opts, nil
}

func newNarrator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (contracts.Narrator, error) {
	template := narrative.NewTemplateNarrator()
	if !cfg.NarrativeEnabled() {
		logger.Info("no narrative model configured, using template narrator")
		return template, nil
	}

	gemini, err := narrative.NewGeminiNarrator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini narrator: %w", err)
	}
	logger.Info("narrative model configured", zap.String("model", cfg.GeminiModel))
	return narrative.NewFallbackNarrator(gemini, template, logger), nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
