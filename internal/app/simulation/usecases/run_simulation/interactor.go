package run_simulation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/pkg/clock"
	"github.com/light-bringer/discount-impact-service/internal/pkg/committer"
)

// Request contains the data to run one simulation.
type Request struct {
	Simulation    domain.DiscountRequest
	SkipNarrative bool
}

// Response is the outcome of a simulation. SimulationID is empty when the
// simulation was not recorded in history.
type Response struct {
	SimulationID string
	Report       *domain.DiscountReport
	Narrative    string
	CreatedAt    time.Time
}

// History bundles what the interactor needs to record simulations.
// A nil *History disables recording.
type History struct {
	Simulations contracts.SimulationRepository
	Outbox      contracts.OutboxRepository
	Applier     contracts.PlanApplier
}

// Interactor handles the run simulation use case.
type Interactor struct {
	engine           *domain.DiscountImpactEngine
	narrator         contracts.Narrator
	narrativeTimeout time.Duration
	history          *History
	clock            clock.Clock
	logger           *zap.Logger
}

// NewInteractor creates a new run simulation interactor.
// narrator may be nil, in which case no narrative is produced.
func NewInteractor(
	engine *domain.DiscountImpactEngine,
	narrator contracts.Narrator,
	narrativeTimeout time.Duration,
	history *History,
	clock clock.Clock,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		engine:           engine,
		narrator:         narrator,
		narrativeTimeout: narrativeTimeout,
		history:          history,
		clock:            clock,
		logger:           logger,
	}
}

// Execute evaluates the request, narrates the report and records it.
// Only invalid input fails the call; narration and recording failures are
// logged and the report is still returned.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	start := i.clock.Now()

	// 1. Pure calculation
	report, err := i.engine.Evaluate(&req.Simulation)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Report:    report,
		CreatedAt: start,
	}

	// 2. Narrative
	if !req.SkipNarrative {
		resp.Narrative = i.narrate(ctx, &req.Simulation, report)
	}

	// 3. History
	if i.history != nil {
		id := uuid.New().String()
		if err := i.record(ctx, id, req, resp); err != nil {
			i.logger.Error("failed to record simulation",
				zap.String("simulation_id", id),
				zap.Error(err),
			)
		} else {
			resp.SimulationID = id
		}
	}

	i.logger.Info("simulation completed",
		zap.String("simulation_id", resp.SimulationID),
		zap.String("product_name", report.ProductName),
		zap.String("risk_level", string(report.RiskLevel)),
		zap.Bool("recoverable", report.MinimumSalesIncrease.Recoverable),
		zap.Duration("duration", i.clock.Now().Sub(start)),
	)

	return resp, nil
}

func (i *Interactor) narrate(ctx context.Context, req *domain.DiscountRequest, report *domain.DiscountReport) string {
	if i.narrator == nil {
		return ""
	}

	nctx := ctx
	if i.narrativeTimeout > 0 {
		var cancel context.CancelFunc
		nctx, cancel = context.WithTimeout(ctx, i.narrativeTimeout)
		defer cancel()
	}

	text, err := i.narrator.Narrate(nctx, req, report)
	if err != nil {
		i.logger.Warn("narrative generation failed",
			zap.String("product_name", report.ProductName),
			zap.Error(err),
		)
		return ""
	}
	return text
}

// record writes the simulation and its outbox event in one commit plan.
func (i *Interactor) record(ctx context.Context, id string, req *Request, resp *Response) error {
	plan := committer.NewPlan()

	plan.Add(i.history.Simulations.InsertMut(&contracts.SimulationRecord{
		SimulationID: id,
		Request:      req.Simulation,
		Report:       resp.Report,
		Narrative:    resp.Narrative,
		CreatedAt:    resp.CreatedAt,
	}))

	event := domain.NewSimulationCompletedEvent(id, &req.Simulation, resp.Report, resp.CreatedAt)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	plan.Add(i.history.Outbox.InsertMut(i.history.Outbox.EnrichEvent(event, payload)))

	if err := i.history.Applier.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
