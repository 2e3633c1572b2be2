package simulation

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/get_simulation"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/list_events"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/list_simulations"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/usecases/compare_discounts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/usecases/run_simulation"
	pb "github.com/light-bringer/discount-impact-service/proto/simulation/v1"
)

// Handler implements the gRPC SimulationService interface.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	pb.UnimplementedSimulationServiceServer

	// Commands
	runSimulation    *run_simulation.Interactor
	compareDiscounts *compare_discounts.Interactor

	// Queries
	getSimulation   *get_simulation.Query
	listSimulations *list_simulations.Query
	listEvents      *list_events.Query

	logger *zap.Logger
}

var _ pb.SimulationServiceServer = (*Handler)(nil)

// NewHandler creates a new gRPC simulation handler.
func NewHandler(
	runSimulation *run_simulation.Interactor,
	compareDiscounts *compare_discounts.Interactor,
	getSimulation *get_simulation.Query,
	listSimulations *list_simulations.Query,
	listEvents *list_events.Query,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		runSimulation:    runSimulation,
		compareDiscounts: compareDiscounts,
		getSimulation:    getSimulation,
		listSimulations:  listSimulations,
		listEvents:       listEvents,
		logger:           logger,
	}
}

// Simulate runs one simulation.
func (h *Handler) Simulate(ctx context.Context, req *pb.SimulateRequest) (*pb.SimulationResult, error) {
	simReq, err := simulateRequestToDomain(req)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err, h.logger)
	}

	resp, err := h.runSimulation.Execute(ctx, &run_simulation.Request{
		Simulation:    simReq,
		SkipNarrative: req.GetSkipNarrative(),
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err, h.logger)
	}

	result, err := reportToProto(simReq.DiscountPercent, resp.Report)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err, h.logger)
	}
	return withHistory(result, resp.SimulationID, resp.Narrative, resp.CreatedAt), nil
}

// Compare evaluates a product at several discount levels.
func (h *Handler) Compare(ctx context.Context, req *pb.CompareRequest) (*pb.CompareReply, error) {
	base, err := compareRequestToDomain(req)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err, h.logger)
	}

	resp, err := h.compareDiscounts.Execute(ctx, &compare_discounts.Request{
		Base:           base,
		DiscountLevels: req.GetDiscountLevels(),
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err, h.logger)
	}

	results := make([]*pb.SimulationResult, 0, len(resp.Reports))
	for i, report := range resp.Reports {
		result, err := reportToProto(req.GetDiscountLevels()[i], report)
		if err != nil {
			return nil, mapDomainErrorToGRPC(err, h.logger)
		}
		results = append(results, result)
	}
	return &pb.CompareReply{Results: results}, nil
}

// GetSimulation returns a recorded simulation.
func (h *Handler) GetSimulation(ctx context.Context, req *pb.GetSimulationRequest) (*pb.SimulationResult, error) {
	record, err := h.getSimulation.Execute(ctx, req.GetSimulationId())
	if err != nil {
		return nil, mapDomainErrorToGRPC(err, h.logger)
	}
	result, err := recordToProto(record)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err, h.logger)
	}
	return result, nil
}

// ListSimulations pages through recorded simulations.
func (h *Handler) ListSimulations(ctx context.Context, req *pb.ListSimulationsRequest) (*pb.ListSimulationsReply, error) {
	result, err := h.listSimulations.Execute(ctx, &list_simulations.Request{
		ProductName: req.GetProductName(),
		RiskLevel:   req.GetRiskLevel(),
		PageSize:    int(req.GetPageSize()),
		PageToken:   req.GetPageToken(),
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err, h.logger)
	}

	simulations := make([]*pb.SimulationResult, 0, len(result.Simulations))
	for _, record := range result.Simulations {
		simulation, err := recordToProto(record)
		if err != nil {
			return nil, mapDomainErrorToGRPC(err, h.logger)
		}
		simulations = append(simulations, simulation)
	}
	return &pb.ListSimulationsReply{
		Simulations:   simulations,
		NextPageToken: result.NextPageToken,
	}, nil
}

// ListEvents lists outbox events.
func (h *Handler) ListEvents(ctx context.Context, req *pb.ListEventsRequest) (*pb.ListEventsReply, error) {
	events, err := h.listEvents.Execute(ctx, &list_events.Request{
		EventType:   req.GetEventType(),
		AggregateID: req.GetAggregateId(),
		Status:      req.GetStatus(),
		Limit:       int(req.GetLimit()),
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err, h.logger)
	}

	out := make([]*pb.Event, 0, len(events))
	for _, event := range events {
		out = append(out, eventToProto(event))
	}
	return &pb.ListEventsReply{
		Events:     out,
		TotalCount: int64(len(out)),
	}, nil
}
