package simulation

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/pkg/precision"
	pb "github.com/light-bringer/discount-impact-service/proto/simulation/v1"
)

func required(v *wrapperspb.DoubleValue, field string) (float64, error) {
	if v == nil {
		return 0, domain.NewValidationError(field, "is required")
	}
	return v.GetValue(), nil
}

func optionalDouble(v *wrapperspb.DoubleValue) *float64 {
	if v == nil {
		return nil
	}
	value := v.GetValue()
	return &value
}

func optionalInt64(v *wrapperspb.Int64Value) *int64 {
	if v == nil {
		return nil
	}
	value := v.GetValue()
	return &value
}

// simulateRequestToDomain converts a wire request. Missing required numbers
// are reported by name; range checks are left to the engine.
func simulateRequestToDomain(req *pb.SimulateRequest) (domain.DiscountRequest, error) {
	price, err := required(req.GetCurrentPrice(), domain.FieldCurrentPrice)
	if err != nil {
		return domain.DiscountRequest{}, err
	}
	margin, err := required(req.GetCurrentMargin(), domain.FieldCurrentMargin)
	if err != nil {
		return domain.DiscountRequest{}, err
	}
	discount, err := required(req.GetDiscountPercent(), domain.FieldDiscountPercent)
	if err != nil {
		return domain.DiscountRequest{}, err
	}

	return domain.DiscountRequest{
		ProductName:           req.GetProductName(),
		CurrentPrice:          price,
		CurrentMargin:         margin,
		DiscountPercent:       discount,
		ExpectedSalesIncrease: optionalDouble(req.GetExpectedSalesIncrease()),
		CurrentMonthlySales:   optionalInt64(req.GetCurrentMonthlySales()),
	}, nil
}

func compareRequestToDomain(req *pb.CompareRequest) (domain.DiscountRequest, error) {
	price, err := required(req.GetCurrentPrice(), domain.FieldCurrentPrice)
	if err != nil {
		return domain.DiscountRequest{}, err
	}
	margin, err := required(req.GetCurrentMargin(), domain.FieldCurrentMargin)
	if err != nil {
		return domain.DiscountRequest{}, err
	}

	return domain.DiscountRequest{
		ProductName:           req.GetProductName(),
		CurrentPrice:          price,
		CurrentMargin:         margin,
		ExpectedSalesIncrease: optionalDouble(req.GetExpectedSalesIncrease()),
		CurrentMonthlySales:   optionalInt64(req.GetCurrentMonthlySales()),
	}, nil
}

// reportToProto rounds a report for the wire: money to cents, percentages to
// one decimal. A non-finite value fails the whole report.
func reportToProto(discountPercent float64, r *domain.DiscountReport) (*pb.SimulationResult, error) {
	var round precision.Rounder
	result := &pb.SimulationResult{
		ProductName:                     r.ProductName,
		DiscountPercent:                 round.Percent(discountPercent),
		DiscountedPrice:                 round.Money(r.DiscountedPrice),
		DiscountAmount:                  round.Money(r.DiscountAmount),
		CurrentMargin:                   round.Percent(r.CurrentMargin),
		NewMargin:                       round.Percent(r.NewMargin),
		ProfitLoss:                      round.Money(r.ProfitLoss),
		ProfitLossPercent:               round.Percent(r.ProfitLossPercent),
		MinimumSalesIncreaseRecoverable: r.MinimumSalesIncrease.Recoverable,
		AdditionalSalesNeeded:           r.AdditionalSalesNeeded,
		ScenarioNoIncrease:              scenarioToProto(&round, r.ScenarioNoIncrease),
		ScenarioWithIncrease:            scenarioToProto(&round, r.ScenarioWithIncrease),
		RiskLevel:                       string(r.RiskLevel),
		RiskMessage:                     r.RiskMessage,
		Recommendations:                 make([]*pb.Recommendation, 0, len(r.Recommendations)),
	}

	if r.MinimumSalesIncrease.Recoverable {
		result.MinimumSalesIncrease = wrapperspb.Double(round.Percent(r.MinimumSalesIncrease.Percent))
	}

	for _, rec := range r.Recommendations {
		result.Recommendations = append(result.Recommendations, &pb.Recommendation{
			Type:        string(rec.Type),
			Title:       rec.Title,
			Description: rec.Description,
		})
	}

	if err := round.Err(); err != nil {
		return nil, fmt.Errorf("failed to encode report for %q: %w", r.ProductName, err)
	}
	return result, nil
}

func scenarioToProto(round *precision.Rounder, s domain.Scenario) *pb.Scenario {
	return &pb.Scenario{
		SalesVolume: round.Units(s.SalesVolume),
		TotalProfit: round.Money(s.TotalProfit),
		ProfitDiff:  round.Money(s.ProfitDiff),
	}
}

func withHistory(result *pb.SimulationResult, simulationID, narrative string, createdAt time.Time) *pb.SimulationResult {
	result.SimulationId = simulationID
	result.AiAnalysis = narrative
	if simulationID != "" && !createdAt.IsZero() {
		result.CreatedAt = timestamppb.New(createdAt)
	}
	return result
}

func recordToProto(record *contracts.SimulationRecord) (*pb.SimulationResult, error) {
	result, err := reportToProto(record.Request.DiscountPercent, record.Report)
	if err != nil {
		return nil, err
	}
	return withHistory(result, record.SimulationID, record.Narrative, record.CreatedAt), nil
}

func eventToProto(dto *contracts.EventDTO) *pb.Event {
	event := &pb.Event{
		EventId:     dto.EventID,
		EventType:   dto.EventType,
		AggregateId: dto.AggregateID,
		Payload:     dto.Payload,
		Status:      dto.Status,
		CreatedAt:   timestamppb.New(dto.CreatedAt),
		RetryCount:  dto.RetryCount,
	}
	if dto.ProcessedAt != nil {
		event.ProcessedAt = timestamppb.New(*dto.ProcessedAt)
	}
	return event
}
