package repo

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/models/m_simulation"
)

// SimulationRepo implements SimulationRepository for Spanner.
type SimulationRepo struct {
	model *m_simulation.Model
}

// NewSimulationRepo creates a new SimulationRepo.
func NewSimulationRepo() contracts.SimulationRepository {
	return &SimulationRepo{
		model: m_simulation.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a simulation record.
func (r *SimulationRepo) InsertMut(record *contracts.SimulationRecord) *spanner.Mutation {
	return r.model.InsertMut(recordToData(record))
}

// recordToData flattens a record into its row. Optional request fields are
// stored resolved so history shows the values the engine actually used.
func recordToData(record *contracts.SimulationRecord) *m_simulation.Data {
	req := record.Request
	report := record.Report

	return &m_simulation.Data{
		SimulationID:          record.SimulationID,
		ProductName:           report.ProductName,
		CurrentPrice:          req.CurrentPrice,
		CurrentMargin:         req.CurrentMargin,
		DiscountPercent:       req.DiscountPercent,
		ExpectedSalesIncrease: req.SalesIncreaseOrDefault(),
		CurrentMonthlySales:   req.MonthlySalesOrDefault(),
		RiskLevel:             string(report.RiskLevel),
		NewMargin:             report.NewMargin,
		Recoverable:           report.MinimumSalesIncrease.Recoverable,
		Report:                spanner.NullJSON{Value: reportToRecord(report), Valid: true},
		Narrative:             spanner.NullString{StringVal: record.Narrative, Valid: record.Narrative != ""},
		CreatedAt:             record.CreatedAt,
	}
}

// dataToRecord rebuilds a record from its row.
func dataToRecord(data *m_simulation.Data) (*contracts.SimulationRecord, error) {
	if !data.Report.Valid {
		return nil, fmt.Errorf("simulation %s has no report", data.SimulationID)
	}

	// Spanner decodes JSON columns into generic values; round-trip through
	// encoding/json to get the typed document back.
	raw, err := json.Marshal(data.Report.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stored report: %w", err)
	}
	var stored m_simulation.ReportRecord
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode stored report: %w", err)
	}

	increase := data.ExpectedSalesIncrease
	monthly := data.CurrentMonthlySales
	report := recordToReport(data.ProductName, &stored)

	return &contracts.SimulationRecord{
		SimulationID: data.SimulationID,
		Request: domain.DiscountRequest{
			ProductName:           data.ProductName,
			CurrentPrice:          data.CurrentPrice,
			CurrentMargin:         data.CurrentMargin,
			DiscountPercent:       data.DiscountPercent,
			ExpectedSalesIncrease: &increase,
			CurrentMonthlySales:   &monthly,
		},
		Report:    report,
		Narrative: data.Narrative.StringVal,
		CreatedAt: data.CreatedAt,
	}, nil
}

func reportToRecord(r *domain.DiscountReport) *m_simulation.ReportRecord {
	recs := make([]m_simulation.RecommendationRecord, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		recs = append(recs, m_simulation.RecommendationRecord{
			Type:        string(rec.Type),
			Title:       rec.Title,
			Description: rec.Description,
		})
	}

	return &m_simulation.ReportRecord{
		DiscountedPrice:       r.DiscountedPrice,
		DiscountAmount:        r.DiscountAmount,
		UnitCost:              r.UnitCost,
		CurrentMargin:         r.CurrentMargin,
		NewMargin:             r.NewMargin,
		CurrentUnitProfit:     r.CurrentUnitProfit,
		NewUnitProfit:         r.NewUnitProfit,
		ProfitLoss:            r.ProfitLoss,
		ProfitLossPercent:     r.ProfitLossPercent,
		MinimumSalesIncrease:  r.MinimumSalesIncrease.Percent,
		Recoverable:           r.MinimumSalesIncrease.Recoverable,
		AdditionalSalesNeeded: r.AdditionalSalesNeeded,
		ScenarioNoIncrease:    m_simulation.ScenarioRecord(r.ScenarioNoIncrease),
		ScenarioWithIncrease:  m_simulation.ScenarioRecord(r.ScenarioWithIncrease),
		RiskLevel:             string(r.RiskLevel),
		RiskMessage:           r.RiskMessage,
		Recommendations:       recs,
	}
}

func recordToReport(productName string, s *m_simulation.ReportRecord) *domain.DiscountReport {
	recs := make([]domain.Recommendation, 0, len(s.Recommendations))
	for _, rec := range s.Recommendations {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecommendationType(rec.Type),
			Title:       rec.Title,
			Description: rec.Description,
		})
	}

	return &domain.DiscountReport{
		ProductName:       productName,
		DiscountedPrice:   s.DiscountedPrice,
		DiscountAmount:    s.DiscountAmount,
		UnitCost:          s.UnitCost,
		CurrentMargin:     s.CurrentMargin,
		NewMargin:         s.NewMargin,
		CurrentUnitProfit: s.CurrentUnitProfit,
		NewUnitProfit:     s.NewUnitProfit,
		ProfitLoss:        s.ProfitLoss,
		ProfitLossPercent: s.ProfitLossPercent,
		MinimumSalesIncrease: domain.BreakEven{
			Percent:     s.MinimumSalesIncrease,
			Recoverable: s.Recoverable,
		},
		AdditionalSalesNeeded: s.AdditionalSalesNeeded,
		ScenarioNoIncrease:    domain.Scenario(s.ScenarioNoIncrease),
		ScenarioWithIncrease:  domain.Scenario(s.ScenarioWithIncrease),
		RiskLevel:             domain.RiskLevel(s.RiskLevel),
		RiskMessage:           s.RiskMessage,
		Recommendations:       recs,
	}
}
