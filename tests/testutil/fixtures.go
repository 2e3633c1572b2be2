package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/repo"
	"github.com/light-bringer/discount-impact-service/internal/models/m_outbox"
)

// NewRequest returns a valid request for the given product and discount.
func NewRequest(productName string, discountPercent float64) domain.DiscountRequest {
	return domain.DiscountRequest{
		ProductName:     productName,
		CurrentPrice:    100,
		CurrentMargin:   40,
		DiscountPercent: discountPercent,
	}
}

// CreateTestSimulation evaluates a request and stores it directly, bypassing
// the use case. It returns the new simulation id.
func CreateTestSimulation(t *testing.T, client *spanner.Client, req domain.DiscountRequest, createdAt time.Time) string {
	t.Helper()

	report, err := domain.NewDefaultDiscountImpactEngine().Evaluate(&req)
	require.NoError(t, err, "failed to evaluate fixture request")

	id := uuid.New().String()
	mut := repo.NewSimulationRepo().InsertMut(&contracts.SimulationRecord{
		SimulationID: id,
		Request:      req,
		Report:       report,
		CreatedAt:    createdAt,
	})

	_, err = client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to create test simulation")
	return id
}

// AssertOutboxEvent asserts that an event of the given type exists for aggregateID
// and returns its status.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType, aggregateID string) string {
	t.Helper()

	stmt := spanner.Statement{
		SQL: "SELECT " + m_outbox.Status + " FROM " + m_outbox.TableName +
			" WHERE " + m_outbox.EventType + " = @event_type AND " + m_outbox.AggregateID + " = @aggregate_id",
		Params: map[string]interface{}{
			"event_type":   eventType,
			"aggregate_id": aggregateID,
		},
	}

	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event %s for %s not found", eventType, aggregateID)

	var status string
	require.NoError(t, row.Columns(&status))
	return status
}
