//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/repo"
	"github.com/light-bringer/discount-impact-service/tests/testutil"
)

func TestReadModel_GetSimulation(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewReadModel(client)
	createdAt := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

	t.Run("round trips the stored report", func(t *testing.T) {
		id := testutil.CreateTestSimulation(t, client, testutil.NewRequest("Widget", 20), createdAt)

		record, err := readModel.GetSimulation(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, id, record.SimulationID)
		assert.Equal(t, "Widget", record.Request.ProductName)
		assert.Equal(t, 20.0, record.Request.DiscountPercent)
		assert.Equal(t, domain.RiskHigh, record.Report.RiskLevel)
		assert.InDelta(t, 25.0, record.Report.NewMargin, 1e-9)
		assert.True(t, record.Report.MinimumSalesIncrease.Recoverable)
		assert.True(t, createdAt.Equal(record.CreatedAt))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := readModel.GetSimulation(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrSimulationNotFound)
	})
}

func TestReadModel_ListSimulations(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewReadModel(client)
	base := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

	// Two share a timestamp to exercise the id tie-break.
	testutil.CreateTestSimulation(t, client, testutil.NewRequest("Widget", 5), base)
	testutil.CreateTestSimulation(t, client, testutil.NewRequest("Widget", 20), base.Add(time.Minute))
	testutil.CreateTestSimulation(t, client, testutil.NewRequest("Gadget", 20), base.Add(time.Minute))
	testutil.CreateTestSimulation(t, client, testutil.NewRequest("Gadget", 60), base.Add(2*time.Minute))

	t.Run("pages newest first without gaps", func(t *testing.T) {
		var seen []*contracts.SimulationRecord
		token := ""
		for page := 0; page < 10; page++ {
			result, err := readModel.ListSimulations(ctx, &contracts.ListFilter{PageSize: 3, PageToken: token})
			require.NoError(t, err)
			seen = append(seen, result.Simulations...)
			if result.NextPageToken == "" {
				break
			}
			token = result.NextPageToken
		}

		require.Len(t, seen, 4)
		ids := make(map[string]bool)
		for i, rec := range seen {
			ids[rec.SimulationID] = true
			if i > 0 {
				assert.False(t, rec.CreatedAt.After(seen[i-1].CreatedAt), "not newest first at %d", i)
			}
		}
		assert.Len(t, ids, 4)
	})

	t.Run("filters by product and risk", func(t *testing.T) {
		result, err := readModel.ListSimulations(ctx, &contracts.ListFilter{
			ProductName: "Gadget",
			RiskLevel:   string(domain.RiskHigh),
			PageSize:    10,
		})
		require.NoError(t, err)
		require.NotEmpty(t, result.Simulations)
		for _, rec := range result.Simulations {
			assert.Equal(t, "Gadget", rec.Request.ProductName)
			assert.Equal(t, domain.RiskHigh, rec.Report.RiskLevel)
		}
		assert.Empty(t, result.NextPageToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := readModel.ListSimulations(ctx, &contracts.ListFilter{PageSize: 10, PageToken: "%%%"})
		field, ok := domain.InvalidField(err)
		require.True(t, ok)
		assert.Equal(t, repo.FieldPageToken, field)
	})
}
