package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/light-bringer/discount-impact-service/internal/config"
	pb "github.com/light-bringer/discount-impact-service/proto/simulation/v1"
)

func baseConfig() *config.Config {
	return &config.Config{
		Stage:            "test",
		HistoryEnabled:   false,
		NarrativeTimeout: time.Second,
	}
}

func TestNewServiceOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("history disabled wires without spanner", func(t *testing.T) {
		opts, err := NewServiceOptions(ctx, baseConfig(), zap.NewNop())
		require.NoError(t, err)
		defer opts.Close()

		assert.Nil(t, opts.SpannerClient)
		require.NotNil(t, opts.SimulationHandler)

		result, err := opts.SimulationHandler.Simulate(ctx, &pb.SimulateRequest{
			ProductName:     "Widget",
			CurrentPrice:    wrapperspb.Double(100),
			CurrentMargin:   wrapperspb.Double(40),
			DiscountPercent: wrapperspb.Double(20),
		})
		require.NoError(t, err)
		assert.Equal(t, "high", result.RiskLevel)
		assert.NotEmpty(t, result.AiAnalysis)
		assert.Empty(t, result.SimulationId)
	})

	t.Run("custom risk policy file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("high_margin_floor: 5\nmedium_margin_floor: 10\n"), 0o600))

		cfg := baseConfig()
		cfg.RiskPolicyFile = path
		opts, err := NewServiceOptions(ctx, cfg, zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, opts.SimulationHandler)
	})

	t.Run("missing risk policy file", func(t *testing.T) {
		cfg := baseConfig()
		cfg.RiskPolicyFile = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := NewServiceOptions(ctx, cfg, zap.NewNop())
		assert.Error(t, err)
	})
}
