package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts/mocks"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/get_simulation"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/list_events"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/list_simulations"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/usecases/compare_discounts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/usecases/run_simulation"
	"github.com/light-bringer/discount-impact-service/internal/narrative"
	"github.com/light-bringer/discount-impact-service/internal/pkg/clock"
	grpcsim "github.com/light-bringer/discount-impact-service/internal/transport/grpc/simulation"
	pb "github.com/light-bringer/discount-impact-service/proto/simulation/v1"
)

type testEnv struct {
	router *gin.Engine
	reads  *mocks.MockReadModel
	events *mocks.MockEventsReadModel
}

func setup(t *testing.T, limiter *RateLimiter) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	reads := mocks.NewMockReadModel(ctrl)
	events := mocks.NewMockEventsReadModel(ctrl)

	logger := zap.NewNop()
	engine := domain.NewDefaultDiscountImpactEngine()
	service := grpcsim.NewHandler(
		run_simulation.NewInteractor(engine, narrative.NewTemplateNarrator(), time.Second, nil,
			clock.NewMockClock(time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)), logger),
		compare_discounts.NewInteractor(engine, logger),
		get_simulation.NewQuery(reads),
		list_simulations.NewQuery(reads),
		list_events.NewQuery(events),
		logger,
	)

	return &testEnv{
		router: NewRouter(service, RouterConfig{AllowedOrigins: []string{"*"}, RateLimiter: limiter}, logger),
		reads:  reads,
		events: events,
	}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func decodeProto[T any, M interface {
	*T
	proto.Message
}](t *testing.T, w *httptest.ResponseRecorder) M {
	t.Helper()
	msg := M(new(T))
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), msg))
	return msg
}

func TestHealth(t *testing.T) {
	env := setup(t, nil)

	w := env.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSimulate(t *testing.T) {
	t.Run("high risk is still 200 with full report", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodPost, "/api/v1/simulations",
			`{"productName":"Widget","currentPrice":100,"currentMargin":40,"discountPercent":20}`)
		require.Equal(t, http.StatusOK, w.Code)

		result := decodeProto[pb.SimulationResult](t, w)
		assert.Equal(t, 80.0, result.GetDiscountedPrice())
		assert.Equal(t, 25.0, result.GetNewMargin())
		assert.Equal(t, 100.0, result.GetMinimumSalesIncrease().GetValue())
		assert.Equal(t, "high", result.GetRiskLevel())
		assert.NotEmpty(t, result.GetAiAnalysis())

		var raw map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Equal(t, 100.0, raw["minimumSalesIncrease"])
		assert.Equal(t, "100", raw["additionalSalesNeeded"], "int64 is a string in protobuf JSON")
		assert.Contains(t, raw, "aiAnalysis")
	})

	t.Run("unrecoverable break-even encodes as null", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodPost, "/api/v1/simulations",
			`{"productName":"Widget","currentPrice":100,"currentMargin":40,"discountPercent":60,"skipNarrative":true}`)
		require.Equal(t, http.StatusOK, w.Code)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Contains(t, raw, "minimumSalesIncrease")
		assert.Nil(t, raw["minimumSalesIncrease"])
		assert.Equal(t, false, raw["minimumSalesIncreaseRecoverable"])
	})

	t.Run("out of range discount names the field", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodPost, "/api/v1/simulations",
			`{"productName":"Widget","currentPrice":100,"currentMargin":40,"discountPercent":150}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decode[errorBody](t, w)
		assert.Equal(t, "invalid_input", body.Error)
		assert.Equal(t, domain.FieldDiscountPercent, body.Field)
		assert.NotEmpty(t, body.Message)
	})

	t.Run("missing required field", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodPost, "/api/v1/simulations", `{"productName":"Widget","currentMargin":40,"discountPercent":10}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.FieldCurrentPrice, decode[errorBody](t, w).Field)
	})

	t.Run("explicit null counts as missing", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodPost, "/api/v1/simulations",
			`{"productName":"Widget","currentPrice":null,"currentMargin":40,"discountPercent":10}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.FieldCurrentPrice, decode[errorBody](t, w).Field)
	})

	t.Run("extreme values name the field", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodPost, "/api/v1/simulations",
			`{"productName":"Widget","currentPrice":1e300,"currentMargin":50,"discountPercent":10,"currentMonthlySales":"9223372036854775807"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.FieldCurrentPrice, decode[errorBody](t, w).Field)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodPost, "/api/v1/simulations",
			`{"productName":"Widget","currentPrice":100,"currentMargin":40,"discountPercent":20,"skipNarrative":true,"coupon":"X"}`)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong json type", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodPost, "/api/v1/simulations", `{"productName":"Widget","currentPrice":"cheap"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, fieldBody, decode[errorBody](t, w).Field)
	})

	t.Run("malformed body", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodPost, "/api/v1/simulations", `{`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, fieldBody, decode[errorBody](t, w).Field)
	})
}

func TestCompare(t *testing.T) {
	env := setup(t, nil)

	w := env.do(http.MethodPost, "/api/v1/simulations/compare",
		`{"productName":"Widget","currentPrice":100,"currentMargin":40,"discountLevels":[5,10,20]}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeProto[pb.CompareReply](t, w)
	require.Len(t, resp.GetResults(), 3)
	assert.Equal(t, 5.0, resp.GetResults()[0].GetDiscountPercent())
	assert.Equal(t, 20.0, resp.GetResults()[2].GetDiscountPercent())
}

func TestGetSimulation(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		env := setup(t, nil)
		env.reads.EXPECT().GetSimulation(gomock.Any(), "nope").Return(nil, domain.ErrSimulationNotFound)

		w := env.do(http.MethodGet, "/api/v1/simulations/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", decode[errorBody](t, w).Error)
	})

	t.Run("history disabled", func(t *testing.T) {
		env := setup(t, nil)
		env.reads.EXPECT().GetSimulation(gomock.Any(), "sim-1").Return(nil, domain.ErrHistoryDisabled)

		w := env.do(http.MethodGet, "/api/v1/simulations/sim-1", "")
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})
}

func TestListSimulations(t *testing.T) {
	t.Run("forwards query parameters", func(t *testing.T) {
		env := setup(t, nil)
		env.reads.EXPECT().
			ListSimulations(gomock.Any(), &contracts.ListFilter{
				ProductName: "Widget",
				RiskLevel:   "medium",
				PageSize:    10,
				PageToken:   "abc",
			}).
			Return(&contracts.ListResult{Simulations: []*contracts.SimulationRecord{}}, nil)

		w := env.do(http.MethodGet, "/api/v1/simulations?productName=Widget&riskLevel=medium&pageSize=10&pageToken=abc", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"simulations":[],"nextPageToken":""}`, w.Body.String())
	})

	t.Run("non-numeric page size", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodGet, "/api/v1/simulations?pageSize=ten", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "pageSize", decode[errorBody](t, w).Field)
	})

	t.Run("storage failure hides details", func(t *testing.T) {
		env := setup(t, nil)
		env.reads.EXPECT().ListSimulations(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		w := env.do(http.MethodGet, "/api/v1/simulations", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decode[errorBody](t, w).Message)
	})
}

func TestListEvents(t *testing.T) {
	t.Run("applies default limit", func(t *testing.T) {
		env := setup(t, nil)
		env.events.EXPECT().
			ListEvents(gomock.Any(), &contracts.EventFilter{AggregateID: "sim-1", Limit: list_events.DefaultLimit}).
			Return([]*contracts.EventDTO{}, nil)

		w := env.do(http.MethodGet, "/api/v1/events?aggregateId=sim-1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"events":[],"totalCount":"0"}`, w.Body.String())
	})

	t.Run("invalid status", func(t *testing.T) {
		env := setup(t, nil)

		w := env.do(http.MethodGet, "/api/v1/events?status=lost", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, list_events.FieldStatus, decode[errorBody](t, w).Field)
	})
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	t.Run("blocks a client over its burst", func(t *testing.T) {
		env := setup(t, NewRateLimiter(ctx, 1, 2, zap.NewNop()))

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", strings.NewReader(`{`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Forwarded-For", "10.0.0.1")
			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, codes[2])
		assert.NotEqual(t, http.StatusTooManyRequests, codes[0])
	})

	t.Run("health is exempt", func(t *testing.T) {
		env := setup(t, NewRateLimiter(ctx, 1, 1, zap.NewNop()))

		for i := 0; i < 5; i++ {
			w := env.do(http.MethodGet, "/healthz", "")
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("evicts idle clients", func(t *testing.T) {
		rl := NewRateLimiter(ctx, 1, 1, zap.NewNop())
		rl.limiter("10.0.0.9")
		rl.evictIdle(time.Now().Add(limiterIdleTTL + time.Minute))
		assert.Empty(t, rl.limiters)
	})
}

func TestCORSConfig(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	cfg := corsConfig([]string{"https://shop.example.com"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://shop.example.com"}, cfg.AllowOrigins)
}
