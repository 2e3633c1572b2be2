package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Select(t *testing.T) {
	t.Run("explicit columns", func(t *testing.T) {
		stmt := From("simulations").
			Select("simulation_id", "product_name", "risk_level").
			Build()

		assert.Equal(t, "SELECT simulation_id, product_name, risk_level FROM simulations", stmt.SQL)
		assert.Empty(t, stmt.Params)
	})

	t.Run("all columns", func(t *testing.T) {
		stmt := From("simulations").Build()
		assert.Equal(t, "SELECT * FROM simulations", stmt.SQL)
	})

	t.Run("multiple select calls append", func(t *testing.T) {
		stmt := From("simulations").
			Select("simulation_id").
			Select("risk_level").
			Build()
		assert.Equal(t, "SELECT simulation_id, risk_level FROM simulations", stmt.SQL)
	})
}

func TestBuilder_Where(t *testing.T) {
	t.Run("conditions are joined with AND", func(t *testing.T) {
		stmt := From("simulations").
			Select("simulation_id").
			Where(Eq("product_name", "Espresso Machine")).
			Where(Eq("risk_level", "high")).
			Build()

		assert.Equal(t, "SELECT simulation_id FROM simulations WHERE product_name = @p0 AND risk_level = @p1", stmt.SQL)
		assert.Equal(t, map[string]interface{}{
			"p0": "Espresso Machine",
			"p1": "high",
		}, stmt.Params)
	})

	t.Run("nil condition is ignored", func(t *testing.T) {
		stmt := From("simulations").Select("simulation_id").Where(nil).Build()
		assert.Equal(t, "SELECT simulation_id FROM simulations", stmt.SQL)
	})
}

func TestBuilder_OrderByWithTieBreaker(t *testing.T) {
	stmt := From("simulations").
		Select("simulation_id").
		OrderBy("created_at", Desc).
		OrderBy("simulation_id", Desc).
		Build()

	assert.Equal(t, "SELECT simulation_id FROM simulations ORDER BY created_at DESC, simulation_id DESC", stmt.SQL)
}

func TestBuilder_OrderByAsc(t *testing.T) {
	stmt := From("outbox_events").
		Select("event_id").
		OrderBy("created_at", Asc).
		Build()

	assert.Equal(t, "SELECT event_id FROM outbox_events ORDER BY created_at ASC", stmt.SQL)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("outbox_events").
		Select("event_id").
		Limit(10).
		Build()

	assert.Equal(t, "SELECT event_id FROM outbox_events LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"limit": int64(10)}, stmt.Params)
}

func TestBuilder_CursorPage(t *testing.T) {
	cursorTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	stmt := From("simulations").
		Select("simulation_id", "created_at").
		Where(Eq("risk_level", "high")).
		Where(Before("created_at", cursorTime, "simulation_id", "sim-42")).
		OrderBy("created_at", Desc).
		OrderBy("simulation_id", Desc).
		Limit(21).
		Build()

	expected := "SELECT simulation_id, created_at FROM simulations WHERE risk_level = @p0 AND " +
		"(created_at < @p1 OR (created_at = @p1 AND simulation_id < @p2)) " +
		"ORDER BY created_at DESC, simulation_id DESC LIMIT @limit"
	assert.Equal(t, expected, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":    "high",
		"p1":    cursorTime,
		"p2":    "sim-42",
		"limit": int64(21),
	}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("simulations").Select("simulation_id")

	stmt1 := base.Where(Eq("risk_level", "low")).Build()
	stmt2 := base.Where(Eq("product_name", "Kettle")).Build()

	assert.Contains(t, stmt1.SQL, "risk_level = @p0")
	assert.NotContains(t, stmt1.SQL, "product_name")
	assert.Contains(t, stmt2.SQL, "product_name = @p0")
	assert.NotContains(t, stmt2.SQL, "risk_level")
	assert.Equal(t, "SELECT simulation_id FROM simulations", base.Build().SQL)
}

func TestConditions(t *testing.T) {
	tests := []struct {
		name       string
		cond       Condition
		paramIndex int
		wantSQL    string
		wantParams map[string]interface{}
	}{
		{"eq", Eq("status", "pending"), 0, "status = @p0", map[string]interface{}{"p0": "pending"}},
		{"eq offset index", Eq("status", "failed"), 5, "status = @p5", map[string]interface{}{"p5": "failed"}},
		{"lt", Lt("retry_count", int64(3)), 1, "retry_count < @p1", map[string]interface{}{"p1": int64(3)}},
		{"gte", Gte("new_margin", 15.0), 2, "new_margin >= @p2", map[string]interface{}{"p2": 15.0}},
		{
			"before", Before("created_at", "t", "event_id", "e1"), 3,
			"(created_at < @p3 OR (created_at = @p3 AND event_id < @p4))",
			map[string]interface{}{"p3": "t", "p4": "e1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, params := tt.cond.SQL(tt.paramIndex)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}

func TestBuilder_String(t *testing.T) {
	str := From("simulations").
		Select("simulation_id").
		Where(Eq("risk_level", "medium")).
		String()

	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Params:")
	assert.Contains(t, str, "simulations")
}
