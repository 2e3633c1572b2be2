package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/discount-impact-service/internal/models/m_outbox"
)

func TestRetentionPolicies(t *testing.T) {
	now := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	got := retentionPolicies(Config{CompletedRetentionDays: 30, FailedRetentionDays: 90}, now)

	require.Len(t, got, 2)
	assert.Equal(t, m_outbox.StatusCompleted, got[0].status)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), got[0].cutoff)
	assert.Equal(t, m_outbox.StatusFailed, got[1].status)
	assert.Equal(t, now.AddDate(0, 0, -90), got[1].cutoff)
}

func TestExpiredStatement(t *testing.T) {
	cutoff := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	p := retention{status: m_outbox.StatusCompleted, cutoff: cutoff}

	t.Run("batched", func(t *testing.T) {
		stmt := expiredStatement(p, 500)
		assert.Equal(t,
			"SELECT event_id FROM outbox_events WHERE status = @p0 AND processed_at < @p1 ORDER BY processed_at ASC LIMIT @limit",
			stmt.SQL)
		assert.Equal(t, m_outbox.StatusCompleted, stmt.Params["p0"])
		assert.Equal(t, cutoff, stmt.Params["p1"])
		assert.Equal(t, int64(500), stmt.Params["limit"])
	})

	t.Run("unbounded", func(t *testing.T) {
		stmt := expiredStatement(p, 0)
		assert.NotContains(t, stmt.SQL, "LIMIT")
	})
}

func TestConfigValidate(t *testing.T) {
	valid := Config{SpannerDB: "projects/p/instances/i/databases/d", CompletedRetentionDays: 30, FailedRetentionDays: 90, BatchSize: 100}
	assert.NoError(t, valid.validate())

	noDB := valid
	noDB.SpannerDB = ""
	assert.Error(t, noDB.validate())

	negative := valid
	negative.FailedRetentionDays = -1
	assert.Error(t, negative.validate())

	noBatch := valid
	noBatch.BatchSize = 0
	assert.Error(t, noBatch.validate())
}
