package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liqstats/internal/models"
)

func event(ts int64, revenue, hash string) models.LiquidationEvent {
	return models.LiquidationEvent{
		BlockTimestamp:  ts,
		Revenue:         decimal.RequireFromString(revenue),
		TransactionHash: hash,
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	events := []models.LiquidationEvent{
		event(1738368000, "3000000000000000000", "0xa"), // 2025-02-01
		event(1735689600, "1000000000000000000", "0xb"), // 2025-01-01
		event(1735776000, "2000000000000000000", "0xc"), // 2025-01-02
	}

	s := Summarize(events)

	assert.Equal(t, 3, s.Count)
	assert.True(t, s.From.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.To.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.Total.Equal(decimal.RequireFromString("6")))
	assert.True(t, s.Mean.Equal(decimal.RequireFromString("2")))
	assert.True(t, s.Median.Equal(decimal.RequireFromString("2")))
	assert.True(t, s.Max.Equal(decimal.RequireFromString("3")))
	assert.True(t, s.Min.Equal(decimal.RequireFromString("1")))
}

func TestSummarizeEvenCountMedian(t *testing.T) {
	t.Parallel()

	events := []models.LiquidationEvent{
		event(1735689600, "1000000000000000000", "0xa"),
		event(1735689601, "2000000000000000000", "0xb"),
		event(1735689602, "3000000000000000000", "0xc"),
		event(1735689603, "4000000000000000000", "0xd"),
	}

	s := Summarize(events)

	assert.True(t, s.Median.Equal(decimal.RequireFromString("2.5")), "got %s", s.Median)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)

	assert.Zero(t, s.Count)
	assert.True(t, s.Total.IsZero())
}

func TestTopByRevenue(t *testing.T) {
	t.Parallel()

	events := []models.LiquidationEvent{
		event(1735689600, "1000000000000000000", "0xa"),
		event(1735689601, "5000000000000000000", "0xb"),
		event(1735689602, "3000000000000000000", "0xc"),
	}

	top := TopByRevenue(events, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "0xb", top[0].TransactionHash)
	assert.Equal(t, "0xc", top[1].TransactionHash)
}

func TestTopByRevenueFewerThanK(t *testing.T) {
	t.Parallel()

	events := []models.LiquidationEvent{
		event(1735689600, "1000000000000000000", "0xa"),
	}

	top := TopByRevenue(events, 10)

	require.Len(t, top, 1)
}
