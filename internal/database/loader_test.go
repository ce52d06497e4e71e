package database

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liqstats/internal/models"
)

func TestRowsFromMonthly(t *testing.T) {
	monthly := []models.MonthlyRevenue{
		{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), RevenueETH: decimal.RequireFromString("1.5")},
		{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), RevenueETH: decimal.RequireFromString("2")},
	}

	rows := RowsFromMonthly(monthly)

	require.Len(t, rows, 2)
	assert.Empty(t, rows[0].MarketID)
	assert.Equal(t, 1.5, rows[0].RevenueETH)
	assert.True(t, rows[1].Month.Equal(monthly[1].Month))
}

func TestRowsFromBreakdown(t *testing.T) {
	b := &models.MarketBreakdown{
		Months:  []time.Time{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		Columns: []string{"0xm1", models.OthersColumn},
		Rows: [][]decimal.Decimal{
			{decimal.RequireFromString("1"), decimal.RequireFromString("0.25")},
		},
	}

	rows := RowsFromBreakdown(b)

	require.Len(t, rows, 2)
	assert.Equal(t, "0xm1", rows[0].MarketID)
	assert.Equal(t, 1.0, rows[0].RevenueETH)
	assert.Equal(t, models.OthersColumn, rows[1].MarketID)
	assert.Equal(t, 0.25, rows[1].RevenueETH)
}

func TestRowsFromBreakdownEmpty(t *testing.T) {
	assert.Nil(t, RowsFromBreakdown(&models.MarketBreakdown{}))
	assert.Nil(t, RowsFromBreakdown(nil))
}
