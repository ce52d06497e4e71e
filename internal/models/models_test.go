package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidationEventUnmarshal(t *testing.T) {
	// Revenue arrives as a string in some datasets and a number in others
	raw := `{"blockTimestamp": 1735689600, "revenue": "1000000000000000000", "transactionHash": "0xabc", "marketId": "0xm1"}`

	var ev LiquidationEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))

	assert.True(t, ev.Time().Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1", ev.RevenueETH().String())
	assert.Equal(t, "0xm1", ev.MarketID)

	var numeric LiquidationEvent
	require.NoError(t, json.Unmarshal([]byte(`{"blockTimestamp": 1, "revenue": 500000000000000000}`), &numeric))
	assert.Equal(t, "0.5", numeric.RevenueETH().String())
}

func TestRevenueETHIsExact(t *testing.T) {
	ev := LiquidationEvent{Revenue: decimal.RequireFromString("1316777549196586001")}

	// Every minor-unit digit survives the conversion
	assert.Equal(t, "1.316777549196586001", ev.RevenueETH().String())
}

func TestMarketBreakdownEmpty(t *testing.T) {
	var b *MarketBreakdown
	assert.True(t, b.Empty())
	assert.True(t, (&MarketBreakdown{}).Empty())
	assert.False(t, (&MarketBreakdown{Months: []time.Time{time.Now()}}).Empty())
}
