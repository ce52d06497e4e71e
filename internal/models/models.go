package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// minorUnitDecimals is the number of minor units per ETH (wei).
const minorUnitDecimals = 18

// LiquidationEvent is a single on-chain liquidation log entry. Revenue is
// the raw minor-unit (wei) amount; datasets encode it as either a JSON
// string or a number, both of which decimal.Decimal accepts.
type LiquidationEvent struct {
	BlockTimestamp  int64           `json:"blockTimestamp"`
	Revenue         decimal.Decimal `json:"revenue"`
	TransactionHash string          `json:"transactionHash"`
	MarketID        string          `json:"marketId,omitempty"`
}

// Time returns the event time in UTC.
func (e LiquidationEvent) Time() time.Time {
	return time.Unix(e.BlockTimestamp, 0).UTC()
}

// RevenueETH converts the raw minor-unit amount to ETH. The shift is
// exact, no float division is involved.
func (e LiquidationEvent) RevenueETH() decimal.Decimal {
	return e.Revenue.Shift(-minorUnitDecimals)
}

// MonthlyRevenue is one calendar-month bucket of summed revenue.
type MonthlyRevenue struct {
	Month      time.Time
	RevenueETH decimal.Decimal
}

// DailyRevenue is one calendar-day bucket of summed revenue.
type DailyRevenue struct {
	Day        time.Time
	RevenueETH decimal.Decimal
}

// OthersColumn labels the fold of all markets outside the top ranking.
const OthersColumn = "Others"

// MarketBreakdown is a month-indexed pivot of revenue per ranked market.
// Columns holds the ranked market ids, followed by OthersColumn when at
// least one market fell outside the ranking. Rows is aligned with Months
// and Columns and zero-filled for months where a market had no activity.
type MarketBreakdown struct {
	Months  []time.Time
	Columns []string
	Rows    [][]decimal.Decimal
}

// Empty reports whether the breakdown has nothing to plot.
func (b *MarketBreakdown) Empty() bool {
	return b == nil || len(b.Months) == 0
}

// MonthlyMarketRevenue is the flattened row shape for the ClickHouse sink.
// Simple-mode aggregates carry an empty MarketID.
type MonthlyMarketRevenue struct {
	Month      time.Time `ch:"month"`
	MarketID   string    `ch:"market_id"`
	RevenueETH float64   `ch:"revenue_eth"`
}
