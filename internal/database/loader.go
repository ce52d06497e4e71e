package database

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2"

	"liqstats/internal/models"
)

// MonthlyRevenueLoader loads aggregated monthly revenue into ClickHouse.
type MonthlyRevenueLoader struct {
	Conn clickhouse.Conn
}

func NewMonthlyRevenueLoader(conn clickhouse.Conn) *MonthlyRevenueLoader {
	return &MonthlyRevenueLoader{
		Conn: conn,
	}
}

// Load inserts aggregated rows into the database.
func (l *MonthlyRevenueLoader) Load(ctx context.Context, rows []models.MonthlyMarketRevenue) error {
	batch, err := l.Conn.PrepareBatch(ctx, "INSERT INTO liquidation_monthly_revenue (month, market_id, revenue_eth)")
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := batch.Append(row.Month, row.MarketID, row.RevenueETH); err != nil {
			return err
		}
	}

	return batch.Send()
}

// RowsFromMonthly flattens a simple monthly aggregate; market_id is empty.
func RowsFromMonthly(monthly []models.MonthlyRevenue) []models.MonthlyMarketRevenue {
	rows := make([]models.MonthlyMarketRevenue, 0, len(monthly))
	for _, m := range monthly {
		v, _ := m.RevenueETH.Float64()
		rows = append(rows, models.MonthlyMarketRevenue{Month: m.Month, RevenueETH: v})
	}
	return rows
}

// RowsFromBreakdown flattens a per-market pivot, one row per cell.
func RowsFromBreakdown(b *models.MarketBreakdown) []models.MonthlyMarketRevenue {
	if b.Empty() {
		return nil
	}

	rows := make([]models.MonthlyMarketRevenue, 0, len(b.Months)*len(b.Columns))
	for mi, month := range b.Months {
		for ci, column := range b.Columns {
			v, _ := b.Rows[mi][ci].Float64()
			rows = append(rows, models.MonthlyMarketRevenue{
				Month:      month,
				MarketID:   column,
				RevenueETH: v,
			})
		}
	}
	return rows
}
