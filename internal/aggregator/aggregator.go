package aggregator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"liqstats/internal/models"
	"liqstats/internal/utils"
)

// TopMarkets is the default number of markets that keep their own column
// before the remainder folds into Others.
const TopMarkets = 5

type Aggregator interface {
	AggregateMonthly(events []models.LiquidationEvent) []models.MonthlyRevenue
	AggregateDaily(events []models.LiquidationEvent) []models.DailyRevenue
	AggregateByMarket(events []models.LiquidationEvent, topN int) *models.MarketBreakdown
}

type MonthlyAggregator struct{}

func NewAggregator() *MonthlyAggregator {
	return &MonthlyAggregator{}
}

// AggregateMonthly sums converted revenue per UTC calendar month and
// returns the buckets in chronological order.
func (a *MonthlyAggregator) AggregateMonthly(events []models.LiquidationEvent) []models.MonthlyRevenue {
	buckets := make(map[time.Time]decimal.Decimal)
	for _, ev := range events {
		month := monthBucket(ev.Time())
		buckets[month] = buckets[month].Add(ev.RevenueETH())
	}

	monthly := make([]models.MonthlyRevenue, 0, len(buckets))
	for month, total := range buckets {
		monthly = append(monthly, models.MonthlyRevenue{Month: month, RevenueETH: total})
	}
	sort.Slice(monthly, func(i, j int) bool {
		return monthly[i].Month.Before(monthly[j].Month)
	})

	return monthly
}

// AggregateDaily sums converted revenue per UTC calendar day.
func (a *MonthlyAggregator) AggregateDaily(events []models.LiquidationEvent) []models.DailyRevenue {
	buckets := make(map[time.Time]decimal.Decimal)
	for _, ev := range events {
		day := ev.Time().Truncate(24 * time.Hour)
		buckets[day] = buckets[day].Add(ev.RevenueETH())
	}

	daily := make([]models.DailyRevenue, 0, len(buckets))
	for day, total := range buckets {
		daily = append(daily, models.DailyRevenue{Day: day, RevenueETH: total})
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Day.Before(daily[j].Day)
	})

	return daily
}

// AggregateByMarket buckets revenue by (month, market), ranks markets by
// total revenue descending and keeps the top N as their own columns; the
// monthly contributions of all remaining markets fold into an Others
// column, present only when such a remainder exists. Equal totals rank by
// first appearance in the input.
func (a *MonthlyAggregator) AggregateByMarket(events []models.LiquidationEvent, topN int) *models.MarketBreakdown {
	totals := make(map[string]decimal.Decimal)
	firstSeen := make(map[string]int)
	cells := make(map[time.Time]map[string]decimal.Decimal)

	for _, ev := range events {
		rev := ev.RevenueETH()
		if _, ok := firstSeen[ev.MarketID]; !ok {
			firstSeen[ev.MarketID] = len(firstSeen)
		}
		totals[ev.MarketID] = totals[ev.MarketID].Add(rev)

		month := monthBucket(ev.Time())
		if cells[month] == nil {
			cells[month] = make(map[string]decimal.Decimal)
		}
		cells[month][ev.MarketID] = cells[month][ev.MarketID].Add(rev)
	}

	if len(cells) == 0 {
		return &models.MarketBreakdown{}
	}

	ranked := make([]string, 0, len(totals))
	for id := range totals {
		ranked = append(ranked, id)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		cmp := totals[ranked[i]].Cmp(totals[ranked[j]])
		if cmp != 0 {
			return cmp > 0
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	for i, id := range ranked {
		log.WithFields(log.Fields{
			"rank":        i + 1,
			"market":      utils.TruncateHash(id, 10),
			"revenue_eth": totals[id].String(),
		}).Debug("Market revenue ranking")
	}

	top := ranked
	if len(ranked) > topN {
		top = ranked[:topN]
	}
	columns := append([]string{}, top...)
	hasOthers := len(ranked) > len(top)
	if hasOthers {
		columns = append(columns, models.OthersColumn)
	}

	months := make([]time.Time, 0, len(cells))
	for month := range cells {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	topIndex := make(map[string]int, len(top))
	for i, id := range top {
		topIndex[id] = i
	}

	rows := make([][]decimal.Decimal, len(months))
	for mi, month := range months {
		row := make([]decimal.Decimal, len(columns))
		for id, rev := range cells[month] {
			if ci, ok := topIndex[id]; ok {
				row[ci] = row[ci].Add(rev)
			} else {
				othersIdx := len(columns) - 1
				row[othersIdx] = row[othersIdx].Add(rev)
			}
		}
		rows[mi] = row
	}

	return &models.MarketBreakdown{Months: months, Columns: columns, Rows: rows}
}

func monthBucket(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
