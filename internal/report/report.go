package report

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"

	"liqstats/internal/models"
	"liqstats/internal/utils"
)

// Summary holds run-level statistics over the converted revenues.
type Summary struct {
	Count  int
	From   time.Time
	To     time.Time
	Total  decimal.Decimal
	Mean   decimal.Decimal
	Median decimal.Decimal
	Max    decimal.Decimal
	Min    decimal.Decimal
}

// Summarize computes summary statistics over the loaded events.
func Summarize(events []models.LiquidationEvent) Summary {
	if len(events) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(events),
		From:  events[0].Time(),
		To:    events[0].Time(),
		Max:   events[0].RevenueETH(),
		Min:   events[0].RevenueETH(),
	}

	revenues := make([]decimal.Decimal, len(events))
	for i, ev := range events {
		rev := ev.RevenueETH()
		revenues[i] = rev
		s.Total = s.Total.Add(rev)
		if rev.GreaterThan(s.Max) {
			s.Max = rev
		}
		if rev.LessThan(s.Min) {
			s.Min = rev
		}
		if t := ev.Time(); t.Before(s.From) {
			s.From = t
		}
		if t := ev.Time(); t.After(s.To) {
			s.To = t
		}
	}

	s.Mean = s.Total.Div(decimal.NewFromInt(int64(len(events))))
	s.Median = median(revenues)
	return s
}

// TopByRevenue returns the k highest-revenue events in descending order.
// Equal revenues keep their input order.
func TopByRevenue(events []models.LiquidationEvent, k int) []models.LiquidationEvent {
	top := append([]models.LiquidationEvent{}, events...)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})
	if len(top) > k {
		top = top[:k]
	}
	return top
}

// Display prints the summary and the highest-revenue liquidations as
// terminal tables.
func Display(s Summary, top []models.LiquidationEvent) {
	if s.Count == 0 {
		fmt.Println("No metrics to display.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Liquidation Summary")
	t.AppendRows([]table.Row{
		{"Total records", s.Count},
		{"Date range", fmt.Sprintf("%s to %s", s.From.Format("2006-01-02"), s.To.Format("2006-01-02"))},
		{"Total revenue (ETH)", s.Total.StringFixed(6)},
		{"Mean revenue (ETH)", s.Mean.StringFixed(6)},
		{"Median revenue (ETH)", s.Median.StringFixed(6)},
		{"Max revenue (ETH)", s.Max.StringFixed(6)},
		{"Min revenue (ETH)", s.Min.StringFixed(6)},
	})
	t.Render()

	tt := table.NewWriter()
	tt.SetOutputMirror(os.Stdout)
	tt.SetTitle("Top Liquidations by Revenue")
	tt.AppendHeader(table.Row{"Time", "Transaction", "Revenue (ETH)"})
	for _, ev := range top {
		tt.AppendRow(table.Row{
			ev.Time().Format("2006-01-02 15:04"),
			utils.TruncateHash(ev.TransactionHash, 10),
			ev.RevenueETH().StringFixed(6),
		})
	}
	tt.Render()
}

func median(vs []decimal.Decimal) decimal.Decimal {
	sorted := append([]decimal.Decimal{}, vs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return decimal.Avg(sorted[mid-1], sorted[mid])
}
