package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"liqstats/internal/models"
	"liqstats/internal/utils"
)

// Fixed output file names under the chart output directory.
const (
	MonthlyRevenueFile  = "monthly_revenue_chart.png"
	MarketBreakdownFile = "morpho_monthly_revenue_by_market.png"
	DailyTrendFile      = "daily_revenue_trend.png"
	DistributionFile    = "revenue_distribution.png"
)

var (
	barFill  = color.RGBA{R: 135, G: 206, B: 235, A: 255} // skyblue
	histFill = color.RGBA{R: 240, G: 128, B: 128, A: 255} // lightcoral
)

// Renderer draws aggregated revenue tables as PNG charts. Rendering is
// headless; the file on disk is the only output.
type Renderer struct {
	OutputDir string
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{OutputDir: outputDir}
}

// MonthlyRevenueChart draws one bar per month, annotated with its numeric
// value, and returns the written file path. Empty input writes nothing.
func (r *Renderer) MonthlyRevenueChart(monthly []models.MonthlyRevenue) (string, error) {
	if len(monthly) == 0 {
		log.Info("No data to plot")
		return "", nil
	}

	p := plot.New()
	p.Title.Text = "Monthly Liquidation Revenue"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Revenue (ETH)"
	p.Add(plotter.NewGrid())

	values := make(plotter.Values, len(monthly))
	labels := make([]string, len(monthly))
	for i, m := range monthly {
		values[i], _ = m.RevenueETH.Float64()
		labels[i] = m.Month.Format("Jan 2006")
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return "", fmt.Errorf("building bar chart: %w", err)
	}
	bars.Color = barFill
	bars.LineStyle.Width = vg.Points(0.5)
	p.Add(bars)

	if err := addBarLabels(p, values); err != nil {
		return "", err
	}

	p.NominalX(labels...)
	rotateXTicks(p)

	return r.save(p, 16*vg.Inch, 10*vg.Inch, MonthlyRevenueFile)
}

// MarketBreakdownChart draws one stacked bar per month with a colored
// segment per column and a legend keyed by truncated market id.
func (r *Renderer) MarketBreakdownChart(b *models.MarketBreakdown) (string, error) {
	if b.Empty() {
		log.Info("No data to plot")
		return "", nil
	}

	p := plot.New()
	p.Title.Text = "Monthly Morpho Liquidation Revenue by Market (Top 5 + Others)"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Revenue (ETH)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	labels := make([]string, len(b.Months))
	for i, m := range b.Months {
		labels[i] = m.Format("Jan 2006")
	}

	var prev *plotter.BarChart
	for ci, column := range b.Columns {
		values := make(plotter.Values, len(b.Rows))
		for mi := range b.Rows {
			values[mi], _ = b.Rows[mi][ci].Float64()
		}

		bars, err := plotter.NewBarChart(values, vg.Points(20))
		if err != nil {
			return "", fmt.Errorf("building stacked bars for %s: %w", column, err)
		}
		bars.Color = plotutil.Color(ci)
		bars.LineStyle.Width = vg.Points(0.5)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(utils.TruncateHash(column, 10), bars)
		prev = bars
	}

	p.NominalX(labels...)
	rotateXTicks(p)

	return r.save(p, 18*vg.Inch, 12*vg.Inch, MarketBreakdownFile)
}

// DailyTrendChart draws a line over daily revenue sums.
func (r *Renderer) DailyTrendChart(daily []models.DailyRevenue) (string, error) {
	if len(daily) == 0 {
		log.Info("No data to plot")
		return "", nil
	}

	p := plot.New()
	p.Title.Text = "Daily Liquidation Revenue Trend"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Revenue (ETH)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(daily))
	for i, d := range daily {
		v, _ := d.RevenueETH.Float64()
		pts[i] = plotter.XY{X: float64(d.Day.Unix()), Y: v}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", fmt.Errorf("building trend line: %w", err)
	}
	line.Width = vg.Points(2)
	p.Add(line, points)
	rotateXTicks(p)

	return r.save(p, 14*vg.Inch, 6*vg.Inch, DailyTrendFile)
}

// DistributionChart draws a histogram of individual converted revenues.
func (r *Renderer) DistributionChart(events []models.LiquidationEvent) (string, error) {
	if len(events) == 0 {
		log.Info("No data to plot")
		return "", nil
	}

	p := plot.New()
	p.Title.Text = "Revenue Distribution"
	p.X.Label.Text = "Revenue (ETH)"
	p.Y.Label.Text = "Frequency"
	p.Add(plotter.NewGrid())

	values := make(plotter.Values, len(events))
	for i, ev := range events {
		values[i], _ = ev.RevenueETH().Float64()
	}

	hist, err := plotter.NewHist(values, 50)
	if err != nil {
		return "", fmt.Errorf("building histogram: %w", err)
	}
	hist.FillColor = histFill
	p.Add(hist)

	return r.save(p, 12*vg.Inch, 6*vg.Inch, DistributionFile)
}

// addBarLabels annotates each bar with its numeric value.
func addBarLabels(p *plot.Plot, values plotter.Values) error {
	xys := make(plotter.XYs, len(values))
	texts := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		texts[i] = fmt.Sprintf("%.4f", v)
	}

	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("building bar labels: %w", err)
	}
	for i := range lbls.TextStyle {
		lbls.TextStyle[i].XAlign = draw.XCenter
		lbls.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(lbls)
	return nil
}

func rotateXTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

func (r *Renderer) save(p *plot.Plot, w, h vg.Length, name string) (string, error) {
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating chart directory: %w", err)
	}

	path := filepath.Join(r.OutputDir, name)
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("saving chart: %w", err)
	}

	log.WithField("path", path).Info("Chart saved")
	return path, nil
}
