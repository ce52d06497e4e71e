package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"liqstats/internal/aggregator"
	"liqstats/internal/chart"
	"liqstats/internal/config"
	"liqstats/internal/database"
	"liqstats/internal/models"
	"liqstats/internal/parser"
	"liqstats/internal/report"
	"liqstats/internal/storage"
	"liqstats/internal/utils"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx := context.Background()

	// Load liquidation events
	jsonParser := parser.NewJSONParser()
	events := jsonParser.ParseJSON(cfg.Dataset.Path)
	if len(events) == 0 {
		log.Info("No data found, nothing to do.")
		return
	}

	agg := aggregator.NewAggregator()
	renderer := chart.NewRenderer(cfg.Charts.OutputDir)

	var rendered []string
	var sinkRows []models.MonthlyMarketRevenue

	// Grouped mode when the dataset tags events with a market id
	if events[0].MarketID != "" {
		log.WithField("markets", len(utils.ExtractUniqueMarkets(events))).
			Info("Processing liquidations with market grouping")

		breakdown := agg.AggregateByMarket(events, cfg.Charts.TopMarkets)
		path, err := renderer.MarketBreakdownChart(breakdown)
		if err != nil {
			log.Fatalf("Error rendering market breakdown chart: %v", err)
		}
		if path != "" {
			rendered = append(rendered, path)
		}
		sinkRows = database.RowsFromBreakdown(breakdown)
	} else {
		log.Info("Processing standard liquidation data")

		monthly := agg.AggregateMonthly(events)
		path, err := renderer.MonthlyRevenueChart(monthly)
		if err != nil {
			log.Fatalf("Error rendering monthly revenue chart: %v", err)
		}
		if path != "" {
			rendered = append(rendered, path)
		}
		sinkRows = database.RowsFromMonthly(monthly)
	}

	if cfg.Charts.DailyTrend {
		path, err := renderer.DailyTrendChart(agg.AggregateDaily(events))
		if err != nil {
			log.Fatalf("Error rendering daily trend chart: %v", err)
		}
		if path != "" {
			rendered = append(rendered, path)
		}
	}

	if cfg.Charts.Distribution {
		path, err := renderer.DistributionChart(events)
		if err != nil {
			log.Fatalf("Error rendering distribution chart: %v", err)
		}
		if path != "" {
			rendered = append(rendered, path)
		}
	}

	if cfg.Report.Enabled {
		report.Display(report.Summarize(events), report.TopByRevenue(events, cfg.Report.Top))
	}

	if cfg.ClickHouse.Enabled {
		conn := database.NewClickHouseConnection(ctx, cfg.ClickHouse)
		defer conn.Close()

		loader := database.NewMonthlyRevenueLoader(conn)
		if err := loader.Load(ctx, sinkRows); err != nil {
			log.Fatalf("Error loading aggregates into ClickHouse: %v", err)
		}
		log.Info("Aggregates loaded into ClickHouse.")
	}

	if cfg.MinIO.Enabled && len(rendered) > 0 {
		minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO storage: %v", err)
		}
		if err := storage.UploadCharts(minioStorage, rendered); err != nil {
			log.Fatalf("Error uploading charts to MinIO: %v", err)
		}
	}

	log.Info("Reporting pipeline completed successfully.")
}
