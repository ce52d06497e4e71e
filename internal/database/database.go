package database

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2"
	log "github.com/sirupsen/logrus"

	"liqstats/internal/config"
)

// NewClickHouseConnection initializes and returns a ClickHouse connection.
func NewClickHouseConnection(ctx context.Context, cfg config.ClickHouseConfig) clickhouse.Conn {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
		},
	})
	if err != nil {
		log.Fatalf("Error connecting to ClickHouse: %v", err)
	}

	if err := conn.Ping(ctx); err != nil {
		log.Fatalf("ClickHouse ping failed: %v", err)
	}

	log.Info("Successfully connected to ClickHouse.")
	return conn
}
