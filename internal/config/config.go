package config

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Charts     ChartsConfig     `yaml:"charts"`
	Report     ReportConfig     `yaml:"report"`
	ClickHouse ClickHouseConfig `yaml:"clickhouse"`
	MinIO      MinIOConfig      `yaml:"minio"`
}

type DatasetConfig struct {
	Path string `yaml:"path"`
}

type ChartsConfig struct {
	OutputDir    string `yaml:"output_dir"`
	TopMarkets   int    `yaml:"top_markets"`
	DailyTrend   bool   `yaml:"daily_trend"`
	Distribution bool   `yaml:"distribution"`
}

type ReportConfig struct {
	Enabled bool `yaml:"enabled"`
	Top     int  `yaml:"top"`
}

type ClickHouseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
}

type MinIOConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Default returns the configuration used when no config file is present:
// the Morpho dataset, charts under ./charts, all optional outputs off.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{Path: "data/mainnet_morpho_logs_with_revenue.json"},
		Charts:  ChartsConfig{OutputDir: "charts", TopMarkets: 5},
		Report:  ReportConfig{Top: 10},
		ClickHouse: ClickHouseConfig{
			Addr:     "127.0.0.1:9000",
			Database: "default",
		},
		MinIO: MinIOConfig{
			Endpoint:  "localhost:9001",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			Bucket:    "liquidation-charts",
		},
	}
}

// Load reads a YAML config file, expanding ${VAR} references from the
// environment before parsing. A missing file falls back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Info("Config file not found, using defaults")
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Charts.TopMarkets <= 0 {
		cfg.Charts.TopMarkets = 5
	}
	if cfg.Report.Top <= 0 {
		cfg.Report.Top = 10
	}

	return cfg, nil
}
