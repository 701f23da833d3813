package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"stockseries/internal/saver"
)

// Defaults for a run with no config file and no env.
const (
	DefaultConfigPath    = "stockseries.yaml"
	DefaultSourcePath    = "data/stock.csv"
	DefaultTopN          = 15
	DefaultSummaryPath   = "summary.json"
	DefaultSummaryFormat = "json"
	DefaultChartPath     = "chart.png"
	DefaultLogLevel      = "info"
)

// Config holds application configuration from the YAML file and env.
type Config struct {
	SourcePath    string  `yaml:"source_path"`
	Threshold     float64 `yaml:"threshold"`
	TopN          int     `yaml:"top_n"`
	SummaryPath   string  `yaml:"summary_path"`
	SummaryFormat string  `yaml:"summary_format"` // json | parquet | sqlite
	ChartPath     string  `yaml:"chart_path"`
	SkipChart     bool    `yaml:"skip_chart"`
	LogLevel      string  `yaml:"log_level"` // debug | info | warn | error
}

// LoadConfig reads the YAML file named by CONFIG_PATH (missing file is fine),
// then applies env overrides, then defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	path := getEnv("CONFIG_PATH", DefaultConfigPath)
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("STOCK_CSV"); v != "" {
		c.SourcePath = v
	}
	if v := os.Getenv("FILTER_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("FILTER_THRESHOLD %q: %w", v, err)
		}
		c.Threshold = f
	}
	if v := os.Getenv("TOP_N"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("TOP_N %q: %w", v, err)
		}
		c.TopN = n
	}
	if v := os.Getenv("SUMMARY_PATH"); v != "" {
		c.SummaryPath = v
	}
	if v := os.Getenv("SUMMARY_FORMAT"); v != "" {
		c.SummaryFormat = v
	}
	if v := os.Getenv("CHART_PATH"); v != "" {
		c.ChartPath = v
	}
	if v := os.Getenv("SKIP_CHART"); v == "1" || v == "true" {
		c.SkipChart = true
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.SourcePath == "" {
		c.SourcePath = DefaultSourcePath
	}
	if c.TopN == 0 {
		c.TopN = DefaultTopN
	}
	if c.SummaryFormat == "" {
		c.SummaryFormat = DefaultSummaryFormat
	}
	c.SummaryFormat = strings.ToLower(strings.TrimSpace(c.SummaryFormat))
	if c.SummaryPath == "" {
		c.SummaryPath = DefaultSummaryPath
	}
	if c.ChartPath == "" {
		c.ChartPath = DefaultChartPath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks the values LoadConfig cannot fix up.
func (c *Config) Validate() error {
	if c.SourcePath == "" {
		return errors.New("source_path is required")
	}
	if c.TopN < 0 {
		return fmt.Errorf("top_n must be >= 0, got %d", c.TopN)
	}
	if !slices.Contains(saver.Formats, c.SummaryFormat) {
		return fmt.Errorf("unsupported summary_format %q (use: %s)", c.SummaryFormat, strings.Join(saver.Formats, ", "))
	}
	if c.SummaryPath == "" {
		return errors.New("summary_path is required")
	}
	if !c.SkipChart && c.ChartPath == "" {
		return errors.New("chart_path is required unless skip_chart is set")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
