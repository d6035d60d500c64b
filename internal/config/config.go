package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr          string `yaml:"addr"`
		ViewDedupTTLH int    `yaml:"view_dedup_ttl_hours"`
	} `yaml:"redis"`
	Feed struct {
		PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
		HighlightMillis     int    `yaml:"highlight_ms"`
		CityMatchMode       string `yaml:"city_match_mode"`
	} `yaml:"feed"`
	Moderation struct {
		BannedTerms []string `yaml:"banned_terms"`
	} `yaml:"moderation"`
	Delete struct {
		OperatorCode string `yaml:"operator_code"`
	} `yaml:"delete"`
}

const (
	defaultAddress      = ":4001"
	defaultDriver       = "mysql"
	defaultPollSeconds  = 180
	defaultHighlightMS  = 2000
	defaultCityMatching = "strict"
)

// LoadConfig reads the yaml config (CONFIG_PATH, default
// config/config.yaml), then applies environment overrides. A missing
// file falls back to defaults so the service can run from env alone.
func LoadConfig() (Config, error) {
	var cfg Config
	cfg.Server.Address = defaultAddress
	cfg.Database.Driver = defaultDriver
	cfg.Feed.PollIntervalSeconds = defaultPollSeconds
	cfg.Feed.HighlightMillis = defaultHighlightMS
	cfg.Feed.CityMatchMode = defaultCityMatching

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		log.Printf("Config file %s not found, using defaults and environment", path)
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("CITY_MATCH_MODE"); v != "" {
		cfg.Feed.CityMatchMode = v
	}
	if v := os.Getenv("DELETE_OPERATOR_CODE"); v != "" {
		cfg.Delete.OperatorCode = v
	}
	if v, err := readIntEnv("POLL_INTERVAL_SECONDS"); err != nil {
		return Config{}, err
	} else if v != nil {
		cfg.Feed.PollIntervalSeconds = *v
	}
	if v, err := readIntEnv("FEED_HIGHLIGHT_MS"); err != nil {
		return Config{}, err
	} else if v != nil {
		cfg.Feed.HighlightMillis = *v
	}

	if cfg.Database.Driver != "mysql" && cfg.Database.Driver != "postgres" {
		return Config{}, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	return cfg, nil
}

func readIntEnv(name string) (*int, error) {
	v := os.Getenv(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &n, nil
}
