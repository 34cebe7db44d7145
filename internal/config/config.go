// Package config handles loading and validating the application
// configuration from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Paths     PathsConfig     `yaml:"paths"`
	Site      SiteConfig      `yaml:"site"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Tiers     TiersConfig     `yaml:"tiers"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PathsConfig defines the input table and output artifact locations.
type PathsConfig struct {
	InputCSV   string `yaml:"input_csv"`
	OutputJSON string `yaml:"output_json"`
	OutputHTML string `yaml:"output_html"`
}

// SiteConfig defines the page header text.
type SiteConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// TokenizerConfig defines the product-type phrase list used for name
// segmentation. Empty means the built-in list.
type TokenizerConfig struct {
	ProductTypes []string `yaml:"product_types"`
}

// TiersConfig defines the inclusive lower bound of each badge tier,
// as percent-off values.
type TiersConfig struct {
	Elite  float64 `yaml:"elite"`
	Strong float64 `yaml:"strong"`
	Mid    float64 `yaml:"mid"`
}

// ScheduleConfig defines the watch-mode regeneration interval.
type ScheduleConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment
// variable substitution and validation. A missing file yields the
// defaults so the tool runs without any config at all.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyPathDefaults(&cfg.Paths)
	applySiteDefaults(&cfg.Site)
	applyTierDefaults(&cfg.Tiers)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyPathDefaults(p *PathsConfig) {
	if p.InputCSV == "" {
		p.InputCSV = "deals_today.csv"
	}
	if p.OutputJSON == "" {
		p.OutputJSON = "deals_today.json"
	}
	if p.OutputHTML == "" {
		p.OutputHTML = "docs/index.html"
	}
}

func applySiteDefaults(s *SiteConfig) {
	if s.Title == "" {
		s.Title = "SnackBuddy Daily Deals"
	}
	if s.Subtitle == "" {
		s.Subtitle = "Verified snack deals from your favorite retailers. " +
			"Tap a card to open the retailer's page for price checks and comps."
	}
}

func applyTierDefaults(t *TiersConfig) {
	if t.Elite == 0 {
		t.Elite = 25.0
	}
	if t.Strong == 0 {
		t.Strong = 20.0
	}
	if t.Mid == 0 {
		t.Mid = 10.0
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.RefreshInterval == 0 {
		s.RefreshInterval = 1 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if !(cfg.Tiers.Elite >= cfg.Tiers.Strong && cfg.Tiers.Strong >= cfg.Tiers.Mid) {
		errs = append(errs, fmt.Errorf(
			"tiers must be ordered elite >= strong >= mid (got %.1f/%.1f/%.1f)",
			cfg.Tiers.Elite, cfg.Tiers.Strong, cfg.Tiers.Mid,
		))
	}
	if cfg.Tiers.Mid < 0 {
		errs = append(errs, fmt.Errorf("tiers.mid must not be negative"))
	}
	if cfg.Schedule.RefreshInterval < time.Minute {
		errs = append(errs, fmt.Errorf(
			"schedule.refresh_interval must be at least 1m (got %s)",
			cfg.Schedule.RefreshInterval,
		))
	}

	return errors.Join(errs...)
}
