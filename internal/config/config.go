package config

import (
	"fmt"
	"os"

	"MarketBoard/internal/model"

	"gopkg.in/yaml.v3"
)

// GroupConfig defines one ticker group in the config file.
type GroupConfig struct {
	Name    string   `yaml:"name"`
	Symbols []string `yaml:"symbols"`
}

// Config holds all application configuration.
type Config struct {
	AWS struct {
		Bucket          string `yaml:"bucket"`
		Region          string `yaml:"region"`
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
	} `yaml:"aws"`
	Report struct {
		Period string `yaml:"period"`
	} `yaml:"report"`
	Groups   []GroupConfig `yaml:"groups"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("AWS_BUCKET_NAME"); v != "" {
		cfg.AWS.Bucket = v
	}
	if v := os.Getenv("AWS_DEFAULT_REGION"); v != "" {
		cfg.AWS.Region = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		cfg.AWS.AccessKeyID = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		cfg.AWS.SecretAccessKey = v
	}
	if v := os.Getenv("REPORT_PERIOD"); v != "" {
		cfg.Report.Period = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.Report.Period == "" {
		cfg.Report.Period = "5y"
	}
	if len(cfg.Groups) == 0 {
		cfg.Groups = []GroupConfig{
			{Name: "US Banks", Symbols: []string{"JPM", "BAC", "C", "WFC", "GS"}},
			{Name: "US Banks in India", Symbols: []string{"JPM", "WFC", "C", "BAC"}},
		}
	}

	return cfg, nil
}

// Validate checks that all required fields are set. The bucket name is not
// required here: an unset bucket fails at upload time and the local fallback
// takes over, while missing credentials abort the run before any fetch.
func (c *Config) Validate() error {
	if c.AWS.AccessKeyID == "" {
		return fmt.Errorf("AWS_ACCESS_KEY_ID is required")
	}
	if c.AWS.SecretAccessKey == "" {
		return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required")
	}
	return nil
}

// TickerGroups converts the configured groups into model values, preserving order.
func (c *Config) TickerGroups() []model.TickerGroup {
	groups := make([]model.TickerGroup, 0, len(c.Groups))
	for _, g := range c.Groups {
		groups = append(groups, model.TickerGroup{Name: g.Name, Symbols: g.Symbols})
	}
	return groups
}
