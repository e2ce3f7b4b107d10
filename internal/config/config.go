// Package config loads the dashboard settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/salarydash/internal/aggregate"
	"github.com/fr4nk3nst1ner/salarydash/internal/dashboard"
)

// DefaultSource is the cleaned salary dataset the dashboard was built for.
const DefaultSource = "https://raw.githubusercontent.com/ThiagoAP18/dashboard-tratado-dados-imersao/refs/heads/main/df-imersao-final.csv"

// AppConfig represents the application configuration.
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Server  ServerConfig  `yaml:"server"`
	Display DisplayConfig `yaml:"display"`
}

type DataConfig struct {
	Source string `yaml:"source" env:"SALARYDASH_DATA"`
	Proxy  string `yaml:"proxy" env:"SALARYDASH_PROXY"`
}

type ServerConfig struct {
	Port     int    `yaml:"port" env:"SALARYDASH_PORT"`
	Username string `yaml:"username" env:"WEB_USERNAME"` // Prefer the env var
	Password string `yaml:"password" env:"WEB_PASSWORD"` // Prefer the env var
}

type DisplayConfig struct {
	Title         string `yaml:"title"`
	TopRoles      int    `yaml:"top_roles"`
	HistogramBins int    `yaml:"histogram_bins"`
	MapRole       string `yaml:"map_role" env:"SALARYDASH_MAP_ROLE"`
}

// AuthEnabled reports whether both credentials are set.
func (s ServerConfig) AuthEnabled() bool {
	return s.Username != "" && s.Password != ""
}

// DashboardOptions returns the dashboard layout the display section asks for.
func (c *AppConfig) DashboardOptions() dashboard.Options {
	opts := dashboard.DefaultOptions()
	opts.TopRoles = c.Display.TopRoles
	opts.HistogramBins = c.Display.HistogramBins
	opts.MapRole = c.Display.MapRole
	return opts
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			Source: DefaultSource,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Display: DisplayConfig{
			Title:         "Data Salary Dashboard",
			TopRoles:      10,
			HistogramBins: 30,
			MapRole:       aggregate.DefaultMapRole,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies the
// environment. A missing file is not an error; an empty path skips the file.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the dashboard cannot run with.
func (c *AppConfig) Validate() error {
	switch {
	case c.Data.Source == "":
		return errors.New("config: data source is required")
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	case c.Display.TopRoles <= 0:
		return fmt.Errorf("config: top_roles must be positive, got %d", c.Display.TopRoles)
	case c.Display.HistogramBins <= 0:
		return fmt.Errorf("config: histogram_bins must be positive, got %d", c.Display.HistogramBins)
	}
	return nil
}
