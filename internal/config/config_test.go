package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
data:
  source: ./salaries.csv
server:
  port: 9000
display:
  top_roles: 5
  map_role: Data Engineer
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Source != "./salaries.csv" || cfg.Server.Port != 9000 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Display.TopRoles != 5 || cfg.Display.MapRole != "Data Engineer" {
		t.Fatalf("display = %+v", cfg.Display)
	}
	if cfg.Display.HistogramBins != 30 {
		t.Fatalf("unset keys should keep their defaults, got %d bins", cfg.Display.HistogramBins)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("SALARYDASH_PORT", "9100")
	t.Setenv("WEB_USERNAME", "admin")
	t.Setenv("WEB_PASSWORD", "secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("port = %d, want 9100", cfg.Server.Port)
	}
	if !cfg.Server.AuthEnabled() {
		t.Fatal("expected auth to be enabled")
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("SALARYDASH_PORT", "not-a-port")
	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "server: [")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"defaults", func(*AppConfig) {}, ""},
		{"no source", func(c *AppConfig) { c.Data.Source = "" }, "data source"},
		{"port", func(c *AppConfig) { c.Server.Port = 0 }, "invalid port"},
		{"top roles", func(c *AppConfig) { c.Display.TopRoles = -1 }, "top_roles"},
		{"bins", func(c *AppConfig) { c.Display.HistogramBins = 0 }, "histogram_bins"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDashboardOptions(t *testing.T) {
	cfg := Default()
	cfg.Display.TopRoles = 3
	cfg.Display.MapRole = "Data Engineer"
	opts := cfg.DashboardOptions()
	if opts.TopRoles != 3 || opts.HistogramBins != 30 || opts.MapRole != "Data Engineer" || opts.Resolver == nil {
		t.Fatalf("opts = %+v", opts)
	}
}
