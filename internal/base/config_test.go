package base

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Addr != ":3000" {
			t.Errorf("expected addr :3000, got %s", config.Addr)
		}

		if config.Driver != "sqlite" {
			t.Errorf("expected driver sqlite, got %s", config.Driver)
		}

		if config.CacheTTL != time.Minute {
			t.Errorf("expected cache ttl 1m, got %s", config.CacheTTL)
		}

		if config.CacheSize != 0 {
			t.Errorf("expected cache disabled by default, got size %d", config.CacheSize)
		}

		if config.MaxOpenConns != 4 {
			t.Errorf("expected max_open_conns 4, got %d", config.MaxOpenConns)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if *config != *DefaultConfig() {
			t.Errorf("created config = %+v, want %+v", *config, *DefaultConfig())
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadTOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		testConfig := `addr = "0.0.0.0:8080"
debug = true

[database]
driver = "postgres"
dsn = "host=localhost user=postgres dbname=tracks"

[cache]
ttl = "90s"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Addr != "0.0.0.0:8080" {
			t.Errorf("expected addr 0.0.0.0:8080, got %s", config.Addr)
		}
		if !config.Debug {
			t.Error("expected debug to be enabled")
		}
		if config.Driver != "postgres" {
			t.Errorf("expected driver postgres, got %s", config.Driver)
		}
		if config.CacheTTL != 90*time.Second {
			t.Errorf("expected cache ttl 90s, got %s", config.CacheTTL)
		}
		// keys absent from the file keep their defaults
		if config.CacheSize != 0 {
			t.Errorf("expected default cache size 0, got %d", config.CacheSize)
		}
		if config.LogLevel != "info" {
			t.Errorf("expected default log level info, got %s", config.LogLevel)
		}
	})

	t.Run("LoadJSON", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		testConfig := `{"addr": ":4000", "log": {"level": "debug"}, "database": {"max_open_conns": 1, "dsn": ":memory:"}, "cache": {"size": 0}}`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Addr != ":4000" {
			t.Errorf("expected addr :4000, got %s", config.Addr)
		}
		if config.LogLevel != "debug" {
			t.Errorf("expected log level debug, got %s", config.LogLevel)
		}
		if config.MaxOpenConns != 1 {
			t.Errorf("expected max_open_conns 1, got %d", config.MaxOpenConns)
		}
		if config.DSN != ":memory:" {
			t.Errorf("expected dsn :memory:, got %s", config.DSN)
		}
		if config.CacheSize != 0 {
			t.Errorf("expected cache size 0, got %d", config.CacheSize)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		tests := []struct {
			name     string
			filename string
			content  string
		}{
			{name: "malformed json", filename: "config.json", content: `{"addr": `},
			{name: "malformed toml", filename: "config.toml", content: `addr = `},
			{name: "bad duration", filename: "config.toml", content: "[cache]\nttl = \"soon\"\n"},
			{name: "string for int", filename: "config.json", content: `{"cache": {"size": "big"}}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				configPath := filepath.Join(t.TempDir(), tt.filename)
				if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
					t.Fatalf("failed to write test config: %v", err)
				}

				config, err := LoadConfig(configPath)
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("LoadConfig() error = %v, want %v", err, ErrInvalidConfig)
				}
				if config != nil {
					t.Error("LoadConfig() returned non-nil config with error")
				}
			})
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"error", "error"},
		{"", "info"},
		{"loud", "info"},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in).String(); got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
