package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/chauhan-akshay123/tracks-api-sqlite-orm/internal/base"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), append([]string{"tracks"}, args...))
	return out.String(), err
}

func TestAPICommand(t *testing.T) {
	ts := httptest.NewServer(newSeededServer(t))
	defer ts.Close()

	t.Run("Get", func(t *testing.T) {
		out, err := runApp(t, "api", "--server", ts.URL, "get", "/tracks/details/1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name := gjson.Get(out, "track.name").String(); name != "Raabta" {
			t.Errorf("expected Raabta, got %q in %s", name, out)
		}
		if !strings.Contains(out, "\n  ") {
			t.Errorf("expected indented output, got %s", out)
		}
	})

	t.Run("Post", func(t *testing.T) {
		out, err := runApp(t, "api", "-s", ts.URL, "post", "--data", `{"newTrack": {"name": "Tum Hi Ho"}}`, "/tracks/new")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id := gjson.Get(out, "newTrack.id").Int(); id != 11 {
			t.Errorf("expected id 11, got %d in %s", id, out)
		}
	})

	t.Run("ErrorStatus", func(t *testing.T) {
		out, err := runApp(t, "api", "-s", ts.URL, "get", "/tracks/details/99")
		if !errors.Is(err, base.ErrAPIRequest) {
			t.Fatalf("expected %v, got %v", base.ErrAPIRequest, err)
		}
		if msg := gjson.Get(out, "message").String(); msg != "Track not found." {
			t.Errorf("expected body to be printed, got %s", out)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
		}{
			{name: "missing path", args: []string{"api", "-s", ts.URL, "get"}},
			{name: "bad json", args: []string{"api", "-s", ts.URL, "post", "-d", "{nope", "/tracks/new"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := runApp(t, tt.args...)
				if !errors.Is(err, base.ErrInvalidInput) {
					t.Errorf("expected %v, got %v", base.ErrInvalidInput, err)
				}
			})
		}
	})

	t.Run("Unreachable", func(t *testing.T) {
		_, err := runApp(t, "api", "-s", "http://127.0.0.1:1", "get", "/tracks")
		if !errors.Is(err, base.ErrAPIRequest) {
			t.Errorf("expected %v, got %v", base.ErrAPIRequest, err)
		}
	})
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := runApp(t, "--config", path, "init")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "wrote "+path+"\n" {
		t.Errorf("unexpected output %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := runApp(t, "--config", path, "init"); err == nil {
		t.Error("expected init to refuse overwriting an existing file")
	}
}

func TestSeedCommand(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "tracks.db")

	if _, err := runApp(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), "seed"); !errors.Is(err, base.ErrInvalidConfig) {
		t.Errorf("expected %v for a missing explicit config, got %v", base.ErrInvalidConfig, err)
	}

	if _, err := runApp(t, "--dsn", dsn, "--log-level", "error", "seed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dsn); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}
