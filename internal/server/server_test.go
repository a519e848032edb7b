package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/docreview/internal/config"
	"github.com/jackzampolin/docreview/internal/dataset"
	"github.com/jackzampolin/docreview/internal/export"
	"github.com/jackzampolin/docreview/internal/home"
	"github.com/jackzampolin/docreview/internal/review"
	"github.com/jackzampolin/docreview/internal/server/endpoints"
	"github.com/jackzampolin/docreview/internal/shell"
	"github.com/jackzampolin/docreview/internal/testutil"
)

// newTestSession loads the fixture dataset into a session.
func newTestSession(t *testing.T) *review.SyncSession {
	t.Helper()
	fx := testutil.WriteFixture(t, 3)
	bundle, err := dataset.Load(dataset.Request{
		PagesDir:    fx.PagesDir,
		DatasetPath: fx.DatasetPath,
		SchemaPath:  fx.SchemaPath,
	})
	if err != nil {
		t.Fatalf("dataset.Load() error = %v", err)
	}
	s, err := bundle.NewSession(review.WithID("test-session"))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return review.NewSyncSession(s)
}

func newTestHome(t *testing.T) *home.Dir {
	t.Helper()
	h, err := home.New(filepath.Join(t.TempDir(), "home"))
	if err != nil {
		t.Fatalf("home.New() error = %v", err)
	}
	return h
}

func TestNew_Defaults(t *testing.T) {
	srv, err := New(Config{Home: newTestHome(t), Logger: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if srv.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), "127.0.0.1:8080")
	}
	if srv.IsRunning() {
		t.Error("IsRunning() = true before Start")
	}
	if srv.Exports().Format() != export.FormatJSON {
		t.Errorf("Exports().Format() = %q, want json", srv.Exports().Format())
	}
}

func TestServer_RequireInit(t *testing.T) {
	srv, err := New(Config{Home: newTestHome(t), Logger: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("health works without a session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("review endpoints return 503", func(t *testing.T) {
		for _, path := range []string{"/api/review", "/api/pages", "/api/export/all"} {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusServiceUnavailable)
			}
		}
	})
}

func TestServer_Handler_WithSession(t *testing.T) {
	srv, err := New(Config{
		Session:   newTestSession(t),
		Presenter: shell.NewPresenter(shell.Options{}),
		Home:      newTestHome(t),
		Logger:    slog.New(slog.DiscardHandler),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	var health endpoints.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.SessionID != "test-session" {
		t.Errorf("SessionID = %q, want %q", health.SessionID, "test-session")
	}
	if health.Document != "invoice_batch" {
		t.Errorf("Document = %q, want %q", health.Document, "invoice_batch")
	}
}

func TestServer_ApplyConfig(t *testing.T) {
	h := newTestHome(t)
	level := new(slog.LevelVar)
	srv, err := New(Config{Home: h, Logger: slog.New(slog.DiscardHandler), LogLevel: level})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("export settings and level", func(t *testing.T) {
		dir := t.TempDir()
		cfg := config.DefaultConfig()
		cfg.Review.ExportDir = dir
		cfg.Review.ExportFormat = "xlsx"
		cfg.Log.Level = "debug"

		srv.applyConfig(cfg, level)

		if got := srv.Exports().Dir(); got != dir {
			t.Errorf("Exports().Dir() = %q, want %q", got, dir)
		}
		if got := srv.Exports().Format(); got != export.FormatXLSX {
			t.Errorf("Exports().Format() = %q, want xlsx", got)
		}
		if level.Level() != slog.LevelDebug {
			t.Errorf("level = %v, want debug", level.Level())
		}
	})

	t.Run("empty export dir falls back to home", func(t *testing.T) {
		cfg := config.DefaultConfig()
		srv.applyConfig(cfg, level)

		if got := srv.Exports().Dir(); got != h.ExportsDir() {
			t.Errorf("Exports().Dir() = %q, want %q", got, h.ExportsDir())
		}
		if got := srv.Exports().Format(); got != export.FormatJSON {
			t.Errorf("Exports().Format() = %q, want json", got)
		}
		if level.Level() != slog.LevelInfo {
			t.Errorf("level = %v, want info", level.Level())
		}
	})
}

func TestServer_LogRequests(t *testing.T) {
	srv, err := New(Config{Home: newTestHome(t), Logger: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/does-not-exist", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
