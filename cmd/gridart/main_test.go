package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apppkg "github.com/gridlabs/gridart/internal/app"
)

// Smoke test: run the whole pipeline against a local document server.
func TestRun_EndToEnd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><p>0,█,0 1,█,0</p></body></html>`))
	}))
	defer ts.Close()

	cfg := apppkg.Config{
		URL:             ts.URL + "/pub",
		Fill:            apppkg.FillDefault,
		Title:           apppkg.TitleDefault,
		Timeout:         apppkg.TimeoutDefault,
		URLHostContains: "127.0.0.1",
	}
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run error: %v", err)
	}
}

// A document without coordinate data must surface the fatal sentinel so main
// can exit non-zero.
func TestRun_NoCoordinates_Error(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><p>nothing to see</p></body></html>`))
	}))
	defer ts.Close()

	cfg := apppkg.Config{
		URL:             ts.URL + "/pub",
		Fill:            apppkg.FillDefault,
		Timeout:         apppkg.TimeoutDefault,
		URLHostContains: "127.0.0.1",
	}
	err := run(context.Background(), cfg)
	if !errors.Is(err, apppkg.ErrNoCoordinates) {
		t.Fatalf("expected ErrNoCoordinates, got %v", err)
	}
}

// Invalid configuration fails during app construction, before any network use.
func TestRun_BadConfig(t *testing.T) {
	cfg := apppkg.Config{URL: "", Fill: apppkg.FillDefault, Timeout: apppkg.TimeoutDefault}
	if err := run(context.Background(), cfg); err == nil {
		t.Fatalf("expected config error")
	}
}
