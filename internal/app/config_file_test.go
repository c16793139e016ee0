package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeTemp(t, "cfg.yaml", `
url: https://docs.google.com/document/d/e/abc/pub
fill: "."
border: true
timeout: 30s
urlRule:
  host: docs.google.com
  path: /pub
`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.URL == "" || fc.Fill != "." || !fc.Border {
		t.Fatalf("unexpected config: %+v", fc)
	}
	if fc.Timeout != "30s" {
		t.Fatalf("expected 30s timeout, got %q", fc.Timeout)
	}
	if fc.URLRule.Host != "docs.google.com" || fc.URLRule.Path != "/pub" {
		t.Fatalf("unexpected url rule: %+v", fc.URLRule)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{"url":"https://docs.google.com/x/pub","info":true}`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.URL != "https://docs.google.com/x/pub" || !fc.Info {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{
		URL:     "https://docs.google.com/flag/pub",
		Fill:    "#",
		Title:   TitleDefault,
		Timeout: TimeoutDefault,
	}
	set := map[string]bool{"url": true, "fill": true}
	ApplyFileConfig(&cfg, FileConfig{
		URL:     "https://docs.google.com/file/pub",
		Fill:    ".",
		Title:   "From File",
		Timeout: "1m",
	}, set)
	if cfg.URL != "https://docs.google.com/flag/pub" {
		t.Fatalf("file config overrode explicit url: %q", cfg.URL)
	}
	if cfg.Fill != "#" {
		t.Fatalf("file config overrode explicit fill: %q", cfg.Fill)
	}
	// Values the user never passed take the file's word.
	if cfg.Title != "From File" {
		t.Fatalf("expected file title, got %q", cfg.Title)
	}
	if cfg.Timeout != time.Minute {
		t.Fatalf("expected file timeout, got %s", cfg.Timeout)
	}
}

func TestApplyFileConfig_ExplicitDefaultValueWins(t *testing.T) {
	// Passing -fill " " or -timeout 15s looks identical to the defaults in
	// the Config values; the set map is what preserves them.
	cfg := Config{Fill: FillDefault, Timeout: TimeoutDefault}
	set := map[string]bool{"fill": true, "timeout": true}
	ApplyFileConfig(&cfg, FileConfig{Fill: ".", Timeout: "1m"}, set)
	if cfg.Fill != FillDefault {
		t.Fatalf("file config overrode explicit default fill: %q", cfg.Fill)
	}
	if cfg.Timeout != TimeoutDefault {
		t.Fatalf("file config overrode explicit default timeout: %s", cfg.Timeout)
	}
}

func TestApplyFileConfig_NilSetAppliesFile(t *testing.T) {
	cfg := Config{}
	ApplyFileConfig(&cfg, FileConfig{URL: "https://docs.google.com/x/pub", Border: true}, nil)
	if cfg.URL == "" || !cfg.Border {
		t.Fatalf("expected file values applied with nil set, got %+v", cfg)
	}
}

func TestValidateConfig(t *testing.T) {
	base := Config{URL: "https://docs.google.com/x/pub", Fill: " ", Timeout: TimeoutDefault}
	if err := ValidateConfig(base); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	c := base
	c.URL = ""
	if err := ValidateConfig(c); err == nil {
		t.Fatalf("expected error for missing url")
	}

	c = base
	c.Fill = "ab"
	if err := ValidateConfig(c); err == nil {
		t.Fatalf("expected error for multi-character fill")
	}
	c.Fill = "█" // multi-byte single rune is fine
	if err := ValidateConfig(c); err != nil {
		t.Fatalf("expected block fill to validate, got %v", err)
	}

	c = base
	c.Timeout = 0
	if err := ValidateConfig(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
