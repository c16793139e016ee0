package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to the flag surface.
type FileConfig struct {
	URL string `yaml:"url" json:"url"`

	Fill   string `yaml:"fill" json:"fill"`
	Title  string `yaml:"title" json:"title"`
	Border bool   `yaml:"border" json:"border"`
	Info   bool   `yaml:"info" json:"info"`

	Debug bool `yaml:"debug" json:"debug"`
	Quiet bool `yaml:"quiet" json:"quiet"`

	// Timeout is a duration string such as "15s" or "1m".
	Timeout string `yaml:"timeout" json:"timeout"`

	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`

	URLRule struct {
		Host string `yaml:"host" json:"host"`
		Path string `yaml:"path" json:"path"`
	} `yaml:"urlRule" json:"urlRule"`
}

// LoadConfigFile reads YAML or JSON into FileConfig, choosing the codec by
// extension and trying both when the extension is unknown.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Flag defaults, shared between main and the config validation.
const (
	FillDefault    = " "
	TitleDefault   = "ASCII Art"
	TimeoutDefault = 15 * time.Second
)

// ApplyFileConfig overlays values from fc into cfg. set holds the flag names
// the user passed explicitly (collected via flag.Visit); those always win,
// even when the explicit value equals the flag default. A nil set lets the
// file supply every non-zero field.
func ApplyFileConfig(cfg *Config, fc FileConfig, set map[string]bool) {
	if cfg == nil {
		return
	}
	if !set["url"] && fc.URL != "" {
		cfg.URL = fc.URL
	}
	if !set["fill"] && fc.Fill != "" {
		cfg.Fill = fc.Fill
	}
	if !set["title"] && fc.Title != "" {
		cfg.Title = fc.Title
	}
	if !set["border"] && fc.Border {
		cfg.Border = true
	}
	if !set["info"] && fc.Info {
		cfg.Info = true
	}
	if !set["debug"] && fc.Debug {
		cfg.Debug = true
	}
	if !set["quiet"] && fc.Quiet {
		cfg.Quiet = true
	}
	if !set["timeout"] && fc.Timeout != "" {
		if d, err := time.ParseDuration(fc.Timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if !set["output.pdf"] && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}
	if !set["url.host"] && fc.URLRule.Host != "" {
		cfg.URLHostContains = fc.URLRule.Host
	}
	if !set["url.path"] && fc.URLRule.Path != "" {
		cfg.URLPathContains = fc.URLRule.Path
	}
}

// ValidateConfig performs schema validation before the pipeline runs.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return errors.New("config: url is required")
	}
	if utf8.RuneCountInString(cfg.Fill) != 1 {
		return errors.New("config: fill must be exactly one character")
	}
	if cfg.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	return nil
}
