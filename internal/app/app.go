package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/gridlabs/gridart/internal/extract"
	"github.com/gridlabs/gridart/internal/fetch"
	"github.com/gridlabs/gridart/internal/grid"
	"github.com/gridlabs/gridart/internal/parse"
	"github.com/gridlabs/gridart/internal/render"
)

// ErrNoCoordinates is returned when the document yields zero valid triples.
// Per the exit code policy this is fatal: nothing is written to stdout.
var ErrNoCoordinates = errors.New("no coordinate data found in document")

// App wires the pipeline: fetch, extract, parse, build, render.
type App struct {
	cfg    Config
	logger zerolog.Logger
	client *fetch.Client
	out    io.Writer
}

func New(cfg Config, logger zerolog.Logger) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &App{
		cfg:    cfg,
		logger: logger,
		client: &fetch.Client{
			Timeout: cfg.Timeout,
			Logger:  logger,
		},
		out: os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	rule := fetch.DefaultURLRule
	if a.cfg.URLHostContains != "" {
		rule.HostContains = a.cfg.URLHostContains
	}
	if a.cfg.URLPathContains != "" {
		rule.PathContains = a.cfg.URLPathContains
	}
	if err := fetch.ValidateDocURL(a.cfg.URL, rule); err != nil {
		return err
	}

	body, err := a.client.Get(ctx, a.cfg.URL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	fragments := extract.Fragments(body)
	a.logger.Debug().Int("fragments", len(fragments)).Msg("collected text fragments")

	p := &parse.Parser{Logger: a.logger}
	cells := p.Cells(fragments)
	if len(cells) == 0 {
		return ErrNoCoordinates
	}

	g, err := grid.Build(cells)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	fill, _ := utf8.DecodeRuneInString(a.cfg.Fill)
	lines := render.Lines(g, render.Options{
		Fill:   fill,
		Border: a.cfg.Border,
		Info:   a.cfg.Info,
		Title:  a.cfg.Title,
	})

	w := bufio.NewWriter(a.out)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if a.cfg.OutputPDFPath != "" {
		if err := writeArtPDF(lines, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		a.logger.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote PDF copy")
	}

	a.logger.Info().Int("lines", len(lines)).Int("cells", g.Count()).Msg("displayed art")
	return nil
}
