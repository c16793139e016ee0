package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gridlabs/gridart/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		rawURL     string
		fill       string
		title      string
		border     bool
		info       bool
		debug      bool
		quiet      bool
		timeout    time.Duration
		outputPDF  string
		configPath string
		urlHost    string
		urlPath    string
	)

	flag.StringVar(&rawURL, "url", "", "Published document URL (required)")
	flag.StringVar(&fill, "fill", app.FillDefault, "Character to fill empty cells")
	flag.StringVar(&title, "title", app.TitleDefault, "Title line for bordered output")
	flag.BoolVar(&border, "border", false, "Display the art with a decorative border")
	flag.BoolVar(&info, "info", false, "Show statistics about the parsed grid")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&quiet, "quiet", false, "Suppress info messages (only show warnings and errors)")
	flag.DurationVar(&timeout, "timeout", app.TimeoutDefault, "Request timeout")
	flag.StringVar(&outputPDF, "output.pdf", "", "Also write the rendered art to this PDF path")
	flag.StringVar(&configPath, "config", "", "Path to YAML/JSON config file supplying defaults")
	flag.StringVar(&urlHost, "url.host", "", "Required substring of the document URL host (default: docs.google.com)")
	flag.StringVar(&urlPath, "url.path", "", "Required substring of the document URL path (default: /pub)")
	flag.Parse()

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else if quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		URL:             rawURL,
		Fill:            fill,
		Title:           title,
		Border:          border,
		Info:            info,
		Debug:           debug,
		Quiet:           quiet,
		Timeout:         timeout,
		OutputPDFPath:   outputPDF,
		URLHostContains: urlHost,
		URLPathContains: urlPath,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read config file: %v\n", err)
			os.Exit(1)
		}
		// Flags the user passed keep their value even when it matches the
		// flag default.
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		app.ApplyFileConfig(&cfg, fc, set)
		// Log level may have been raised by the file config.
		if cfg.Debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else if cfg.Quiet {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	}

	if err := app.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user.")
			os.Exit(130)
		}
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg app.Config) error {
	a, err := app.New(cfg, log.Logger)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
