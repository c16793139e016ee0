package app

import "time"

// Config holds runtime configuration for the viewer, threaded explicitly
// through the pipeline rather than living in package-level state.
type Config struct {
	URL string

	// Rendering
	Fill   string
	Title  string
	Border bool
	Info   bool

	// Logging
	Debug bool
	Quiet bool

	// Fetch
	Timeout time.Duration

	// Optional PDF copy of the rendered art.
	OutputPDFPath string

	// URL validation rule overrides. Empty means the Google Docs defaults.
	URLHostContains string
	URLPathContains string
}
