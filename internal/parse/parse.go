package parse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/gridlabs/gridart/internal/grid"
)

// DefaultDelimiter splits coordinate data on commas and whitespace runs. The
// exact separator in published documents varies between table exports (one
// value per text fragment) and inline prose ("0,█,2 1,▀,2"); both reduce to
// the same token stream under this pattern.
var DefaultDelimiter = regexp.MustCompile(`[,\s]+`)

// DefaultMaxCoordinate bounds accepted x/y values so a hostile document
// cannot force an enormous grid allocation.
const DefaultMaxCoordinate = 10000

var intPattern = regexp.MustCompile(`^-?\d+$`)

// headerTokens mark the column-header preamble that published table exports
// place before the coordinate data.
var headerTokens = map[string]bool{
	"x-coordinate": true,
	"y-coordinate": true,
	"character":    true,
}

// Parser scans extracted document text for (x, char, y) coordinate triples.
type Parser struct {
	// Delimiter separates tokens within a fragment. Nil means DefaultDelimiter.
	Delimiter *regexp.Regexp
	// MaxCoordinate bounds accepted coordinates. Zero means DefaultMaxCoordinate.
	MaxCoordinate int
	Logger        zerolog.Logger
}

// Cells scans fragments, in document order, for non-overlapping coordinate
// triples. Spans that do not match the triple shape are skipped silently. A
// span that matches the shape but fails validation (negative or out-of-range
// coordinate) is logged as a warning and skipped; it never aborts the scan.
// Zero matches yield an empty slice, not an error.
func (p *Parser) Cells(fragments []string) []grid.Cell {
	tokens := p.tokenize(fragments)
	tokens = skipPreamble(tokens, p.Logger)

	maxCoord := p.MaxCoordinate
	if maxCoord <= 0 {
		maxCoord = DefaultMaxCoordinate
	}

	var cells []grid.Cell
	for i := 0; i+2 < len(tokens); i++ {
		xTok, charTok, yTok := tokens[i], tokens[i+1], tokens[i+2]
		if !intPattern.MatchString(xTok) || !intPattern.MatchString(yTok) || !isSingleGlyph(charTok) {
			continue
		}
		x, xErr := strconv.Atoi(xTok)
		y, yErr := strconv.Atoi(yTok)
		if xErr != nil || yErr != nil {
			p.Logger.Warn().Str("x", xTok).Str("y", yTok).Msg("coordinate does not fit an int, skipping triple")
			continue
		}
		if x < 0 || y < 0 || x > maxCoord || y > maxCoord {
			p.Logger.Warn().Int("x", x).Int("y", y).Msg("coordinate out of range, skipping triple")
			continue
		}
		r, _ := utf8.DecodeRuneInString(charTok)
		cells = append(cells, grid.Cell{X: x, Y: y, Char: r})
		i += 2 // consume the whole triple; matching is non-overlapping
	}
	p.Logger.Debug().Int("cells", len(cells)).Int("tokens", len(tokens)).Msg("extracted coordinate triples")
	return cells
}

// ParseText treats a single string as one fragment. Convenience for callers
// that already hold the concatenated document text.
func (p *Parser) ParseText(text string) []grid.Cell {
	return p.Cells([]string{text})
}

func (p *Parser) tokenize(fragments []string) []string {
	delim := p.Delimiter
	if delim == nil {
		delim = DefaultDelimiter
	}
	var tokens []string
	for _, f := range fragments {
		for _, t := range delim.Split(f, -1) {
			if t != "" {
				tokens = append(tokens, t)
			}
		}
	}
	return tokens
}

// skipPreamble drops everything up to and including the column-header tokens
// when the document carries a table header before the coordinate data. With
// no header present the whole stream is scanned.
func skipPreamble(tokens []string, logger zerolog.Logger) []string {
	for i, t := range tokens {
		if !headerTokens[strings.ToLower(t)] {
			continue
		}
		end := i + 1
		for end < len(tokens) && headerTokens[strings.ToLower(tokens[end])] {
			end++
		}
		logger.Debug().Int("skipped", end).Msg("found column headers, skipping preamble")
		return tokens[end:]
	}
	return tokens
}

// isSingleGlyph reports whether tok is exactly one printable code point.
func isSingleGlyph(tok string) bool {
	if utf8.RuneCountInString(tok) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsGraphic(r)
}
