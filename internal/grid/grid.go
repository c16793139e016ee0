package grid

import (
	"errors"
	"fmt"
)

// ErrEmptyArt is returned when a grid is built from zero cells. Callers map
// this to a non-zero exit rather than printing a degenerate empty grid.
var ErrEmptyArt = errors.New("no cells to build art from")

// Cell is a single character at a source coordinate. Coordinates are
// bottom-origin: y increases upward in the source document.
type Cell struct {
	X    int
	Y    int
	Char rune
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell(%d, %d, %q)", c.X, c.Y, string(c.Char))
}

type point struct{ x, y int }

// Grid is an immutable lookup of cells plus their bounds. Positions not
// covered by any cell are filled at render time, not stored here.
type Grid struct {
	cells map[point]rune
	order []Cell

	minX, maxX int
	minY, maxY int
}

// Build constructs a grid from cells. Duplicate coordinates resolve
// first-wins: the earliest cell in document order keeps the position.
func Build(cells []Cell) (*Grid, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyArt
	}
	g := &Grid{cells: make(map[point]rune, len(cells))}
	first := true
	for _, c := range cells {
		p := point{c.X, c.Y}
		if _, dup := g.cells[p]; dup {
			continue
		}
		g.cells[p] = c.Char
		g.order = append(g.order, c)
		if first {
			g.minX, g.maxX = c.X, c.X
			g.minY, g.maxY = c.Y, c.Y
			first = false
			continue
		}
		if c.X < g.minX {
			g.minX = c.X
		}
		if c.X > g.maxX {
			g.maxX = c.X
		}
		if c.Y < g.minY {
			g.minY = c.Y
		}
		if c.Y > g.maxY {
			g.maxY = c.Y
		}
	}
	return g, nil
}

// Bounds returns (minX, maxX, minY, maxY) over all cells.
func (g *Grid) Bounds() (int, int, int, int) {
	return g.minX, g.maxX, g.minY, g.maxY
}

// Width is the occupied column span. Height spans from the origin: y is
// bottom-origin and non-negative, so the grid always includes the y=0 row
// even when no cell touches it.
func (g *Grid) Width() int  { return g.maxX - g.minX + 1 }
func (g *Grid) Height() int { return g.maxY + 1 }

// Count returns the number of distinct cells stored.
func (g *Grid) Count() int { return len(g.order) }

// Cells returns the stored cells in insertion order.
func (g *Grid) Cells() []Cell { return g.order }

// RuneAt looks up a cell by its source coordinates.
func (g *Grid) RuneAt(x, y int) (rune, bool) {
	r, ok := g.cells[point{x, y}]
	return r, ok
}

// RowRuneAt addresses the grid by display position: row 0 is the top line,
// which holds the cells with the highest source y, and column 0 is source
// x=MinX. Missing positions yield the fill rune.
func (g *Grid) RowRuneAt(col, row int, fill rune) rune {
	if r, ok := g.cells[point{g.minX + col, g.maxY - row}]; ok {
		return r
	}
	return fill
}
