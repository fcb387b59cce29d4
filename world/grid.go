package world

import (
	"fmt"
	"strings"
)

// Grid is a validated rectangular tile matrix holding exactly one Agent.
// Cells are stored row-major; agent caches the Agent's row-major index.
type Grid struct {
	rows, cols int
	cells      []Tile
	agent      int
}

// New builds a Grid from text rows, one string per row, using the symbols
// D (dirt), E (empty), W (wall) and X (agent).
// Returns ErrEmptyGrid, ErrNonRectangular, ErrTooLarge, ErrUnknownTile,
// ErrNoAgent or ErrMultipleAgents for malformed input.
// Complexity: O(R×C).
func New(rows []string, opts ...Option) (*Grid, error) {
	tiles := make([][]Tile, len(rows))
	for r, row := range rows {
		tiles[r] = []Tile(row)
	}
	return FromTiles(tiles, opts...)
}

// FromTiles builds a Grid from a 2D tile slice. The input is deep-copied.
// Validation is identical to New.
func FromTiles(tiles [][]Tile, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(tiles), len(tiles[0])
	for r, row := range tiles {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	if o.MaxSide > 0 && (h > o.MaxSide || w > o.MaxSide) {
		return nil, fmt.Errorf("%w: %dx%d, max side %d", ErrTooLarge, h, w, o.MaxSide)
	}

	g := &Grid{rows: h, cols: w, cells: make([]Tile, 0, h*w), agent: -1}
	for r, row := range tiles {
		for c, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownTile, rune(t), r, c)
			}
			if t == Agent {
				if g.agent >= 0 {
					ar, ac := g.Coordinate(g.agent)
					return nil, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrMultipleAgents, ar, ac, r, c)
				}
				g.agent = len(g.cells)
			}
			g.cells = append(g.cells, t)
		}
	}
	if g.agent < 0 {
		return nil, ErrNoAgent
	}

	return g, nil
}

// Size returns the number of rows and columns.
func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the tile at (r,c). It panics if (r,c) is out of bounds.
func (g *Grid) At(r, c int) Tile {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("world: At(%d,%d) outside %dx%d grid", r, c, g.rows, g.cols))
	}
	return g.cells[g.index(r, c)]
}

// Validate reports whether g was built by New or FromTiles. The zero
// Grid fails with ErrEmptyGrid; a Grid whose agent index does not hold
// the Agent fails with ErrNoAgent.
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 || len(g.cells) != g.rows*g.cols {
		return ErrEmptyGrid
	}
	if g.agent < 0 || g.agent >= len(g.cells) || g.cells[g.agent] != Agent {
		return ErrNoAgent
	}
	return nil
}

// Agent returns the agent's position.
func (g *Grid) Agent() (r, c int) {
	return g.Coordinate(g.agent)
}

// Clean reports whether no cell holds Dirt.
func (g *Grid) Clean() bool {
	for _, t := range g.cells {
		if t == Dirt {
			return false
		}
	}
	return true
}

// DirtCount returns the number of Dirt cells.
func (g *Grid) DirtCount() int {
	n := 0
	for _, t := range g.cells {
		if t == Dirt {
			n++
		}
	}
	return n
}

// Key returns the canonical serialization: every tile symbol in row-major
// order. Two grids of the same shape are the same configuration iff their
// keys are equal; no path information is part of the key.
func (g *Grid) Key() string {
	return string(g.cells)
}

// Equal reports whether g and other have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.rows == other.rows && g.cols == other.cols && g.Key() == other.Key()
}

// Lines returns the grid as text rows, the inverse of New.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = string(g.cells[r*g.cols : (r+1)*g.cols])
	}
	return out
}

// String renders the rows separated by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// target returns the destination index of moving the agent in d,
// or false if the move is illegal.
func (g *Grid) target(d Direction) (int, bool) {
	ar, ac := g.Agent()
	dr, dc := d.Offset()
	nr, nc := ar+dr, ac+dc
	if !g.InBounds(nr, nc) {
		return 0, false
	}
	i := g.index(nr, nc)
	if g.cells[i] == Wall {
		return 0, false
	}
	return i, true
}

// CanMove reports whether moving the agent in d stays in bounds and avoids walls.
func (g *Grid) CanMove(d Direction) bool {
	_, ok := g.target(d)
	return ok
}

// Move returns a new Grid with the agent moved one step in d: the old agent
// cell becomes Empty and the destination becomes Agent. The receiver is
// never modified. Returns ErrIllegalMove if the destination is off-grid or a wall.
// Complexity: O(R×C) for the copy.
func (g *Grid) Move(d Direction) (*Grid, error) {
	i, ok := g.target(d)
	if !ok {
		r, c := g.Agent()
		return nil, fmt.Errorf("%w: %s from (%d,%d)", ErrIllegalMove, d, r, c)
	}
	next := &Grid{rows: g.rows, cols: g.cols, cells: make([]Tile, len(g.cells)), agent: i}
	copy(next.cells, g.cells)
	next.cells[g.agent] = Empty
	next.cells[i] = Agent

	return next, nil
}

// Replay applies moves in order and returns the final Grid.
// It stops at the first illegal move, reporting its position in the sequence.
func (g *Grid) Replay(moves Moves) (*Grid, error) {
	cur := g
	for step, d := range moves {
		next, err := cur.Move(d)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
		cur = next
	}
	return cur, nil
}

// index maps (r,c) to a row-major index: r*cols + c.
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}
