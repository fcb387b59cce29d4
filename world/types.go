package world

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction and movement.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("world: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("world: all rows must have the same length")
	// ErrTooLarge indicates a grid side above the configured maximum.
	ErrTooLarge = errors.New("world: grid exceeds maximum dimensions")
	// ErrUnknownTile indicates a cell symbol outside D, E, W, X.
	ErrUnknownTile = errors.New("world: unknown tile")
	// ErrNoAgent indicates the grid holds no agent cell.
	ErrNoAgent = errors.New("world: grid has no agent")
	// ErrMultipleAgents indicates the grid holds more than one agent cell.
	ErrMultipleAgents = errors.New("world: grid has more than one agent")
	// ErrIllegalMove indicates a move off the grid or into a wall.
	ErrIllegalMove = errors.New("world: illegal move")
	// ErrUnknownDirection indicates a move symbol outside u, d, l, r.
	ErrUnknownDirection = errors.New("world: unknown direction")
)

// MaxSide is the default upper bound on rows and columns.
const MaxSide = 6

// Tile is the content of one grid cell. Its value is the text symbol,
// so a row-major run of Tiles is directly printable.
type Tile byte

const (
	// Dirt must be visited by the agent.
	Dirt Tile = 'D'
	// Empty is clean floor.
	Empty Tile = 'E'
	// Wall can never be entered.
	Wall Tile = 'W'
	// Agent marks the robot's position.
	Agent Tile = 'X'
)

// Valid reports whether t is one of the four known tiles.
func (t Tile) Valid() bool {
	switch t {
	case Dirt, Empty, Wall, Agent:
		return true
	}
	return false
}

func (t Tile) String() string {
	return string(rune(t))
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	// Up moves one row towards row 0.
	Up Direction = iota
	// Down moves one row away from row 0.
	Down
	// Left moves one column towards column 0.
	Left
	// Right moves one column away from column 0.
	Right
)

// directions is the fixed generation order; search results depend on it.
var directions = [4]Direction{Up, Down, Left, Right}

// offsets holds the {row, col} delta per Direction.
var offsets = [4][2]int{
	{-1, 0}, // Up
	{1, 0},  // Down
	{0, -1}, // Left
	{0, 1},  // Right
}

var symbols = [4]byte{'u', 'd', 'l', 'r'}

// Directions returns the four directions in generation order: Up, Down, Left, Right.
func Directions() [4]Direction {
	return directions
}

// Offset returns the row and column delta of d.
func (d Direction) Offset() (dr, dc int) {
	return offsets[d][0], offsets[d][1]
}

// Symbol returns the single-letter text form of d.
func (d Direction) Symbol() byte {
	return symbols[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection maps a move symbol (u, d, l, r; case-insensitive) to a Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'u', 'U':
		return Up, nil
	case 'd', 'D':
		return Down, nil
	case 'l', 'L':
		return Left, nil
	case 'r', 'R':
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, r)
}

// Moves is an ordered move sequence.
type Moves []Direction

// String renders the sequence in the u/d/l/r alphabet.
func (m Moves) String() string {
	var b strings.Builder
	b.Grow(len(m))
	for _, d := range m {
		b.WriteByte(d.Symbol())
	}
	return b.String()
}

// ParseMoves parses a u/d/l/r string. Whitespace is ignored.
func ParseMoves(s string) (Moves, error) {
	moves := make(Moves, 0, len(s))
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		d, err := ParseDirection(r)
		if err != nil {
			return nil, fmt.Errorf("%w (at offset %d)", err, i)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// Options tunes grid validation.
type Options struct {
	// MaxSide bounds both rows and columns. Zero disables the bound.
	MaxSide int
}

// Option configures grid construction.
type Option func(*Options)

// DefaultOptions returns Options with MaxSide set to the package default.
func DefaultOptions() Options {
	return Options{MaxSide: MaxSide}
}

// WithMaxSide overrides the side bound; n <= 0 removes it.
func WithMaxSide(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSide = n
	}
}
