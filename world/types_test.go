package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/world"
)

func TestDirections_Order(t *testing.T) {
	dirs := world.Directions()
	assert.Equal(t, [4]world.Direction{world.Up, world.Down, world.Left, world.Right}, dirs)

	var symbols []byte
	for _, d := range dirs {
		symbols = append(symbols, d.Symbol())
	}
	assert.Equal(t, "udlr", string(symbols))
}

func TestDirection_Offset(t *testing.T) {
	for d, want := range map[world.Direction][2]int{
		world.Up:    {-1, 0},
		world.Down:  {1, 0},
		world.Left:  {0, -1},
		world.Right: {0, 1},
	} {
		dr, dc := d.Offset()
		assert.Equal(t, want, [2]int{dr, dc}, d.String())
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := world.ParseMoves("u D l\nR")
	require.NoError(t, err)
	assert.Equal(t, world.Moves{world.Up, world.Down, world.Left, world.Right}, moves)
	assert.Equal(t, "udlr", moves.String())

	_, err = world.ParseMoves("ux")
	assert.ErrorIs(t, err, world.ErrUnknownDirection)

	empty, err := world.ParseMoves("")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, "", empty.String())
}

func TestTile_Valid(t *testing.T) {
	for _, tile := range []world.Tile{world.Dirt, world.Empty, world.Wall, world.Agent} {
		assert.True(t, tile.Valid(), tile.String())
	}
	assert.False(t, world.Tile('?').Valid())
	assert.Equal(t, "X", world.Agent.String())
}
