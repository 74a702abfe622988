package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// gridFromRows builds a grid from one string per row, using the tile codes
// directly.
func gridFromRows(rows []string) *Grid {
	cells := make([][]Tile, len(rows))
	for r, row := range rows {
		cells[r] = make([]Tile, len(row))
		for c := range row {
			cells[r][c] = Tile(row[c])
		}
	}
	return &Grid{Rows: len(rows), Cols: len(rows[0]), Cells: cells}
}

func TestTile(t *testing.T) {
	t.Run("costs", func(t *testing.T) {
		assert.Equal(t, 1, TileNormal.Cost())
		assert.Equal(t, 3, TileMud.Cost())
	})

	t.Run("walkability", func(t *testing.T) {
		assert.True(t, TileNormal.Walkable())
		assert.True(t, TileMud.Walkable())
		assert.False(t, TileWall.Walkable())
	})

	t.Run("wire codes", func(t *testing.T) {
		assert.Equal(t, ".", TileNormal.Code())
		assert.Equal(t, "~", TileMud.Code())
		assert.Equal(t, "#", TileWall.Code())
	})
}

func TestPositionManhattanTo(t *testing.T) {
	assert.Equal(t, 0, Position{Row: 2, Col: 3}.ManhattanTo(Position{Row: 2, Col: 3}))
	assert.Equal(t, 7, Position{Row: 0, Col: 0}.ManhattanTo(Position{Row: 3, Col: 4}))
	assert.Equal(t, 7, Position{Row: 3, Col: 4}.ManhattanTo(Position{Row: 0, Col: 0}))
}

func TestGrid(t *testing.T) {
	g := gridFromRows([]string{
		".~.",
		".#.",
		"...",
	})

	t.Run("bounds", func(t *testing.T) {
		assert.True(t, g.InBounds(Position{Row: 0, Col: 0}))
		assert.True(t, g.InBounds(Position{Row: 2, Col: 2}))
		assert.False(t, g.InBounds(Position{Row: -1, Col: 0}))
		assert.False(t, g.InBounds(Position{Row: 0, Col: 3}))
		assert.False(t, g.InBounds(Position{Row: 3, Col: 0}))
	})

	t.Run("tile lookup", func(t *testing.T) {
		assert.Equal(t, TileMud, g.At(Position{Row: 0, Col: 1}))
		assert.Equal(t, TileWall, g.At(Position{Row: 1, Col: 1}))
		assert.Equal(t, TileNormal, g.At(Position{Row: 2, Col: 0}))
	})

	t.Run("neighbors exclude walls and borders", func(t *testing.T) {
		// (0,0) has the wall-free neighbors (1,0) and (0,1).
		assert.Equal(t, []Position{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, g.Neighbors(Position{Row: 0, Col: 0}))

		// (1,0) sits next to the center wall; only vertical moves remain.
		assert.Equal(t, []Position{{Row: 2, Col: 0}, {Row: 0, Col: 0}}, g.Neighbors(Position{Row: 1, Col: 0}))
	})

	t.Run("neighbor order is deterministic", func(t *testing.T) {
		open := gridFromRows([]string{"...", "...", "..."})
		want := []Position{{Row: 2, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 0}}
		for i := 0; i < 5; i++ {
			assert.Equal(t, want, open.Neighbors(Position{Row: 1, Col: 1}))
		}
	})

	t.Run("render", func(t *testing.T) {
		assert.Equal(t, ".~.\n.#.\n...\n", g.String())
	})
}
