/*
Package grid provides the terrain model for pathfinding scenarios.

It defines the `Grid` structure, a rectangular field of `Tile` values
(open ground, mud and walls), together with the `Generator` that produces
randomized grids with a guaranteed route between the chosen start and goal
cells.
*/
package grid

import "strings"

// Position identifies a cell by its zero-based row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ManhattanTo returns the Manhattan distance to another position.
func (p Position) ManhattanTo(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// directions lists the 4-connected neighbor offsets in a fixed order, so
// neighbor enumeration (and therefore frontier insertion order) is
// deterministic.
var directions = [4]Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}

// Grid is a rectangular field of tiles. It is immutable once returned by
// the Generator; every row has exactly Cols entries.
type Grid struct {
	Rows  int      // Number of rows
	Cols  int      // Number of columns
	Cells [][]Tile // Cells[row][col] is the tile at that position
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At returns the tile at the given position. The position must be in
// bounds.
func (g *Grid) At(p Position) Tile {
	return g.Cells[p.Row][p.Col]
}

// Neighbors returns the walkable 4-connected neighbors of a position in a
// fixed, deterministic order. Walls are never included.
func (g *Grid) Neighbors(p Position) []Position {
	result := make([]Position, 0, len(directions))
	for _, delta := range directions {
		neighbor := Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
		if g.InBounds(neighbor) && g.At(neighbor).Walkable() {
			result = append(result, neighbor)
		}
	}
	return result
}

// String provides a textual representation of the grid, one row per line.
func (g *Grid) String() string {
	var output strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			output.WriteByte(byte(g.Cells[row][col]))
		}
		output.WriteByte('\n')
	}
	return output.String()
}
