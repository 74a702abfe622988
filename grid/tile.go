package grid

// Tile is the terrain kind of a single grid cell. The underlying byte is
// the tile's single-character wire code, so the value used by generation,
// search and the API response is one and the same.
type Tile byte

const (
	// TileNormal is open terrain, cost 1 to enter.
	TileNormal Tile = '.'
	// TileMud is slow terrain, cost 3 to enter.
	TileMud Tile = '~'
	// TileWall is impassable terrain.
	TileWall Tile = '#'
)

// Traversal costs per tile kind.
const (
	NormalCost = 1
	MudCost    = 3
)

// Cost returns the cost of stepping onto the tile. It is only meaningful
// for walkable tiles; walls are excluded from traversal entirely.
func (t Tile) Cost() int {
	if t == TileMud {
		return MudCost
	}
	return NormalCost
}

// Walkable reports whether the tile can be entered.
func (t Tile) Walkable() bool {
	return t != TileWall
}

// Code returns the tile's single-character wire code.
func (t Tile) Code() string {
	return string(rune(t))
}
