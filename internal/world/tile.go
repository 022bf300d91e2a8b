// Package world provides the tile grid and dungeon generation.
package world

// Tile is a single map cell. Explored is monotonic: once set it is never
// cleared for the lifetime of the map.
type Tile struct {
	Blocked     bool `json:"blocked"`
	BlocksSight bool `json:"blocksSight"`
	Explored    bool `json:"explored"`
}

// WallTile returns a solid wall cell.
func WallTile() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// FloorTile returns a walkable, transparent cell.
func FloorTile() Tile {
	return Tile{}
}

// Point is a map coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
