package world

import "fmt"

// Tile is a grid coordinate within a location.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

// Neighbors returns the eight surrounding tiles, orthogonal before diagonal.
// Connectivity searches rely on this ordering to make "nearest first"
// deterministic when two tiles sit at the same distance.
func (t Tile) Neighbors() []Tile {
	return []Tile{
		{t.X, t.Y - 1},
		{t.X, t.Y + 1},
		{t.X - 1, t.Y},
		{t.X + 1, t.Y},
		{t.X - 1, t.Y - 1},
		{t.X + 1, t.Y - 1},
		{t.X - 1, t.Y + 1},
		{t.X + 1, t.Y + 1},
	}
}

// Chebyshev returns the chessboard distance to o, the natural metric for an
// 8-neighbor expansion.
func (t Tile) Chebyshev(o Tile) int {
	dx := abs(t.X - o.X)
	dy := abs(t.Y - o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
