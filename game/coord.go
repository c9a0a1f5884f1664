package game

import (
	"fmt"
	"strconv"
	"strings"
)

// columns is the alphabet used for coordinate notation, in order.
const columns = "abcdefghijklmnopqrstuvwxyz"

// Coord addresses a cell on a Hex board. (0, 0) is the top-left hex and
// (0, 1) the hex immediately to its right. Rows run top to bottom, columns
// left to right; the board is a parallelogram whose long diagonal runs from
// the top left to the bottom right.
type Coord struct {
	Row int
	Col int
}

// The six hex directions, clockwise from the upper left.
var neighborOffsets = [6]Coord{
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: -1},
	{Row: 0, Col: -1},
}

// Neighbors returns the six coordinates adjacent to c, clockwise from the
// upper left. They are generated unconditionally, so results near a border
// may lie outside the board (including negative rows or columns); callers
// filter against the board extent.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range neighborOffsets {
		out[i] = Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
	}
	return out
}

// Adjacent reports whether the two coordinates are equal or neighbor each
// other on the hex grid.
func (c Coord) Adjacent(other Coord) bool {
	return abs(c.Row-other.Row) <= 1 &&
		abs(c.Col-other.Col) <= 1 &&
		abs((c.Row+c.Col)-(other.Row+other.Col)) <= 1
}

// Distance returns the number of grid steps separating two coordinates:
// 0 for equality, 1 for neighbors. The hex grid embeds in the 3D plane
// x+y+z = 0, so this is half the Manhattan distance in that space.
func (c Coord) Distance(other Coord) int {
	return (abs(c.Row-other.Row) +
		abs(c.Col-other.Col) +
		abs((c.Row+c.Col)-(other.Row+other.Col))) / 2
}

// String renders the coordinate in conventional Hex notation: a letter for
// the column and a 1-based number for the row, so "a1" is the top-left hex.
func (c Coord) String() string {
	if c.Col < 0 || c.Col >= len(columns) || c.Row < 0 {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", columns[c.Col], c.Row+1)
}

// ParseCoord parses conventional Hex notation ("a1", "K11") back into a
// Coord. Parsing is case-insensitive. The notation caps both axes at 26,
// the same limit as MaxSize.
func ParseCoord(s string) (Coord, error) {
	lower := strings.ToLower(s)
	if len(lower) < 2 {
		return Coord{}, fmt.Errorf("cannot parse coordinate %q: too short", s)
	}
	col := strings.IndexByte(columns, lower[0])
	if col < 0 {
		return Coord{}, fmt.Errorf("cannot parse coordinate %q: bad column letter", s)
	}
	row, err := strconv.Atoi(lower[1:])
	if err != nil {
		return Coord{}, fmt.Errorf("cannot parse coordinate %q: %w", s, err)
	}
	if row < 1 || row > len(columns) {
		return Coord{}, fmt.Errorf("cannot parse coordinate %q: row out of range", s)
	}
	return Coord{Row: row - 1, Col: col}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
