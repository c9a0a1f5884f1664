package game

import "fmt"

// Player identifies one of the two Hex players. Player1 moves first and
// tries to connect the top edge (row 0) to the bottom edge (row N-1);
// Player2 tries to connect the left edge (col 0) to the right edge
// (col N-1).
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p))
}

// Cell describes the contents of a single hex: Empty, or the numeric value
// of the owning Player.
type Cell int

// Empty marks a cell with no stone on it.
const Empty Cell = 0

// Owner returns the player occupying the cell, or false for an empty cell.
func (c Cell) Owner() (Player, bool) {
	if c == Empty {
		return 0, false
	}
	return Player(c), true
}

func (c Cell) String() string {
	if p, ok := c.Owner(); ok {
		return p.String()
	}
	return "Empty"
}
