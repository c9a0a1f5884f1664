package game

import "fmt"

// Game drives one session of Hex: it owns a Board, alternates turns
// starting with Player1, and records the move history. The Board itself
// never retains any of this game-level state.
type Game struct {
	board  *Board
	moves  []Coord
	winner Player // zero until the game is decided
}

// NewGame returns a fresh game on an empty size×size board.
func NewGame(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Game{board: board}, nil
}

// CurrentPlayer returns the player next to move: Player1 after an even
// number of moves, Player2 after an odd number.
func (g *Game) CurrentPlayer() Player {
	if len(g.moves)%2 == 0 {
		return Player1
	}
	return Player2
}

// Play places the current player's stone at c and records the move. Once a
// winner exists further moves fail with ErrGameOver; board-level failures
// pass through unchanged and record nothing.
func (g *Game) Play(c Coord) (Outcome, error) {
	if g.winner != 0 {
		return MoveContinued, fmt.Errorf("cannot play %s: %w", c, ErrGameOver)
	}
	mover := g.CurrentPlayer()
	outcome, err := g.board.Place(c, mover)
	if err != nil {
		return MoveContinued, err
	}
	g.moves = append(g.moves, c)
	if outcome == MoveWon {
		g.winner = mover
	}
	return outcome, nil
}

// Winner returns the winning player's name, or "" while the game is
// ongoing.
func (g *Game) Winner() string {
	if g.winner == 0 {
		return ""
	}
	return g.winner.String()
}

// Board exposes the underlying board for queries.
func (g *Game) Board() *Board {
	return g.board
}

// Moves returns a copy of the move history in play order. Player1 made the
// first move and every other odd-numbered move.
func (g *Game) Moves() []Coord {
	moves := make([]Coord, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// LegalMoves returns every empty cell, or nil once the game is decided.
func (g *Game) LegalMoves() []Coord {
	if g.winner != 0 {
		return nil
	}
	var moves []Coord
	for c, cell := range g.board.Cells() {
		if cell == Empty {
			moves = append(moves, c)
		}
	}
	return moves
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	moves := make([]Coord, len(g.moves))
	copy(moves, g.moves)
	return &Game{
		board:  g.board.Clone(),
		moves:  moves,
		winner: g.winner,
	}
}
