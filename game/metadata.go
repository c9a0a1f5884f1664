package game

// EndingKind classifies how a recorded game stopped.
type EndingKind int

const (
	// EndingNone means the game finished by direct loss, or the record is a
	// partial game.
	EndingNone EndingKind = iota
	// EndingResignation means one player resigned.
	EndingResignation
	// EndingForfeit means one player forfeited (time loss,
	// disqualification, and so on).
	EndingForfeit
)

// Ending describes an early end to a recorded game. MovePair counts by move
// pair, as Hex records conventionally do: Player1's 3rd move is move pair
// 3, the 5th move of play.
type Ending struct {
	Kind     EndingKind
	Player   Player
	MovePair int
}

// Metadata carries record-level facts about a game: who played, when, and
// how it ended. The engine never reads these; they exist for the record
// formats layered above it. Names refer to the players as they stood at the
// end of the game, after any swap.
type Metadata struct {
	// Swapped indicates the second player elected to swap colors on the
	// second move. Swapping pieces rather than colors is not modeled; it is
	// equivalent to a color swap plus a flip along the long diagonal.
	Swapped     bool
	Player1Name string
	Player2Name string
	Comment     string
	Year        int
	Month       int
	Day         int
	Ending      Ending
}
