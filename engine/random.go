package engine

import (
	"fmt"

	"hex/game"

	"golang.org/x/exp/rand"
)

// RandomAgent plays uniformly random legal moves. It is the reference
// opponent for throughput runs and property tests; anything smarter plugs
// in through the Agent interface.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent with its own deterministic source, so
// parallel games never contend on shared randomness.
func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(g *game.Game) (game.Coord, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Coord{}, fmt.Errorf("no legal moves for %s", g.CurrentPlayer())
	}
	return moves[a.rng.Intn(len(moves))], nil
}
