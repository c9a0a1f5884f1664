package engine

import (
	"fmt"
	"testing"

	"hex/game"

	"github.com/stretchr/testify/require"
)

func TestLocalEngineRunsToCompletion(t *testing.T) {
	e, err := LocalEngine(5, NewRandomAgent(1), NewRandomAgent(2))
	require.NoError(t, err)

	winner, gameMetric, moveMetrics, err := e.Run()
	require.NoError(t, err)

	require.Contains(t, []string{"Player1", "Player2"}, winner)
	require.Equal(t, winner, gameMetric.Winner)
	require.Equal(t, winner, e.Game.Winner())
	require.LessOrEqual(t, gameMetric.TotalMoves, 25, "a 5x5 board holds at most 25 stones")
	require.GreaterOrEqual(t, gameMetric.TotalMoves, 5, "the shortest 5x5 win needs five stones")
	require.Len(t, moveMetrics, gameMetric.TotalMoves)
	require.Equal(t, 1, moveMetrics[0].Player, "Player1 moves first")
	if len(moveMetrics) > 1 {
		require.Equal(t, 2, moveMetrics[1].Player)
	}
}

func TestLocalEngineIsDeterministicPerSeed(t *testing.T) {
	run := func() (string, []string) {
		e, err := LocalEngine(4, NewRandomAgent(42), NewRandomAgent(43))
		require.NoError(t, err)
		winner, _, moveMetrics, err := e.Run()
		require.NoError(t, err)
		moves := make([]string, len(moveMetrics))
		for i, mm := range moveMetrics {
			moves[i] = mm.Move
		}
		return winner, moves
	}

	winner1, moves1 := run()
	winner2, moves2 := run()
	require.Equal(t, winner1, winner2, "same seeds should replay the same game")
	require.Equal(t, moves1, moves2)
}

func TestLocalEngineRejectsInvalidSize(t *testing.T) {
	_, err := LocalEngine(0, NewRandomAgent(1), NewRandomAgent(2))
	require.ErrorIs(t, err, game.ErrInvalidSize)
}

// stuckAgent always proposes the same cell, legal or not.
type stuckAgent struct {
	coord game.Coord
}

func (a stuckAgent) FindMove(*game.Game) (game.Coord, error) {
	return a.coord, nil
}

// failingAgent never produces a move.
type failingAgent struct{}

func (failingAgent) FindMove(*game.Game) (game.Coord, error) {
	return game.Coord{}, fmt.Errorf("no move available")
}

func TestLocalEngineSurfacesAgentFailures(t *testing.T) {
	t.Run("agent error aborts the run", func(t *testing.T) {
		e, err := LocalEngine(3, failingAgent{}, NewRandomAgent(1))
		require.NoError(t, err)

		_, _, _, err = e.Run()
		require.Error(t, err)
		require.Contains(t, err.Error(), "agent for Player1 failed")
	})

	t.Run("illegal agent move aborts the run", func(t *testing.T) {
		e, err := LocalEngine(3, stuckAgent{coord: game.Coord{Row: 1, Col: 1}},
			stuckAgent{coord: game.Coord{Row: 1, Col: 1}})
		require.NoError(t, err)

		_, _, _, err = e.Run()
		require.ErrorIs(t, err, game.ErrCellOccupied)
	})
}
