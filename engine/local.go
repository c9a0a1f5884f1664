package engine

import (
	"fmt"
	"time"

	"hex/experiments/metrics"
	"hex/game"

	"github.com/rs/zerolog/log"
)

// Agent chooses moves for one player. Implementations receive the live game
// and must return a currently legal coordinate.
type Agent interface {
	FindMove(g *game.Game) (game.Coord, error)
}

// Engine runs one local game between two agents, Player1's agent first.
type Engine struct {
	Game   *game.Game
	Agents [2]Agent
}

// LocalEngine sets up a game of the given size between two agents.
func LocalEngine(size int, agent1, agent2 Agent) (*Engine, error) {
	g, err := game.NewGame(size)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Game:   g,
		Agents: [2]Agent{agent1, agent2},
	}, nil
}

// Run executes the game loop until a winner is found. A Hex board admits at
// most N² placements and a full board always has a winner, so the loop
// terminates. Returns the winner together with game- and move-level
// metrics.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	size := e.Game.Board().Size()
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	step := 0
	for e.Game.Winner() == "" {
		step++
		mover := e.Game.CurrentPlayer()

		moveStart := time.Now()
		move, err := e.Agents[mover-1].FindMove(e.Game)
		if err != nil {
			return "", metrics.GameMetric{}, nil,
				fmt.Errorf("agent for %s failed on step %d: %w", mover, step, err)
		}
		if _, err := e.Game.Play(move); err != nil {
			return "", metrics.GameMetric{}, nil,
				fmt.Errorf("agent for %s chose illegal move %s on step %d: %w", mover, move, step, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     step,
			Player:   int(mover),
			Move:     move.String(),
			Duration: time.Since(moveStart),
		})

		if step > size*size {
			panic("game exceeded the board's capacity without a winner")
		}
	}
	end := time.Now()

	log.Debug().Msgf("completed %dx%d game in %d moves with winner %s",
		size, size, step, e.Game.Winner())

	gameMetric := metrics.GameMetric{
		StartingPlayer: int(game.Player1),
		Winner:         e.Game.Winner(),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     step,
	}
	return e.Game.Winner(), gameMetric, moveMetrics, nil
}
