package metrics

import (
	"sync/atomic"
	"time"
)

// GameMetric captures the timing of one completed game.
type GameMetric struct {
	StartingPlayer int
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// MoveMetric captures one placement inside a game.
type MoveMetric struct {
	Step     int
	Player   int
	Move     string
	Duration time.Duration
}

// GameRecord ties a game metric to its experiment row.
type GameRecord struct {
	ID     int
	Worker int
	GameMetric
}

// MoveRecord ties a move metric to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// ThroughputMetric aggregates a whole experiment run.
type ThroughputMetric struct {
	Duration       time.Duration
	Games          int
	Moves          int
	GamesPerSecond float64
	MovesPerSecond float64
}

// Collector aggregates counters across worker goroutines. Counters are
// atomic so workers never block each other on the hot path.
type Collector interface {
	Start()
	AddGame(moves int)
	Complete() ThroughputMetric
}

type collector struct {
	startTime time.Time
	games     atomic.Int64
	moves     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddGame(moves int) {
	m.games.Add(1)
	m.moves.Add(int64(moves))
}

func (m *collector) Complete() ThroughputMetric {
	elapsed := time.Since(m.startTime)
	games := int(m.games.Load())
	moves := int(m.moves.Load())
	return ThroughputMetric{
		Duration:       elapsed,
		Games:          games,
		Moves:          moves,
		GamesPerSecond: float64(games) / elapsed.Seconds(),
		MovesPerSecond: float64(moves) / elapsed.Seconds(),
	}
}
