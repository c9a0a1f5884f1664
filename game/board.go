package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"iter"
)

// MaxSize is the largest supported board dimension. 26 is the cap of the
// letter-based coordinate notation (columns a through z); it also keeps the
// connectivity universe of N²+4 nodes far inside int32 index range.
const MaxSize = 26

// Outcome reports the effect of a successful placement.
type Outcome int

const (
	// MoveContinued means the placement did not decide the game.
	MoveContinued Outcome = iota
	// MoveWon means the placement connected the mover's two home edges.
	MoveWon
)

// Board is an N×N Hex board: cell occupancy plus the incremental
// connectivity structure used for win detection. Cells are indexed
// row-major; four virtual nodes just past the cells stand in for the
// players' home edges, so a winning chain shows up as the player's two edge
// nodes landing in the same set. Each placement merges with at most six
// neighbors, so the win check costs a pair of near-constant finds instead
// of a board-wide traversal.
//
// A Board is exclusively owned by one game session. Every operation
// mutates in place (finds compress paths even on reads), so nothing here is
// safe for concurrent use. Independent Boards share no state and may run
// fully in parallel, one per goroutine.
type Board struct {
	size  int
	cells []Cell
	sets  unionFind
}

// NewBoard returns an empty size×size board with its connectivity
// structure. Sizes outside [1, MaxSize] fail with ErrInvalidSize.
func NewBoard(size int) (*Board, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("cannot create %dx%d board: %w (supported sizes are 1..%d)",
			size, size, ErrInvalidSize, MaxSize)
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
		sets:  newUnionFind(size*size + 4),
	}, nil
}

func (b *Board) index(c Coord) int32 {
	return int32(c.Row*b.size + c.Col)
}

func (b *Board) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// edgeNodes returns the indices of p's two virtual edge nodes: top and
// bottom for Player1, left and right for Player2.
func (b *Board) edgeNodes(p Player) (int32, int32) {
	n := int32(b.size * b.size)
	if p == Player1 {
		return n, n + 1
	}
	return n + 2, n + 3
}

// Place puts p's stone at c, merging it with every occupied same-player
// neighbor and with p's home edge nodes where the cell borders them. The
// returned Outcome is MoveWon iff this stone connected p's two edges;
// connectivity is always fully updated before the win is reported. A failed
// placement leaves the board untouched.
func (b *Board) Place(c Coord, p Player) (Outcome, error) {
	if !b.inBounds(c) {
		return MoveContinued, fmt.Errorf("cannot place at %s: %w", c, ErrOutOfBounds)
	}
	idx := b.index(c)
	if b.cells[idx] != Empty {
		return MoveContinued, fmt.Errorf("cannot place at %s: %w", c, ErrCellOccupied)
	}
	b.cells[idx] = Cell(p)

	for _, nb := range c.Neighbors() {
		if b.inBounds(nb) && b.cells[b.index(nb)] == Cell(p) {
			b.sets.union(idx, b.index(nb))
		}
	}

	// A stone may touch both home edges at once on a size-1 board; the
	// unions commute, so the order never matters.
	first, second := b.edgeNodes(p)
	if p == Player1 {
		if c.Row == 0 {
			b.sets.union(idx, first)
		}
		if c.Row == b.size-1 {
			b.sets.union(idx, second)
		}
	} else {
		if c.Col == 0 {
			b.sets.union(idx, first)
		}
		if c.Col == b.size-1 {
			b.sets.union(idx, second)
		}
	}

	if b.sets.connected(first, second) {
		return MoveWon, nil
	}
	return MoveContinued, nil
}

// HasWon reports whether p's stones connect p's two home edges. Amortized
// constant time, callable at any point, and stable between placements.
func (b *Board) HasWon(p Player) bool {
	first, second := b.edgeNodes(p)
	return b.sets.connected(first, second)
}

// Occupancy returns the cell state at c, or ErrOutOfBounds for coordinates
// outside the board.
func (b *Board) Occupancy(c Coord) (Cell, error) {
	if !b.inBounds(c) {
		return Empty, fmt.Errorf("cannot read cell %s: %w", c, ErrOutOfBounds)
	}
	return b.cells[b.index(c)], nil
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// Cells returns a lazy, restartable row-major snapshot of every cell, so
// serializers and renderers can consume the position without depending on
// the board's internal layout.
func (b *Board) Cells() iter.Seq2[Coord, Cell] {
	return func(yield func(Coord, Cell) bool) {
		for r := 0; r < b.size; r++ {
			for c := 0; c < b.size; c++ {
				if !yield(Coord{Row: r, Col: c}, b.cells[r*b.size+c]) {
					return
				}
			}
		}
	}
}

// Hash returns an FNV-1a digest of the occupancy, for callers that key
// caches or transposition tables on positions.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(b.size))
	for _, cell := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int64(cell))
	}
	return hasher.Sum64()
}

// Clone returns an independent deep copy of the board. Cloning is the
// supported snapshot strategy for backtracking callers, since the
// connectivity structure cannot be unwound move by move.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:  b.size,
		cells: cells,
		sets:  b.sets.clone(),
	}
}
