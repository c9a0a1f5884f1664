package game

// unionFind is a disjoint-set forest over dense integer indices, using path
// halving on find and union by rank. Merges are strictly additive: there is
// no undo, matching Hex's no-capture rule. Callers that need backtracking
// snapshot the whole structure instead (see Board.Clone), since a
// path-compressed forest cannot be unwound merge by merge.
type unionFind struct {
	parent []int32
	rank   []uint8
}

func newUnionFind(n int) unionFind {
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = int32(i)
	}
	return unionFind{
		parent: parent,
		rank:   make([]uint8, n),
	}
}

// find returns the canonical representative of x's set, halving the path as
// a side effect. Set membership is unchanged, but parent pointers move.
func (u unionFind) find(x int32) int32 {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union merges the sets containing a and b; no-op if they already share a
// set. Union by rank together with path halving keeps amortized finds at
// the inverse-Ackermann bound.
func (u unionFind) union(a, b int32) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// connected reports whether a and b share a set.
func (u unionFind) connected(a, b int32) bool {
	return u.find(a) == u.find(b)
}

// clone returns an independent copy of the forest.
func (u unionFind) clone() unionFind {
	parent := make([]int32, len(u.parent))
	copy(parent, u.parent)
	rank := make([]uint8, len(u.rank))
	copy(rank, u.rank)
	return unionFind{parent: parent, rank: rank}
}
