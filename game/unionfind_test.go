package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionFind(t *testing.T) {
	t.Run("fresh elements are singleton sets", func(t *testing.T) {
		u := newUnionFind(5)

		for i := int32(0); i < 5; i++ {
			require.Equal(t, i, u.find(i), "element should be its own representative")
		}
		require.False(t, u.connected(0, 1))
	})

	t.Run("union merges transitively", func(t *testing.T) {
		u := newUnionFind(6)

		u.union(0, 1)
		u.union(2, 3)
		require.False(t, u.connected(0, 3), "separate chains should stay separate")

		u.union(1, 2)
		require.True(t, u.connected(0, 3), "chained unions should connect endpoints")
		require.False(t, u.connected(0, 5), "untouched element should stay singleton")
	})

	t.Run("union within a set is a no-op", func(t *testing.T) {
		u := newUnionFind(3)

		u.union(0, 1)
		u.union(1, 0)

		require.True(t, u.connected(0, 1))
		require.False(t, u.connected(0, 2))
	})

	t.Run("find does not change membership", func(t *testing.T) {
		u := newUnionFind(8)
		for i := int32(1); i < 8; i++ {
			u.union(i-1, i)
		}

		// Repeated finds compress paths but the answer stays put.
		root := u.find(7)
		require.Equal(t, root, u.find(7))
		require.True(t, u.connected(0, 7))
	})

	t.Run("clone is independent", func(t *testing.T) {
		u := newUnionFind(4)
		u.union(0, 1)

		c := u.clone()
		c.union(2, 3)

		require.True(t, c.connected(0, 1), "clone should carry existing sets")
		require.True(t, c.connected(2, 3))
		require.False(t, u.connected(2, 3), "mutating the clone should not affect the original")
	})
}
