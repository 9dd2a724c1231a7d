package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate(t *testing.T) {
	c := Coordinate{2, 3}
	assert.Equal(t, Coordinate{1, 5}, c.Translate(-1, 2))
	assert.Equal(t, 7, c.ManhattanDistance(Coordinate{-1, 7}))
	assert.Equal(t, 7, Coordinate{-1, 7}.ManhattanDistance(c))
	assert.Equal(t, "(r2, c3)", c.String())
}

func TestNeighbors(t *testing.T) {
	c := Coordinate{2, 3}
	n4 := c.Neighbors4()
	assert.Equal(t, [4]Coordinate{{1, 3}, {2, 4}, {3, 3}, {2, 2}}, n4)
	for i, d := range Directions {
		assert.Equal(t, c.Step(d), n4[i])
	}

	n8 := NewCoordinateSet(c.Neighbors8()...)
	assert.Equal(t, 8, n8.Size())
	assert.False(t, n8.Contains(c))
	for _, n := range n4 {
		assert.True(t, n8.Contains(n))
	}
	assert.True(t, n8.Contains(Coordinate{1, 2}))
	assert.True(t, n8.Contains(Coordinate{3, 4}))
}

func TestCoordinateSet(t *testing.T) {
	cs := NewCoordinateSet()
	assert.True(t, cs.IsEmpty())
	cs.Add(Coordinate{1, 1}, Coordinate{0, 4})
	cs.Add(Coordinate{1, 0}, Coordinate{1, 1})
	assert.Equal(t, 3, cs.Size())
	if diff := cmp.Diff([]Coordinate{{0, 4}, {1, 0}, {1, 1}}, cs.ToSlice()); diff != "" {
		t.Errorf("ToSlice mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "[(r0, c4) (r1, c0) (r1, c1)]", cs.String())

	cs.Del(Coordinate{0, 4}, Coordinate{7, 7})
	assert.False(t, cs.Contains(Coordinate{0, 4}))
	assert.Equal(t, 2, cs.Size())

	assert.True(t, cs.Intersects(NewCoordinateSet(Coordinate{1, 0}, Coordinate{9, 9})))
	assert.False(t, cs.Intersects(NewCoordinateSet(Coordinate{9, 9})))
	assert.False(t, cs.Intersects(NewCoordinateSet()))
}

func TestGrid(t *testing.T) {
	g := FromLines([]string{"..S", "#.", ""})
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)
	assert.Equal(t, byte('.'), g.At(Coordinate{1, 2}))
	assert.Equal(t, byte('.'), g.At(Coordinate{-1, 0}))
	s, ok := g.Find('S')
	require.True(t, ok)
	assert.Equal(t, Coordinate{0, 2}, s)
	_, ok = g.Find('X')
	assert.False(t, ok)
	assert.Equal(t, 1, g.All('#').Size())
	assert.Equal(t, "..S\n#..\n", g.String())
}
