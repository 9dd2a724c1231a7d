package pipemaze

import (
	"testing"

	"github.com/bismuthsalamander/advent2023/grid"
	"github.com/bismuthsalamander/advent2023/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `.....
.S-7.
.|.|.
.L-J.
.....
`

func TestParse(t *testing.T) {
	m, err := Parse(input.Lines(Sample))
	require.NoError(t, err)
	assert.Equal(t, grid.Coordinate{Row: 2, Col: 0}, m.Start)
	assert.Equal(t, byte('F'), m.StartPipe)

	m, err = Parse(input.Lines(square))
	require.NoError(t, err)
	assert.Equal(t, byte('F'), m.StartPipe)
}

func TestLoop(t *testing.T) {
	m, err := Parse(input.Lines(Sample))
	require.NoError(t, err)
	loop, err := m.Loop()
	require.NoError(t, err)
	assert.Equal(t, 16, loop.Size())
	assert.False(t, loop.Contains(grid.Coordinate{Row: 2, Col: 2}))
	assert.Equal(t, 1, m.Enclosed(loop))
}

func TestParts(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		p1, p2 int64
	}{
		{"square", square, 4, 1},
		{"winding", Sample, 8, 1},
		{"squeeze", Sample2, 23, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := input.Lines(tt.text)
			p1, err := Part1(lines)
			require.NoError(t, err)
			assert.Equal(t, tt.p1, p1)
			p2, err := Part2(lines)
			require.NoError(t, err)
			assert.Equal(t, tt.p2, p2)
		})
	}
}

func TestErrors(t *testing.T) {
	_, err := Parse(input.Lines("...\n.F.\n"))
	assert.ErrorIs(t, err, input.ErrSyntax)

	_, err = Parse(input.Lines("...\n.S-\n...\n"))
	assert.ErrorIs(t, err, ErrBrokenLoop)

	m, err := Parse(input.Lines(".....\n.S-7.\n.|.|.\n.L-..\n.....\n"))
	require.NoError(t, err)
	_, err = m.Loop()
	assert.ErrorIs(t, err, ErrBrokenLoop)
}
