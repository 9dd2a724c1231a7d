package cubes

import (
	"testing"

	"github.com/bismuthsalamander/advent2023/input"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGame(t *testing.T) {
	g, err := ParseGame("Game 11: 3 blue, 4 red; 2 green")
	require.NoError(t, err)
	want := Game{11, []Cubes{{Red: 4, Blue: 3}, {Green: 2}}}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("ParseGame mismatch (-want +got):\n%s", diff)
	}
}

func TestFewest(t *testing.T) {
	games, err := Parse(input.Lines(Sample))
	require.NoError(t, err)
	got := make([]Cubes, 0)
	for _, g := range games {
		got = append(got, g.Fewest())
	}
	want := []Cubes{
		{Red: 4, Green: 2, Blue: 6},
		{Red: 1, Green: 3, Blue: 4},
		{Red: 20, Green: 13, Blue: 6},
		{Red: 14, Green: 3, Blue: 15},
		{Red: 6, Green: 3, Blue: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fewest mismatch (-want +got):\n%s", diff)
	}
}

func TestParts(t *testing.T) {
	lines := input.Lines(Sample)
	p1, err := Part1(lines)
	require.NoError(t, err)
	assert.Equal(t, int64(8), p1)
	p2, err := Part2(lines)
	require.NoError(t, err)
	assert.Equal(t, int64(2286), p2)
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{"Game 1 3 blue", "Round 1: 3 blue", "Game 1: 3 purple", "Game 1: three blue", "Game 1: 3"} {
		_, err := Parse([]string{"Game 1: 3 blue", "", bad})
		assert.ErrorIs(t, err, input.ErrSyntax, bad)
		var perr *input.ParseError
		require.ErrorAs(t, err, &perr, bad)
		assert.Equal(t, 3, perr.Line, bad)
	}
}
