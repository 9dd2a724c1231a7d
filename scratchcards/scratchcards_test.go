package scratchcards

import (
	"testing"

	"github.com/bismuthsalamander/advent2023/input"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	c, err := ParseCard("Card 17: 45 32 20 | 45 34 23 1")
	require.NoError(t, err)
	want := Card{
		ID:      17,
		Winning: map[int]bool{20: true, 32: true, 45: true},
		Have:    map[int]bool{1: true, 23: true, 34: true, 45: true},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("ParseCard mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, c.Matches())
	assert.Equal(t, 1, c.Points())
}

func TestCopies(t *testing.T) {
	cards, err := Parse(input.Lines(Sample))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 14, 1}, Copies(cards))
}

func TestParts(t *testing.T) {
	lines := input.Lines(Sample)
	p1, err := Part1(lines)
	require.NoError(t, err)
	assert.Equal(t, int64(13), p1)
	p2, err := Part2(lines)
	require.NoError(t, err)
	assert.Equal(t, int64(30), p2)
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{"Card 1 1 2 | 3", "Card x: 1 | 2", "Card 1: 1 2 3", "Card 1: 1 q | 2", "Deck 1: 1 | 2"} {
		_, err := Parse([]string{"Card 1: 1 2 | 3", "", bad})
		assert.ErrorIs(t, err, input.ErrSyntax, bad)
		var perr *input.ParseError
		require.ErrorAs(t, err, &perr, bad)
		assert.Equal(t, 3, perr.Line, bad)
	}
}
