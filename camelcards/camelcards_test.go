package camelcards

import (
	"sort"
	"testing"

	"github.com/bismuthsalamander/advent2023/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   HandType
	}{
		{"AAAAA", false, FiveOfAKind},
		{"AA8AA", false, FourOfAKind},
		{"23332", false, FullHouse},
		{"TTT98", false, ThreeOfAKind},
		{"23432", false, TwoPair},
		{"A23A4", false, OnePair},
		{"23456", false, HighCard},
		{"KTJJT", false, TwoPair},
		{"KTJJT", true, FourOfAKind},
		{"JJJJJ", true, FiveOfAKind},
		{"2345J", true, OnePair},
		{"QJJQ2", true, FourOfAKind},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Hand{Cards: tt.cards}.Type(tt.jokers), "%s jokers=%v", tt.cards, tt.jokers)
	}
	assert.Equal(t, "full house", FullHouse.String())
}

func TestLess(t *testing.T) {
	pairs := [][2]string{
		{"2AAAA", "33332"},
		{"77788", "77888"},
		{"32T3K", "KK677"},
		{"KTJJT", "KK677"},
		{"T55J5", "QQQJA"},
	}
	for _, p := range pairs {
		a, b := Hand{Cards: p[0]}, Hand{Cards: p[1]}
		assert.True(t, Less(a, b, false), "%s < %s", p[0], p[1])
		assert.False(t, Less(b, a, false), "%s > %s", p[1], p[0])
	}
	assert.True(t, Less(Hand{Cards: "JKKK2"}, Hand{Cards: "QQQQ2"}, true))
}

func TestSortOrder(t *testing.T) {
	hands, err := Parse(input.Lines(Sample))
	require.NoError(t, err)
	sort.SliceStable(hands, func(i, j int) bool { return Less(hands[i], hands[j], false) })
	got := make([]string, 0)
	for _, h := range hands {
		got = append(got, h.Cards)
	}
	assert.Equal(t, []string{"32T3K", "KTJJT", "KK677", "T55J5", "QQQJA"}, got)
}

func TestParts(t *testing.T) {
	lines := input.Lines(Sample)
	p1, err := Part1(lines)
	require.NoError(t, err)
	assert.Equal(t, int64(6440), p1)
	p2, err := Part2(lines)
	require.NoError(t, err)
	assert.Equal(t, int64(5905), p2)
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{"32T3K", "32T3 765", "32T3X 765", "32T3K bid"} {
		_, err := Parse([]string{bad})
		assert.ErrorIs(t, err, input.ErrSyntax, bad)
	}
}
