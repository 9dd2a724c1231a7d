// Package camelcards ranks Camel Cards hands and totals their winnings.
package camelcards

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bismuthsalamander/advent2023/input"
)

type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var typeNames = []string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (t HandType) String() string {
	return typeNames[t]
}

const (
	order       = "23456789TJQKA"
	jokerOrder  = "J23456789TQKA"
	jokerSymbol = 'J'
)

type Hand struct {
	Cards string
	Bid   int
}

func classify(counts []int) HandType {
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	for len(counts) < 2 {
		counts = append(counts, 0)
	}
	switch {
	case counts[0] == 5:
		return FiveOfAKind
	case counts[0] == 4:
		return FourOfAKind
	case counts[0] == 3 && counts[1] == 2:
		return FullHouse
	case counts[0] == 3:
		return ThreeOfAKind
	case counts[0] == 2 && counts[1] == 2:
		return TwoPair
	case counts[0] == 2:
		return OnePair
	}
	return HighCard
}

// Type ranks the hand. With jokers, every J joins the largest group.
func (h Hand) Type(jokers bool) HandType {
	byCard := make(map[rune]int)
	wild := 0
	for _, c := range h.Cards {
		if jokers && c == jokerSymbol {
			wild++
			continue
		}
		byCard[c]++
	}
	counts := make([]int, 0, len(byCard))
	for _, ct := range byCard {
		counts = append(counts, ct)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	if len(counts) == 0 {
		counts = append(counts, 0)
	}
	counts[0] += wild
	return classify(counts)
}

// Less orders hands by type, then card by card.
func Less(a Hand, b Hand, jokers bool) bool {
	ta, tb := a.Type(jokers), b.Type(jokers)
	if ta != tb {
		return ta < tb
	}
	strength := order
	if jokers {
		strength = jokerOrder
	}
	for i := 0; i < len(a.Cards) && i < len(b.Cards); i++ {
		sa := strings.IndexByte(strength, a.Cards[i])
		sb := strings.IndexByte(strength, b.Cards[i])
		if sa != sb {
			return sa < sb
		}
	}
	return false
}

func Parse(lines []string) ([]Hand, error) {
	out := make([]Hand, 0, len(lines))
	for idx, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, input.Errorf(idx+1, line, "expected cards and bid")
		}
		if len(fields[0]) != 5 || strings.Trim(fields[0], order) != "" {
			return nil, input.Errorf(idx+1, line, "bad hand %q", fields[0])
		}
		bid, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, input.Errorf(idx+1, line, "bad bid %q", fields[1])
		}
		out = append(out, Hand{fields[0], bid})
	}
	return out, nil
}

// Winnings sorts hands weakest first and sums rank times bid.
func Winnings(hands []Hand, jokers bool) int64 {
	sorted := make([]Hand, len(hands))
	copy(sorted, hands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j], jokers)
	})
	var total int64
	for rank, h := range sorted {
		total += int64(rank+1) * int64(h.Bid)
	}
	return total
}

func Part1(lines []string) (int64, error) {
	hands, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, false), nil
}

func Part2(lines []string) (int64, error) {
	hands, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, true), nil
}

const Sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`
