// Package scratchcards scores scratchcards and plays out the card-copying
// rules.
package scratchcards

import (
	"strconv"
	"strings"

	"github.com/bismuthsalamander/advent2023/input"
)

type Card struct {
	ID      int
	Winning map[int]bool
	Have    map[int]bool
}

func (c Card) Matches() int {
	ct := 0
	for n := range c.Have {
		if c.Winning[n] {
			ct++
		}
	}
	return ct
}

func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func numberSet(s string) (map[int]bool, error) {
	nums, err := input.Ints(s)
	if err != nil {
		return nil, err
	}
	out := make(map[int]bool, len(nums))
	for _, n := range nums {
		out[n] = true
	}
	return out, nil
}

func ParseCard(line string) (Card, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, input.Errorf(0, line, "missing ':'")
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, input.Errorf(0, line, "bad card header %q", head)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Card{}, input.Errorf(0, line, "bad card id %q", fields[1])
	}
	winning, have, ok := strings.Cut(rest, "|")
	if !ok {
		return Card{}, input.Errorf(0, line, "missing '|'")
	}
	c := Card{ID: id}
	if c.Winning, err = numberSet(winning); err != nil {
		return Card{}, input.Wrap(0, line, err)
	}
	if c.Have, err = numberSet(have); err != nil {
		return Card{}, input.Wrap(0, line, err)
	}
	return c, nil
}

func Parse(lines []string) ([]Card, error) {
	out := make([]Card, 0, len(lines))
	for idx, line := range lines {
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, input.AtLine(err, idx+1, line)
		}
		out = append(out, c)
	}
	return out, nil
}

// Copies returns how many of each card (in input order) end up held once
// every card's matches have won copies of the cards after it.
func Copies(cards []Card) []int {
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			counts[j] += counts[i]
		}
	}
	return counts
}

func Part1(lines []string) (int64, error) {
	cards, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range cards {
		total += int64(c.Points())
	}
	return total, nil
}

func Part2(lines []string) (int64, error) {
	cards, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return int64(input.Sum(Copies(cards))), nil
}

const Sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`
