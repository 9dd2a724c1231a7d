// Package almanac maps seed numbers through the almanac's chain of
// piecewise-linear range maps, either one value at a time or as whole
// half-open intervals.
package almanac

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bismuthsalamander/advent2023/input"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start int
	End   int
}

func (iv Interval) Len() int {
	return iv.End - iv.Start
}

func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}

// RangeRule sends [Source, Source+Length) to [Dest, Dest+Length).
type RangeRule struct {
	Dest   int
	Source int
	Length int
}

func (r RangeRule) SourceEnd() int {
	return r.Source + r.Length
}

func (r RangeRule) Contains(n int) bool {
	return n >= r.Source && n < r.SourceEnd()
}

func (r RangeRule) Apply(n int) int {
	return n - r.Source + r.Dest
}

// RangeMap is one almanac stage. Rules keep file order; values no rule
// covers map to themselves.
type RangeMap struct {
	Name  string
	Rules []RangeRule
}

// Map returns the image of n under the first rule containing it.
func (m RangeMap) Map(n int) int {
	for _, r := range m.Rules {
		if r.Contains(n) {
			return r.Apply(n)
		}
	}
	return n
}

// MapIntervals pushes a set of intervals through the map. Each rule splits
// every still-unmapped interval into the part left of the rule, the overlap
// and the part right of it; the overlap is translated and final, the sides
// go on to the next rule. Whatever no rule touched passes through as is.
func (m RangeMap) MapIntervals(intervals []Interval) []Interval {
	result := make([]Interval, 0, len(intervals))
	pending := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.Empty() {
			pending = append(pending, iv)
		}
	}
	for _, r := range m.Rules {
		sstart, send := r.Source, r.SourceEnd()
		next := make([]Interval, 0, len(pending))
		for _, iv := range pending {
			if left := (Interval{iv.Start, min(iv.End, sstart)}); !left.Empty() {
				next = append(next, left)
			}
			if overlap := (Interval{max(iv.Start, sstart), min(iv.End, send)}); !overlap.Empty() {
				result = append(result, Interval{r.Apply(overlap.Start), r.Apply(overlap.End)})
			}
			if right := (Interval{max(iv.Start, send), iv.End}); !right.Empty() {
				next = append(next, right)
			}
		}
		pending = next
	}
	result = append(result, pending...)
	sortIntervals(result)
	return result
}

func sortIntervals(ivs []Interval) {
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Start == ivs[j].Start {
			return ivs[i].End < ivs[j].End
		}
		return ivs[i].Start < ivs[j].Start
	})
}

// Pipeline is the ordered chain of maps from seed to location.
type Pipeline []RangeMap

func (p Pipeline) MapThrough(n int) int {
	for _, m := range p {
		n = m.Map(n)
	}
	return n
}

func (p Pipeline) MapIntervals(intervals []Interval) []Interval {
	for _, m := range p {
		intervals = m.MapIntervals(intervals)
	}
	return intervals
}

// TotalLen sums the lengths of the intervals.
func TotalLen(intervals []Interval) int {
	total := 0
	for _, iv := range intervals {
		total += iv.Len()
	}
	return total
}

// MinStart returns the smallest Start in intervals.
func MinStart(intervals []Interval) (int, bool) {
	if len(intervals) == 0 {
		return 0, false
	}
	lowest := intervals[0].Start
	for _, iv := range intervals[1:] {
		if iv.Start < lowest {
			lowest = iv.Start
		}
	}
	return lowest, true
}

type Almanac struct {
	Seeds    []int
	Pipeline Pipeline
}

// SeedIntervals reads the seed list as (start, length) pairs.
func (a *Almanac) SeedIntervals() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, input.Errorf(1, "", "seed ranges need start/length pairs, got %d numbers", len(a.Seeds))
	}
	out := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	return out, nil
}

// Parse reads the "seeds:" header followed by "... map:" blocks of
// "dest source length" lines.
func Parse(lines []string) (*Almanac, error) {
	a := Almanac{Pipeline: make(Pipeline, 0)}
	header := false
	for idx, line := range lines {
		n := idx + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !header {
			rest, ok := strings.CutPrefix(line, "seeds:")
			if !ok {
				return nil, input.Errorf(n, line, "expected seeds header")
			}
			seeds, err := input.Ints(rest)
			if err != nil {
				return nil, input.Wrap(n, line, err)
			}
			a.Seeds = seeds
			header = true
			continue
		}
		if strings.HasSuffix(line, "map:") {
			if err := checkLastMap(a.Pipeline); err != nil {
				return nil, input.Wrap(n, line, err)
			}
			name := strings.TrimSpace(strings.TrimSuffix(line, "map:"))
			a.Pipeline = append(a.Pipeline, RangeMap{name, make([]RangeRule, 0)})
			continue
		}
		if len(a.Pipeline) == 0 {
			return nil, input.Errorf(n, line, "range before any map header")
		}
		nums, err := input.Ints(line)
		if err != nil {
			return nil, input.Wrap(n, line, err)
		}
		if len(nums) != 3 {
			return nil, input.Errorf(n, line, "expected 3 numbers, got %d", len(nums))
		}
		if nums[2] < 0 {
			return nil, input.Errorf(n, line, "negative range length")
		}
		cur := &a.Pipeline[len(a.Pipeline)-1]
		cur.Rules = append(cur.Rules, RangeRule{nums[0], nums[1], nums[2]})
	}
	if !header {
		return nil, input.Errorf(0, "", "missing seeds header")
	}
	if err := checkLastMap(a.Pipeline); err != nil {
		return nil, input.Wrap(len(lines), "", err)
	}
	return &a, nil
}

func checkLastMap(p Pipeline) error {
	if len(p) == 0 {
		return nil
	}
	if last := p[len(p)-1]; len(last.Rules) == 0 {
		return fmt.Errorf("%w: map %q has no ranges", input.ErrSyntax, last.Name)
	}
	return nil
}

func Part1(lines []string) (int64, error) {
	a, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, input.Errorf(1, "", "no seeds")
	}
	lowest := a.Pipeline.MapThrough(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		lowest = min(lowest, a.Pipeline.MapThrough(seed))
	}
	return int64(lowest), nil
}

func Part2(lines []string) (int64, error) {
	a, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	seeds, err := a.SeedIntervals()
	if err != nil {
		return 0, err
	}
	lowest, ok := MinStart(a.Pipeline.MapIntervals(seeds))
	if !ok {
		return 0, input.Errorf(1, "", "no seed ranges")
	}
	return int64(lowest), nil
}

const Sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`
