// Package races counts the button-hold times that beat each boat race record.
package races

import (
	"sort"
	"strings"

	"github.com/bismuthsalamander/advent2023/input"
)

type Race struct {
	Time   int
	Record int
}

func Distance(raceTime int, hold int) int {
	return (raceTime - hold) * hold
}

// WaysToWin counts holds in [0, Time] whose distance beats Record. Distance is
// symmetric about Time/2 and increasing below it, so the first winning hold
// fixes the whole winning window.
func (r Race) WaysToWin() int {
	half := r.Time / 2
	lo := sort.Search(half+1, func(h int) bool {
		return Distance(r.Time, h) > r.Record
	})
	if lo > half {
		return 0
	}
	return r.Time - 2*lo + 1
}

func field(line string, name string, n int) (string, error) {
	rest, ok := strings.CutPrefix(line, name+":")
	if !ok {
		return "", input.Errorf(n, line, "expected %q line", name)
	}
	return rest, nil
}

func parse(lines []string, kerning bool) ([]Race, error) {
	if len(lines) < 2 {
		return nil, input.Errorf(0, "", "need Time and Distance lines")
	}
	rows := make([][]int, 2)
	for i, name := range []string{"Time", "Distance"} {
		rest, err := field(lines[i], name, i+1)
		if err != nil {
			return nil, err
		}
		if kerning {
			rest = strings.ReplaceAll(rest, " ", "")
		}
		nums, err := input.Ints(rest)
		if err != nil {
			return nil, input.Wrap(i+1, lines[i], err)
		}
		rows[i] = nums
	}
	if len(rows[0]) != len(rows[1]) {
		return nil, input.Errorf(2, lines[1], "%d times but %d distances", len(rows[0]), len(rows[1]))
	}
	out := make([]Race, len(rows[0]))
	for i := range out {
		out[i] = Race{rows[0][i], rows[1][i]}
	}
	return out, nil
}

// Parse reads each column as its own race.
func Parse(lines []string) ([]Race, error) {
	return parse(lines, false)
}

// ParseKerned reads each line as a single number, ignoring the spaces.
func ParseKerned(lines []string) (Race, error) {
	races, err := parse(lines, true)
	if err != nil {
		return Race{}, err
	}
	if len(races) != 1 {
		return Race{}, input.Errorf(1, lines[0], "expected one race")
	}
	return races[0], nil
}

func Part1(lines []string) (int64, error) {
	races, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	ways := make([]int64, 0, len(races))
	for _, r := range races {
		ways = append(ways, int64(r.WaysToWin()))
	}
	return input.Product(ways), nil
}

func Part2(lines []string) (int64, error) {
	r, err := ParseKerned(lines)
	if err != nil {
		return 0, err
	}
	return int64(r.WaysToWin()), nil
}

const Sample = `Time:      7  15   30
Distance:  9  40  200
`
