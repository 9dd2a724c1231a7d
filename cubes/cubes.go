// Package cubes scores the cube-drawing games.
package cubes

import (
	"strconv"
	"strings"

	"github.com/bismuthsalamander/advent2023/input"
)

type Cubes struct {
	Red   int
	Green int
	Blue  int
}

func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// Fits reports whether c could have been drawn from bag.
func (c Cubes) Fits(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

type Game struct {
	ID       int
	Handfuls []Cubes
}

func (g Game) Possible(bag Cubes) bool {
	for _, h := range g.Handfuls {
		if !h.Fits(bag) {
			return false
		}
	}
	return true
}

// Fewest is the smallest bag every handful fits in.
func (g Game) Fewest() Cubes {
	out := Cubes{}
	for _, h := range g.Handfuls {
		out.Red = max(out.Red, h.Red)
		out.Green = max(out.Green, h.Green)
		out.Blue = max(out.Blue, h.Blue)
	}
	return out
}

var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

func ParseGame(line string) (Game, error) {
	head, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, input.Errorf(0, line, "missing ': '")
	}
	id, err := strconv.Atoi(strings.TrimPrefix(head, "Game "))
	if err != nil || !strings.HasPrefix(head, "Game ") {
		return Game{}, input.Errorf(0, line, "bad game header %q", head)
	}
	g := Game{ID: id, Handfuls: make([]Cubes, 0)}
	for _, handful := range strings.Split(rest, "; ") {
		c := Cubes{}
		for _, cube := range strings.Split(handful, ", ") {
			fields := strings.Fields(cube)
			if len(fields) != 2 {
				return Game{}, input.Errorf(0, line, "bad cube count %q", cube)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return Game{}, input.Errorf(0, line, "bad cube count %q", cube)
			}
			switch fields[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, input.Errorf(0, line, "unknown colour %q", fields[1])
			}
		}
		g.Handfuls = append(g.Handfuls, c)
	}
	return g, nil
}

func Parse(lines []string) ([]Game, error) {
	out := make([]Game, 0, len(lines))
	for idx, line := range lines {
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, input.AtLine(err, idx+1, line)
		}
		out = append(out, g)
	}
	return out, nil
}

func Part1(lines []string) (int64, error) {
	games, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		if g.Possible(Bag) {
			total += int64(g.ID)
		}
	}
	return total, nil
}

func Part2(lines []string) (int64, error) {
	games, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		total += int64(g.Fewest().Power())
	}
	return total, nil
}

const Sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`
