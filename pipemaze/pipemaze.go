// Package pipemaze follows the animal's pipe loop and counts the tiles it
// encloses.
package pipemaze

import (
	"errors"
	"fmt"

	"github.com/bismuthsalamander/advent2023/grid"
	"github.com/bismuthsalamander/advent2023/input"
)

var ErrBrokenLoop = errors.New("pipe loop is broken")

// connections lists the two directions each pipe opens towards.
var connections = map[byte][2]grid.Coordinate{
	'|': {grid.North, grid.South},
	'-': {grid.East, grid.West},
	'L': {grid.North, grid.East},
	'J': {grid.North, grid.West},
	'7': {grid.South, grid.West},
	'F': {grid.South, grid.East},
}

func reverse(d grid.Coordinate) grid.Coordinate {
	return grid.Coordinate{Row: -d.Row, Col: -d.Col}
}

func opensTo(pipe byte, d grid.Coordinate) bool {
	dirs, ok := connections[pipe]
	return ok && (dirs[0] == d || dirs[1] == d)
}

type Maze struct {
	Grid  *grid.Grid
	Start grid.Coordinate
	// StartPipe is the pipe hidden under S, inferred from its neighbours.
	StartPipe byte
}

func Parse(lines []string) (*Maze, error) {
	g := grid.FromLines(lines)
	start, ok := g.Find('S')
	if !ok {
		return nil, input.Errorf(0, "", "no start tile")
	}
	m := Maze{Grid: g, Start: start}
	open := make([]grid.Coordinate, 0, 2)
	for i, next := range start.Neighbors4() {
		d := grid.Directions[i]
		if opensTo(g.At(next), reverse(d)) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return nil, fmt.Errorf("start %v joins %d pipes: %w", start, len(open), ErrBrokenLoop)
	}
	for pipe, dirs := range connections {
		if (dirs[0] == open[0] && dirs[1] == open[1]) || (dirs[0] == open[1] && dirs[1] == open[0]) {
			m.StartPipe = pipe
		}
	}
	return &m, nil
}

// Pipe returns the pipe at c, seeing through the start tile.
func (m *Maze) Pipe(c grid.Coordinate) byte {
	if c == m.Start {
		return m.StartPipe
	}
	return m.Grid.At(c)
}

// Loop walks the pipe loop from the start and returns every tile on it.
func (m *Maze) Loop() (grid.CoordinateSet, error) {
	loop := grid.NewCoordinateSet(m.Start)
	dir := connections[m.StartPipe][0]
	at := m.Start.Step(dir)
	for at != m.Start {
		pipe := m.Pipe(at)
		if !opensTo(pipe, reverse(dir)) {
			return nil, fmt.Errorf("%c at %v: %w", pipe, at, ErrBrokenLoop)
		}
		loop.Add(at)
		dirs := connections[pipe]
		if dirs[0] == reverse(dir) {
			dir = dirs[1]
		} else {
			dir = dirs[0]
		}
		at = at.Step(dir)
	}
	return loop, nil
}

// Enclosed counts tiles inside the loop. Scanning each row left to right,
// every loop pipe that opens north crosses the boundary once.
func (m *Maze) Enclosed(loop grid.CoordinateSet) int {
	ct := 0
	for r := 0; r < m.Grid.Height; r++ {
		inside := false
		for c := 0; c < m.Grid.Width; c++ {
			at := grid.Coordinate{Row: r, Col: c}
			if loop.Contains(at) {
				if opensTo(m.Pipe(at), grid.North) {
					inside = !inside
				}
				continue
			}
			if inside {
				ct++
			}
		}
	}
	return ct
}

func Part1(lines []string) (int64, error) {
	m, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return int64(loop.Size() / 2), nil
}

func Part2(lines []string) (int64, error) {
	m, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return int64(m.Enclosed(loop)), nil
}

const Sample = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

const Sample2 = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`
