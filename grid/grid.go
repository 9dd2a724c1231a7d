// Package grid holds the coordinate and character-grid types shared by the
// map-shaped puzzles.
package grid

import (
	"fmt"
	"sort"

	"github.com/bismuthsalamander/advent2023/input"
)

type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row, c.Col)
}

func (c Coordinate) Translate(dr int, dc int) Coordinate {
	return Coordinate{c.Row + dr, c.Col + dc}
}

func (c Coordinate) ManhattanDistance(target Coordinate) int {
	return input.Abs(target.Row-c.Row) + input.Abs(target.Col-c.Col)
}

var (
	North = Coordinate{-1, 0}
	East  = Coordinate{0, 1}
	South = Coordinate{1, 0}
	West  = Coordinate{0, -1}

	// Directions are the unit steps in north, east, south, west order.
	Directions = [4]Coordinate{North, East, South, West}
)

func (c Coordinate) Step(d Coordinate) Coordinate {
	return c.Translate(d.Row, d.Col)
}

// Neighbors4 returns the orthogonal neighbours, indexed like Directions.
func (c Coordinate) Neighbors4() [4]Coordinate {
	var out [4]Coordinate
	for i, d := range Directions {
		out[i] = c.Step(d)
	}
	return out
}

func (c Coordinate) Neighbors8() []Coordinate {
	out := make([]Coordinate, 0, 8)
	for dr := -1; dr < 2; dr++ {
		for dc := -1; dc < 2; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out = append(out, c.Translate(dr, dc))
		}
	}
	return out
}

// CoordinateSet is an unordered set of cells.
type CoordinateSet map[Coordinate]struct{}

func NewCoordinateSet(members ...Coordinate) CoordinateSet {
	cs := make(CoordinateSet, len(members))
	cs.Add(members...)
	return cs
}

func (s CoordinateSet) Size() int {
	return len(s)
}

func (s CoordinateSet) IsEmpty() bool {
	return len(s) == 0
}

func (s CoordinateSet) Add(members ...Coordinate) {
	for _, c := range members {
		s[c] = struct{}{}
	}
}

func (s CoordinateSet) Del(members ...Coordinate) {
	for _, c := range members {
		delete(s, c)
	}
}

func (s CoordinateSet) Contains(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Intersects reports whether the sets share a member.
func (s CoordinateSet) Intersects(other CoordinateSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for c := range small {
		if large.Contains(c) {
			return true
		}
	}
	return false
}

// ToSlice returns the members in row-major order.
func (s CoordinateSet) ToSlice() []Coordinate {
	out := make([]Coordinate, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Sort(CoordinateSlice(out))
	return out
}

func (s CoordinateSet) String() string {
	return fmt.Sprintf("%v", s.ToSlice())
}

type CoordinateSlice []Coordinate

func (c CoordinateSlice) Len() int      { return len(c) }
func (c CoordinateSlice) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c CoordinateSlice) Less(i, j int) bool {
	return c[i].Row < c[j].Row || (c[i].Row == c[j].Row && c[i].Col < c[j].Col)
}

// Grid is a rectangular block of puzzle characters indexed [row][col].
type Grid struct {
	Cells  [][]byte
	Width  int
	Height int
}

// FromLines builds a Grid from non-empty lines. Short rows are padded with '.'.
func FromLines(lines []string) *Grid {
	g := Grid{Cells: make([][]byte, 0, len(lines))}
	for _, l := range lines {
		if len(l) == 0 {
			continue
		}
		if len(l) > g.Width {
			g.Width = len(l)
		}
		g.Cells = append(g.Cells, []byte(l))
	}
	for ri, row := range g.Cells {
		for len(row) < g.Width {
			row = append(row, '.')
		}
		g.Cells[ri] = row
	}
	g.Height = len(g.Cells)
	return &g
}

func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// At returns the character at c, or '.' outside the grid.
func (g *Grid) At(c Coordinate) byte {
	if !g.InBounds(c) {
		return '.'
	}
	return g.Cells[c.Row][c.Col]
}

// Find returns the first cell holding b in row-major order.
func (g *Grid) Find(b byte) (Coordinate, bool) {
	for ri, row := range g.Cells {
		for ci, cell := range row {
			if cell == b {
				return Coordinate{ri, ci}, true
			}
		}
	}
	return Coordinate{}, false
}

// All returns every cell holding b.
func (g *Grid) All(b byte) CoordinateSet {
	cs := NewCoordinateSet()
	for ri, row := range g.Cells {
		for ci, cell := range row {
			if cell == b {
				cs.Add(Coordinate{ri, ci})
			}
		}
	}
	return cs
}

func (g *Grid) String() string {
	out := ""
	for _, row := range g.Cells {
		out += string(row) + "\n"
	}
	return out
}
