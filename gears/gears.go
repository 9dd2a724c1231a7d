// Package gears reads the engine schematic: part numbers touching symbols
// and gears touching exactly two part numbers.
package gears

import (
	"github.com/bismuthsalamander/advent2023/grid"
)

// Number is a run of digits on one schematic row.
type Number struct {
	At     grid.Coordinate
	Digits int
	Value  int
}

// Neighbors returns the ring of cells around the number.
func (n Number) Neighbors() grid.CoordinateSet {
	ring := grid.NewCoordinateSet()
	for i := 0; i < n.Digits; i++ {
		ring.Add(n.At.Translate(0, i).Neighbors8()...)
	}
	for i := 0; i < n.Digits; i++ {
		ring.Del(n.At.Translate(0, i))
	}
	return ring
}

type Symbol struct {
	At   grid.Coordinate
	Char byte
}

type Schematic struct {
	Numbers []Number
	Symbols []Symbol
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func Parse(lines []string) *Schematic {
	s := Schematic{make([]Number, 0), make([]Symbol, 0)}
	for ri, row := range lines {
		for ci := 0; ci < len(row); ci++ {
			ch := row[ci]
			if isDigit(ch) {
				n := Number{At: grid.Coordinate{Row: ri, Col: ci}}
				for ci < len(row) && isDigit(row[ci]) {
					n.Value = n.Value*10 + int(row[ci]-'0')
					n.Digits++
					ci++
				}
				ci--
				s.Numbers = append(s.Numbers, n)
				continue
			}
			if ch != '.' && ch != ' ' {
				s.Symbols = append(s.Symbols, Symbol{grid.Coordinate{Row: ri, Col: ci}, ch})
			}
		}
	}
	return &s
}

// PartNumbers are the numbers adjacent to any symbol.
func (s *Schematic) PartNumbers() []Number {
	spots := grid.NewCoordinateSet()
	for _, sym := range s.Symbols {
		spots.Add(sym.At)
	}
	out := make([]Number, 0)
	for _, n := range s.Numbers {
		if n.Neighbors().Intersects(spots) {
			out = append(out, n)
		}
	}
	return out
}

// Gears returns the pair of numbers for every '*' touching exactly two.
func (s *Schematic) Gears() [][2]int {
	out := make([][2]int, 0)
	for _, sym := range s.Symbols {
		if sym.Char != '*' {
			continue
		}
		adjacent := make([]int, 0, 2)
		for _, n := range s.Numbers {
			if n.At.Row < sym.At.Row-1 || n.At.Row > sym.At.Row+1 {
				continue
			}
			if n.Neighbors().Contains(sym.At) {
				adjacent = append(adjacent, n.Value)
			}
		}
		if len(adjacent) == 2 {
			out = append(out, [2]int{adjacent[0], adjacent[1]})
		}
	}
	return out
}

func Part1(lines []string) (int64, error) {
	var total int64
	for _, n := range Parse(lines).PartNumbers() {
		total += int64(n.Value)
	}
	return total, nil
}

func Part2(lines []string) (int64, error) {
	var total int64
	for _, g := range Parse(lines).Gears() {
		total += int64(g[0] * g[1])
	}
	return total, nil
}

const Sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`
