// Package cosmic sums the shortest paths between every pair of galaxies in
// an image whose empty rows and columns have expanded.
package cosmic

import (
	"sort"

	"github.com/bismuthsalamander/advent2023/grid"
	"github.com/bismuthsalamander/advent2023/input"
)

// DefaultExpansion is how many rows or columns each empty one becomes in
// part 2.
const DefaultExpansion = 1000000

type Image struct {
	Galaxies []grid.Coordinate
	Width    int
	Height   int
}

func Parse(lines []string) (*Image, error) {
	g := grid.FromLines(lines)
	galaxies := g.All('#')
	if galaxies.IsEmpty() {
		return nil, input.Errorf(0, "", "no galaxies")
	}
	return &Image{galaxies.ToSlice(), g.Width, g.Height}, nil
}

// Gaps returns the empty row and column indexes, sorted.
func (im *Image) Gaps() ([]int, []int) {
	rowUsed := make([]bool, im.Height)
	colUsed := make([]bool, im.Width)
	for _, gx := range im.Galaxies {
		rowUsed[gx.Row] = true
		colUsed[gx.Col] = true
	}
	unused := func(used []bool) []int {
		out := make([]int, 0)
		for i, u := range used {
			if !u {
				out = append(out, i)
			}
		}
		return out
	}
	return unused(rowUsed), unused(colUsed)
}

// gapsBetween counts sorted gaps strictly between a and b.
func gapsBetween(gaps []int, a int, b int) int {
	if a > b {
		a, b = b, a
	}
	return sort.SearchInts(gaps, b) - sort.SearchInts(gaps, a+1)
}

// SumDistances totals the Manhattan distance over all galaxy pairs once every
// empty row and column has grown to factor copies.
func (im *Image) SumDistances(factor int) int64 {
	rows, cols := im.Gaps()
	var total int64
	for i, g1 := range im.Galaxies {
		for _, g2 := range im.Galaxies[i+1:] {
			extra := gapsBetween(rows, g1.Row, g2.Row) + gapsBetween(cols, g1.Col, g2.Col)
			total += int64(g1.ManhattanDistance(g2)) + int64(extra)*int64(factor-1)
		}
	}
	return total
}

func Part1(lines []string) (int64, error) {
	return PartWithExpansion(2)(lines)
}

func Part2(lines []string) (int64, error) {
	return PartWithExpansion(DefaultExpansion)(lines)
}

// PartWithExpansion builds a solver using the given expansion factor.
func PartWithExpansion(factor int) func([]string) (int64, error) {
	return func(lines []string) (int64, error) {
		im, err := Parse(lines)
		if err != nil {
			return 0, err
		}
		return im.SumDistances(factor), nil
	}
}

const Sample = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`
