// Package mirage extrapolates OASIS sensor histories with difference tables.
package mirage

import (
	"slices"

	"github.com/bismuthsalamander/advent2023/input"
)

func differences(nums []int) []int {
	out := make([]int, 0, len(nums))
	for i := 1; i < len(nums); i++ {
		out = append(out, nums[i]-nums[i-1])
	}
	return out
}

func allZero(nums []int) bool {
	for _, n := range nums {
		if n != 0 {
			return false
		}
	}
	return true
}

// Next extends the sequence by one value. An empty sequence extends to 0.
func Next(nums []int) int {
	if allZero(nums) {
		return 0
	}
	return nums[len(nums)-1] + Next(differences(nums))
}

// Previous extrapolates one value before the start of the sequence.
func Previous(nums []int) int {
	rev := slices.Clone(nums)
	slices.Reverse(rev)
	return Next(rev)
}

func Parse(lines []string) ([][]int, error) {
	out := make([][]int, 0, len(lines))
	for idx, line := range lines {
		if line == "" {
			continue
		}
		nums, err := input.Ints(line)
		if err != nil {
			return nil, input.Wrap(idx+1, line, err)
		}
		out = append(out, nums)
	}
	return out, nil
}

func extrapolate(lines []string, f func([]int) int) (int64, error) {
	seqs, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, s := range seqs {
		total += int64(f(s))
	}
	return total, nil
}

func Part1(lines []string) (int64, error) {
	return extrapolate(lines, Next)
}

func Part2(lines []string) (int64, error) {
	return extrapolate(lines, Previous)
}

const Sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`
