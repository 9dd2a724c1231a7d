// Package trebuchet recovers calibration values from the first and last
// digit on each line.
package trebuchet

import (
	"strings"

	"github.com/bismuthsalamander/advent2023/input"
)

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any. Spelled-out digits
// only count when words is set.
func digitAt(s string, i int, words bool) (int, bool) {
	if s[i] >= '0' && s[i] <= '9' {
		return int(s[i] - '0'), true
	}
	if !words {
		return 0, false
	}
	for d, w := range spelled {
		if strings.HasPrefix(s[i:], w) {
			return d + 1, true
		}
	}
	return 0, false
}

// Calibration joins the first and last digit of line into a two-digit number.
func Calibration(line string, words bool) (int, bool) {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, false
	}
	return first*10 + last, true
}

func sum(lines []string, words bool) (int64, error) {
	var total int64
	for idx, line := range lines {
		if line == "" {
			continue
		}
		v, ok := Calibration(line, words)
		if !ok {
			return 0, input.Errorf(idx+1, line, "no digits")
		}
		total += int64(v)
	}
	return total, nil
}

func Part1(lines []string) (int64, error) {
	return sum(lines, false)
}

func Part2(lines []string) (int64, error) {
	return sum(lines, true)
}

const Sample = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const Sample2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`
