// Package springs counts the ways a damaged condition record can be filled
// in so that its runs of broken springs match the listed group sizes.
package springs

import (
	"strings"

	"github.com/bismuthsalamander/advent2023/input"
)

const (
	Damaged     = '#'
	Operational = '.'
	Unknown     = '?'
)

type Record struct {
	Springs string
	Sizes   []int
}

// Unfold repeats the springs n times joined by '?' and the sizes n times.
func (r Record) Unfold(n int) Record {
	springs := make([]string, n)
	sizes := make([]int, 0, n*len(r.Sizes))
	for i := 0; i < n; i++ {
		springs[i] = r.Springs
		sizes = append(sizes, r.Sizes...)
	}
	return Record{strings.Join(springs, string(Unknown)), sizes}
}

func (r Record) Count() int64 {
	return CountArrangements(r.Springs, r.Sizes)
}

// Matches reports whether a fully resolved record has exactly the given
// damaged run lengths, in order.
func Matches(resolved string, sizes []int) bool {
	runs := make([]int, 0, len(sizes))
	for _, chunk := range strings.Split(resolved, string(Operational)) {
		if chunk == "" {
			continue
		}
		if strings.Trim(chunk, string(Damaged)) != "" {
			return false
		}
		runs = append(runs, len(chunk))
	}
	if len(runs) != len(sizes) {
		return false
	}
	for i := range runs {
		if runs[i] != sizes[i] {
			return false
		}
	}
	return true
}

// PartialMatches checks the part of s before its first unknown. Runs closed
// by an operational spring must equal their size; the run touching the
// unknown may still grow, so it only has to fit.
func PartialMatches(s string, sizes []int) bool {
	prefix, _, _ := strings.Cut(s, string(Unknown))
	_, _, ok := advance(sizes, 0, 0, prefix)
	return ok
}

// advance feeds resolved springs into the run state: done is the number of
// runs already closed, cur the length of the open run.
func advance(sizes []int, done int, cur int, springs string) (int, int, bool) {
	ok := true
	for i := 0; i < len(springs) && ok; i++ {
		done, cur, ok = step(sizes, done, cur, springs[i])
	}
	return done, cur, ok
}

func step(sizes []int, done int, cur int, ch byte) (int, int, bool) {
	if ch == Damaged {
		cur++
		if done >= len(sizes) || cur > sizes[done] {
			return done, cur, false
		}
		return done, cur, true
	}
	if cur > 0 {
		if cur != sizes[done] {
			return done, cur, false
		}
		done++
	}
	return done, 0, true
}

// closes reports whether ending the record in this run state matches sizes.
func closes(sizes []int, done int, cur int) bool {
	if cur == 0 {
		return done == len(sizes)
	}
	return done == len(sizes)-1 && cur == sizes[done]
}

type state struct {
	pos     int // index of the next unknown
	done    int
	cur     int
	damaged int
	working int
}

type counter struct {
	springs string
	sizes   []int
	next    []int // next[i] is the index of the first unknown at or after i
	memo    map[state]int64
}

// CountArrangements returns how many ways the unknowns in springs can be
// resolved so that Matches(resolved, sizes) holds. The memo table lives only
// for this call.
func CountArrangements(springs string, sizes []int) int64 {
	unknown := strings.Count(springs, string(Unknown))
	damaged := input.Sum(sizes) - strings.Count(springs, string(Damaged))
	working := unknown - damaged
	if damaged < 0 || working < 0 {
		return 0
	}
	c := counter{
		springs: springs,
		sizes:   sizes,
		next:    make([]int, len(springs)+1),
		memo:    make(map[state]int64),
	}
	c.next[len(springs)] = len(springs)
	for i := len(springs) - 1; i >= 0; i-- {
		if springs[i] == Unknown {
			c.next[i] = i
		} else {
			c.next[i] = c.next[i+1]
		}
	}
	first := c.next[0]
	done, cur, ok := advance(sizes, 0, 0, springs[:first])
	if !ok {
		return 0
	}
	if first == len(springs) {
		if closes(sizes, done, cur) {
			return 1
		}
		return 0
	}
	return c.count(state{first, done, cur, damaged, working})
}

func (c *counter) count(st state) int64 {
	if v, ok := c.memo[st]; ok {
		return v
	}
	var total int64
	if st.damaged > 0 {
		total += c.resolve(st, Damaged, st.damaged-1, st.working)
	}
	if st.working > 0 {
		total += c.resolve(st, Operational, st.damaged, st.working-1)
	}
	c.memo[st] = total
	return total
}

// resolve sets the unknown at st.pos to ch, extends the known prefix up to
// the following unknown and prunes if the prefix no longer fits.
func (c *counter) resolve(st state, ch byte, damaged int, working int) int64 {
	done, cur, ok := step(c.sizes, st.done, st.cur, ch)
	if !ok {
		return 0
	}
	end := c.next[st.pos+1]
	done, cur, ok = advance(c.sizes, done, cur, c.springs[st.pos+1:end])
	if !ok {
		return 0
	}
	if end == len(c.springs) {
		if damaged == 0 && working == 0 && closes(c.sizes, done, cur) {
			return 1
		}
		return 0
	}
	return c.count(state{end, done, cur, damaged, working})
}

func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Record{}, input.Errorf(0, line, "expected springs and sizes, got %d fields", len(fields))
	}
	if strings.Trim(fields[0], "#.?") != "" {
		return Record{}, input.Errorf(0, line, "springs may only contain '#', '.' and '?'")
	}
	sizes, err := input.CommaInts(fields[1])
	if err != nil {
		return Record{}, input.Wrap(0, line, err)
	}
	for _, sz := range sizes {
		if sz <= 0 {
			return Record{}, input.Errorf(0, line, "group size %d is not positive", sz)
		}
	}
	return Record{fields[0], sizes}, nil
}

func Parse(lines []string) ([]Record, error) {
	out := make([]Record, 0, len(lines))
	for idx, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRecord(line)
		if err != nil {
			return nil, input.AtLine(err, idx+1, line)
		}
		out = append(out, r)
	}
	return out, nil
}

func Part1(lines []string) (int64, error) {
	records, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range records {
		total += r.Count()
	}
	return total, nil
}

func Part2(lines []string) (int64, error) {
	records, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range records {
		total += r.Unfold(5).Count()
	}
	return total, nil
}

const Sample = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
`
