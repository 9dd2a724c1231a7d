// Package input holds the line-reading and number-parsing helpers shared by
// every day's solver.
package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("syntax error")

// ParseError reports a malformed input line. Line is 1-based; 0 means the
// error isn't tied to a single line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse: %v", e.Err)
	}
	return fmt.Sprintf("parse line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Errorf builds a ParseError whose message wraps ErrSyntax.
func Errorf(line int, text string, format string, args ...any) *ParseError {
	return &ParseError{line, text, fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))}
}

// Lines splits text into lines, dropping carriage returns and the empty line
// after a final newline.
func Lines(text string) []string {
	lines := make([]string, 0)
	for _, txt := range strings.Split(text, "\n") {
		lines = append(lines, strings.Trim(txt, "\r"))
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FileLines reads f and returns its lines with surrounding whitespace removed.
func FileLines(f string) ([]string, error) {
	data, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	lines := Lines(string(data))
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines, nil
}

// Blocks groups lines into runs separated by blank lines.
func Blocks(lines []string) [][]string {
	out := make([][]string, 0)
	cur := make([]string, 0)
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = make([]string, 0)
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Ints parses whitespace-separated integers.
func Ints(s string) ([]int, error) {
	return parseAll(strings.Fields(s))
}

// CommaInts parses a comma-separated integer list such as "1,1,3".
func CommaInts(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	return parseAll(strings.Split(s, ","))
}

func parseAll(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrSyntax, f)
		}
		out = append(out, n)
	}
	return out, nil
}

// Wrap turns an error from Ints/CommaInts into a ParseError for line n.
func Wrap(n int, text string, err error) error {
	if err == nil {
		return nil
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return err
	}
	return &ParseError{n, text, err}
}

// AtLine stamps line n on the ParseError inside err. Any other error is
// wrapped in a new ParseError for that line.
func AtLine(err error, n int, text string) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Line = n
		return err
	}
	return &ParseError{n, text, err}
}
