package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Lines(tt.in)); diff != "" {
			t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestFileLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day01_input.txt")
	require.NoError(t, os.WriteFile(path, []byte("  1abc2 \npqr3stu8vwx\n"), 0o644))

	lines, err := FileLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1abc2", "pqr3stu8vwx"}, lines)

	_, err = FileLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestBlocks(t *testing.T) {
	got := Blocks([]string{"seeds: 1", "", "a map:", "1 2 3", "", "", "b map:"})
	want := [][]string{{"seeds: 1"}, {"a map:", "1 2 3"}, {"b map:"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestInts(t *testing.T) {
	got, err := Ints(" 41 48  6 ")
	require.NoError(t, err)
	assert.Equal(t, []int{41, 48, 6}, got)

	got, err = CommaInts("1,1,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, got)

	_, err = Ints("1 x 3")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseError(t *testing.T) {
	err := Errorf(3, "bad line", "expected %d fields", 3)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Equal(t, `parse line 3 "bad line": syntax error: expected 3 fields`, err.Error())

	_, ierr := Ints("q")
	wrapped := Wrap(7, "q", ierr)
	var perr *ParseError
	require.True(t, errors.As(wrapped, &perr))
	assert.Equal(t, 7, perr.Line)
	assert.NoError(t, Wrap(1, "", nil))
}

func TestAtLine(t *testing.T) {
	err := AtLine(Errorf(0, "x", "bad"), 4, "ignored")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Line)
	assert.Equal(t, "x", perr.Text)

	plain := fmt.Errorf("game: %w", errors.New("no colon"))
	err = AtLine(plain, 9, "Game 1 3 red")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 9, perr.Line)
	assert.Equal(t, "Game 1 3 red", perr.Text)
	assert.ErrorIs(t, err, plain)
}

func TestMath(t *testing.T) {
	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, int64(24), Product([]int64{1, 2, 3, 4}))
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, int64(6), LCM[int64](2, 3))
	assert.Equal(t, 0, LCM[int]())
}
