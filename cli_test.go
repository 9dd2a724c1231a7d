package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useConfig(t *testing.T, c *Config) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() { cfg = old })
}

func TestCheckRequiresAnswers(t *testing.T) {
	c := DefaultConfig()
	c.InputDir = t.TempDir()
	c.Answers[12] = Answers{Part1: answer(5)}
	useConfig(t, c)
	require.NoError(t, writeInput(c, 12, "???.### 1,1,3\n.??..??...?##. 1,1,3\n"))

	d, err := FindDay(Registry(c), 12)
	require.NoError(t, err)
	jobs, err := buildJobs([]Day{d}, true)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.True(t, jobs[0].RequireWant)

	r := NewRunner(1, nil, 1)
	results, err := r.Run(context.Background(), jobs)
	close(r.Progress)
	require.ErrorIs(t, err, ErrNoAnswer)
	assert.NoError(t, results[0].Parts[0].Err)
	assert.ErrorIs(t, results[0].Parts[1].Err, ErrNoAnswer)
	assert.Equal(t, int64(16385), results[0].Parts[1].Answer)

	jobs, err = buildJobs([]Day{d}, false)
	require.NoError(t, err)
	assert.False(t, jobs[0].RequireWant)
	assert.Nil(t, jobs[0].Want[0])
}

func TestExecuteConfigWrite(t *testing.T) {
	t.Setenv("ADVENT_INPUT_DIR", "")
	t.Cleanup(func() { writeConfig = false })
	path := filepath.Join(t.TempDir(), "advent.yaml")

	require.NoError(t, execute(context.Background(), []string{"config", "--write", "--config", path}))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)
}

func TestExecuteReturnsCommandError(t *testing.T) {
	t.Setenv("ADVENT_INPUT_DIR", "")
	path := filepath.Join(t.TempDir(), "missing.yaml")
	err := execute(context.Background(), []string{"run", "99", "--config", path})
	assert.ErrorIs(t, err, ErrUnknownDay)
	assert.NotNil(t, logger)
}
