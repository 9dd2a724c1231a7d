package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bismuthsalamander/advent2023/input"
)

var (
	ErrSampleMismatch = errors.New("sample answer mismatch")
	ErrAnswerMismatch = errors.New("answer mismatch")
	ErrNoAnswer       = errors.New("no known answer")
)

// Job is one day to solve. Input and Want are per part; a nil Want skips
// the comparison unless RequireWant is set, which makes it a failure.
type Job struct {
	Day         Day
	Input       [2][]string
	Want        [2]*int64
	Mismatch    error
	RequireWant bool
}

type PartResult struct {
	Answer  int64
	Err     error
	Elapsed time.Duration
}

type Result struct {
	Day   Day
	Parts [2]PartResult
}

func (r Result) Err() error {
	return errors.Join(r.Parts[0].Err, r.Parts[1].Err)
}

type ProgressUpdate struct {
	CurrentAction string
	Done          int
	Total         int
}

type Runner struct {
	Workers  int
	Logger   *zap.Logger
	Watch    *Stopwatch
	Progress chan ProgressUpdate
}

func NewRunner(workers int, logger *zap.Logger, jobs int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{workers, logger, NewStopwatch(), make(chan ProgressUpdate, jobs*2)}
}

func (r *Runner) SendProgress(action string, done int, total int) {
	if r.Progress == nil {
		return
	}
	r.Progress <- ProgressUpdate{action, done, total}
}

// SampleJob builds a job from the day's worked examples.
func SampleJob(d Day) Job {
	return Job{
		Day:      d,
		Input:    [2][]string{input.Lines(d.Samples[0]), input.Lines(d.Samples[1])},
		Want:     d.SampleWant,
		Mismatch: ErrSampleMismatch,
	}
}

// InputJob builds a job from the day's input file, checked against want.
func InputJob(d Day, cfg *Config, want Answers) (Job, error) {
	lines, err := input.FileLines(cfg.InputPath(d.Number))
	if err != nil {
		return Job{}, fmt.Errorf("day %d input: %w", d.Number, err)
	}
	return Job{
		Day:      d,
		Input:    [2][]string{lines, lines},
		Want:     [2]*int64{want.Part(0), want.Part(1)},
		Mismatch: ErrAnswerMismatch,
	}, nil
}

func (r *Runner) solvePart(job Job, p int) PartResult {
	bucket := fmt.Sprintf("day %02d part %d", job.Day.Number, p+1)
	r.Watch.Start(bucket)
	ans, err := job.Day.Parts[p](job.Input[p])
	elapsed := r.Watch.Stop(bucket)
	res := PartResult{ans, nil, elapsed}
	if err != nil {
		res.Err = fmt.Errorf("day %d part %d: %w", job.Day.Number, p+1, err)
		r.Logger.Warn("part failed", zap.Int("day", job.Day.Number), zap.Int("part", p+1), zap.Error(err))
		return res
	}
	want := job.Want[p]
	switch {
	case want == nil && job.RequireWant:
		res.Err = fmt.Errorf("day %d part %d: got %d: %w", job.Day.Number, p+1, ans, ErrNoAnswer)
		r.Logger.Warn("no answer to check", zap.Int("day", job.Day.Number), zap.Int("part", p+1))
	case want != nil && *want != ans:
		res.Err = fmt.Errorf("day %d part %d: got %d, want %d: %w", job.Day.Number, p+1, ans, *want, job.Mismatch)
	}
	r.Logger.Debug("part solved",
		zap.Int("day", job.Day.Number),
		zap.Int("part", p+1),
		zap.Int64("answer", ans),
		zap.Duration("elapsed", elapsed))
	return res
}

// Run solves the jobs concurrently, at most Workers at a time. Every job's
// result is returned even when some fail; the error is the first failure.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	var g errgroup.Group
	g.SetLimit(max(r.Workers, 1))
	var finished atomic.Int64
	for i, job := range jobs {
		i, job := i, job
		results[i].Day = job.Day
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Parts[0].Err = err
				results[i].Parts[1].Err = err
				return err
			}
			r.Logger.Debug("solving", zap.Int("day", job.Day.Number), zap.String("title", job.Day.Title))
			for p := range job.Day.Parts {
				results[i].Parts[p] = r.solvePart(job, p)
			}
			r.SendProgress(fmt.Sprintf("day %d", job.Day.Number), int(finished.Add(1)), len(jobs))
			return results[i].Err()
		})
	}
	err := g.Wait()
	r.Logger.Info("run finished", zap.Int("days", len(jobs)), zap.Bool("ok", err == nil))
	return results, err
}
