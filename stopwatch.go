package main

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Stopwatch accumulates elapsed time per named bucket. Days run
// concurrently, so buckets are guarded.
type Stopwatch struct {
	mu           sync.Mutex
	Buckets      map[string]time.Duration
	BucketStarts map[string]time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		Buckets:      make(map[string]time.Duration),
		BucketStarts: make(map[string]time.Time),
	}
}

func (s *Stopwatch) Start(b string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.BucketStarts[b] = time.Now()
	if _, ok := s.Buckets[b]; !ok {
		s.Buckets[b] = 0
	}
}

// Stop closes bucket b and returns the time since its Start.
func (s *Stopwatch) Stop(b string) time.Duration {
	end := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	start, ok := s.BucketStarts[b]
	if !ok {
		return 0
	}
	elapsed := end.Sub(start)
	s.Buckets[b] += elapsed
	delete(s.BucketStarts, b)
	return elapsed
}

func (s *Stopwatch) Results() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.Buckets))
	for k := range s.Buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += fmt.Sprintf("%s: %.4f\n", k, s.Buckets[k].Seconds())
	}
	return out
}
