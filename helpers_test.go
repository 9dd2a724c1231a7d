package main

import (
	"bytes"
	"os"
	"sync"
)

func writeInput(cfg *Config, day int, text string) error {
	return os.WriteFile(cfg.InputPath(day), []byte(text), 0o644)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
