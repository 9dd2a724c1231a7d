package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bismuthsalamander/advent2023/cosmic"
	"gopkg.in/yaml.v3"
)

// Answers are known-good results for one day, checked by the check command.
type Answers struct {
	Part1 *int64 `yaml:"part1,omitempty"`
	Part2 *int64 `yaml:"part2,omitempty"`
}

func (a Answers) Part(p int) *int64 {
	if p == 0 {
		return a.Part1
	}
	return a.Part2
}

type Config struct {
	InputDir        string          `yaml:"input_dir"`
	InputPattern    string          `yaml:"input_pattern"` // fmt pattern taking the day number
	Workers         int             `yaml:"workers"`
	GalaxyExpansion int             `yaml:"galaxy_expansion"`
	ProfileDir      string          `yaml:"profile_dir"`
	Answers         map[int]Answers `yaml:"answers,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		InputDir:        "inputs",
		InputPattern:    "day%02d_input.txt",
		Workers:         4,
		GalaxyExpansion: cosmic.DefaultExpansion,
		ProfileDir:      ".",
		Answers:         make(map[int]Answers),
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if dir := os.Getenv("ADVENT_INPUT_DIR"); dir != "" {
		cfg.InputDir = dir
	}
	if cfg.Answers == nil {
		cfg.Answers = make(map[int]Answers)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.GalaxyExpansion < 1 {
		return fmt.Errorf("galaxy_expansion must be at least 1, got %d", c.GalaxyExpansion)
	}
	if !strings.Contains(c.InputPattern, "%") {
		return fmt.Errorf("input_pattern %q has no day placeholder", c.InputPattern)
	}
	return nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}
