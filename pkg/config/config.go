package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/i5heu/boundedkit/internal/testbench"
)

// Config is an alias for testbench.Config. This allows other programs to import
// the workload configuration without pulling in the entire testbench package.
type Config = testbench.Config

// Profile is a benchmark run loaded from YAML.
type Profile struct {
	Capacities []int         `yaml:"capacities"`
	Iterations int           `yaml:"iterations"`
	Duration   time.Duration `yaml:"duration"`
	KeySpace   int           `yaml:"key_space"`
	Seed       int64         `yaml:"seed"`
}

// Default returns the profile used when no file is given.
func Default() Profile {
	return Profile{
		Capacities: []int{16, 256, 4096},
		Iterations: 5,
		Duration:   2 * time.Second,
		Seed:       1,
	}
}

// Load reads a YAML profile from path. Fields missing from the file keep
// their Default values.
func Load(path string) (Profile, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return p, p.Validate()
}

// Validate checks that every field is usable.
func (p Profile) Validate() error {
	if len(p.Capacities) == 0 {
		return errors.New("config: no capacities")
	}
	for _, c := range p.Capacities {
		if c <= 0 {
			return fmt.Errorf("config: capacity %d must be positive", c)
		}
	}
	if p.Iterations <= 0 {
		return fmt.Errorf("config: iterations %d must be positive", p.Iterations)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("config: duration %s must be positive", p.Duration)
	}
	if p.KeySpace < 0 {
		return fmt.Errorf("config: key_space %d must not be negative", p.KeySpace)
	}
	return nil
}

// Workload returns the testbench config for one capacity. A zero KeySpace
// means twice the capacity, so both hits and misses occur.
func (p Profile) Workload(capacity int) Config {
	keySpace := p.KeySpace
	if keySpace == 0 {
		keySpace = 2 * capacity
	}
	return Config{Capacity: capacity, KeySpace: keySpace, Seed: p.Seed}
}
