package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/IvanBrykalov/linkedpq/pqueue"
)

// config is the workload description. It can be loaded from YAML with
// -config; flags given explicitly on the command line win over the file.
type config struct {
	Pattern   string        `yaml:"pattern"`    // ascending | descending | local | random
	Mode      string        `yaml:"mode"`       // first | last | prev
	Size      int           `yaml:"size"`       // steady-state entries per queue
	KeySpace  int           `yaml:"key_space"`  // random/local key range
	Spread    int           `yaml:"spread"`     // max step of the local random walk
	Duplicate string        `yaml:"duplicate"`  // ignore | allow | override
	MaxPool   int           `yaml:"max_pool"`   // shared pool cap (0 = default)
	Workers   int           `yaml:"workers"`    // goroutines, one queue each
	Duration  time.Duration `yaml:"duration"`   // benchmark duration
	Seed      int64         `yaml:"seed"`       // random seed
	PprofAddr string        `yaml:"pprof_addr"` // empty = disabled
	HTTPAddr  string        `yaml:"http_addr"`  // Prometheus /metrics; empty = disabled
}

func defaultConfig() config {
	return config{
		Pattern:   "local",
		Mode:      "prev",
		Size:      10_000,
		KeySpace:  1_000_000,
		Spread:    16,
		Duplicate: "ignore",
		Workers:   4,
		Duration:  10 * time.Second,
		Seed:      time.Now().UnixNano(),
		HTTPAddr:  ":8080",
	}
}

// loadFile overlays the YAML document at path onto c.
func (c *config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// bind registers a flag per field, defaulting to the current values.
func (c *config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "key pattern: ascending | descending | local | random")
	fs.StringVar(&c.Mode, "mode", c.Mode, "search mode: first | last | prev")
	fs.IntVar(&c.Size, "size", c.Size, "steady-state entries per queue")
	fs.IntVar(&c.KeySpace, "keys", c.KeySpace, "key space for random/local patterns")
	fs.IntVar(&c.Spread, "spread", c.Spread, "max random-walk step for the local pattern")
	fs.StringVar(&c.Duplicate, "dup", c.Duplicate, "duplicate policy: ignore | allow | override")
	fs.IntVar(&c.MaxPool, "max_pool", c.MaxPool, "shared node pool cap (0 = default)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of worker goroutines (one queue each)")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "benchmark duration")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.PprofAddr, "pprof", c.PprofAddr, "serve pprof at addr (e.g. :6060); empty = disabled")
	fs.StringVar(&c.HTTPAddr, "http", c.HTTPAddr, "serve Prometheus metrics at addr; empty = disabled")
}

// parseConfig builds the effective config: defaults, then the -config file,
// then explicitly set flags.
func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	path := fs.String("config", "", "YAML workload file")
	cfg := defaultConfig()
	cfg.bind(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *path == "" {
		return cfg, cfg.validate()
	}

	// Re-apply explicit flags on top of the file.
	fromFile := defaultConfig()
	if err := fromFile.loadFile(*path); err != nil {
		return cfg, err
	}
	over := flag.NewFlagSet("bench", flag.ContinueOnError)
	over.String("config", "", "")
	fromFile.bind(over)
	if err := over.Parse(args); err != nil {
		return cfg, err
	}
	return fromFile, fromFile.validate()
}

func (c config) validate() error {
	if _, ok := pqueue.ParseSearchMode(c.Mode); !ok {
		return fmt.Errorf("unknown mode %q (use first, last or prev)", c.Mode)
	}
	switch c.Pattern {
	case "ascending", "descending", "local", "random":
	default:
		return fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	switch c.Duplicate {
	case "ignore", "allow", "override":
	default:
		return fmt.Errorf("unknown duplicate policy %q", c.Duplicate)
	}
	if c.Size <= 0 || c.Workers <= 0 || c.KeySpace <= 0 {
		return fmt.Errorf("size, workers and keys must be > 0")
	}
	// Without duplicates a random key space smaller than size never fills a queue.
	if c.Pattern == "random" && c.Duplicate != "allow" && c.KeySpace < c.Size {
		return fmt.Errorf("keys (%d) must be >= size (%d) for the random pattern", c.KeySpace, c.Size)
	}
	return nil
}
