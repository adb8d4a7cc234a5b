// Package config loads the optional HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the resolved configuration. Zero Seed means seed from the clock.
type Config struct {
	BoardSize int
	Obstacles int
	Seed      uint64
	Robot     [2]int
	Target    [2]int
	Solvable  bool
	// Layout is a board file; when set the random fields are ignored.
	Layout string

	Tick time.Duration

	LogLevel  string
	LogFormat string
}

// Default reproduces the original game: a 30x30 board, 20 obstacles, robot
// in the top-left corner, target in the bottom-right, one line per second.
func Default() Config {
	return Config{
		BoardSize: 30,
		Obstacles: 20,
		Robot:     [2]int{0, 0},
		Target:    [2]int{29, 29},
		Tick:      time.Second,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

type fileRoot struct {
	Board     *boardBlock     `hcl:"board,block"`
	Scheduler *schedulerBlock `hcl:"scheduler,block"`
	Log       *logBlock       `hcl:"log,block"`
	Remain    hcl.Body        `hcl:",remain"`
}

type boardBlock struct {
	Size      *int    `hcl:"size,optional"`
	Obstacles *int    `hcl:"obstacles,optional"`
	Seed      *int64  `hcl:"seed,optional"`
	Robot     []int   `hcl:"robot,optional"`
	Target    []int   `hcl:"target,optional"`
	Solvable  *bool   `hcl:"solvable,optional"`
	Layout    *string `hcl:"layout,optional"`
}

type schedulerBlock struct {
	Tick *string `hcl:"tick,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load reads path over the defaults. Attributes absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, diags)
	}
	return decode(path, file.Body)
}

// Parse is Load for in-memory source.
func Parse(filename string, src []byte) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(filename, file.Body)
}

func decode(filename string, body hcl.Body) (Config, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}
	cfg := Default()
	if b := root.Board; b != nil {
		setIf(&cfg.BoardSize, b.Size)
		setIf(&cfg.Obstacles, b.Obstacles)
		setIf(&cfg.Solvable, b.Solvable)
		setIf(&cfg.Layout, b.Layout)
		if b.Seed != nil {
			cfg.Seed = uint64(*b.Seed)
		}
		if b.Robot != nil {
			p, err := pair("robot", b.Robot)
			if err != nil {
				return Config{}, err
			}
			cfg.Robot = p
		}
		if b.Target != nil {
			p, err := pair("target", b.Target)
			if err != nil {
				return Config{}, err
			}
			cfg.Target = p
		}
	}
	if s := root.Scheduler; s != nil && s.Tick != nil {
		d, err := time.ParseDuration(*s.Tick)
		if err != nil {
			return Config{}, fmt.Errorf("scheduler.tick: %w", err)
		}
		cfg.Tick = d
	}
	if l := root.Log; l != nil {
		setIf(&cfg.LogLevel, l.Level)
		setIf(&cfg.LogFormat, l.Format)
	}
	return cfg, cfg.Validate()
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func pair(name string, v []int) ([2]int, error) {
	if len(v) != 2 {
		return [2]int{}, fmt.Errorf("board.%s must be [x, y], got %d values", name, len(v))
	}
	return [2]int{v[0], v[1]}, nil
}

// Validate checks the values a board or scheduler cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Layout == "" {
		if c.BoardSize <= 0 {
			errs = append(errs, fmt.Errorf("board.size must be positive, got %d", c.BoardSize))
		}
		if c.Obstacles < 0 {
			errs = append(errs, fmt.Errorf("board.obstacles must not be negative, got %d", c.Obstacles))
		}
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("scheduler.tick must be positive, got %s", c.Tick))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be 'text' or 'json', got %q", c.LogFormat))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be 'debug', 'info', 'warn', or 'error', got %q", c.LogLevel))
	}
	return errors.Join(errs...)
}
