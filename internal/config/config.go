// Package config loads gridpath settings from a TOML file.
//
// A missing key keeps its default; an unknown key is an error so typos do not
// pass silently. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridpath/internal/automaton"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds drawing markers, search settings and automaton settings.
type Config struct {
	Wall     string    `toml:"wall"`      // impassable cell
	Start    string    `toml:"start"`     // path start marker
	End      string    `toml:"end"`       // path end marker
	On       string    `toml:"on"`        // live / land cell for life and islands
	Diagonal bool      `toml:"diagonal"`  // 8-connectivity instead of 4
	LogLevel string    `toml:"log_level"` // debug, info, warn, error
	Life     Automaton `toml:"life"`
}

// Automaton configures the life command.
type Automaton struct {
	Rule        string `toml:"rule"`        // preset name or B/S notation
	Generations int    `toml:"generations"` // upper bound on steps
	Wrap        bool   `toml:"wrap"`        // toroidal board
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Wall:     "#",
		Start:    "S",
		End:      "E",
		On:       "#",
		LogLevel: "info",
		Life: Automaton{
			Rule:        "conway",
			Generations: 100,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks markers, the log level and the automaton settings.
func (c Config) Validate() error {
	markers := []struct{ name, value string }{
		{"wall", c.Wall},
		{"start", c.Start},
		{"end", c.End},
		{"on", c.On},
	}
	for _, m := range markers {
		if utf8.RuneCountInString(m.value) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalid, m.name, m.value)
		}
	}
	if c.Start == c.End || c.Start == c.Wall || c.End == c.Wall {
		return fmt.Errorf("%w: wall, start and end markers must differ", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	if _, err := automaton.ParseRule(c.Life.Rule); err != nil {
		return fmt.Errorf("%w: life.rule: %v", ErrInvalid, err)
	}
	if c.Life.Generations < 0 {
		return fmt.Errorf("%w: life.generations must be non-negative", ErrInvalid)
	}
	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// Rule returns the parsed automaton rule, Conway if it does not parse.
func (c Config) Rule() automaton.Rule {
	r, err := automaton.ParseRule(c.Life.Rule)
	if err != nil {
		return automaton.Conway
	}
	return r
}

// WallRune returns the impassable-cell marker.
func (c Config) WallRune() rune { return first(c.Wall) }

// StartRune returns the path start marker.
func (c Config) StartRune() rune { return first(c.Start) }

// EndRune returns the path end marker.
func (c Config) EndRune() rune { return first(c.End) }

// OnRune returns the live / land cell marker.
func (c Config) OnRune() rune { return first(c.On) }

func first(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
