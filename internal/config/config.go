// Package config loads CLI settings from YAML files and flag overrides.
//
// Both sources are first reduced to map[string]any and then decoded into
// Config with mapstructure, so a board may be written as "698713254" (quoted
// or not), as "6 9 8 / 7 1 3 / 2 5 4" or as a nested YAML list.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blindsearch/internal/logging"
	"github.com/katalvlaran/blindsearch/puzzle"
	"github.com/katalvlaran/blindsearch/search"
)

// ErrInvalid is returned when a decoded Config fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Log groups logger settings.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Config holds every setting of a solve run.
type Config struct {
	// Mode is empty when the user must be prompted for it.
	Mode          string        `mapstructure:"mode" yaml:"mode"`
	Board         puzzle.Board  `mapstructure:"board" yaml:"board"`
	Show          bool          `mapstructure:"show" yaml:"show"`
	Format        string        `mapstructure:"format" yaml:"format"`
	MaxDepth      int           `mapstructure:"max_depth" yaml:"max_depth"`
	MaxExpansions int           `mapstructure:"max_expansions" yaml:"max_expansions"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Metrics       bool          `mapstructure:"metrics" yaml:"metrics"`
	Log           Log           `mapstructure:"log" yaml:"log"`
}

// Default returns the reference configuration: the default board, text
// output, no limits, info-level text logs, and no mode (prompted).
func Default() Config {
	return Config{
		Board:  puzzle.Default(),
		Format: FormatText,
		Log:    Log{Level: "info", Format: string(logging.FormatText)},
	}
}

// Load reads the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Apply(raw); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Apply decodes raw on top of c. Keys absent from raw keep their value.
func (c *Config) Apply(raw map[string]any) error {
	if len(raw) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			boardHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           c,
	})
	if err != nil {
		return err
	}

	return dec.Decode(raw)
}

// Validate checks enumerations and bounds.
func (c Config) Validate() error {
	if c.Mode != "" {
		if _, err := search.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q (use text or json)", ErrInvalid, c.Format)
	}
	if c.MaxDepth < 0 || c.MaxExpansions < 0 || c.Timeout < 0 {
		return fmt.Errorf("%w: limits cannot be negative", ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch logging.Format(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// SearchOptions converts the limit settings into search options.
// The returned cancel func must be called once the search is done.
func (c Config) SearchOptions() (opts []search.Option, cancel func()) {
	opts = []search.Option{
		search.WithMaxDepth(c.MaxDepth),
		search.WithMaxExpansions(c.MaxExpansions),
	}
	cancel = func() {}
	if c.Timeout > 0 {
		ctx, stop := context.WithTimeout(context.Background(), c.Timeout)
		opts = append(opts, search.WithContext(ctx))
		cancel = stop
	}

	return opts, cancel
}

var boardType = reflect.TypeOf(puzzle.Board{})

// boardHook turns strings and nested lists into a puzzle.Board.
func boardHook(from, to reflect.Type, data any) (any, error) {
	if to != boardType {
		return data, nil
	}
	switch v := data.(type) {
	case puzzle.Board:
		return v, nil
	case string:
		return puzzle.ParseBoard(v)
	case int, int64, uint64, float64:
		// unquoted YAML digits arrive as numbers
		n, ok := toInt(v)
		if !ok {
			return nil, fmt.Errorf("board: %v is not a digit string", v)
		}
		return puzzle.ParseBoard(strconv.Itoa(n))
	case []any:
		rows := make([][]int, len(v))
		for i, row := range v {
			cells, ok := row.([]any)
			if !ok {
				return nil, fmt.Errorf("board row %d: expected list, got %T", i, row)
			}
			rows[i] = make([]int, len(cells))
			for j, cell := range cells {
				n, ok := toInt(cell)
				if !ok {
					return nil, fmt.Errorf("board cell (%d,%d): expected integer, got %T", i, j, cell)
				}
				rows[i][j] = n
			}
		}
		return puzzle.NewBoard(rows)
	case [][]int:
		return puzzle.NewBoard(v)
	default:
		return nil, fmt.Errorf("board: unsupported type %s", from)
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
