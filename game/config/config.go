package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"snake-sim/game/types"
)

// DefaultPath is the file the hosts read when no -config flag is given.
const DefaultPath = "config.txt"

var (
	// ErrFieldCount means the text resource did not hold 9 or 10 values.
	ErrFieldCount = errors.New("wrong number of config fields")
	// ErrInvalid means a value parsed but is out of range.
	ErrInvalid = errors.New("invalid config value")
)

// ConfigError names the offending field of a bad configuration.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config field %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config field %s (%q): %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Config holds the immutable simulation parameters.
type Config struct {
	HeadSize          types.Size    `yaml:"head_size"`
	Speed             float64       `yaml:"speed"`
	Arena             types.Arena   `yaml:"arena"`
	FoodSize          types.Size    `yaml:"food_size"`
	FoodSpawnInterval time.Duration `yaml:"-"`
	TailShrink        bool          `yaml:"tail_shrink"`
	ScoreResetOnRound bool          `yaml:"score_reset_on_round"`
}

// Field names in the order the text resource lists them.
const (
	FieldHeadWidth    = "head_width"
	FieldHeadHeight   = "head_height"
	FieldSpeed        = "head_speed"
	FieldArenaWidth   = "arena_width"
	FieldArenaHeight  = "arena_height"
	FieldFoodWidth    = "food_width"
	FieldFoodHeight   = "food_height"
	FieldSpawnMillis  = "food_spawn_interval_ms"
	FieldTailShrink   = "tail_shrink"
	FieldScoreOnReset = "score_reset_on_round"
)

var textFields = []string{
	FieldHeadWidth,
	FieldHeadHeight,
	FieldSpeed,
	FieldArenaWidth,
	FieldArenaHeight,
	FieldFoodWidth,
	FieldFoodHeight,
	FieldSpawnMillis,
	FieldTailShrink,
	FieldScoreOnReset,
}

const requiredFields = 9

// Load reads a config file, picking the YAML decoder for .yaml/.yml paths
// and the line format otherwise.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &ConfigError{Field: "file", Value: path, Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}

// Parse reads the line-oriented key:value format. Keys are only labels: the
// value is whatever follows the first ':' and fields are taken by position.
func Parse(r io.Reader) (Config, error) {
	var values []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			field := "line " + strconv.Itoa(len(values)+1)
			if len(values) < len(textFields) {
				field = textFields[len(values)]
			}
			return Config{}, &ConfigError{Field: field, Value: line, Err: errors.New("missing ':'")}
		}
		values = append(values, strings.TrimSpace(line[idx+1:]))
	}
	if err := sc.Err(); err != nil {
		return Config{}, &ConfigError{Field: "file", Err: err}
	}
	if len(values) < requiredFields || len(values) > len(textFields) {
		return Config{}, &ConfigError{
			Field: "file",
			Err:   fmt.Errorf("%w: got %d, want %d or %d", ErrFieldCount, len(values), requiredFields, len(textFields)),
		}
	}

	p := fieldParser{values: values}
	cfg := Config{
		HeadSize:          types.Size{W: p.uint(0), H: p.uint(1)},
		Speed:             p.float(2),
		Arena:             types.Arena{Width: p.uint(3), Height: p.uint(4)},
		FoodSize:          types.Size{W: p.uint(5), H: p.uint(6)},
		FoodSpawnInterval: time.Duration(p.uint(7)) * time.Millisecond,
		TailShrink:        p.flag(8),
	}
	if len(values) > requiredFields {
		cfg.ScoreResetOnRound = p.flag(9)
	}
	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, cfg.Validate()
}

// fieldParser keeps the first error so Parse reads like a struct literal.
type fieldParser struct {
	values []string
	err    error
}

func (p *fieldParser) fail(i int, err error) {
	if p.err == nil {
		p.err = &ConfigError{Field: textFields[i], Value: p.values[i], Err: err}
	}
}

func (p *fieldParser) uint(i int) int {
	n, err := strconv.ParseUint(p.values[i], 10, 31)
	if err != nil {
		p.fail(i, err)
		return 0
	}
	return int(n)
}

func (p *fieldParser) float(i int) float64 {
	f, err := strconv.ParseFloat(p.values[i], 64)
	if err != nil {
		p.fail(i, err)
		return 0
	}
	return f
}

// flag is true only for the literal "true"; anything else reads as false.
func (p *fieldParser) flag(i int) bool {
	return p.values[i] == "true"
}

// Validate checks every size, the speed and the spawn interval are positive.
func (c Config) Validate() error {
	checks := []struct {
		field string
		ok    bool
		value string
	}{
		{FieldHeadWidth, c.HeadSize.W > 0, strconv.Itoa(c.HeadSize.W)},
		{FieldHeadHeight, c.HeadSize.H > 0, strconv.Itoa(c.HeadSize.H)},
		{FieldSpeed, c.Speed > 0, strconv.FormatFloat(c.Speed, 'g', -1, 64)},
		{FieldArenaWidth, c.Arena.Width > 0, strconv.Itoa(c.Arena.Width)},
		{FieldArenaHeight, c.Arena.Height > 0, strconv.Itoa(c.Arena.Height)},
		{FieldFoodWidth, c.FoodSize.W > 0, strconv.Itoa(c.FoodSize.W)},
		{FieldFoodHeight, c.FoodSize.H > 0, strconv.Itoa(c.FoodSize.H)},
		{FieldSpawnMillis, c.FoodSpawnInterval > 0, c.FoodSpawnInterval.String()},
	}
	for _, chk := range checks {
		if !chk.ok {
			return &ConfigError{Field: chk.field, Value: chk.value, Err: fmt.Errorf("%w: must be > 0", ErrInvalid)}
		}
	}
	return nil
}
