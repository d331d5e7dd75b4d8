package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-sim/game/types"
)

const sampleText = `snake_width:10
snake_height:12
snake_speed:2.5
window_width:640
window_height:480
food_width:8
food_height:6
food_pop:1500
tail_shrink:true
`

func TestParseText(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleText))
	require.NoError(t, err)

	assert.Equal(t, types.Size{W: 10, H: 12}, cfg.HeadSize)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, types.Arena{Width: 640, Height: 480}, cfg.Arena)
	assert.Equal(t, types.Size{W: 8, H: 6}, cfg.FoodSize)
	assert.Equal(t, 1500*time.Millisecond, cfg.FoodSpawnInterval)
	assert.True(t, cfg.TailShrink)
	assert.False(t, cfg.ScoreResetOnRound, "score reset is off unless the optional tenth field says so")
}

func TestParseTextOptionalScoreReset(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleText + "score_reset:true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.ScoreResetOnRound)
}

func TestParseTextFlagIsLiteral(t *testing.T) {
	text := strings.Replace(sampleText, "tail_shrink:true", "tail_shrink:yes", 1)
	cfg, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	assert.False(t, cfg.TailShrink)
}

func TestParseTextSkipsBlankLinesAndTrims(t *testing.T) {
	text := "\n  a: 10 \n\nb:10\nc:1\nd:100\ne:100\nf:4\ng:4\nh:250\ni:false\n\n"
	cfg, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.HeadSize.W)
	assert.Equal(t, 250*time.Millisecond, cfg.FoodSpawnInterval)
}

func TestParseTextErrors(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(sampleText), "\n")

	tests := []struct {
		name      string
		text      string
		wantField string
		wantIs    error
	}{
		{
			name:      "too few fields",
			text:      strings.Join(lines[:8], "\n"),
			wantField: "file",
			wantIs:    ErrFieldCount,
		},
		{
			name:      "too many fields",
			text:      sampleText + "x:true\ny:1\n",
			wantField: "file",
			wantIs:    ErrFieldCount,
		},
		{
			name:      "unparsable width",
			text:      strings.Replace(sampleText, "snake_width:10", "snake_width:ten", 1),
			wantField: FieldHeadWidth,
		},
		{
			name:      "negative arena",
			text:      strings.Replace(sampleText, "window_height:480", "window_height:-480", 1),
			wantField: FieldArenaHeight,
		},
		{
			name:      "bad speed",
			text:      strings.Replace(sampleText, "snake_speed:2.5", "snake_speed:fast", 1),
			wantField: FieldSpeed,
		},
		{
			name:      "zero speed",
			text:      strings.Replace(sampleText, "snake_speed:2.5", "snake_speed:0", 1),
			wantField: FieldSpeed,
			wantIs:    ErrInvalid,
		},
		{
			name:      "zero food",
			text:      strings.Replace(sampleText, "food_height:6", "food_height:0", 1),
			wantField: FieldFoodHeight,
			wantIs:    ErrInvalid,
		},
		{
			name:      "zero interval",
			text:      strings.Replace(sampleText, "food_pop:1500", "food_pop:0", 1),
			wantField: FieldSpawnMillis,
			wantIs:    ErrInvalid,
		},
		{
			name:      "missing separator",
			text:      strings.Replace(sampleText, "food_width:8", "food_width 8", 1),
			wantField: FieldFoodWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.text))
			require.Error(t, err)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr), "error should be a *ConfigError, got %T", err)
			assert.Equal(t, tt.wantField, cerr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "config.txt")
	require.NoError(t, os.WriteFile(txt, []byte(sampleText), 0644))
	fromText, err := Load(txt)
	require.NoError(t, err)

	data, err := MarshalYAML(fromText)
	require.NoError(t, err)
	yml := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yml, data, 0644))
	fromYAML, err := Load(yml)
	require.NoError(t, err)

	assert.Equal(t, fromText, fromYAML)
}

func TestParseYAML(t *testing.T) {
	doc := `
head_size: {w: 10, h: 10}
speed: 3
arena: {width: 200, height: 100}
food_size: {w: 4, h: 4}
food_spawn_interval_ms: 750
tail_shrink: false
score_reset_on_round: true
`
	cfg, err := ParseYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.FoodSpawnInterval)
	assert.Equal(t, types.Arena{Width: 200, Height: 100}, cfg.Arena)
	assert.True(t, cfg.ScoreResetOnRound)
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := ParseYAML(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrFieldCount)

	_, err = ParseYAML(strings.NewReader("speed: 1\nwat: 2\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = ParseYAML(strings.NewReader("speed: 1\n"))
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, FieldHeadWidth, cerr.Field)
}
