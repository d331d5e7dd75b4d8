package config

import (
	"errors"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlConfig embeds Config and adds the spawn interval in milliseconds, the
// same unit the text format uses.
type yamlConfig struct {
	Config `yaml:",inline"`

	SpawnMillis int `yaml:"food_spawn_interval_ms"`
}

// ParseYAML decodes a YAML document. Unknown keys are rejected.
func ParseYAML(r io.Reader) (Config, error) {
	var raw yamlConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, &ConfigError{Field: "file", Err: ErrFieldCount}
		}
		return Config{}, &ConfigError{Field: "file", Err: err}
	}
	cfg := raw.Config
	cfg.FoodSpawnInterval = time.Duration(raw.SpawnMillis) * time.Millisecond
	return cfg, cfg.Validate()
}

// MarshalYAML writes cfg in the layout ParseYAML reads.
func MarshalYAML(cfg Config) ([]byte, error) {
	return yaml.Marshal(yamlConfig{
		Config:      cfg,
		SpawnMillis: int(cfg.FoodSpawnInterval / time.Millisecond),
	})
}
