package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values.
type JsonConfig struct {
	DataDir  *string `json:"data_dir"`
	TakeLast *int    `json:"take_last"`
	LogLevel *string `json:"log_level"`
	NoColor  *bool   `json:"no_color"`
}

// parseJson overlays cfg with the values present in the JSON file at path.
// An empty path loads nothing.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.TakeLast != nil {
		cfg.TakeLast = *jc.TakeLast
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.NoColor != nil {
		cfg.NoColor = *jc.NoColor
	}
	return nil
}
