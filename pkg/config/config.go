package config

import (
	"encoding/json"
)

// Config is the on-disk configuration.
type Config struct {
	// Files are rewritten in this order.
	Files []string `json:"files" koanf:"files"`
	// ThemeName selects <config_dir>/themes/<ThemeName>.
	ThemeName string `json:"theme_name" koanf:"theme_name"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{
		Files:     []string{},
		ThemeName: "",
	}
}

// Marshal returns the pretty-printed JSON encoding used for config.json.
func Marshal(cfg *Config) ([]byte, error) {
	out := *cfg
	if out.Files == nil {
		out.Files = []string{}
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
