// Package config loads configtool's configuration: the ordered list of target
// files and the name of the active theme.
//
// The JSON file is decoded into a generic map, layered with koanf under any
// CONFIGTOOL_* environment overrides, then decoded strictly into Config with
// mapstructure. When the default config file does not exist yet, Load
// scaffolds the config directory, the themes directory, and an empty
// config.json, and reports that through LoadResult.Scaffolded.
package config
