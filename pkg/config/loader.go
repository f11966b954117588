package config

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/arthur-debert/configtool/pkg/errors"
	"github.com/arthur-debert/configtool/pkg/logging"
	"github.com/arthur-debert/configtool/pkg/paths"
	"github.com/arthur-debert/configtool/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override config keys.
const EnvPrefix = "CONFIGTOOL_"

// EnvThemeName overrides theme_name. It is the only override honoured.
const EnvThemeName = EnvPrefix + "THEME_NAME"

// requiredKeys must be present and non-null in every config document.
var requiredKeys = []string{"files", "theme_name"}

// LoadResult is the outcome of Load.
type LoadResult struct {
	// Config is nil when Scaffolded is true.
	Config *Config
	// Path is the file that was read, or written when scaffolding.
	Path string
	// Scaffolded reports that the default config was missing and has been
	// created. The run should stop here.
	Scaffolded bool
}

// Load reads the configuration from explicitPath, or from the default
// location under p when explicitPath is empty.
func Load(fsys types.FS, p *paths.Paths, explicitPath string) (*LoadResult, error) {
	log := logging.GetLogger("config")

	if explicitPath != "" {
		log.Debug().Str("path", explicitPath).Msg("Loading explicit config")
		cfg, err := loadFile(fsys, explicitPath)
		if err != nil {
			return nil, err
		}
		return &LoadResult{Config: cfg, Path: explicitPath}, nil
	}

	path := p.ConfigFile()
	if _, err := fsys.Stat(path); err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to access config file %s", path).
				WithDetail("path", path)
		}
		log.Info().Str("path", path).Msg("No config found, scaffolding defaults")
		if err := Scaffold(fsys, p); err != nil {
			return nil, err
		}
		return &LoadResult{Path: path, Scaffolded: true}, nil
	}

	log.Debug().Str("path", path).Msg("Loading default config")
	cfg, err := loadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return &LoadResult{Config: cfg, Path: path}, nil
}

// Scaffold creates the config and themes directories and writes the default
// configuration to config.json.
func Scaffold(fsys types.FS, p *paths.Paths) error {
	if err := fsys.MkdirAll(p.ConfigDir(), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "error creating config directory %s", p.ConfigDir())
	}
	if err := fsys.MkdirAll(p.ThemesDir(), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "error creating themes directory %s", p.ThemesDir())
	}

	data, err := Marshal(Default())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode default config")
	}
	if err := fsys.WriteFile(p.ConfigFile(), data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create config file %s", p.ConfigFile())
	}
	return nil
}

func loadFile(fsys types.FS, path string) (*Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a JSON configuration document and applies environment
// overrides. Both keys are required and matched case-sensitively; a missing
// key, a null, or a value of the wrong type is an error.
func Parse(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config")
	}
	if raw == nil {
		return nil, errors.New(errors.ErrConfigParse, "failed to parse config: expected a JSON object")
	}
	for _, key := range requiredKeys {
		if v, ok := raw[key]; !ok || v == nil {
			return nil, errors.Newf(errors.ErrConfigParse, "failed to parse config: missing field %q", key)
		}
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(raw, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load config")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		if s != EnvThemeName {
			return ""
		}
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: false,
			TagName:          "koanf",
			MatchName:        matchExact,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}

	if cfg.Files == nil {
		cfg.Files = []string{}
	}
	return &cfg, nil
}

// String renders the configuration for debug output.
func (c *Config) String() string {
	return fmt.Sprintf("theme=%q files=%v", c.ThemeName, c.Files)
}

// matchExact keeps key matching case-sensitive; mapstructure folds case by default.
func matchExact(mapKey, fieldName string) bool {
	return mapKey == fieldName
}
