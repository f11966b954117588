package apply

import (
	"github.com/arthur-debert/configtool/pkg/config"
	"github.com/arthur-debert/configtool/pkg/filesystem"
	"github.com/arthur-debert/configtool/pkg/logging"
	"github.com/arthur-debert/configtool/pkg/paths"
	"github.com/arthur-debert/configtool/pkg/substitute"
	"github.com/arthur-debert/configtool/pkg/theme"
	"github.com/arthur-debert/configtool/pkg/types"
)

// ApplyOptions defines the options for the Apply command.
type ApplyOptions struct {
	// ConfigPath overrides <config_dir>/config.json when set.
	ConfigPath string
	// ThemePath overrides <config_dir>/themes/<theme_name> when set.
	ThemePath string
	// DryRun reports replacements without writing files.
	DryRun bool
	// Paths is the resolved directory layout (optional, defaults to the process environment)
	Paths *paths.Paths
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// ApplyResult is everything a run produced.
type ApplyResult struct {
	// ConfigPath is the configuration file read, or created when scaffolding.
	ConfigPath string
	// Scaffolded is true when a default configuration was created and
	// nothing else happened.
	Scaffolded bool
	Config     *config.Config
	Theme      *theme.Theme
	// Substitution is nil when the run stopped before the engine ran.
	Substitution *substitute.Result
}

// Apply runs the whole pipeline. On a substitution failure the partial
// result is returned alongside the error.
func Apply(opts ApplyOptions) (*ApplyResult, error) {
	log := logging.GetLogger("commands.apply")
	done := logging.LogOperationStart(log, "apply")
	defer done()

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	p := opts.Paths
	if p == nil {
		var err error
		p, err = paths.FromEnv()
		if err != nil {
			return nil, err
		}
	}
	log.Debug().Str("configDir", p.ConfigDir()).Msg("Resolved config directory")

	loaded, err := config.Load(fs, p, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	result := &ApplyResult{ConfigPath: loaded.Path, Scaffolded: loaded.Scaffolded}
	if loaded.Scaffolded {
		log.Info().Str("path", loaded.Path).Msg("Created default configuration")
		return result, nil
	}
	result.Config = loaded.Config
	log.Debug().Stringer("config", loaded.Config).Msg("Loaded configuration")

	t, err := theme.Load(fs, p, opts.ThemePath, loaded.Config.ThemeName)
	if err != nil {
		return nil, err
	}
	result.Theme = t
	log.Debug().Stringer("theme", t).Msg("Loaded theme")

	sub, err := substitute.New(fs, substitute.Options{DryRun: opts.DryRun}).Apply(t, loaded.Config.Files)
	result.Substitution = sub
	if err != nil {
		return result, err
	}

	log.Info().
		Int("files", len(sub.Files)).
		Int("replacements", sub.Replacements()).
		Bool("dryRun", opts.DryRun).
		Msg("Theme applied")
	return result, nil
}
