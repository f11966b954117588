package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/configtool/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigHome is the preferred base for the config directory
	EnvConfigHome = "XDG_CONFIG_HOME"

	// EnvHome is the fallback base, extended with .config
	EnvHome = "HOME"

	// EnvStateHome locates the log file
	EnvStateHome = "XDG_STATE_HOME"
)

// Fixed names inside the config directory
const (
	// AppDirName is the directory name under the config and state homes
	AppDirName = "configtool"

	// ConfigFileName is the configuration file name
	ConfigFileName = "config.json"

	// ThemesDirName is the subdirectory holding theme files
	ThemesDirName = "themes"

	// LogFileName is the name of the log file
	LogFileName = "configtool.log"
)

// LookupFunc reads an environment variable, reporting whether it was set.
type LookupFunc func(key string) (string, bool)

// Paths holds the resolved directories for a single run.
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves the config directory from lookup. Empty values count as unset.
func New(lookup LookupFunc) (*Paths, error) {
	if lookup == nil {
		return nil, errors.New(errors.ErrInternal, "environment lookup is required")
	}

	p := &Paths{}
	if configHome, ok := lookup(EnvConfigHome); ok && configHome != "" {
		p.configDir = filepath.Join(configHome, AppDirName)
	} else if home, ok := lookup(EnvHome); ok && home != "" {
		p.configDir = filepath.Join(home, ".config", AppDirName)
	} else {
		return nil, errors.New(errors.ErrEnvMissing, "$XDG_CONFIG_HOME or $HOME must be defined")
	}

	// xdg.StateHome is computed once at package init, so an explicit
	// XDG_STATE_HOME from lookup takes precedence.
	if stateHome, ok := lookup(EnvStateHome); ok && stateHome != "" {
		p.stateDir = filepath.Join(stateHome, AppDirName)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p, nil
}

// FromEnv resolves paths from the process environment.
func FromEnv() (*Paths, error) {
	return New(os.LookupEnv)
}

// ConfigDir returns the base directory, e.g. ~/.config/configtool.
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the default configuration file path.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// ThemesDir returns the directory holding theme files.
func (p *Paths) ThemesDir() string {
	return filepath.Join(p.configDir, ThemesDirName)
}

// ThemePath returns the path of the named theme. The name is joined as-is:
// it is not checked for emptiness or for ".." components.
func (p *Paths) ThemePath(name string) string {
	return filepath.Join(p.ThemesDir(), name)
}

// StateDir returns configtool's state directory.
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path of the log file.
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}
