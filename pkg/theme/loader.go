package theme

import (
	"github.com/arthur-debert/configtool/pkg/errors"
	"github.com/arthur-debert/configtool/pkg/logging"
	"github.com/arthur-debert/configtool/pkg/paths"
	"github.com/arthur-debert/configtool/pkg/types"
)

// Load reads the theme at explicitPath, or <config_dir>/themes/<name> when
// explicitPath is empty. The name is not validated.
func Load(fsys types.FS, p *paths.Paths, explicitPath, name string) (*Theme, error) {
	log := logging.GetLogger("theme")

	path := explicitPath
	if path == "" {
		path = p.ThemePath(name)
	}
	log.Debug().Str("path", path).Str("name", name).Bool("explicit", explicitPath != "").Msg("Loading theme")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "theme file read failed: %s", path).
			WithDetail("path", path)
	}

	t, err := Parse(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithDetail("path", path)
		}
		return nil, err
	}

	log.Debug().Str("path", path).Int("pairs", t.Len()).Msg("Theme loaded")
	return t, nil
}
