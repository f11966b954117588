package config_test

import (
	"github.com/arthur-debert/configtool/pkg/filesystem"
	"github.com/arthur-debert/configtool/pkg/types"
)

func filesystemOS() types.FS {
	return filesystem.NewOS()
}
