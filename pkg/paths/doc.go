// Package paths resolves where configtool keeps its data.
//
// The base directory comes from the environment: $XDG_CONFIG_HOME/configtool
// when XDG_CONFIG_HOME is set, otherwise $HOME/.config/configtool. The
// environment is injected as a lookup function so resolution stays a pure
// computation with no process-wide state.
//
// Layout under the base directory:
//
//	config.json       the configuration (target files and theme name)
//	themes/<name>     one JSON object per theme
package paths
