package cli

// Command descriptions
const (
	MsgRootShort = "Apply a text-substitution theme to a list of files"
	MsgRootLong  = `configtool rewrites a configured list of files in place, replacing every
occurrence of each key of the active theme with its value.

The configuration lives in $XDG_CONFIG_HOME/configtool/config.json (or
$HOME/.config/configtool/config.json):

  {"files": ["/path/to/file", ...], "theme_name": "<name>"}

Themes are flat JSON objects stored in the themes/ directory next to it.
On first run, when no configuration exists, an empty one is created and
nothing else happens.

Keys are applied one after another in the order they appear in the theme,
so a value inserted by one key can be replaced again by a later key.`
	MsgRootExample = `  # Apply the theme named in the configuration
  configtool

  # Use a specific theme file
  configtool --theme-path ~/themes/gruvbox.json

  # Show what would change without writing
  configtool --dry-run -v`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
)

// Flag descriptions
const (
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfigPath = "Read the configuration from this file instead of the default location"
	MsgFlagThemePath  = "Read the theme from this file instead of looking it up by name"
	MsgFlagDryRun     = "Report replacements without writing files"
	MsgFlagNoColor    = "Disable colored output"
)
