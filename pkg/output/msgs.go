package output

// Output messages
const (
	MsgScaffolded       = "Created default configuration at %s"
	MsgScaffoldHint     = "Add target files and a theme name to it, then put themes in the themes/ directory next to it."
	MsgApplyHeader      = "Applying theme %q"
	MsgNoFiles          = "No files configured."
	MsgFileLine         = "  ✓ %s: %s %s (%s)\n"
	MsgTotals           = "\n%d %s processed, %d replacements\n"
	MsgDryRunNotice     = "\nDRY RUN MODE - No changes were made"
	MsgErrorFormat      = "Error: %v"
)
