package output

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/configtool/pkg/commands"
	"github.com/arthur-debert/configtool/pkg/config"
	"github.com/arthur-debert/configtool/pkg/errors"
	"github.com/arthur-debert/configtool/pkg/substitute"
	"github.com/stretchr/testify/assert"
)

func TestRenderApply_Scaffolded(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).RenderApply(&commands.ApplyResult{
		ConfigPath: "/xdg/configtool/config.json",
		Scaffolded: true,
	})

	out := buf.String()
	assert.Contains(t, out, "Created default configuration at /xdg/configtool/config.json")
	assert.Contains(t, out, "themes/")
}

func TestRenderApply_Files(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).RenderApply(&commands.ApplyResult{
		Config: &config.Config{ThemeName: "night", Files: []string{"/a", "/b"}},
		Substitution: &substitute.Result{Files: []substitute.FileResult{
			{Path: "/a", Replacements: 1, Changed: true, Size: 15, Written: true},
			{Path: "/b", Replacements: 0, Size: 2048, Written: true},
		}},
	})

	out := buf.String()
	assert.Contains(t, out, `Applying theme "night"`)
	assert.Contains(t, out, "/a: 1 replacement (15 B)")
	assert.Contains(t, out, "/b: 0 replacements (2.0 kB)")
	assert.Contains(t, out, "2 files processed, 1 replacements")
	assert.NotContains(t, out, "DRY RUN")
}

func TestRenderApply_DryRunAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).RenderApply(&commands.ApplyResult{
		Config:       &config.Config{ThemeName: "t", Files: []string{}},
		Substitution: &substitute.Result{DryRun: true},
	})

	out := buf.String()
	assert.Contains(t, out, MsgNoFiles)
	assert.Contains(t, out, "DRY RUN MODE")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).RenderError(errors.New(errors.ErrThemeLoad, "theme file read failed"))
	assert.Equal(t, "Error: [THEME_LOAD] theme file read failed\n", buf.String())
}

func TestNewRenderer_NoColorEnvironment(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewRenderer(&buf, false).RenderError(errors.New(errors.ErrFileWrite, "failed to write /a"))
	assert.Equal(t, "Error: [FILE_WRITE] failed to write /a\n", buf.String())
}
