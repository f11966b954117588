// Package output renders run summaries for the terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/configtool/pkg/commands"
	"github.com/arthur-debert/configtool/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Renderer writes human-readable output to a writer.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// NewRenderer creates a Renderer for w. Colour is disabled when noColor is
// set or NO_COLOR is present in the environment.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		noColor = true
	}
	log := logging.GetLogger("output")
	log.Debug().Bool("noColor", noColor).Msg("Creating renderer")
	return &Renderer{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w), noColor),
	}
}

// RenderApply prints the outcome of an apply run.
func (r *Renderer) RenderApply(result *commands.ApplyResult) {
	s := r.styles

	if result.Scaffolded {
		fmt.Fprintln(r.w, s.Success.Render(fmt.Sprintf(MsgScaffolded, result.ConfigPath)))
		fmt.Fprintln(r.w, s.Muted.Render(MsgScaffoldHint))
		return
	}

	if result.Substitution == nil {
		return
	}
	sub := result.Substitution

	if result.Config != nil {
		fmt.Fprintln(r.w, s.Header.Render(fmt.Sprintf(MsgApplyHeader, result.Config.ThemeName)))
	}
	if len(sub.Files) == 0 {
		fmt.Fprintln(r.w, s.Muted.Render(MsgNoFiles))
	}
	for _, f := range sub.Files {
		fmt.Fprintf(r.w, MsgFileLine,
			s.Path.Render(f.Path),
			s.Count.Render(fmt.Sprintf("%d", f.Replacements)),
			plural(f.Replacements, "replacement", "replacements"),
			s.Muted.Render(humanize.Bytes(uint64(f.Size))),
		)
	}
	fmt.Fprintf(r.w, MsgTotals, len(sub.Files), plural(len(sub.Files), "file", "files"), sub.Replacements())

	if sub.DryRun {
		fmt.Fprintln(r.w, s.Warning.Render(MsgDryRunNotice))
	}
}

// RenderError prints err. Coded errors already carry their code in Error().
func (r *Renderer) RenderError(err error) {
	fmt.Fprintln(r.w, r.styles.Error.Render(fmt.Sprintf(MsgErrorFormat, err)))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
