// Package substitute rewrites target files by applying a theme to them.
//
// Files are processed one at a time in the order given. There is no
// transaction: when a file fails, the files before it have already been
// rewritten and the files after it are not touched.
package substitute

import (
	"unicode/utf8"

	"github.com/arthur-debert/configtool/pkg/errors"
	"github.com/arthur-debert/configtool/pkg/logging"
	"github.com/arthur-debert/configtool/pkg/theme"
	"github.com/arthur-debert/configtool/pkg/types"
)

// Options controls an Engine.
type Options struct {
	// DryRun computes replacements without writing anything back.
	DryRun bool
}

// FileResult describes what happened to one target file.
type FileResult struct {
	Path         string
	Replacements int
	Changed      bool
	// Size is the length in bytes of the substituted content.
	Size int64
	// Written is false in dry-run mode.
	Written bool
}

// Result collects the per-file outcomes of Apply, in processing order.
type Result struct {
	Files  []FileResult
	DryRun bool
}

// Replacements returns the total across all processed files.
func (r *Result) Replacements() int {
	total := 0
	for _, f := range r.Files {
		total += f.Replacements
	}
	return total
}

// Engine applies themes to files on a filesystem.
type Engine struct {
	fs   types.FS
	opts Options
}

// New creates an Engine.
func New(fsys types.FS, opts Options) *Engine {
	return &Engine{fs: fsys, opts: opts}
}

// Apply rewrites each file with t. It stops at the first failure and returns
// the results for the files completed before it along with the error.
func (e *Engine) Apply(t *theme.Theme, files []string) (*Result, error) {
	log := logging.GetLogger("substitute")
	result := &Result{Files: make([]FileResult, 0, len(files)), DryRun: e.opts.DryRun}

	for _, path := range files {
		log.Debug().Str("file", path).Msg("Processing file")

		fr, err := e.applyFile(t, path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Int("completed", len(result.Files)).Msg("Substitution halted")
			return result, err
		}
		result.Files = append(result.Files, *fr)

		log.Info().
			Str("file", path).
			Int("replacements", fr.Replacements).
			Bool("changed", fr.Changed).
			Bool("dryRun", e.opts.DryRun).
			Msg("File processed")
	}

	return result, nil
}

func (e *Engine) applyFile(t *theme.Theme, path string) (*FileResult, error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).WithDetail("path", path)
	}

	data, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).WithDetail("path", path)
	}
	if !utf8.Valid(data) {
		return nil, errors.Newf(errors.ErrFileNotText, "%s is not valid UTF-8 text", path).WithDetail("path", path)
	}

	original := string(data)
	replaced, n := t.Replace(original)

	fr := &FileResult{
		Path:         path,
		Replacements: n,
		Changed:      replaced != original,
		Size:         int64(len(replaced)),
	}

	if e.opts.DryRun {
		return fr, nil
	}

	// Unchanged files are written too; every listed file is rewritten.
	if err := e.fs.WriteFile(path, []byte(replaced), info.Mode().Perm()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).WithDetail("path", path)
	}
	fr.Written = true
	return fr, nil
}
