// Package apply implements the single configtool command: resolve paths,
// load the configuration, load the theme and rewrite the target files.
//
// A missing default configuration ends the run early after scaffolding; that
// is reported through ApplyResult.Scaffolded, not as an error.
package apply
