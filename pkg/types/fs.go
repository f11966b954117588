package types

import "io/fs"

// FS is the filesystem surface configtool needs. Every read and write goes
// through it so tests can swap in an in-memory implementation.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
