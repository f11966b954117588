// Package types holds the small set of interfaces shared across configtool
// packages. Keeping them here lets loaders and the substitution engine accept
// any filesystem implementation without importing each other.
package types
