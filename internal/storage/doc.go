// Package storage reads project inputs from, and writes generated artifacts
// to, a directory behind a billy.Filesystem.
package storage
