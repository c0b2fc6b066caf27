// Package filesystem provides implementations of the types.FS interface.
//
// NewOS returns the production implementation backed by the os package.
// NewAferoFS wraps any afero.Fs, which lets tests run against an in-memory
// filesystem without touching the disk.
package filesystem
