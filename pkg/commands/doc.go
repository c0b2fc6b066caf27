// Package commands implements the CLI-independent operations: add, enable,
// disable, list, combine, show and backup. Each operation takes an options
// struct and returns a result struct; the CLI layer is responsible for
// rendering results and errors.
package commands
