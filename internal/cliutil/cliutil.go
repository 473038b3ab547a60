// Package cliutil holds the logging and output conventions shared by
// cmd/theorem-prover's subcommands. The core (term, formula, subst, nnf,
// pnf, skolem, ground, cnf, clauses, sat, driver) never logs — it is
// pure per spec.md §5 — so hclog is confined to this package and the
// command layer that uses it.
package cliutil

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// NewLogger builds the CLI's root logger. verbose raises the level to
// Debug; otherwise only Info and above are shown.
func NewLogger(verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "theorem-prover",
		Level:  level,
		Output: os.Stderr,
	})
}
