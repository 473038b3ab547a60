// Command theorem-prover is the external driver around the core pipeline
// (spec.md §6): it owns argument parsing, file I/O, logging, and exit
// codes, none of which the core package exposes or needs.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ailrk/theorem-prover/driver"
	"github.com/ailrk/theorem-prover/internal/cliutil"
	"github.com/ailrk/theorem-prover/internal/dimacs"
	"github.com/ailrk/theorem-prover/internal/parser"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "theorem-prover",
		Short:         "A first-order logic normal-form pipeline and DP SAT solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newValidCmd(), newSatCmd(), newDimacsCmd())
	return root
}

func newValidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valid <formula>",
		Short: "Check whether a formula is valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cliutil.NewLogger(verbose)
			f, err := parser.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing formula: %w", err)
			}
			log.Debug("parsed formula", "formula", f.Node.String())
			ok, err := driver.IsValid(f)
			if err != nil {
				return fmt.Errorf("running pipeline: %w", err)
			}
			printBool("valid", ok)
			return nil
		},
	}
}

func newSatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sat <formula>",
		Short: "Check whether a formula is satisfiable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cliutil.NewLogger(verbose)
			f, err := parser.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing formula: %w", err)
			}
			log.Debug("parsed formula", "formula", f.Node.String())
			cs, err := driver.Pipeline(f)
			if err != nil {
				return fmt.Errorf("running pipeline: %w", err)
			}
			log.Debug("extracted clauses", "count", len(cs))
			printBool("satisfiable", driver.IsSatisfiable(cs))
			return nil
		},
	}
}

func newDimacsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimacs <file.cnf>",
		Short: "Check satisfiability of a DIMACS CNF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cliutil.NewLogger(verbose)
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer file.Close()

			cs, err := dimacs.Read(file)
			if err != nil {
				return fmt.Errorf("reading DIMACS file: %w", err)
			}
			log.Debug("read clauses", "count", len(cs))
			printBool("satisfiable", driver.IsSatisfiable(cs))
			return nil
		},
	}
}

func printBool(label string, ok bool) {
	if ok {
		color.New(color.FgGreen).Printf("%s: true\n", label)
	} else {
		color.New(color.FgRed).Printf("%s: false\n", label)
	}
}
