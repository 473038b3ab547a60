// Package dimacs reads the DIMACS CNF file format (spec.md §6 "DIMACS
// reader (collaborator)"), grounded directly on the line-classification
// scheme of the original implementation's sat::dimacs::parse.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ailrk/theorem-prover/clauses"
)

// FormatError reports a malformed problem header line of a DIMACS file.
// Clause lines are not validated: each field before a 0 is taken as a
// symbol name as written. It is the
// "DIMACS format error" kind of spec.md §7, distinct from the core's
// structural violation — this package is a collaborator, not the core.
type FormatError struct {
	Line int
	Text string
	err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s: %q", e.Line, e.err, e.Text)
}

func (e *FormatError) Unwrap() error { return e.err }

// Read parses r as a DIMACS CNF file. Lines are classified by their
// first non-whitespace character: 'c' is a comment and is skipped;
// 'p' is the problem header ("p cnf <vars> <clauses>") and is only
// validated, not interpreted; '%' or a blank line terminates the file;
// anything else is a clause of space-separated signed integers ended by
// a literal 0, a negative integer denoting a negated literal whose
// absolute value names the symbol.
func Read(r io.Reader) (clauses.Clauses, error) {
	scanner := bufio.NewScanner(r)
	var out clauses.Clauses
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return out, nil
		}
		switch line[0] {
		case 'c':
			continue
		case '%':
			return out, nil
		case 'p':
			if err := validateHeader(line); err != nil {
				return nil, &FormatError{Line: lineNo, Text: line, err: err}
			}
			continue
		default:
			out = append(out, parseClause(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: reading input")
	}
	return out, nil
}

func validateHeader(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[0] != "p" || fields[1] != "cnf" {
		return errors.New("malformed problem header, expected \"p cnf <vars> <clauses>\"")
	}
	return nil
}

func parseClause(line string) clauses.Clause {
	clause := clauses.NewClause()
	for _, field := range strings.Fields(line) {
		if field == "0" {
			break
		}
		if strings.HasPrefix(field, "-") {
			clause.Add(clauses.Literal{Positive: false, Symbol: field[1:]})
		} else {
			clause.Add(clauses.Literal{Positive: true, Symbol: field})
		}
	}
	return clause
}
