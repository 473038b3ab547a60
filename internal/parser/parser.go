package parser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"github.com/ailrk/theorem-prover/formula"
)

var (
	buildOnce sync.Once
	built     *participle.Parser[Formula]
	buildErr  error
)

func build() (*participle.Parser[Formula], error) {
	buildOnce.Do(func() {
		built, buildErr = participle.Build[Formula](
			participle.Lexer(fofLexer),
			participle.Elide("Whitespace"),
			participle.UseLookahead(2),
		)
	})
	return built, buildErr
}

// Parse parses src as a formula in the surface language and returns it
// as a stage-Raw formula. Parsing is a collaborator, not part of the
// core (spec.md §6); the core never calls this package.
func Parse(src string) (formula.Formula[formula.Raw], error) {
	p, err := build()
	if err != nil {
		return formula.Formula[formula.Raw]{}, fmt.Errorf("building parser: %w", err)
	}
	tree, err := p.ParseString("", src)
	if err != nil {
		return formula.Formula[formula.Raw]{}, reportParseError(src, err)
	}
	return formula.Wrap[formula.Raw](tree.ToNode()), nil
}

// reportParseError prints a caret-style diagnostic pointing at the
// offending column, in the style of kanso's grammar.reportParseError,
// and returns the original error so callers can still inspect it
// programmatically.
func reportParseError(src string, err error) error {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("unexpected parse error: %s", err)
		return err
	}
	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("syntax error at unknown location: %s", err)
		return err
	}
	line := lines[pos.Line-1]
	col := pos.Column - 1
	if col < 0 {
		col = 0
	}
	caret := strings.Repeat(" ", col) + "^"

	color.Red("syntax error at line %d, column %d:", pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	return err
}
