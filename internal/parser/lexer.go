// Package parser implements the surface-syntax parser described in
// spec.md §6 "Parser (collaborator)": identifiers, the keywords not,
// and, or, forall, exists, the arrows => and <=>, parenthesised grouping
// and parenthesised function/predicate application.
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// fofLexer tokenizes the formula surface language. Keywords are not a
// distinct token kind — "not", "and", "or", "forall", "exists" all
// lexes as Ident and are recognised by the grammar matching their
// literal text, the same way kanso's grammar matches "module" or
// "struct" against its Ident token.
var fofLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Arrow", `<=>|=>`, nil},
		{"Punct", `[(),.]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
