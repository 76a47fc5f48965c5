package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/exp/ebnf"
)

// StartProduction is the production a whole field text query must match.
const StartProduction = "FieldText"

//go:embed grammar.ebnf
var grammarSource []byte

var verifiedGrammar = sync.OnceValues(func() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", bytes.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	if err := ebnf.Verify(g, StartProduction); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	return g, nil
})

// Grammar returns the EBNF description of the language accepted by Parse.
// The character classes are illustrative; values accept any character
// except '{', '}' and ','.
func Grammar() (ebnf.Grammar, error) {
	return verifiedGrammar()
}

// GrammarSource returns the EBNF text Grammar is built from.
func GrammarSource() string {
	return string(grammarSource)
}
