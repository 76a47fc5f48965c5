package grammar

import (
	"slices"
	"strings"
)

type token struct {
	_type    tokenType
	strValue string
	leaf     *leaf

	line   int
	column int
}

// leaf holds the pieces of an OP{values}:fields expression token.
type leaf struct {
	operator string
	values   []string
	fields   []string
}

var tokenNoop token

func (tk *token) isParenthesis() bool {
	return tk.isLeftParenthesis() || tk.isRightParenthesis()
}

func (tk *token) isLeftParenthesis() bool {
	return tk._type == leftParenthesis
}

func (tk *token) isRightParenthesis() bool {
	return tk._type == rightParenthesis
}

var (
	binaryOperators = []tokenType{and, or, xor, before, after}
	operands        = []tokenType{expression}
)

// Rank 3 is left free for the proximity family (NEAR, DNEAR, XNEAR, YNEAR).
var precedence = map[tokenType]int{
	or:     1,
	xor:    1,
	and:    2,
	before: 2,
	after:  2,
	not:    4,
}

// synonyms maps alternative keyword spellings to their canonical name.
var synonyms = map[string]string{
	"EOR": "XOR",
}

func (tk *token) hasLowerOrSamePrecedenceThan(tk1 token) bool {
	l, lok := precedence[tk._type]
	r, rok := precedence[tk1._type]

	if !lok || !rok {
		return false
	}

	return l <= r
}

func (tk *token) isBinaryOperator() bool {
	return slices.Contains(binaryOperators, tk._type)
}

func (tk *token) isUnaryOperator() bool {
	return tk._type == not
}

func (tk *token) isOperand() bool {
	return slices.Contains(operands, tk._type)
}

func (tk *token) isOperator() bool {
	return tk.isBinaryOperator() || tk.isUnaryOperator()
}

// booleanKeywords are the canonical names a RawNode's Boolean may hold.
var booleanKeywords = []string{"AND", "OR", "XOR", "BEFORE", "AFTER"}

// keyword returns the canonical upper-case spelling of an operator token.
func (tk *token) keyword() string {
	return canonicalKeyword(tk.strValue)
}

func canonicalKeyword(name string) string {
	k := strings.ToUpper(name)
	if s, ok := synonyms[k]; ok {
		return s
	}

	return k
}

// booleanKeyword resolves name to one of booleanKeywords.
func booleanKeyword(name string) (string, bool) {
	k := canonicalKeyword(name)
	return k, slices.Contains(booleanKeywords, k)
}
