package grammar

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type tokenType string

const (
	expression       tokenType = "expression"
	leftParenthesis  tokenType = "left_parenthesis"
	rightParenthesis tokenType = "right_parenthesis"
	and              tokenType = "and"
	or               tokenType = "or"
	xor              tokenType = "xor"
	before           tokenType = "before"
	after            tokenType = "after"
	not              tokenType = "not"
	whitespace       tokenType = "whitespace"
	invalid          tokenType = "invalid"

	// group is never produced by the tokenizer; the parser emits it into the
	// postfix output when a pair of parentheses closes.
	group tokenType = "group"
)

type tokenRegexps struct {
	name    tokenType
	regexps []*regexp.Regexp
}

var (
	regexps = []*tokenRegexps{
		{
			name:    expression,
			regexps: []*regexp.Regexp{regexp.MustCompile(`^([A-Za-z0-9_]*)\{([^{}]*)\}((?::[^\s:(){},+]*)*)`)},
		},
		{
			name:    leftParenthesis,
			regexps: []*regexp.Regexp{regexp.MustCompile(`^\(`)},
		},
		{
			name:    rightParenthesis,
			regexps: []*regexp.Regexp{regexp.MustCompile(`^\)`)},
		},
		{
			name:    and,
			regexps: []*regexp.Regexp{regexp.MustCompile(`(?i)^AND\b`)},
		},
		{
			name:    or,
			regexps: []*regexp.Regexp{regexp.MustCompile(`(?i)^OR\b`)},
		},
		{
			name:    xor,
			regexps: []*regexp.Regexp{regexp.MustCompile(`(?i)^(XOR|EOR)\b`)},
		},
		{
			name:    before,
			regexps: []*regexp.Regexp{regexp.MustCompile(`(?i)^BEFORE\b`)},
		},
		{
			name:    after,
			regexps: []*regexp.Regexp{regexp.MustCompile(`(?i)^AFTER\b`)},
		},
		{
			name:    not,
			regexps: []*regexp.Regexp{regexp.MustCompile(`(?i)^NOT\b`)},
		},
		{
			// '+' is the URL-encoded space and separates tokens like whitespace
			name:    whitespace,
			regexps: []*regexp.Regexp{regexp.MustCompile(`^[\s+]+`)},
		},
		{
			name:    invalid,
			regexps: []*regexp.Regexp{regexp.MustCompile(`^[^\s+()]+`)},
		},
	}
)

type tokenizer struct {
	query  string
	cursor int
	line   int
	column int
}

func newTokenizer(query string) *tokenizer {
	return &tokenizer{query: query, line: 1, column: 1}
}

func (t *tokenizer) getNextToken() (*token, error) {
	if t.cursor >= len(t.query) {
		return &tokenNoop, nil
	}

	s := t.query[t.cursor:]
	var (
		match  string
		groups []string
		tk     *token
	)

	line, column := t.getLineColumn(0)

	for _, tr := range regexps {
		for _, r := range tr.regexps {
			groups = r.FindStringSubmatch(s)
			if len(groups) > 0 && groups[0] != "" {
				match = groups[0]
				tk = &token{
					_type:    tr.name,
					strValue: match,

					line:   line,
					column: column,
				}
				break
			}
		}
		if match != "" {
			break
		}
	}

	if tk == nil {
		return nil, newParseError(line, column, "couldn't decipher token")
	}

	if tk._type == expression {
		l, err := t.newLeaf(groups[1], groups[2], groups[3])
		if err != nil {
			return nil, err
		}
		tk.leaf = l
	}

	t.cursor += len(match)
	t.line, t.column = t.getLineColumn(0)

	switch tk._type {
	case whitespace:
		return t.getNextToken()
	case invalid:
		return nil, newParseError(line, column, "unexpected '%s'", tk.strValue)
	}

	return tk, nil
}

// newLeaf validates the captured operator, value list and field list of the
// expression token at the cursor. Errors point at the offending delimiter.
func (t *tokenizer) newLeaf(operator, values, fields string) (*leaf, error) {
	if operator == "" {
		return nil, t.errorAt(0, "missing operator before '{'")
	}

	l := &leaf{operator: operator, values: []string{}}

	valuesStart := len(operator) + 1
	if values != "" {
		l.values = strings.Split(values, ",")
		pos := 0
		for i, v := range l.values {
			if v == "" {
				if i == len(l.values)-1 {
					return nil, t.errorAt(valuesStart+pos-1, "trailing ',' in values of '%s'", operator)
				}
				return nil, t.errorAt(valuesStart+pos, "empty value in values of '%s'", operator)
			}
			pos += len(v) + 1
		}
	}

	fieldsStart := valuesStart + len(values) + 1
	if fields == "" || fields == ":" {
		return nil, t.errorAt(fieldsStart, "empty field list for '%s'", operator)
	}

	l.fields = strings.Split(fields[1:], ":")
	pos := 0
	for i, f := range l.fields {
		if f == "" {
			if i == len(l.fields)-1 {
				return nil, t.errorAt(fieldsStart+pos, "trailing ':' in fields of '%s'", operator)
			}
			return nil, t.errorAt(fieldsStart+pos+1, "empty field name in fields of '%s'", operator)
		}
		pos += len(f) + 1
	}

	return l, nil
}

// errorAt reports an error offset bytes past the cursor.
func (t *tokenizer) errorAt(offset int, format string, args ...any) *ParseError {
	line, column := t.getLineColumn(offset)
	return newParseError(line, column, format, args...)
}

func (t *tokenizer) getLineColumn(skip int) (int, int) {
	skipTotal := t.cursor + skip

	if skipTotal > len(t.query) {
		skipTotal = len(t.query)
	}

	firstHalf := t.query[:skipTotal]
	lineStart := strings.LastIndex(firstHalf, "\n") + 1

	line := strings.Count(firstHalf, "\n") + 1
	column := utf8.RuneCountInString(firstHalf[lineStart:]) + 1

	return line, column
}
