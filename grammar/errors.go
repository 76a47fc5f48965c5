package grammar

import "fmt"

// ParseError is returned for any malformed query text. Line and Column are
// 1-based and point at the token that could not be accepted, or at the bad
// ',' or ':' inside a leaf. Column counts characters, not bytes.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func newParseError(line, column int, format string, args ...any) *ParseError {
	return &ParseError{
		Line:   line,
		Column: column,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Msg, e.Line, e.Column)
}
