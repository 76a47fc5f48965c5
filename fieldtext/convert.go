package fieldtext

import "github.com/jvitoroc/fieldtext/grammar"

// Parse reads field text into a tree. Errors from the grammar, always a
// *grammar.ParseError, are returned as they are.
func Parse(text string) (Node, error) {
	raw, err := grammar.Parse(text)
	if err != nil {
		return nil, err
	}

	return Convert(raw), nil
}

// Convert classifies a raw parse tree. The checks run in a fixed order since
// a raw node may carry several markers at once: boolean, then negative, then
// brackets, and anything else is a leaf expression.
func Convert(raw *grammar.RawNode) Node {
	switch {
	case raw.IsBoolean():
		return NewBoolean(Operator(raw.Boolean), Convert(raw.Left), Convert(raw.Right))
	case raw.IsNegative():
		return NewNegative(Convert(raw.WithoutNegation()))
	case raw.IsBracketed():
		return NewBracketed(Convert(raw.FieldText))
	default:
		return NewExpression(raw.Operator, raw.Fields, raw.Values)
	}
}
