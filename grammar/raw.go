package grammar

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"
)

// RawNode is the untyped result of parsing field text. Exactly one of the
// following shapes is populated, optionally combined with Negations:
//
//   - boolean:   Boolean, Left and Right
//   - bracketed: FieldText (explicit source parentheses)
//   - leaf:      Operator, Fields (at least one) and Values (possibly empty)
//
// Negations counts the NOT prefixes applied to the node.
type RawNode struct {
	Boolean string
	Left    *RawNode
	Right   *RawNode

	Negations int

	FieldText *RawNode

	Operator string
	Fields   []string
	Values   []string
}

func (n *RawNode) IsBoolean() bool {
	return n.Boolean != ""
}

func (n *RawNode) IsNegative() bool {
	return n.Negations > 0
}

func (n *RawNode) IsBracketed() bool {
	return n.FieldText != nil
}

// WithoutNegation returns the same node with one NOT prefix removed. The
// receiver is left untouched.
func (n *RawNode) WithoutNegation() *RawNode {
	negations := n.Negations - 1
	if negations < 0 {
		negations = 0
	}

	return &RawNode{
		Boolean:   n.Boolean,
		Left:      n.Left,
		Right:     n.Right,
		Negations: negations,
		FieldText: n.FieldText,
		Operator:  n.Operator,
		Fields:    n.Fields,
		Values:    n.Values,
	}
}

// MarshalJSON writes the node in the object shape used by the JavaScript
// field text grammar: {boolean,left,right}, {fieldtext}, {operator,fields,values},
// with "negative" set to true for a single NOT and to the count otherwise.
func (n *RawNode) MarshalJSON() ([]byte, error) {
	var a fastjson.Arena
	return n.value(&a).MarshalTo(nil), nil
}

func (n *RawNode) value(a *fastjson.Arena) *fastjson.Value {
	o := a.NewObject()

	if n.Negations == 1 {
		o.Set("negative", a.NewTrue())
	} else if n.Negations > 1 {
		o.Set("negative", a.NewNumberInt(n.Negations))
	}

	switch {
	case n.IsBoolean():
		o.Set("boolean", a.NewString(n.Boolean))
		o.Set("left", n.Left.value(a))
		o.Set("right", n.Right.value(a))
	case n.IsBracketed():
		o.Set("fieldtext", n.FieldText.value(a))
	default:
		o.Set("operator", a.NewString(n.Operator))
		o.Set("fields", stringArray(a, n.Fields))
		o.Set("values", stringArray(a, n.Values))
	}

	return o
}

func stringArray(a *fastjson.Arena, s []string) *fastjson.Value {
	arr := a.NewArray()
	for i, e := range s {
		arr.SetArrayItem(i, a.NewString(e))
	}

	return arr
}

// UnmarshalRaw reads a raw parse tree in the shape written by MarshalJSON.
// Boolean operators are read like keywords in field text: any case, with EOR
// as XOR.
func UnmarshalRaw(data []byte) (*RawNode, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("raw node: %w", err)
	}

	return rawFromValue(v, "$")
}

func rawFromValue(v *fastjson.Value, path string) (*RawNode, error) {
	if v == nil {
		return nil, fmt.Errorf("raw node: missing node at %s", path)
	}

	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("raw node: expected object at %s, but got %s", path, v.Type())
	}

	n := &RawNode{}

	negations, err := negationsFromValue(v.Get("negative"))
	if err != nil {
		return nil, fmt.Errorf("raw node: %s.negative: %w", path, err)
	}
	n.Negations = negations

	if b := v.GetStringBytes("boolean"); len(b) > 0 {
		op, ok := booleanKeyword(string(b))
		if !ok {
			return nil, fmt.Errorf("raw node: %s.boolean: unknown operator '%s'", path, b)
		}
		n.Boolean = op

		n.Left, err = rawFromValue(v.Get("left"), path+".left")
		if err != nil {
			return nil, err
		}

		n.Right, err = rawFromValue(v.Get("right"), path+".right")
		if err != nil {
			return nil, err
		}

		return n, nil
	}

	if ft := v.Get("fieldtext"); ft != nil && ft.Type() != fastjson.TypeNull {
		n.FieldText, err = rawFromValue(ft, path+".fieldtext")
		if err != nil {
			return nil, err
		}

		return n, nil
	}

	n.Operator = string(v.GetStringBytes("operator"))
	if n.Operator == "" {
		return nil, fmt.Errorf("raw node: expected one of boolean, fieldtext or operator at %s", path)
	}

	n.Fields, err = stringsFromValue(v.Get("fields"))
	if err != nil {
		return nil, fmt.Errorf("raw node: %s.fields: %w", path, err)
	}
	if len(n.Fields) == 0 {
		return nil, fmt.Errorf("raw node: %s.fields: empty field list", path)
	}

	n.Values, err = stringsFromValue(v.Get("values"))
	if err != nil {
		return nil, fmt.Errorf("raw node: %s.values: %w", path, err)
	}

	return n, nil
}

func negationsFromValue(v *fastjson.Value) (int, error) {
	if v == nil {
		return 0, nil
	}

	switch v.Type() {
	case fastjson.TypeNull, fastjson.TypeFalse:
		return 0, nil
	case fastjson.TypeTrue:
		return 1, nil
	case fastjson.TypeNumber:
		n, err := v.Int()
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return 0, errors.New("negative count")
		}
		return n, nil
	}

	return 0, fmt.Errorf("expected boolean or number, but got %s", v.Type())
}

// stringsFromValue reads an array of strings; numbers are kept in their
// JSON spelling since the JavaScript grammar did not distinguish them.
func stringsFromValue(v *fastjson.Value) ([]string, error) {
	if v == nil || v.Type() == fastjson.TypeNull {
		return []string{}, nil
	}

	arr, err := v.Array()
	if err != nil {
		return nil, err
	}

	s := make([]string, 0, len(arr))
	for i, e := range arr {
		switch e.Type() {
		case fastjson.TypeString:
			s = append(s, string(e.GetStringBytes()))
		case fastjson.TypeNumber:
			s = append(s, e.String())
		default:
			return nil, fmt.Errorf("item %d: expected string, but got %s", i, e.Type())
		}
	}

	return s, nil
}
