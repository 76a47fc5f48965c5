package fieldtext

import (
	"slices"
	"strings"
)

// Node is a field text syntax tree. The set of implementations is closed:
// *BooleanNode, *BracketedNode, *ExpressionNode and *NegativeNode.
//
// Nodes are never modified after construction, so trees can be shared
// between goroutines and combined freely.
//
// Methods must not be called on Null, and the operand of an instance
// combinator must be present; use Serialize and the package level
// combinators when a side may be absent.
type Node interface {
	// Priority is the node's rank in the precedence table.
	Priority() int
	// String serializes the node, adding only the brackets its children need.
	String() string

	And(other Node) *BooleanNode
	Or(other Node) *BooleanNode
	Xor(other Node) *BooleanNode
	Before(other Node) *BooleanNode
	After(other Node) *BooleanNode
	Not() *NegativeNode

	node()
}

// BooleanNode joins two trees with a binary operator. Operator must be one
// of the five supported operators.
type BooleanNode struct {
	Operator Operator
	Left     Node
	Right    Node
}

func NewBoolean(op Operator, left, right Node) *BooleanNode {
	return &BooleanNode{Operator: op, Left: left, Right: right}
}

func (n *BooleanNode) Priority() int {
	return Priority(n.Operator)
}

func (n *BooleanNode) String() string {
	return bracket(n.Left, n) + " " + string(n.Operator) + " " + bracket(n.Right, n)
}

// BracketedNode is a subtree that was written in parentheses. It always
// prints its parentheses, whatever the priority of its content.
type BracketedNode struct {
	Inner Node
}

func NewBracketed(inner Node) *BracketedNode {
	return &BracketedNode{Inner: inner}
}

func (n *BracketedNode) Priority() int {
	return PriorityBrackets
}

func (n *BracketedNode) String() string {
	return "(" + n.Inner.String() + ")"
}

// ExpressionNode is a leaf such as MATCH{a,b}:field1:field2. Fields must not
// be empty; Values may be.
type ExpressionNode struct {
	Operator string
	Fields   []string
	Values   []string
}

// NewExpression copies fields and values, so later changes to the caller's
// slices do not leak into the tree.
func NewExpression(operator string, fields, values []string) *ExpressionNode {
	return &ExpressionNode{
		Operator: operator,
		Fields:   slices.Clone(fields),
		Values:   slices.Clone(values),
	}
}

func (n *ExpressionNode) Priority() int {
	return PriorityExpression
}

// String does not escape ',', ':' or braces inside values and fields.
func (n *ExpressionNode) String() string {
	return n.Operator + "{" + strings.Join(n.Values, ",") + "}:" + strings.Join(n.Fields, ":")
}

// NegativeNode is a NOT applied to Inner.
type NegativeNode struct {
	Inner Node
}

func NewNegative(inner Node) *NegativeNode {
	return &NegativeNode{Inner: inner}
}

func (n *NegativeNode) Priority() int {
	return PriorityNot
}

func (n *NegativeNode) String() string {
	return "NOT " + bracket(n.Inner, n)
}

func (*BooleanNode) node()    {}
func (*BracketedNode) node()  {}
func (*ExpressionNode) node() {}
func (*NegativeNode) node()   {}

// bracket wraps child in parentheses when it binds looser than parent, e.g.
// an OR nested inside an AND. Ties are left alone: equal-priority chains are
// left-associative.
func bracket(child, parent Node) string {
	if child.Priority() < parent.Priority() {
		return "(" + child.String() + ")"
	}

	return child.String()
}

// Serialize returns the text of n. For Null there is no text at all and ok
// is false; callers must not treat the empty string as a query.
func Serialize(n Node) (text string, ok bool) {
	if IsNull(n) {
		return "", false
	}

	return n.String(), true
}

// Equal reports whether a and b are the same tree. Two Null values are equal.
func Equal(a, b Node) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) && IsNull(b)
	}

	switch x := a.(type) {
	case *BooleanNode:
		y, ok := b.(*BooleanNode)
		return ok && x.Operator == y.Operator && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *BracketedNode:
		y, ok := b.(*BracketedNode)
		return ok && Equal(x.Inner, y.Inner)
	case *NegativeNode:
		y, ok := b.(*NegativeNode)
		return ok && Equal(x.Inner, y.Inner)
	case *ExpressionNode:
		y, ok := b.(*ExpressionNode)
		return ok && x.Operator == y.Operator && slices.Equal(x.Fields, y.Fields) && slices.Equal(x.Values, y.Values)
	}

	return false
}
