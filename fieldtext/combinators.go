package fieldtext

// Null stands for an absent operand. It is the nil Node; typed nil pointers
// to any node type are treated the same way. Null has no text form, see
// Serialize.
var Null Node

// IsNull reports whether n is absent.
func IsNull(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *BooleanNode:
		return x == nil
	case *BracketedNode:
		return x == nil
	case *ExpressionNode:
		return x == nil
	case *NegativeNode:
		return x == nil
	}

	return false
}

// Combine joins left and right with op. An absent operand is the identity:
// if only one side is present it is returned unchanged, and if neither is,
// the result is Null.
func Combine(op Operator, left, right Node) Node {
	switch {
	case !IsNull(left) && !IsNull(right):
		return NewBoolean(op, left, right)
	case !IsNull(left):
		return left
	case !IsNull(right):
		return right
	}

	return Null
}

func And(left, right Node) Node {
	return Combine(OpAnd, left, right)
}

func Or(left, right Node) Node {
	return Combine(OpOr, left, right)
}

func Xor(left, right Node) Node {
	return Combine(OpXor, left, right)
}

func Before(left, right Node) Node {
	return Combine(OpBefore, left, right)
}

func After(left, right Node) Node {
	return Combine(OpAfter, left, right)
}

// AndAll folds nodes into a left-leaning AND chain, skipping absent ones.
func AndAll(nodes ...Node) Node {
	return combineAll(OpAnd, nodes)
}

// OrAll folds nodes into a left-leaning OR chain, skipping absent ones.
func OrAll(nodes ...Node) Node {
	return combineAll(OpOr, nodes)
}

func combineAll(op Operator, nodes []Node) Node {
	acc := Null
	for _, n := range nodes {
		acc = Combine(op, acc, n)
	}

	return acc
}

// Not negates n. The negation of an absent operand is still absent.
func Not(n Node) Node {
	if IsNull(n) {
		return Null
	}

	return NewNegative(n)
}

// The node methods below are the same five operators bound to a receiver;
// they never modify either operand.

func (n *BooleanNode) And(other Node) *BooleanNode    { return NewBoolean(OpAnd, n, other) }
func (n *BooleanNode) Or(other Node) *BooleanNode     { return NewBoolean(OpOr, n, other) }
func (n *BooleanNode) Xor(other Node) *BooleanNode    { return NewBoolean(OpXor, n, other) }
func (n *BooleanNode) Before(other Node) *BooleanNode { return NewBoolean(OpBefore, n, other) }
func (n *BooleanNode) After(other Node) *BooleanNode  { return NewBoolean(OpAfter, n, other) }
func (n *BooleanNode) Not() *NegativeNode             { return NewNegative(n) }

func (n *BracketedNode) And(other Node) *BooleanNode    { return NewBoolean(OpAnd, n, other) }
func (n *BracketedNode) Or(other Node) *BooleanNode     { return NewBoolean(OpOr, n, other) }
func (n *BracketedNode) Xor(other Node) *BooleanNode    { return NewBoolean(OpXor, n, other) }
func (n *BracketedNode) Before(other Node) *BooleanNode { return NewBoolean(OpBefore, n, other) }
func (n *BracketedNode) After(other Node) *BooleanNode  { return NewBoolean(OpAfter, n, other) }
func (n *BracketedNode) Not() *NegativeNode             { return NewNegative(n) }

func (n *ExpressionNode) And(other Node) *BooleanNode    { return NewBoolean(OpAnd, n, other) }
func (n *ExpressionNode) Or(other Node) *BooleanNode     { return NewBoolean(OpOr, n, other) }
func (n *ExpressionNode) Xor(other Node) *BooleanNode    { return NewBoolean(OpXor, n, other) }
func (n *ExpressionNode) Before(other Node) *BooleanNode { return NewBoolean(OpBefore, n, other) }
func (n *ExpressionNode) After(other Node) *BooleanNode  { return NewBoolean(OpAfter, n, other) }
func (n *ExpressionNode) Not() *NegativeNode             { return NewNegative(n) }

func (n *NegativeNode) And(other Node) *BooleanNode    { return NewBoolean(OpAnd, n, other) }
func (n *NegativeNode) Or(other Node) *BooleanNode     { return NewBoolean(OpOr, n, other) }
func (n *NegativeNode) Xor(other Node) *BooleanNode    { return NewBoolean(OpXor, n, other) }
func (n *NegativeNode) Before(other Node) *BooleanNode { return NewBoolean(OpBefore, n, other) }
func (n *NegativeNode) After(other Node) *BooleanNode  { return NewBoolean(OpAfter, n, other) }
func (n *NegativeNode) Not() *NegativeNode             { return NewNegative(n) }
