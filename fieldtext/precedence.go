package fieldtext

// Operator is a binary field text operator.
type Operator string

const (
	OpOr     Operator = "OR"
	OpXor    Operator = "XOR"
	OpAnd    Operator = "AND"
	OpBefore Operator = "BEFORE"
	OpAfter  Operator = "AFTER"
)

// Order of precedence as implemented by IDOL. Higher binds tighter.
//
// Rank 3 belongs to the proximity operators (NEAR, DNEAR, XNEAR, YNEAR) which
// are not supported yet. WNEAR would sit at 1 and WHEN, SENTENCE and
// PARAGRAPH at 2; adding any of them also needs their numeric and negated
// forms (WHENN, NOTWHEN, ...).
const (
	PriorityOr       = 1
	PriorityXor      = 1
	PriorityAnd      = 2
	PriorityBefore   = 2
	PriorityAfter    = 2
	PriorityNot      = 4
	PriorityBrackets = 5

	// Leaf expressions are self-delimiting, so they get the maximum rank and
	// never need brackets of their own.
	PriorityExpression = 6
)

var priorities = map[Operator]int{
	OpOr:     PriorityOr,
	OpXor:    PriorityXor,
	OpAnd:    PriorityAnd,
	OpBefore: PriorityBefore,
	OpAfter:  PriorityAfter,
}

// Priority returns the rank of a binary operator, or 0 for an unknown one.
func Priority(op Operator) int {
	return priorities[op]
}
