package fieldtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCombinatorsWithAbsentOperands(t *testing.T) {
	combinators := map[string]func(left, right Node) Node{
		"AND":    And,
		"OR":     Or,
		"XOR":    Xor,
		"BEFORE": Before,
		"AFTER":  After,
	}

	for name, combine := range combinators {
		t.Run(name, func(t *testing.T) {
			if got := combine(one, Null); got != Node(one) {
				t.Errorf("expected the left operand back, but got %v", got)
			}

			if got := combine(Null, two); got != Node(two) {
				t.Errorf("expected the right operand back, but got %v", got)
			}

			if got := combine(Null, Null); !IsNull(got) {
				t.Errorf("expected Null, but got %v", got)
			}

			if got := combine((*ExpressionNode)(nil), two); got != Node(two) {
				t.Errorf("expected a typed nil to count as absent, but got %v", got)
			}

			got := combine(one, two)
			want := &BooleanNode{Operator: Operator(name), Left: one, Right: two}
			if diff := cmp.Diff(got, Node(want)); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestNodeCombinators(t *testing.T) {
	bracketed := NewBracketed(one)
	negative := one.Not()
	boolean := one.Or(two)

	for _, n := range []Node{one, bracketed, negative, boolean} {
		got := []*BooleanNode{n.And(three), n.Or(three), n.Xor(three), n.Before(three), n.After(three)}
		want := []*BooleanNode{
			{Operator: OpAnd, Left: n, Right: three},
			{Operator: OpOr, Left: n, Right: three},
			{Operator: OpXor, Left: n, Right: three},
			{Operator: OpBefore, Left: n, Right: three},
			{Operator: OpAfter, Left: n, Right: three},
		}

		if diff := cmp.Diff(got, want); diff != "" {
			t.Error(diff)
		}

		if diff := cmp.Diff(n.Not(), &NegativeNode{Inner: n}); diff != "" {
			t.Error(diff)
		}
	}

	if got := boolean.String(); got != "MATCH{1}:f1 OR MATCH{2}:f2" {
		t.Errorf("combining must not modify the operands, but got '%s'", got)
	}
}

func TestNot(t *testing.T) {
	if got := Not(one).String(); got != "NOT MATCH{1}:f1" {
		t.Errorf("expected 'NOT MATCH{1}:f1', but got '%s'", got)
	}

	if got := Not(Null); !IsNull(got) {
		t.Errorf("expected Null, but got %v", got)
	}
}

func TestNullSerialize(t *testing.T) {
	text, ok := Serialize(Or(Null, Null))
	if ok {
		t.Errorf("expected Null to have no text, but got '%s'", text)
	}

	if _, ok := Serialize((*NegativeNode)(nil)); ok {
		t.Error("expected a typed nil to have no text")
	}
}

func TestTypedNilOperand(t *testing.T) {
	var missing *ExpressionNode

	got := And(one, missing)
	if got != Node(one) {
		t.Errorf("expected the present operand back, but got %v", got)
	}

	text, ok := Serialize(Not(missing))
	if ok {
		t.Errorf("expected no text, but got '%s'", text)
	}
}

func TestCombineAll(t *testing.T) {
	got := AndAll(Null, one, nil, two, three)
	want := NewBoolean(OpAnd, NewBoolean(OpAnd, one, two), three)
	if diff := cmp.Diff(got, Node(want)); diff != "" {
		t.Error(diff)
	}

	if got := OrAll(one); got != Node(one) {
		t.Errorf("expected a single operand back, but got %v", got)
	}

	if got := OrAll(); !IsNull(got) {
		t.Errorf("expected Null, but got %v", got)
	}

	if got := And(OrAll(one, two), three).String(); got != "(MATCH{1}:f1 OR MATCH{2}:f2) AND MATCH{3}:f3" {
		t.Errorf("unexpected text '%s'", got)
	}
}
