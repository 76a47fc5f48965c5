package grammar

import "testing"

func TestStack(t *testing.T) {
	s := stack[*RawNode]{}

	if n := s.pop(); n != nil {
		t.Error("expected nil from an empty stack")
		return
	}

	if n := s.peek(); n != nil {
		t.Error("expected nil when peeking an empty stack")
		return
	}

	n1 := &RawNode{Operator: "A"}
	n2 := &RawNode{Operator: "B"}
	n3 := &RawNode{Operator: "C"}
	s.push(n1)
	s.push(n3)
	s.push(n2)

	if n := s.peek(); n != n2 {
		t.Errorf("expected %+v, but got %+v", n2, n)
		return
	}

	for _, want := range []*RawNode{n2, n3, n1} {
		if n := s.pop(); n != want {
			t.Errorf("expected %+v, but got %+v", want, n)
			return
		}
	}

	if n := s.pop(); n != nil {
		t.Error("expected nil from an empty stack")
	}
}
