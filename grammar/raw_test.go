package grammar

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRawNodeMarshalJSON(t *testing.T) {
	raw, err := Parse("NOT (A{av}:af AND EXISTS{}:bf)")
	if err != nil {
		t.Error(err)
		return
	}

	b, err := raw.MarshalJSON()
	if err != nil {
		t.Error(err)
		return
	}

	want := `{"negative":true,"fieldtext":{"boolean":"AND",` +
		`"left":{"operator":"A","fields":["af"],"values":["av"]},` +
		`"right":{"operator":"EXISTS","fields":["bf"],"values":[]}}}`
	if diff := cmp.Diff(string(b), want); diff != "" {
		t.Error(diff)
	}

	back, err := UnmarshalRaw(b)
	if err != nil {
		t.Error(err)
		return
	}

	if diff := cmp.Diff(back, raw, cmpopts.EquateEmpty()); diff != "" {
		t.Error(diff)
	}
}

func TestRawNodeMarshalJSONNegationCount(t *testing.T) {
	raw, err := Parse("NOT NOT A{av}:af")
	if err != nil {
		t.Error(err)
		return
	}

	b, err := raw.MarshalJSON()
	if err != nil {
		t.Error(err)
		return
	}

	want := `{"negative":2,"operator":"A","fields":["af"],"values":["av"]}`
	if diff := cmp.Diff(string(b), want); diff != "" {
		t.Error(diff)
	}
}

func TestUnmarshalRaw(t *testing.T) {
	input := `{
		"boolean": "AND",
		"left": {"operator": "MATCH", "fields": ["f1"], "values": [1, "two"]},
		"right": {"negative": true, "fieldtext": {"operator": "B", "fields": ["bf"], "values": []}}
	}`

	got, err := UnmarshalRaw([]byte(input))
	if err != nil {
		t.Error(err)
		return
	}

	want := &RawNode{
		Boolean: "AND",
		Left:    rawLeaf("MATCH", []string{"1", "two"}, "f1"),
		Right: &RawNode{
			Negations: 1,
			FieldText: rawLeaf("B", []string{}, "bf"),
		},
	}

	if diff := cmp.Diff(got, want, cmpopts.EquateEmpty()); diff != "" {
		t.Error(diff)
	}
}

func TestUnmarshalRawBooleanKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "and", want: "AND"},
		{input: "Before", want: "BEFORE"},
		{input: "EOR", want: "XOR"},
		{input: "eor", want: "XOR"},
		{input: "XOR", want: "XOR"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			input := `{"boolean": "` + tt.input + `", "left": {"operator": "A", "fields": ["a"]}, "right": {"operator": "B", "fields": ["b"]}}`

			got, err := UnmarshalRaw([]byte(input))
			if err != nil {
				t.Error(err)
				return
			}

			if diff := cmp.Diff(got.Boolean, tt.want); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestUnmarshalRawErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "invalid json",
			input:   `{"operator":`,
			wantErr: "raw node: ",
		},
		{
			name:    "not an object",
			input:   `["A"]`,
			wantErr: "raw node: expected object at $, but got array",
		},
		{
			name:    "unknown shape",
			input:   `{"fields": ["a"]}`,
			wantErr: "raw node: expected one of boolean, fieldtext or operator at $",
		},
		{
			name:    "empty field list",
			input:   `{"operator": "A", "fields": []}`,
			wantErr: "raw node: $.fields: empty field list",
		},
		{
			name:    "missing right operand",
			input:   `{"boolean": "OR", "left": {"operator": "A", "fields": ["a"]}}`,
			wantErr: "raw node: missing node at $.right",
		},
		{
			name:    "non-string field",
			input:   `{"operator": "A", "fields": [{}]}`,
			wantErr: "raw node: $.fields: item 0: expected string, but got object",
		},
		{
			name:    "unknown boolean operator",
			input:   `{"boolean": "FOO", "left": {"operator": "A", "fields": ["a"]}, "right": {"operator": "B", "fields": ["b"]}}`,
			wantErr: "raw node: $.boolean: unknown operator 'FOO'",
		},
		{
			name:    "proximity operator",
			input:   `{"boolean": "AND", "left": {"operator": "A", "fields": ["a"]}, "right": {"boolean": "NEAR", "left": {"operator": "B", "fields": ["b"]}, "right": {"operator": "C", "fields": ["c"]}}}`,
			wantErr: "raw node: $.right.boolean: unknown operator 'NEAR'",
		},
		{
			name:    "bad negative marker",
			input:   `{"negative": "yes", "operator": "A", "fields": ["a"]}`,
			wantErr: "raw node: $.negative: expected boolean or number, but got string",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalRaw([]byte(tt.input))
			if err == nil {
				t.Errorf("expected error '%s', but got nothing", tt.wantErr)
				return
			}

			if !strings.HasPrefix(err.Error(), tt.wantErr) {
				t.Errorf("expected error starting with '%s', but got '%s'", tt.wantErr, err)
			}
		})
	}
}

func TestWithoutNegation(t *testing.T) {
	raw := &RawNode{Negations: 2, FieldText: rawA}

	inner := raw.WithoutNegation()
	if inner.Negations != 1 || inner.FieldText != rawA {
		t.Errorf("unexpected node %+v", inner)
	}

	if raw.Negations != 2 {
		t.Error("WithoutNegation must not modify its receiver")
	}

	if !raw.IsNegative() || !raw.IsBracketed() || raw.IsBoolean() {
		t.Errorf("unexpected shape predicates for %+v", raw)
	}
}
