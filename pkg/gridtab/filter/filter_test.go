package filter

import "testing"

func TestParseSingleCondition(t *testing.T) {
	tests := []struct {
		input    string
		expected Condition
	}{
		{"C>100", Condition{Column: "C", Op: OpGreaterThan, Value: "100"}},
		{"A=foo", Condition{Column: "A", Op: OpEqual, Value: "foo"}},
		{"B >= 10", Condition{Column: "B", Op: OpGreaterOrEqual, Value: "10"}},
		{"B<=10", Condition{Column: "B", Op: OpLessOrEqual, Value: "10"}},
		{"D!=done", Condition{Column: "D", Op: OpNotEqual, Value: "done"}},
		{"aa<5", Condition{Column: "AA", Op: OpLessThan, Value: "5"}},
		{"A=hello world", Condition{Column: "A", Op: OpEqual, Value: "hello world"}},
		// An empty right-hand side is accepted and matches empty cells.
		{"A=", Condition{Column: "A", Op: OpEqual, Value: ""}},
	}

	for _, tt := range tests {
		f, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.input, err)
			continue
		}
		if len(f.Conditions) != 1 || len(f.Combinators) != 0 {
			t.Errorf("Parse(%q) = %+v, expected single condition", tt.input, f)
			continue
		}
		if f.Conditions[0] != tt.expected {
			t.Errorf("Parse(%q) = %+v, expected %+v", tt.input, f.Conditions[0], tt.expected)
		}
	}
}

func TestParseCompound(t *testing.T) {
	f, err := Parse("A>10 AND B<50 or C=x")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(f.Conditions) != 3 {
		t.Fatalf("expected 3 conditions, got %d", len(f.Conditions))
	}
	if len(f.Combinators) != 2 {
		t.Fatalf("expected 2 combinators, got %d", len(f.Combinators))
	}
	if f.Combinators[0] != And || f.Combinators[1] != Or {
		t.Errorf("combinators = %v, expected [AND OR]", f.Combinators)
	}
	if f.Conditions[2] != (Condition{Column: "C", Op: OpEqual, Value: "x"}) {
		t.Errorf("third condition = %+v", f.Conditions[2])
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"A",
		">10",
		"1>10",
		"A~10",
		// One bad segment fails the whole expression.
		"A>10 AND nope",
		"bad AND B<5",
	}

	for _, input := range inputs {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) should fail", input)
		}
	}
}
