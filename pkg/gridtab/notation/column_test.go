package notation

import "testing"

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"AZ", 51},
		{"BA", 52},
		{"ZZ", 701},
		{"AAA", 702},
		{"a", 0},
		{"aa", 26},
		{"Ab", 27},
	}

	for _, tt := range tests {
		result, err := ColumnToIndex(tt.input)
		if err != nil {
			t.Errorf("ColumnToIndex(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ColumnToIndex(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestColumnToIndexInvalid(t *testing.T) {
	for _, input := range []string{"", "A1", "1", "-", "A B", "Ä"} {
		if _, err := ColumnToIndex(input); err == nil {
			t.Errorf("ColumnToIndex(%q) should fail", input)
		}
	}
}

func TestIndexToColumn(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		if result := IndexToColumn(tt.input); result != tt.expected {
			t.Errorf("IndexToColumn(%d) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestColumnRoundTrip(t *testing.T) {
	// A..ZZ covers the one- and two-letter space.
	for i := 0; i <= 701; i++ {
		letters := IndexToColumn(i)
		back, err := ColumnToIndex(letters)
		if err != nil {
			t.Fatalf("ColumnToIndex(%q) returned error: %v", letters, err)
		}
		if back != i {
			t.Errorf("round trip %d -> %q -> %d", i, letters, back)
		}
	}
}
