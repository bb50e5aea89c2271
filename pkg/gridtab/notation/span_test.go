package notation

import (
	"testing"

	"github.com/gridtab/gridtab/pkg/gridtab/models"
)

func TestParseColumnSpan(t *testing.T) {
	tests := []struct {
		input    string
		expected models.DimensionSpan
	}{
		{"B", models.DimensionSpan{Start: 1, End: 2}},
		{"B:D", models.DimensionSpan{Start: 1, End: 4}},
		{"A:A", models.DimensionSpan{Start: 0, End: 1}},
		{"AA:AB", models.DimensionSpan{Start: 26, End: 28}},
		{"b:d", models.DimensionSpan{Start: 1, End: 4}},
	}

	for _, tt := range tests {
		result, err := ParseColumnSpan(tt.input)
		if err != nil {
			t.Errorf("ParseColumnSpan(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseColumnSpan(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}

	for _, input := range []string{"", "1", "B:2", "B:D:F", "B1:D2", ":"} {
		if _, err := ParseColumnSpan(input); err == nil {
			t.Errorf("ParseColumnSpan(%q) should fail", input)
		}
	}
}

func TestParseRowSpan(t *testing.T) {
	tests := []struct {
		input    string
		expected models.DimensionSpan
	}{
		{"5", models.DimensionSpan{Start: 4, End: 5}},
		{"1", models.DimensionSpan{Start: 0, End: 1}},
		{"5:10", models.DimensionSpan{Start: 4, End: 10}},
		{"1:1", models.DimensionSpan{Start: 0, End: 1}},
	}

	for _, tt := range tests {
		result, err := ParseRowSpan(tt.input)
		if err != nil {
			t.Errorf("ParseRowSpan(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRowSpan(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}

	for _, input := range []string{"", "A", "0", "5:0", "5:B", "5:10:15", ":"} {
		if _, err := ParseRowSpan(input); err == nil {
			t.Errorf("ParseRowSpan(%q) should fail", input)
		}
	}
}
