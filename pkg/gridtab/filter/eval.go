package filter

import (
	"strconv"
	"strings"

	"github.com/gridtab/gridtab/pkg/gridtab/models"
	"github.com/gridtab/gridtab/pkg/gridtab/notation"
)

// EvaluateCondition evaluates a single condition against one row.
// columnOffset is the 0-based starting column of the fetched range, so a
// condition on column "C" with offset 1 reads row index 1. A column outside
// the row evaluates to false rather than erroring.
//
// When both the cell text and the condition value parse as numbers the
// comparison is numeric; otherwise "="/"!=" compare case-insensitively and
// the ordering operators evaluate to false.
func EvaluateCondition(row []string, cond Condition, columnOffset int) bool {
	col, err := notation.ColumnToIndex(cond.Column)
	if err != nil {
		return false
	}
	col -= columnOffset
	if col < 0 || col >= len(row) {
		return false
	}
	cell := row[col]

	cellNum, cellErr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	valNum, valErr := strconv.ParseFloat(strings.TrimSpace(cond.Value), 64)
	if cellErr == nil && valErr == nil {
		return compareNumeric(cellNum, cond.Op, valNum)
	}

	switch cond.Op {
	case OpEqual:
		return strings.EqualFold(cell, cond.Value)
	case OpNotEqual:
		return !strings.EqualFold(cell, cond.Value)
	}
	return false
}

func compareNumeric(a float64, op Operator, b float64) bool {
	switch op {
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	case OpGreaterThan:
		return a > b
	case OpLessThan:
		return a < b
	case OpGreaterOrEqual:
		return a >= b
	case OpLessOrEqual:
		return a <= b
	}
	return false
}

// Apply filters data row-by-row, preserving row 0 (the header)
// unconditionally. Conditions fold left-to-right through the combinators
// with no precedence grouping.
func Apply(data models.Table, f *Compound, columnOffset int) models.Table {
	if len(data) == 0 || f == nil || len(f.Conditions) == 0 {
		return data
	}

	out := models.Table{data[0]}
	for _, row := range data[1:] {
		keep := EvaluateCondition(row, f.Conditions[0], columnOffset)
		for i, comb := range f.Combinators {
			next := EvaluateCondition(row, f.Conditions[i+1], columnOffset)
			if comb == And {
				keep = keep && next
			} else {
				keep = keep || next
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}
