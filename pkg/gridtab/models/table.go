package models

import "github.com/tiendc/go-deepcopy"

// Table represents tabular string data as ordered rows of cells.
// The first row is conventionally treated as a header.
type Table [][]string

// Clone returns a deep copy of the table so callers can slice or mutate
// rows without aliasing the original data.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	var out Table
	if err := deepcopy.Copy(&out, &t); err != nil {
		// Table is a plain [][]string; deepcopy cannot fail on it.
		panic(err)
	}
	return out
}

// Slice returns the sub-table covered by the range, clamped to the table's
// actual dimensions. The result is a view aliasing the receiver's rows;
// Clone it before mutating.
func (t Table) Slice(r GridRange) Table {
	out := Table{}
	for i := r.StartRow; i < r.EndRow && i < len(t); i++ {
		if i < 0 {
			continue
		}
		row := t[i]
		lo, hi := r.StartCol, r.EndCol
		if lo > len(row) {
			lo = len(row)
		}
		if hi > len(row) {
			hi = len(row)
		}
		// A column-reversed range contributes no cells.
		if hi < lo {
			hi = lo
		}
		out = append(out, row[lo:hi])
	}
	return out
}
