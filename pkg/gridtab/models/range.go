// Package models defines the value types produced by the notation parsers
// and consumed by the filter and codec packages.
package models

import "fmt"

// CellAddress represents a single cell position.
type CellAddress struct {
	// Row is the row index (0-based).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
}

// GridRange represents a rectangular cell region with half-open end bounds.
// A single cell A1 is {StartRow:0, EndRow:1, StartCol:0, EndCol:1}.
type GridRange struct {
	// StartRow is the first row of the region (0-based, inclusive).
	StartRow int `json:"start_row"`
	// EndRow is the row past the last row of the region (exclusive).
	EndRow int `json:"end_row"`
	// StartCol is the first column of the region (0-based, inclusive).
	StartCol int `json:"start_col"`
	// EndCol is the column past the last column of the region (exclusive).
	EndCol int `json:"end_col"`
}

// Rows returns the number of rows covered by the range.
func (r GridRange) Rows() int { return r.EndRow - r.StartRow }

// Cols returns the number of columns covered by the range.
func (r GridRange) Cols() int { return r.EndCol - r.StartCol }

func (r GridRange) String() string {
	return fmt.Sprintf("rows [%d,%d) cols [%d,%d)", r.StartRow, r.EndRow, r.StartCol, r.EndCol)
}

// DimensionSpan represents a half-open run of rows or columns when only one
// dimension is addressed, independent of GridRange.
type DimensionSpan struct {
	// Start is the first index of the span (0-based, inclusive).
	Start int `json:"start"`
	// End is the index past the last index of the span (exclusive).
	End int `json:"end"`
}

// Len returns the number of rows or columns covered by the span.
func (s DimensionSpan) Len() int { return s.End - s.Start }
