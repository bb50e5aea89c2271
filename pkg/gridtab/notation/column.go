// Package notation converts between A1-style spreadsheet references and
// zero-indexed grid coordinates.
package notation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColumn indicates a column letter sequence that is empty or
// contains a non-letter character.
var ErrInvalidColumn = errors.New("invalid column")

// ColumnToIndex converts a column letter sequence to a 0-based column index
// using bijective base-26: "A"=0, "Z"=25, "AA"=26. Input is case-insensitive.
func ColumnToIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidColumn)
	}
	letters = strings.ToUpper(letters)
	idx := 0
	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, letters)
		}
		idx = idx*26 + int(ch-'A'+1)
	}
	return idx - 1, nil
}

// IndexToColumn converts a 0-based column index to its letter sequence.
// Inverse of ColumnToIndex: 0→"A", 25→"Z", 26→"AA".
func IndexToColumn(index int) string {
	var b []byte
	for index >= 0 {
		b = append([]byte{byte('A' + index%26)}, b...)
		index = index/26 - 1
	}
	return string(b)
}
