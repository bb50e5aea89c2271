package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/gridtab/gridtab/pkg/gridtab/models"
)

// ErrInvalidRange indicates text that does not parse as a cell or cell range.
var ErrInvalidRange = errors.New("invalid range")

var (
	cellRe  = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)
	rangeRe = regexp.MustCompile(`^([A-Za-z]+)([0-9]+):([A-Za-z]+)([0-9]+)$`)
)

// ParseAddress parses a single cell ("A1") or a cell range ("A1:D10") into a
// zero-indexed GridRange with half-open end bounds. Any sheet-name prefix
// must already have been stripped by the caller.
//
// A reversed range such as "C3:A1" is accepted as written; start and end are
// not swapped.
func ParseAddress(text string) (models.GridRange, error) {
	if m := cellRe.FindStringSubmatch(text); m != nil {
		addr, err := parseCell(m[1], m[2])
		if err != nil {
			return models.GridRange{}, err
		}
		return models.GridRange{
			StartRow: addr.Row,
			EndRow:   addr.Row + 1,
			StartCol: addr.Col,
			EndCol:   addr.Col + 1,
		}, nil
	}

	m := rangeRe.FindStringSubmatch(text)
	if m == nil {
		return models.GridRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, text)
	}
	start, err := parseCell(m[1], m[2])
	if err != nil {
		return models.GridRange{}, err
	}
	end, err := parseCell(m[3], m[4])
	if err != nil {
		return models.GridRange{}, err
	}
	// The textual end cell is 1-indexed inclusive, so its 0-indexed position
	// plus one is already the exclusive bound.
	return models.GridRange{
		StartRow: start.Row,
		EndRow:   end.Row + 1,
		StartCol: start.Col,
		EndCol:   end.Col + 1,
	}, nil
}

// parseCell converts matched letter and digit groups to a 0-based address.
func parseCell(letters, digits string) (models.CellAddress, error) {
	col, err := ColumnToIndex(letters)
	if err != nil {
		return models.CellAddress{}, err
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 {
		return models.CellAddress{}, fmt.Errorf("%w: row %q", ErrInvalidRange, digits)
	}
	return models.CellAddress{Row: row - 1, Col: col}, nil
}
