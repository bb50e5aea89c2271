package notation

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gridtab/gridtab/pkg/gridtab/models"
)

var (
	colSpanRe = regexp.MustCompile(`^([A-Za-z]+)(?::([A-Za-z]+))?$`)
	rowSpanRe = regexp.MustCompile(`^([0-9]+)(?::([0-9]+))?$`)
)

// ParseColumnSpan parses a pure column reference, either a single column
// ("B") or a column range ("B:D"), into a zero-indexed half-open span.
// Bounds are not validated against any actual sheet size.
func ParseColumnSpan(text string) (models.DimensionSpan, error) {
	m := colSpanRe.FindStringSubmatch(text)
	if m == nil {
		return models.DimensionSpan{}, fmt.Errorf("%w: %q", ErrInvalidRange, text)
	}
	start, err := ColumnToIndex(m[1])
	if err != nil {
		return models.DimensionSpan{}, err
	}
	if m[2] == "" {
		return models.DimensionSpan{Start: start, End: start + 1}, nil
	}
	end, err := ColumnToIndex(m[2])
	if err != nil {
		return models.DimensionSpan{}, err
	}
	return models.DimensionSpan{Start: start, End: end + 1}, nil
}

// ParseRowSpan parses a pure row reference, either a single row ("5") or a
// row range ("5:10"), 1-indexed inclusive on input, into a zero-indexed
// half-open span.
func ParseRowSpan(text string) (models.DimensionSpan, error) {
	m := rowSpanRe.FindStringSubmatch(text)
	if m == nil {
		return models.DimensionSpan{}, fmt.Errorf("%w: %q", ErrInvalidRange, text)
	}
	start, err := parseRowNumber(m[1])
	if err != nil {
		return models.DimensionSpan{}, err
	}
	if m[2] == "" {
		return models.DimensionSpan{Start: start - 1, End: start}, nil
	}
	end, err := parseRowNumber(m[2])
	if err != nil {
		return models.DimensionSpan{}, err
	}
	return models.DimensionSpan{Start: start - 1, End: end}, nil
}

func parseRowNumber(digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: row %q", ErrInvalidRange, digits)
	}
	return n, nil
}
