// Package output serializes results for display.
package output

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/gridtab/gridtab/pkg/gridtab/models"
)

// ToJSON serializes a value to JSON, optionally pretty-printed.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToText renders a table as aligned plain-text columns for terminal display.
func ToText(data models.Table) string {
	widths := columnWidths(data)
	var b strings.Builder
	for i, row := range data {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if j < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cell)))
			}
		}
	}
	return b.String()
}

func columnWidths(data models.Table) []int {
	var widths []int
	for _, row := range data {
		for j, cell := range row {
			for len(widths) <= j {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(cell); n > widths[j] {
				widths[j] = n
			}
		}
	}
	return widths
}
