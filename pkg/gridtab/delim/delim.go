// Package delim implements a permissive delimited-text codec for CSV and
// TSV content.
package delim

import (
	"strings"

	"github.com/gridtab/gridtab/pkg/gridtab/models"
)

// Parse parses delimited content into a table. Blank lines are skipped and
// every field is trimmed of surrounding whitespace. A double quote toggles
// quoted state; a doubled quote inside a quoted field emits one literal
// quote; the delimiter only splits fields outside quotes. Malformed quoting
// is consumed best-effort, so Parse always returns a result.
func Parse(content string, delimiter rune) models.Table {
	var data models.Table
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		data = append(data, parseLine(line, delimiter))
	}
	return data
}

func parseLine(line string, delimiter rune) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}

// Format serializes a table to delimited text. For comma-delimited output a
// field containing the delimiter, a quote, or a newline is wrapped in quotes
// with internal quotes doubled. Tab-delimited output never quotes.
func Format(data models.Table, delimiter rune) string {
	var b strings.Builder
	for i, row := range data {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteRune(delimiter)
			}
			b.WriteString(formatField(field, delimiter))
		}
	}
	return b.String()
}

func formatField(field string, delimiter rune) string {
	if delimiter != ',' {
		return field
	}
	if !strings.ContainsAny(field, string(delimiter)+"\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
