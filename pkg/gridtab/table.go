package gridtab

import (
	"os"

	"github.com/gridtab/gridtab/pkg/gridtab/delim"
	"github.com/gridtab/gridtab/pkg/gridtab/models"
	"github.com/gridtab/gridtab/pkg/gridtab/xlsx"
)

// LoadTable reads a tabular file into a table, choosing the codec by the
// resolved format.
func LoadTable(path string, opts Options) (models.Table, error) {
	format, err := opts.ResolveFormat(path)
	if err != nil {
		return nil, err
	}
	if format == FormatXLSX {
		return xlsx.ReadSheet(path, opts.Sheet)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return delim.Parse(string(content), format.Delimiter()), nil
}

// SaveTable writes a table to a tabular file, choosing the codec by the
// resolved format. Delimited output gets a trailing newline.
func SaveTable(path string, data models.Table, opts Options) error {
	format, err := opts.ResolveFormat(path)
	if err != nil {
		return err
	}
	if format == FormatXLSX {
		return xlsx.WriteSheet(path, opts.Sheet, data)
	}

	text := delim.Format(data, format.Delimiter())
	if text != "" {
		text += "\n"
	}
	return os.WriteFile(path, []byte(text), 0644)
}
