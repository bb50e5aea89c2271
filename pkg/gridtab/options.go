// Package gridtab loads and saves tabular data across the supported file
// formats, dispatching to the delimited-text and workbook codecs.
package gridtab

import (
	"path/filepath"
	"strings"
)

// Format identifies a tabular file format.
type Format string

const (
	// FormatCSV is comma-separated text.
	FormatCSV Format = "csv"
	// FormatTSV is tab-separated text.
	FormatTSV Format = "tsv"
	// FormatXLSX is an Office Open XML workbook.
	FormatXLSX Format = "xlsx"
)

// Delimiter returns the field delimiter for a delimited-text format, or 0
// for workbook formats.
func (f Format) Delimiter() rune {
	switch f {
	case FormatCSV:
		return ','
	case FormatTSV:
		return '\t'
	}
	return 0
}

// Options configures table loading and saving.
type Options struct {
	// Format selects the file format explicitly. When empty the format is
	// detected from the file extension.
	Format Format
	// Sheet names the workbook sheet to read or write. Empty selects the
	// first sheet on read and the default sheet on write.
	Sheet string
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, true
	case ".tsv", ".tab":
		return FormatTSV, true
	case ".xlsx":
		return FormatXLSX, true
	}
	return "", false
}

// ResolveFormat returns the explicit format from the options, falling back
// to extension detection.
func (o Options) ResolveFormat(path string) (Format, error) {
	if o.Format != "" {
		return o.Format, nil
	}
	f, ok := DetectFormat(path)
	if !ok {
		return "", &UnsupportedFormatError{Path: path}
	}
	return f, nil
}
