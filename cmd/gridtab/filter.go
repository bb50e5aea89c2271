package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridtab/gridtab/pkg/gridtab"
	"github.com/gridtab/gridtab/pkg/gridtab/delim"
	"github.com/gridtab/gridtab/pkg/gridtab/filter"
	"github.com/gridtab/gridtab/pkg/gridtab/models"
	"github.com/gridtab/gridtab/pkg/gridtab/notation"
	"github.com/gridtab/gridtab/pkg/gridtab/output"
)

func newFilterCmd() *cobra.Command {
	var offsetCol string

	cmd := &cobra.Command{
		Use:   "filter [file] [expr]",
		Short: "Filter a tabular file with a comparison expression",
		Long: `Filter reads a CSV, TSV or XLSX file and keeps the rows matching a
comparison expression such as "C>100" or "A=foo AND B<50". The header row is
always kept. AND and OR combine left to right with no precedence.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid filter %q", args[1])
			}

			offset := 0
			if offsetCol != "" {
				offset, err = notation.ColumnToIndex(offsetCol)
				if err != nil {
					return fmt.Errorf("invalid offset column %q", offsetCol)
				}
			}

			data, err := gridtab.LoadTable(args[0], gridtab.Options{Sheet: sheetName})
			if err != nil {
				return err
			}
			return writeResult(filter.Apply(data, f, offset))
		},
	}

	cmd.Flags().StringVar(&offsetCol, "offset", "", "Column letter the data's first column corresponds to")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&formatName, "format", formatName, "Stdout format: table, json, csv, tsv")
	cmd.Flags().StringVar(&sheetName, "sheet", sheetName, "Workbook sheet to read")
	return cmd
}

// writeResult sends a table to --out when set, otherwise renders it to
// stdout in the requested format.
func writeResult(data models.Table) error {
	if outPath != "" {
		return gridtab.SaveTable(outPath, data, gridtab.Options{Sheet: sheetName})
	}

	switch formatName {
	case "", "table":
		fmt.Println(output.ToText(data))
	case "json":
		return printJSON(data)
	case "csv":
		fmt.Println(delim.Format(data, ','))
	case "tsv":
		fmt.Println(delim.Format(data, '\t'))
	default:
		return fmt.Errorf("invalid format: %s (must be table, json, csv, or tsv)", formatName)
	}
	return nil
}
