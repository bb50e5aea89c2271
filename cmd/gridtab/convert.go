package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridtab/gridtab/pkg/gridtab"
	"github.com/gridtab/gridtab/pkg/gridtab/notation"
	"github.com/gridtab/gridtab/pkg/gridtab/xlsx"
)

func newConvertCmd() *cobra.Command {
	var (
		rangeA1  string
		trim     bool
		outSheet string
	)

	cmd := &cobra.Command{
		Use:   "convert [in] [out]",
		Short: "Convert between CSV, TSV and XLSX files",
		Long: `Convert reads a tabular file and writes it in the format implied by the
output file's extension. --range keeps only the cells inside an A1 range;
--trim keeps only the bounding box of non-empty cells.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := gridtab.LoadTable(args[0], gridtab.Options{Sheet: sheetName})
			if err != nil {
				return err
			}

			if rangeA1 != "" {
				r, err := notation.ParseAddress(rangeA1)
				if err != nil {
					return fmt.Errorf("invalid range %q", rangeA1)
				}
				data = data.Slice(r).Clone()
			} else if trim {
				if r, ok := xlsx.DataBounds(data); ok {
					data = data.Slice(r).Clone()
				}
			}

			return gridtab.SaveTable(args[1], data, gridtab.Options{Sheet: outSheet})
		},
	}

	cmd.Flags().StringVar(&rangeA1, "range", "", "A1 range to keep, e.g. A1:D10")
	cmd.Flags().BoolVar(&trim, "trim", false, "Trim to the bounding box of non-empty cells")
	cmd.Flags().StringVar(&sheetName, "sheet", sheetName, "Workbook sheet to read")
	cmd.Flags().StringVar(&outSheet, "out-sheet", "", "Workbook sheet to write")
	return cmd
}
