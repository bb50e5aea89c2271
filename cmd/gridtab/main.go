// Package main provides the CLI entry point for gridtab.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridtab/gridtab/pkg/gridtab/models"
	"github.com/gridtab/gridtab/pkg/gridtab/notation"
	"github.com/gridtab/gridtab/pkg/gridtab/output"
)

var (
	pretty     bool
	sheetName  string
	outPath    string
	formatName string
)

func main() {
	cfg := loadConfig()
	pretty = cfg.Pretty
	sheetName = cfg.Sheet
	formatName = cfg.Format

	rootCmd := &cobra.Command{
		Use:   "gridtab",
		Short: "Work with spreadsheet ranges and tabular files",
		Long: `gridtab parses A1-style spreadsheet references, filters tabular data
with comparison expressions, and converts between CSV, TSV and XLSX files.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", pretty, "Pretty-print JSON output")

	rootCmd.AddCommand(newRangeCmd())
	rootCmd.AddCommand(newColsCmd())
	rootCmd.AddCommand(newRowsCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newColorsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range [a1]",
		Short: "Parse an A1 cell or range into zero-indexed coordinates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := notation.ParseAddress(args[0])
			if err != nil {
				return fmt.Errorf("invalid range %q", args[0])
			}
			return printJSON(r)
		},
	}
}

func newColsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cols [span]",
		Short: "Parse a column span like B or B:D",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := notation.ParseColumnSpan(args[0])
			if err != nil {
				return fmt.Errorf("invalid column range %q", args[0])
			}
			return printJSON(s)
		},
	}
}

func newRowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rows [span]",
		Short: "Parse a row span like 5 or 5:10",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := notation.ParseRowSpan(args[0])
			if err != nil {
				return fmt.Errorf("invalid row range %q", args[0])
			}
			return printJSON(s)
		},
	}
}

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors [name]",
		Short: "List the color table or resolve one color name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c, ok := models.LookupColor(args[0])
				if !ok {
					return fmt.Errorf("unknown color %q", args[0])
				}
				return printJSON(c)
			}
			return printJSON(models.Colors)
		},
	}
}

func printJSON(v interface{}) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
