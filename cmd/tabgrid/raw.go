package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/tabgrid/model"
)

func rawCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "raw <file>",
		Short: "Print the page as numbered rows of cells",
		Long: "Print the page as numbered rows of cells, without column or header inference.\n" +
			"Use the row and cell numbers with the calibrate command.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, warnings, err := a.extractor(args[0]).RawRows()
			if err != nil {
				return err
			}
			a.report(warnings)

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			for i, r := range rows {
				cells := make([]string, len(r.Cells))
				for j, c := range r.Cells {
					cells[j] = fmt.Sprintf("[%d] %s", j, c)
				}
				fmt.Fprintf(w, "%3d  y=%-8.2f %s\n", i, r.Y, strings.Join(cells, "  "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print rows as JSON")
	return cmd
}

func calibrateCmd(a *app) *cobra.Command {
	var out outputFlags
	var headerRow, labelColumn int

	cmd := &cobra.Command{
		Use:   "calibrate <file>",
		Short: "Build a table from a chosen header row and label column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, warnings, err := a.extractor(args[0]).Calibrate(headerRow, labelColumn)
			if err != nil {
				return err
			}
			a.report(warnings)
			return out.writeTables(cmd, []*model.Table{table})
		},
	}
	out.register(cmd, "markdown")
	cmd.Flags().IntVar(&headerRow, "header-row", 0, "raw row holding the headers (0-indexed)")
	cmd.Flags().IntVar(&labelColumn, "label-column", 0, "cell of each row holding its label (0-indexed)")
	return cmd
}
