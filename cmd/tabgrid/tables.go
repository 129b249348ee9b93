package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/tabgrid/model"
)

func tablesCmd(a *app) *cobra.Command {
	var out outputFlags
	var allPages bool
	var columnStrategy, headerStrategy string

	cmd := &cobra.Command{
		Use:   "tables <file>",
		Short: "Reconstruct every table on a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext := a.extractor(args[0])
			if columnStrategy != "" {
				ext = ext.ColumnStrategy(columnStrategy)
			}
			if headerStrategy != "" {
				ext = ext.HeaderStrategy(headerStrategy)
			}

			if !allPages {
				tables, warnings, err := ext.Tables()
				if err != nil {
					return err
				}
				a.report(warnings)
				return out.writeTables(cmd, tables)
			}

			pages, err := ext.AllPages()
			if err != nil {
				return err
			}
			var tables []*model.Table
			for _, p := range pages {
				a.report(p.Warnings)
				for _, t := range p.Tables {
					if len(pages) > 1 {
						named := *t
						named.Name = pageName(p.Number, t.Name)
						t = &named
					}
					tables = append(tables, t)
				}
			}
			return out.writeTables(cmd, tables)
		},
	}
	out.register(cmd, "markdown")
	cmd.Flags().BoolVar(&allPages, "all-pages", false, "process every page of a PDF")
	cmd.Flags().StringVar(&columnStrategy, "column-strategy", "", "column detector, overriding settings")
	cmd.Flags().StringVar(&headerStrategy, "header-strategy", "", "header classifier, overriding settings")
	return cmd
}

func pageName(page int, name string) string {
	return fmt.Sprintf("Page %d %s", page, name)
}
