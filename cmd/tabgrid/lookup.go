package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tsawler/tabgrid"
	"github.com/tsawler/tabgrid/model"
)

// errNotFound is returned when a point query has no answer.
var errNotFound = errors.New("not found")

func lookupCmd(a *app) *cobra.Command {
	var headerKeywords, sectionKeywords []string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Query a page by header and row keywords",
	}
	cmd.PersistentFlags().StringSliceVar(&headerKeywords, "header-keywords", nil, "keywords marking header fragments, overriding settings")
	cmd.PersistentFlags().StringSliceVar(&sectionKeywords, "section-keywords", nil, "section marker labels, overriding settings")

	// extractor applies the keyword overrides on top of the shared flags.
	extractor := func(path string) *tabgrid.Extractor {
		ext := a.extractor(path)
		if len(headerKeywords) > 0 {
			ext = ext.HeaderKeywords(headerKeywords...)
		}
		if len(sectionKeywords) > 0 {
			ext = ext.SectionKeywords(sectionKeywords...)
		}
		return ext
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "headers <file>",
		Short: "List header candidates left to right",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, err := extractor(args[0]).Headers()
			if err != nil {
				return err
			}
			for _, h := range headers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t(%.2f, %.2f)\n", h.Text, h.Fragment.X, h.Fragment.Y)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rows <file>",
		Short: "List row labels top to bottom with their sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := extractor(args[0]).RowLabels()
			if err != nil {
				return err
			}
			for _, r := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%.2f, %.2f)\n", r.Text, r.Section, r.Fragment.X, r.Fragment.Y)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cell <file> <header> <row>",
		Short: "Print the value of one header for one row",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok, err := extractor(args[0]).CellValue(args[1], args[2])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %q for %q", errNotFound, args[1], args[2])
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "row <file> <row>",
		Short: "Print every header's value for one row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := extractor(args[0]).RowValues(args[1])
			if err != nil {
				return err
			}
			if values == nil {
				return fmt.Errorf("%w: row %q", errNotFound, args[1])
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, values[k])
			}
			return nil
		},
	})

	var out outputFlags
	table := &cobra.Command{
		Use:   "table <file>",
		Short: "Assemble every header and row into one table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := extractor(args[0]).LookupTable()
			if err != nil {
				return err
			}
			return out.writeTables(cmd, []*model.Table{t})
		},
	}
	out.register(table, "markdown")
	cmd.AddCommand(table)

	return cmd
}
