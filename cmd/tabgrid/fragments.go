package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/tabgrid/config"
	"github.com/tsawler/tabgrid/source"
	"github.com/tsawler/tabgrid/tables"
)

func fragmentsCmd(a *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "fragments <file>",
		Short: "Dump the page's text fragments as JSON",
		Long: "Dump the page's text fragments as JSON. The output can be edited and fed\n" +
			"back to any other command.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frags, warnings, err := a.extractor(args[0]).Fragments()
			if err != nil {
				return err
			}
			a.report(warnings)
			return out.write(cmd, func(w io.Writer) error {
				return source.WriteJSON(w, frags)
			})
		},
	}
	cmd.Flags().StringVarP(&out.out, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func strategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List column strategies, header strategies and presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, classifiers := tables.ListStrategies()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "column strategies: %s\n", strings.Join(columns, ", "))
			fmt.Fprintf(w, "header strategies: %s\n", strings.Join(classifiers, ", "))
			fmt.Fprintf(w, "presets: %s\n", strings.Join(config.Presets(), ", "))
			return nil
		},
	}
}
