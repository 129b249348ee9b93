package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/tabgrid/export"
	"github.com/tsawler/tabgrid/model"
)

// outputFlags are shared by commands that print tables.
type outputFlags struct {
	format string
	out    string
}

func (o *outputFlags) register(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringVarP(&o.format, "format", "f", defaultFormat, "output format: text|markdown|csv|json|html|xlsx")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "write to file instead of stdout")
}

// writeTables renders tables to the output file or the command's stdout.
func (o *outputFlags) writeTables(cmd *cobra.Command, tables []*model.Table) error {
	format, err := export.ParseFormat(o.format)
	if err != nil {
		return err
	}
	if format.Binary() && o.out == "" {
		return fmt.Errorf("%s output needs --out", format)
	}
	return o.write(cmd, func(w io.Writer) error {
		return export.Write(w, format, tables)
	})
}

func (o *outputFlags) write(cmd *cobra.Command, fn func(io.Writer) error) error {
	if o.out == "" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
