package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/saffronjam/go-glaze/internal/generator"
)

func newDeclarationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "declarations",
		Short: "Generate the native-declaration file (types, functions, enums)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, _, _, err := setup(cmd)
			if err != nil {
				return err
			}

			fr, err := gen.WriteDeclarations()
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), &generator.Report{Files: []generator.FileReport{fr}})
			return nil
		},
	}
}

func printReport(out io.Writer, report *generator.Report) {
	if report == nil || len(report.Files) == 0 {
		return
	}

	var data [][]string
	for _, f := range report.Files {
		data = append(data, []string{f.Kind, f.Path, fmt.Sprint(len(f.Emitted)), fmt.Sprint(len(f.Skipped))})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"KIND", "FILE", "EMITTED", "SKIPPED"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
