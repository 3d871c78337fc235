package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/saffronjam/go-glaze/internal/generator"
)

func newWrappersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrappers [version...]",
		Short: "Generate the wrapper file of every version, or of the named ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, config, _, err := setup(cmd)
			if err != nil {
				return err
			}

			versions := gen.Versions()
			for _, v := range args {
				if !slices.Contains(versions, v) {
					return fmt.Errorf("unknown version %s", v)
				}
			}

			mkdir, _ := cmd.Flags().GetBool("mkdir")
			if mkdir {
				if err := os.MkdirAll(generator.WrapperDir(config.Dest, config.API), 0o755); err != nil {
					return err
				}
			}

			report := &generator.Report{}
			defer printReport(cmd.OutOrStdout(), report)

			for _, feature := range gen.Features() {
				if len(args) > 0 && !slices.Contains(args, feature.Name) {
					continue
				}
				fr, err := gen.WriteWrapper(feature)
				if err != nil {
					return err
				}
				report.Files = append(report.Files, fr)
			}
			return nil
		},
	}

	cmd.Flags().Bool("mkdir", false, "Create the API directory under dest if missing")
	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FUNCTION...",
		Short: "Show how each argument of the named functions is marshaled",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, _, _, err := setup(cmd)
			if err != nil {
				return err
			}

			var data [][]string
			for _, name := range args {
				fn, ok := gen.Function(name)
				if !ok {
					return fmt.Errorf("unknown function %s", name)
				}

				res, err := gen.Synthesize(fn)
				if err != nil {
					data = append(data, []string{name, "", "fatal", err.Error(), ""})
					continue
				}
				if res.Outcome == generator.Skipped {
					data = append(data, []string{name, "", "skipped", res.Reason, ""})
					continue
				}
				if len(res.Callable.Args) == 0 {
					data = append(data, []string{name, "", "", "", ""})
				}
				for _, a := range res.Callable.Args {
					data = append(data, []string{name, a.Name, a.Strategy.String(), a.ParamDecl(), a.CallExpr()})
				}
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"FUNCTION", "PARAM", "STRATEGY", "DECLARATION", "CALL"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.AppendBulk(data)
			table.Render()

			return nil
		},
	}
}
