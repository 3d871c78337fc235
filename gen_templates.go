package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/saffronjam/go-glaze/internal/generator"
)

func newFinalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize",
		Short: "Append the aggregate loadGL function to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, config, log, err := setup(cmd)
			if err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString("file")
			if path == "" {
				path = config.LoaderFile
			}
			if path == "" {
				return errors.New("no loader file: pass --file or set loaderFile")
			}

			versions := gen.Versions()
			if only, _ := cmd.Flags().GetStringSlice("version"); len(only) > 0 {
				versions = only
			}

			fr, err := generator.WriteLoader(log, path, versions)
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), &generator.Report{Files: []generator.FileReport{fr}})
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "File the loader is appended to (defaults to loaderFile)")
	cmd.Flags().StringSlice("version", nil, "Versions to load, in order (defaults to every feature)")
	return cmd
}
