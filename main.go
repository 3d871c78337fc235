package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/saffronjam/go-glaze/internal/common"
	"github.com/saffronjam/go-glaze/internal/generator"
	"github.com/saffronjam/go-glaze/internal/logger"
)

func main() {
	if err := NewCLI().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glazegen",
		Short: "Generate native declarations and wrappers for a graphics API",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", common.DefaultConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().String("tables", "", "Path to the parsed API tables (overrides config)")
	rootCmd.PersistentFlags().String("dest", "", "Destination directory (overrides config)")
	rootCmd.PersistentFlags().String("api", "", "API tag, e.g. gl or gles2 (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		newGenerateCmd(),
		newDeclarationsCmd(),
		newWrappersCmd(),
		newFinalizeCmd(),
		newInspectCmd(),
	)

	return rootCmd
}

// loadConfig reads the configuration file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*common.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	config, err := common.LoadConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	for flag, field := range map[string]*string{
		"tables":    &config.Tables,
		"dest":      &config.Dest,
		"api":       &config.API,
		"log-level": &config.Log.Level,
	} {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			*field = v
		}
	}

	if err := config.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Config{
		Level:  config.Log.Level,
		Format: config.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, err
	}

	return config, log, nil
}

// setup loads configuration and tables for a generation command.
func setup(cmd *cobra.Command) (*generator.Generator, *common.Config, *slog.Logger, error) {
	config, log, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	gen, err := generator.Setup(config, log)
	if err != nil {
		return nil, nil, nil, err
	}

	return gen, config, log, nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the declaration file, every wrapper file and the loader",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, config, _, err := setup(cmd)
			if err != nil {
				return err
			}

			if mkdir, _ := cmd.Flags().GetBool("mkdir"); mkdir {
				if err := os.MkdirAll(generator.WrapperDir(config.Dest, config.API), 0o755); err != nil {
					return err
				}
			}

			report, err := gen.Run()
			printReport(cmd.OutOrStdout(), report)
			return err
		},
	}

	cmd.Flags().Bool("mkdir", false, "Create the destination directories if missing")
	return cmd
}
