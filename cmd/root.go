package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stepgrid/internal/color"
	"stepgrid/internal/config"
	"stepgrid/pkg/logging"
)

var (
	flagLogLevel string
	flagOutput   string
	flagNoColor  bool

	// appConfig is the merged configuration, loaded before every subcommand.
	appConfig = config.GetDefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stepgrid",
	Short: "Edit the steps of tabular test data files",
	Long: `stepgrid edits the test cases and keywords of plain text test data
files as a grid of cells. Every edit is a discrete command (set a cell,
add or delete rows, clear, paste or insert an area, purify) that can be
applied from the command line or interactively with undo and redo.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid cell positions, unreadable files)
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "stepgrid version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// setup loads the layered configuration, applies flag overrides and
// initializes logging and colors.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = config.OutputFormat(flagOutput)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	switch cfg.Output.Format {
	case config.OutputFormatTable, config.OutputFormatJSON, config.OutputFormatYAML:
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Output.Format)
	}

	logging.InitForCLI(level, cmd.ErrOrStderr())
	color.Initialize(true)
	if flagNoColor {
		color.Disable()
	}

	appConfig = cfg
	return nil
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newSettingsCmd())

	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "table", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}
