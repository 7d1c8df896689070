// Package root contains the root command for the application
package root

import (
	"github.com/mc2tc/tallyNative-sub002/internal/config"
	"github.com/mc2tc/tallyNative-sub002/internal/container"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Category string
	Format   string
	All      bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the resolved configuration after PersistentPreRun
	Cfg *config.Config

	// App is the dependency container shared by all commands
	App *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "tally-pipeline",
		Short: "A CLI tool to classify bookkeeping transactions into pipeline stages.",
		Long: `tally-pipeline partitions transaction records into the pipeline stages
of their business category (purchase, bank, card, sale) and builds the
cross-category reporting-ready aggregate.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to tally-pipeline!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// The --format flag overrides the configured output format
			if SharedFlags.Format == "" {
				SharedFlags.Format = cfg.Output.Format
			}

			App, err = container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Error building application container: %v", err)
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input records file (.json, .yaml or .csv)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (defaults to stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Category, "category", "c", "", "Business category (purchase, bank, card, sale)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format (json or csv)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.All, "all", "a", false, "Show full stage groups instead of previews")
}
