// =============================================================================
// Purchase Order Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pogen)
//   ├── generateCmd (pogen generate)
//   ├── listCmd     (pogen list)
//   ├── exportCmd   (pogen export)
//   ├── vendorCmd   (pogen vendor list|save|use)
//   ├── settingsCmd (pogen settings show)
//   ├── inspectCmd  (pogen inspect)
//   └── versionCmd  (pogen version)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command:
//   1. Loads the main configuration (file, .env, POGEN_* environment)
//   2. Sets up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/po-generator/internal/config"
	"github.com/ginjaninja78/po-generator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig is the loaded main configuration.
var appConfig *config.MainConfig

// logger is the application logger, set up before each command runs.
var logger = zap.NewNop()

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pogen",
	Short: "Purchase Order Generator - Turn shop order exports into vendor POs",
	Long: `Purchase Order Generator reads an order export from an online shop,
adds up the quantities ordered per product and size, and writes a
purchase order PDF for the selected products.

Key Features:
  - Size detection from item names ("Rashguard - XL", "Gi / A2")
  - CSV and XLSX order exports
  - Saved company, vendor and ship-to details
  - Spreadsheet summary of all ordered sizes

Example Usage:
  pogen list                          # Show products in orders_export.csv
  pogen generate --product Gi         # PO for one product
  pogen generate --all                # PO for every product
  pogen export --output summary.xlsx  # Size summary spreadsheet`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync(logger)
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: the main configuration file. A missing file means
	// defaults.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// initApp loads the configuration and builds the logger.
func initApp() error {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.Output = cfg.LogFile
	if verbose {
		logCfg.Level = "debug"
	}

	l, err := logging.New(logCfg)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l
	logger.Debug("configuration loaded", zap.String("config", cfgFile), zap.String("input", cfg.InputFile))
	return nil
}
