package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the sheetcal application
var rootCmd = &cobra.Command{
	Use:   "sheetcal",
	Short: "Synchronizes a school schedule spreadsheet into Google Calendar",
	Long: `sheetcal reads schedule rows from a Google Sheets spreadsheet, turns them
into calendar events with stable identifiers, and reconciles a Google Calendar
against them: new rows become events, edited rows update their events, and
removed rows delete theirs.

It can run as:
  - A one-shot CLI tool (default)
  - A daemon that synchronizes on a schedule (serve)`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// configFile is the path to the YAML configuration file.
var configFile string

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "sheetcal version %s\n" .Version}}`)

	// If no subcommand is provided, run a single sync pass by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "sync")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "sheetcal.yaml", "Path to the configuration file")

	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
