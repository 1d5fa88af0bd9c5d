package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "financeiro",
	Short: "Financeiro web application",
	Long: `Financeiro serves the financial management pages.

Available commands:
  serve      Run the HTTP server
  render     Render pages to stdout or export them as static HTML
  pages      List the registered pages
  version    Print the version

Use "financeiro [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
