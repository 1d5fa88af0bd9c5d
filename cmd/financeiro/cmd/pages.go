package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/financeiro/internal/server"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the registered pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := server.NewPageRegistry()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tTITLE")
		for _, p := range reg.Pages() {
			fmt.Fprintf(w, "%s\t%s\n", p.Path, p.Title)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}
