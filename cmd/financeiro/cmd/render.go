package cmd

import (
	"fmt"

	"github.com/nfrund/financeiro/internal/config"
	"github.com/nfrund/financeiro/internal/export"
	"github.com/nfrund/financeiro/internal/pageregistry"
	"github.com/nfrund/financeiro/internal/rendering"
	"github.com/nfrund/financeiro/internal/server"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// outputFs is where exported pages are written.
var outputFs afero.Fs = afero.NewOsFs()

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render [path]",
	Short: "Render a page to stdout, or export pages as static HTML with --out",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		reg, err := server.NewPageRegistry()
		if err != nil {
			return err
		}
		x := export.New(outputFs, rendering.NewUniversalRenderer(), cfg.AppName)

		var selected []pageregistry.Page
		switch {
		case len(args) == 1:
			p, ok := reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no page registered at %s", args[0])
			}
			selected = []pageregistry.Page{p}
		case renderOut == "":
			p, _ := reg.Lookup(server.CashFlowPath)
			selected = []pageregistry.Page{p}
		default:
			selected = reg.Pages()
		}

		if renderOut == "" {
			body, err := x.Render(cmd.Context(), selected[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		}

		written, err := x.ExportAll(cmd.Context(), selected, renderOut)
		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return err
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "directory to export static HTML into")
	rootCmd.AddCommand(renderCmd)
}
