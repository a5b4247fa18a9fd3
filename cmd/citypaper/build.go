package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citypaper/citypaper/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long:  "Renders the catalog page, one page per city and the not-found page into the output directory.",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("out", "", "Output directory (default: site.out)")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")

	e, err := loadEnv(cmd.Context())
	if err != nil {
		return err
	}
	if out == "" {
		out = e.cfg.Site.Out
	}

	r, err := site.NewRenderer(e.store, site.WithTitle(e.cfg.Site.Title))
	if err != nil {
		return err
	}
	pages, err := r.Build(cmd.Context(), out, e.log.With("component", "site"))
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]any{"dir": out, "pages": pages})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages in %s\n", pages, out)
	return nil
}
