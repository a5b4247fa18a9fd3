package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citypaper/citypaper/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog data tools",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <out.db>",
	Short: "Export the catalog to an SQLite database",
	Long:  "Writes the loaded catalog, in order, to an SQLite file usable as catalog.source.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogExport,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd.Context())
	if err != nil {
		return err
	}

	if err := catalog.ExportSQLite(cmd.Context(), args[0], e.store.All()); err != nil {
		return fmt.Errorf("export catalog: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cities to %s\n", e.store.Len(), args[0])
	return nil
}
