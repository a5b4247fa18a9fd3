package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/citypaper/citypaper/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every city in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv(cmd.Context())
	if err != nil {
		return err
	}

	cities := e.store.All()
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), cities)
	}
	printCities(cmd.OutOrStdout(), cities)
	return nil
}

func printCities(w io.Writer, cities []catalog.City) {
	fmt.Fprintf(w, "%-20s  %-24s  %s\n", "ID", "NAME", "COUNTRY")
	for _, c := range cities {
		fmt.Fprintf(w, "%-20s  %-24s  %s\n", c.ID, c.Name, c.Country)
	}
}
