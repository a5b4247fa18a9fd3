package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/citypaper/citypaper/internal/catalog"
	"github.com/citypaper/citypaper/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search cities by name",
	Long: `Search cities by name. Matching is case-insensitive and looks for the
query anywhere in the name.

Examples:
  citypaper search par
  citypaper search "saint etienne"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

type searchOutput struct {
	Query      string         `json:"query"`
	Cities     []catalog.City `json:"cities"`
	DidYouMean *catalog.City  `json:"did_you_mean,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd.Context())
	if err != nil {
		return err
	}

	f := search.NewFilterer(e.store)
	res := f.Filter(strings.Join(args, " "))

	out := searchOutput{Query: res.Query, Cities: res.Cities}
	if res.Empty {
		if m, ok := f.Closest(res.Query); ok {
			out.DidYouMean = &m.City
			e.log.Debug("closest match", "query", res.Query, "city", m.City.ID, "score", m.Score)
		}
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, out)
	}

	if res.NoCatalog {
		fmt.Fprintln(w, "The catalog is empty")
		return nil
	}
	if res.Empty {
		fmt.Fprintln(w, "No cities found")
		if out.DidYouMean != nil {
			fmt.Fprintf(w, "Did you mean %s? (citypaper show %s)\n", out.DidYouMean.Name, out.DidYouMean.ID)
		}
		return nil
	}

	fmt.Fprintf(w, "Found %d cities for %q:\n\n", len(res.Cities), res.Query)
	printCities(w, res.Cities)
	return nil
}
