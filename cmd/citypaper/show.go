package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/citypaper/citypaper/internal/catalog"
	"github.com/citypaper/citypaper/internal/download"
	"github.com/citypaper/citypaper/internal/site"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a city with its downloads and suggestions",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

type buttonOutput struct {
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Variant  string `json:"variant"`
	Filename string `json:"filename"`
	Source   string `json:"source"`
}

type showOutput struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	City        catalog.City   `json:"city"`
	Downloads   []buttonOutput `json:"downloads"`
	Suggestions []catalog.City `json:"suggestions"`
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd.Context())
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	id := args[0]
	city, err := e.store.ByID(id)
	if errors.Is(err, catalog.ErrNotFound) {
		fmt.Fprintln(w, errorStyle.Render(site.NotFoundTitle))
		return err
	}
	if err != nil {
		return err
	}
	suggestions, err := e.store.SuggestionsFor(id)
	if err != nil {
		return err
	}

	meta := site.Metadata(e.store, id)
	out := showOutput{
		Title:       meta.Title,
		Description: meta.Description,
		City:        city,
		Suggestions: suggestions,
	}
	for _, b := range site.DownloadButtons(city) {
		out.Downloads = append(out.Downloads, buttonOutput{
			Kind:     b.Kind,
			Label:    b.Label,
			Variant:  b.Variant.String(),
			Filename: b.Filename,
			Source:   download.ResolveLocator(e.cfg.Download.BaseURL, b.Source),
		})
	}

	if jsonOutput {
		return printJSON(w, out)
	}
	printShow(w, out)
	return nil
}

func printShow(w io.Writer, out showOutput) {
	fmt.Fprintln(w, headingStyle.Render(out.City.Name))
	fmt.Fprintln(w, out.City.Country)
	fmt.Fprintln(w, dimStyle.Render(out.City.Coordinates))
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Download the poster"))
	for _, d := range out.Downloads {
		v, _ := site.ParseVariant(d.Variant)
		fmt.Fprintf(w, "  %s  %s  (citypaper download %s --variant %s)\n",
			v.Render(d.Label), d.Filename, out.City.ID, d.Kind)
	}
	fmt.Fprintln(w, dimStyle.Render("License: ODbL (OpenStreetMap)"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("You may also like"))
	for _, s := range out.Suggestions {
		fmt.Fprintf(w, "  %s  %s\n", site.Link.Render("["+s.Name+"]"), dimStyle.Render(s.ID))
	}
}
