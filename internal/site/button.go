package site

import (
	"strings"

	"github.com/citypaper/citypaper/internal/catalog"
)

// BusyLabel replaces a download button's label while its download is in flight.
const BusyLabel = "Downloading..."

// Button describes one download control on a city page.
type Button struct {
	Kind      string // "poster" or "wallpaper"
	Label     string
	BusyLabel string
	Variant   Variant
	Filename  string
	Source    string
}

// DownloadButtons returns the poster and wallpaper controls for city.
// Both download the same image under different suggested names.
func DownloadButtons(city catalog.City) []Button {
	base := strings.ToLower(city.Name)
	return []Button{
		{
			Kind:      "poster",
			Label:     "Download PDF (Print)",
			BusyLabel: BusyLabel,
			Variant:   Default,
			Filename:  base + "-poster.jpg",
			Source:    city.Image,
		},
		{
			Kind:      "wallpaper",
			Label:     "Download Wallpaper",
			BusyLabel: BusyLabel,
			Variant:   Outline,
			Filename:  base + "-wallpaper.jpg",
			Source:    city.Image,
		},
	}
}
