package site

import (
	"fmt"

	"github.com/citypaper/citypaper/internal/catalog"
)

// DefaultTitle is the site name used in page titles.
const DefaultTitle = "CityPaper"

// NotFoundTitle is the title of the page shown for unknown ids.
const NotFoundTitle = "City not found"

// Meta is the document title and description of a page.
type Meta struct {
	Title       string
	Description string
}

// Metadata returns the metadata of the detail page for id.
func Metadata(store *catalog.Store, id string) Meta {
	return metadata(DefaultTitle, store, id)
}

func metadata(title string, store *catalog.Store, id string) Meta {
	city, err := store.ByID(id)
	if err != nil {
		return Meta{Title: NotFoundTitle}
	}
	return Meta{
		Title: fmt.Sprintf("%s | %s | %s", title, city.Name, city.Country),
		Description: fmt.Sprintf("Minimalist poster of %s, %s. Download the poster or the wallpaper.",
			city.Name, city.Country),
	}
}
