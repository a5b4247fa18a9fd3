package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/citypaper/citypaper/internal/catalog"
	"github.com/citypaper/citypaper/internal/search"
)

//go:embed templates/*.html
var templateFS embed.FS

// funcs are available to every template. lower matches the client-side
// filter in catalog.html, which compares lowercased names.
var funcs = template.FuncMap{
	"lower": strings.ToLower,
}

// Renderer renders site pages from a catalog.
type Renderer struct {
	store    *catalog.Store
	filterer *search.Filterer
	title    string
	now      func() time.Time
	pages    map[string]*template.Template
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTitle sets the site name used in titles and the footer.
func WithTitle(title string) RendererOption {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
	}
}

// NewRenderer parses the embedded templates.
func NewRenderer(store *catalog.Store, opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{
		store:    store,
		filterer: search.NewFilterer(store),
		title:    DefaultTitle,
		now:      time.Now,
		pages:    make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(r)
	}

	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	for _, page := range []string{"catalog", "city", "notfound"} {
		t, err := template.Must(base.Clone()).ParseFS(templateFS, "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

type pageData struct {
	Meta      Meta
	SiteTitle string
	Year      int
	Back      Variant
}

type catalogData struct {
	pageData
	Query  string
	Cities []catalog.City
	Empty     bool
	NoCatalog bool
	Hint      *catalog.City
}

type cityData struct {
	pageData
	City        catalog.City
	Buttons     []Button
	Suggestions []catalog.City
	Suggest     Variant
}

func (r *Renderer) page(meta Meta) pageData {
	return pageData{Meta: meta, SiteTitle: r.title, Year: r.now().Year(), Back: Link}
}

// Catalog renders the grid of cities whose names match query. A query with no
// match renders the "no cities found" block, with a hint when a close name
// exists; an empty catalog renders its own block. The page also filters the
// grid in the browser as the user types, so the static index needs no server.
func (r *Renderer) Catalog(w io.Writer, query string) error {
	res := r.filterer.Filter(query)
	data := catalogData{
		pageData: r.page(Meta{
			Title:       r.title,
			Description: "Minimalist city maps for your walls.",
		}),
		Query:     res.Query,
		Cities:    res.Cities,
		Empty:     res.Empty,
		NoCatalog: res.NoCatalog,
	}
	if res.Empty {
		if m, ok := r.filterer.Closest(query); ok {
			data.Hint = &m.City
		}
	}
	return r.execute(w, "catalog", data)
}

// City renders the detail page for id, or the not-found page when id is unknown.
// It returns catalog.ErrNotFound in the latter case after rendering.
func (r *Renderer) City(w io.Writer, id string) error {
	city, err := r.store.ByID(id)
	if err != nil {
		if rerr := r.NotFound(w); rerr != nil {
			return rerr
		}
		return err
	}
	suggestions, err := r.store.SuggestionsFor(id)
	if err != nil {
		return err
	}

	return r.execute(w, "city", cityData{
		pageData:    r.page(metadata(r.title, r.store, id)),
		City:        city,
		Buttons:     DownloadButtons(city),
		Suggestions: suggestions,
		Suggest:     Link,
	})
}

// NotFound renders the not-found page.
func (r *Renderer) NotFound(w io.Writer) error {
	return r.execute(w, "notfound", r.page(Meta{Title: NotFoundTitle}))
}

func (r *Renderer) execute(w io.Writer, page string, data any) error {
	if err := r.pages[page].ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return nil
}
