// Package web holds the HTML templates and static assets for the site.
//
// Every page is a clone of the shared layout with one page file parsed on
// top, so each page can define its own "content", "title" and "body-class"
// blocks without colliding.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/alkime/musclememory/internal/catalog"
	"github.com/alkime/musclememory/internal/selection"
	"github.com/gin-gonic/gin/render"
)

// Page template names.
const (
	PageHome     = "home.html"
	PageGroup    = "group.html"
	PageNotFound = "notfound.html"
)

const layoutName = "layout"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// HomePage is the data for the home page.
type HomePage struct {
	Site catalog.Site
	View selection.View
}

// GroupPage is the data for one muscle group's page.
type GroupPage struct {
	Site  catalog.Site
	Group catalog.Group
}

// NotFoundPage is the data for the 404 page.
type NotFoundPage struct {
	Site catalog.Site
	Path string
}

// Templates holds every page template keyed by file name. It implements
// gin's render.HTMLRender.
type Templates struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Templates)(nil)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"inc":  func(i int) int { return i + 1 },
		"join": strings.Join,
		// Values come from the compiled catalog, never from requests.
		"style": func(prop, value string) template.CSS {
			return template.CSS(prop + ": " + value)
		},
		"css": func(decl string) template.CSS {
			return template.CSS(decl)
		},
	}
}

// Load parses the embedded templates.
func Load() (*Templates, error) {
	base, err := template.New("base").Funcs(funcMap()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob page templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		name := path.Base(f)
		if name == "layout.html" {
			continue
		}

		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(templateFS, f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pages[name] = clone
	}

	return &Templates{pages: pages}, nil
}

// Execute renders the named page through the layout.
func (t *Templates) Execute(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return tmpl.ExecuteTemplate(w, layoutName, data)
}

// Instance returns a gin renderer for the named page.
func (t *Templates) Instance(name string, data any) render.Render {
	tmpl, ok := t.pages[name]
	if !ok {
		return missingRender{name: name}
	}

	return render.HTML{Template: tmpl, Name: layoutName, Data: data}
}

type missingRender struct {
	name string
}

func (m missingRender) Render(http.ResponseWriter) error {
	return fmt.Errorf("template %q not found", m.name)
}

func (m missingRender) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// Assets returns the embedded CSS and JavaScript, rooted at the assets directory.
func Assets() http.FileSystem {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "assets" is a constant.
		panic(err)
	}

	return http.FS(sub)
}
