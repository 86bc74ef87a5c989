// Package views holds the server-rendered pages, embedded into the binary.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v3"
)

//go:embed *.html layouts/*.html
var files embed.FS

// Layout is the default layout for full pages.
const Layout = "layouts/main"

// Engine returns a template engine over the embedded views.
func Engine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.Reload(reload)
	return engine
}
