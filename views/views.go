package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// New returns the html engine over the embedded templates. Templates are
// addressed by file name without extension, e.g. "transport_index".
func New() *html.Engine {
	templates, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(templates), ".html")
	engine.AddFuncMap(map[string]interface{}{
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"eqStatus": func(a fmt.Stringer, b fmt.Stringer) bool {
			return a.String() == b.String()
		},
	})
	return engine
}
