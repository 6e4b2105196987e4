// Package uploads serves the uploads directory verbatim at /uploads/.
// There is no access control; the directory holds public assets only.
package uploads

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

// Register attaches the static file routes to r. A missing directory is
// tolerated; requests then answer 404 like any other missing file.
func Register(_ context.Context, r chi.Router, dir string) {
	if r == nil {
		panic("router is nil")
	}
	if dir == "" {
		dir = "uploads"
	}
	// Best-effort creation so a fresh checkout serves an empty directory
	// instead of surprising 404s on the prefix.
	_ = os.MkdirAll(dir, 0o755)

	files := http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir)))
	r.Handle("/uploads/*", files)
}
