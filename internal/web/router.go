package web

import (
	"database/sql"
	"net/http"

	"github.com/iowah/garagelog/internal/service"
	webembed "github.com/iowah/garagelog/web"
)

// NewRouter creates the web page router.
func NewRouter(db *sql.DB) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Templates: templates,
		Mods:      &service.ModService{DB: db},
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.Dashboard)

	return mux, nil
}
