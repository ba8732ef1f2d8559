package api

import (
	"database/sql"
	"net/http"

	"github.com/rs/cors"

	"github.com/iowah/garagelog/internal/service"
)

// NewRouter creates the API router with all endpoints registered. Cross-origin
// requests are permitted, with credentials, from the given origins (the local
// development frontend).
func NewRouter(db *sql.DB, origins []string) http.Handler {
	mux := http.NewServeMux()

	modsHandler := &ModsHandler{Mods: &service.ModService{DB: db}}

	mux.HandleFunc("GET /mods", modsHandler.List)
	mux.HandleFunc("POST /mods", modsHandler.Create)
	mux.HandleFunc("GET /mods/{id}", modsHandler.Get)
	mux.HandleFunc("PATCH /mods/{id}", modsHandler.Update)
	mux.HandleFunc("DELETE /mods/{id}", modsHandler.Delete)

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler(mux)
}
