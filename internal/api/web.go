package api

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// staticHandler serves the simulator widget page and its assets.
func staticHandler(logger *slog.Logger) http.Handler {
	content, err := fs.Sub(staticFS, "static")
	if err != nil {
		logger.Error("embedded static files unavailable", "error", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(content))
}
