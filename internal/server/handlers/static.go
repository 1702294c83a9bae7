package handlers

import (
	"embed"
	"net/http"
)

//go:embed static/*.css
var staticFS embed.FS

// Static serves embedded assets (stylesheet) under /static/
func Static() http.Handler {
	return http.FileServerFS(staticFS)
}
