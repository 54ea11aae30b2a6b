package routes

import "net/http"

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux) {
	RegisterChatRoutes(mux)
	RegisterSessionRoutes(mux)
}
