package routes

import (
	"net/http"

	"digitull1/wonderwhiz-api/handlers"
)

// RegisterSessionRoutes registers session and profile routes
func RegisterSessionRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /sessions", handlers.GetSessionsHandler)
	mux.HandleFunc("GET /activity", handlers.GetActivityHandler)
	mux.HandleFunc("GET /profile", handlers.GetProfileHandler)
	mux.HandleFunc("PATCH /profile", handlers.UpdateProfileHandler)
}
