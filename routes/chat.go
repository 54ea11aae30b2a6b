package routes

import (
	"net/http"

	"digitull1/wonderwhiz-api/handlers"
)

// RegisterChatRoutes registers all chat-related routes
func RegisterChatRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /chat", handlers.ChatHandler)
	mux.HandleFunc("GET /chat", handlers.GetMessagesHandler)
	mux.HandleFunc("POST /chat/reset", handlers.ResetChatHandler)
	mux.HandleFunc("POST /chat/section", handlers.SectionHandler)
	mux.HandleFunc("POST /chat/block", handlers.BlockHandler)
	mux.HandleFunc("GET /chat/progress", handlers.ProgressHandler)
	mux.HandleFunc("GET /chat/topics/related", handlers.RelatedTopicsHandler)
	mux.HandleFunc("GET /chat/suggestions", handlers.SuggestionsHandler)
}
