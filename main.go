package main

import (
	"net/http"
	"os"

	"digitull1/wonderwhiz-api/chat"
	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/handlers"
	"digitull1/wonderwhiz-api/llm"
	"digitull1/wonderwhiz-api/middleware"
	"digitull1/wonderwhiz-api/routes"
	"digitull1/wonderwhiz-api/supabase"
)

func main() {

	config.InitLogger()
	config.LoadEnv()
	supabase.Init()

	provider := llm.Model(os.Getenv("WONDERWHIZ_PROVIDER"))
	if provider == "" {
		provider = llm.Groq
	}
	generator, err := llm.NewClient(provider)
	if err != nil {
		config.Logger.Fatal("Failed to create generation client: ", err)
	}

	handlers.Setup(chat.NewManager(generator))

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("Server is running on port ", port)
	config.Logger.Fatal(http.ListenAndServe(":"+port, handler))
}
