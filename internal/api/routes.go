package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("GET /languages", handler.HandleLanguages)
	mux.HandleFunc("GET /health", handler.HandleHealth)
}

// NewRouter returns the API mux wrapped in the request id middleware
func NewRouter(handler *Handler) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, handler)
	return WithRequestID(handler.logger, mux)
}
