package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/dashboard/stats", protect(verifier, handler.GetDashboardStats))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/players", protect(verifier, handler.ListPlayers))
	mux.Handle("GET /v1/players/{playerID}", protect(verifier, handler.GetPlayer))
	mux.Handle("GET /v1/players/{playerID}/reports", protect(verifier, handler.ListPlayerReports))
}

func protect(verifier TokenVerifier, fn http.HandlerFunc) http.Handler {
	if verifier == nil {
		return fn
	}
	return RequireAuth(verifier, fn)
}
