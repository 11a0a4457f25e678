package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pauloatx/page-teste02/internal/config"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

func SetupRoutes(cfg *config.Config, repo repository.RequestRepo) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware(cfg.AllowedOrigins))
	r.Use(RecoveryMiddleware)
	r.Use(NewRateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window).Middleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	atendimentosHandler := NewAtendimentosHandler(repo, cfg.MaxBodyBytes)

	r.HandleFunc("/", systemHandler.RootHandler).Methods("GET")
	r.HandleFunc("/cadastro", systemHandler.CadastroHandler).Methods("GET")

	r.HandleFunc("/api/atendimentos", atendimentosHandler.Create).Methods("POST")
	r.HandleFunc("/api/atendimentos", atendimentosHandler.List).Methods("GET")

	// preflight requests are answered by the CORS middleware
	r.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	return r
}
