package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/GregMSThompson/finance-insights/internal/handlers"
	"github.com/GregMSThompson/finance-insights/internal/middleware"
)

// NewRouter mounts every route behind request logging and CORS. Only
// /healthz is reachable without a Firebase ID token.
func NewRouter(deps *handlers.Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ah := handlers.NewAnalysisHandlers(deps)
	gh := handlers.NewGoalHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	mw := middleware.NewMiddleware(deps.Verifier)

	r.Group(func(r chi.Router) {
		r.Use(mw.FirebaseAuth)
		r.Mount("/analysis", ah.AnalysisRoutes())
		r.Mount("/goals", gh.GoalRoutes())
		r.Mount("/transactions", th.TransactionRoutes())
	})

	return cors.New(cors.Options{
		AllowedOrigins: deps.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler(r)
}
