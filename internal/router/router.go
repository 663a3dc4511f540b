package router

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/savi-dev/savi/internal/setup"
	mw "github.com/savi-dev/savi/shared/middleware"
	"github.com/savi-dev/savi/shared/middleware/metrics"
	rl "github.com/savi-dev/savi/shared/middleware/ratelimiter"
)

// New creates and configures the mux router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints combined in that subrouter
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins(deps.Config.Public.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	))

	// JSON API only, no scripts/styles needed
	apiCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.SecureCookies, apiCSP))
	r.Use(metrics.Middleware)

	// Wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Auth routes
	auth := v1.PathPrefix("/auth").Subrouter()

	authRegister := auth.NewRoute().Subrouter()
	authRegister.Use(mw.RateLimit(rl.New(1.0/10.0, 1, time.Hour), mw.GetIP)) // 1 per 10s by IP
	authRegister.Use(mw.GlobalRateLimit(rl.Rps100()))
	authRegister.HandleFunc("/register", h.Register).Methods("POST")

	authLogin := auth.NewRoute().Subrouter()
	authLogin.Use(mw.RateLimit(rl.OnceInSecond(), mw.GetIP)) // 1 per second by IP
	authLogin.Use(mw.GlobalRateLimit(rl.Rps100()))
	authLogin.HandleFunc("/login", h.Login).Methods("POST")

	auth.HandleFunc("/logout", h.Logout).Methods("POST")
	auth.HandleFunc("/remembered", h.RememberedEmail).Methods("GET")

	authPassword := auth.NewRoute().Subrouter()
	authPassword.Use(authMw.NeedAuth())
	authPassword.Use(mw.RateLimit(rl.OnceInSecond(), mw.GetUserEmailFromContext))
	authPassword.HandleFunc("/password", h.ChangePassword).Methods("POST")

	// Forum routes. Reads and voting are open to anonymous viewers; the vote
	// ledger keys them by a cookie-scoped viewer id.
	forum := v1.NewRoute().Subrouter()
	forum.Use(authMw.OptionalAuth())
	forum.HandleFunc("/threads", h.ListThreads).Methods("GET")
	forum.HandleFunc("/threads/{thread}", h.GetThread).Methods("GET")
	forum.HandleFunc("/threads/{thread}/votes", h.VoteThread).Methods("POST")
	forum.Handle("/threads/{thread}/report",
		mw.RateLimit(rl.OnceInMinute(), mw.GetIP)(http.HandlerFunc(h.ReportThread))).Methods("POST")

	// CreateThread: 1 per minute per IP. The role gate handles anonymous and
	// wrong-role callers, so the route itself stays optional-auth.
	forum.Handle("/threads",
		mw.RateLimit(rl.OnceInMinute(), mw.GetIP)(http.HandlerFunc(h.CreateThread)),
	).Methods("POST")

	// Commenting requires authentication
	comments := v1.NewRoute().Subrouter()
	comments.Use(authMw.NeedAuth())
	comments.Use(mw.RateLimit(rl.OnceInSecond(), mw.GetUserEmailFromContext))
	comments.HandleFunc("/threads/{thread}/comments", h.CreateComment).Methods("POST")

	// Notification center, owner-scoped
	notifications := v1.PathPrefix("/notifications").Subrouter()
	notifications.Use(authMw.NeedAuth())
	notifications.Use(mw.RateLimit(rl.Rps10(), mw.GetUserEmailFromContext))
	notifications.HandleFunc("", h.ListNotifications).Methods("GET")
	notifications.HandleFunc("/read_all", h.MarkAllNotificationsRead).Methods("POST")
	notifications.HandleFunc("/{notification}/read", h.MarkNotificationRead).Methods("POST")
	notifications.HandleFunc("/{notification}", h.DeleteNotification).Methods("DELETE")

	// Registration approval is admin-only; the policy re-checks inside the service
	admin := v1.NewRoute().Subrouter()
	admin.Use(authMw.AdminOnly())
	admin.HandleFunc("/notifications/{notification}/resolve", h.ResolveRegistration).Methods("POST")

	return r
}
