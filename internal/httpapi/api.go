// Package httpapi is the HTTP boundary: routing, middleware and the mapping
// from service errors to status codes.
package httpapi

import (
	"net/http"

	"taskhive.org/internal/auth"
	"taskhive.org/internal/obs"
	"taskhive.org/internal/tasks"
)

// API is the HTTP layer. Handlers receive their state through this struct
// rather than package globals.
type API struct {
	mux     *http.ServeMux
	auth    *auth.Service
	tasks   *tasks.Store
	version string
}

// New wires the routes against the given services.
func New(authSvc *auth.Service, taskStore *tasks.Store, version string) *API {
	a := &API{
		mux:     http.NewServeMux(),
		auth:    authSvc,
		tasks:   taskStore,
		version: version,
	}

	a.mux.HandleFunc("/health", a.handleHealth)
	a.mux.HandleFunc("/healthz", a.handleHealthz)
	a.mux.HandleFunc("/readyz", a.handleReady)
	a.mux.Handle("/metrics", obs.Handler())

	a.mux.HandleFunc("/auth/register", a.handleRegister)
	a.mux.HandleFunc("/auth/login", a.handleLogin)
	a.mux.HandleFunc("/auth/refresh", a.handleRefresh)

	a.mux.HandleFunc("/protected", a.handleProtected)
	a.mux.HandleFunc("/me", a.handleMe)
	a.mux.Handle("/admin", RequireRole("admin")(http.HandlerFunc(a.handleAdmin)))
	a.mux.Handle("/user-resource", RequireRole("user")(http.HandlerFunc(a.handleUserResource)))

	a.mux.HandleFunc("/tasks/", a.handleTasks)

	a.mux.Handle("/users", RequireRole("admin")(http.HandlerFunc(a.handleAccountsCollection)))
	a.mux.Handle("/users/", RequireRole("admin")(http.HandlerFunc(a.handleAccountResource)))

	a.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return a
}

// Handler returns the fully assembled middleware chain.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = a.withAuth(h)
	h = MaxBodyBytes(h, 1<<20)
	h = CORS(h)
	h = SecurityHeaders(h)
	h = LoggingJSON(h)
	h = RequestID(h)
	return obs.Instrument(h)
}
