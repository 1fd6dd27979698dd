// Package server exposes the session state layer to the console front end as
// a small JSON facade. Rendering is entirely the front end's concern; this
// layer only hands out resolved state.
package server

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/consolekit/consoleauth/auth"
	"github.com/consolekit/consoleauth/identity"
	"github.com/consolekit/consoleauth/session"
)

type Server struct {
	mux      *http.ServeMux
	store    *session.Store
	auth     *auth.Service
	resolver *identity.Resolver
	logger   zerolog.Logger
}

// ServerOption defines a function type to modify the Server instance.
type ServerOption func(*Server)

// WithLogger sets the logger used by the request middleware and handlers.
func WithLogger(logger zerolog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

func New(store *session.Store, authService *auth.Service, resolver *identity.Resolver, options ...ServerOption) *Server {
	server := &Server{
		mux:      http.NewServeMux(),
		store:    store,
		auth:     authService,
		resolver: resolver,
		logger:   log.Logger,
	}
	for _, opt := range options {
		opt(server)
	}
	server.initRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) initRoutes() {
	// Session ingest and state
	s.RegisterRouteFunc("POST "+RouteSession, ChainMiddleware(s.StoreSessionHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteSession, ChainMiddleware(s.SessionStateHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("PATCH "+RouteSessionUser, ChainMiddleware(s.UpdateUserHandler(), s.APIMiddleware()...))

	// Identity for display
	s.RegisterRouteFunc("GET "+RouteIdentity, ChainMiddleware(s.IdentityHandler(), s.APIMiddleware()...))

	// Forced logout
	s.RegisterRouteFunc("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
}
