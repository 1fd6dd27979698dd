package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/consolekit/consoleauth/auth"
	"github.com/consolekit/consoleauth/session"
	"github.com/consolekit/consoleauth/token"
)

// sessionStateResponse is what the front end polls to decide which UI state
// to render (logged out, pending activation, active).
type sessionStateResponse struct {
	Active         bool          `json:"active"`
	User           *session.User `json:"user,omitempty"`
	TokenType      string        `json:"tokenType,omitempty"`
	TokenExpiresAt *time.Time    `json:"tokenExpiresAt,omitempty"`
}

// StoreSessionHandler ingests the login collaborator's payload and persists
// it as the current session, replacing any prior one.
func (s *Server) StoreSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload session.LoginPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid login payload")
			return
		}

		record, err := s.store.Store(r.Context(), payload)
		if err != nil {
			s.logger.Error().Err(err).Msg("storing session")
			writeError(w, http.StatusInternalServerError, "could not persist session")
			return
		}
		writeJSON(w, http.StatusCreated, record)
	}
}

// SessionStateHandler reports the stored session and whether it is active.
// The token expiry is a display hint only; the activation decision never
// consults it.
func (s *Server) SessionStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.store.Get(r.Context())
		if !ok {
			writeJSON(w, http.StatusOK, sessionStateResponse{Active: false})
			return
		}

		response := sessionStateResponse{
			Active:    auth.IsActive(record),
			User:      &record.User,
			TokenType: record.TokenType,
		}
		if inspection, err := token.Inspect(record.AccessToken); err == nil && !inspection.ExpiresAt.IsZero() {
			response.TokenExpiresAt = &inspection.ExpiresAt
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// UpdateUserHandler shallow-merges a patch into the stored user sub-record.
func (s *Server) UpdateUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch session.UserPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid user patch")
			return
		}

		record, err := s.store.UpdateStoredUser(r.Context(), patch)
		if err != nil {
			s.logger.Error().Err(err).Msg("updating stored user")
			writeError(w, http.StatusInternalServerError, "could not persist session")
			return
		}
		if record == nil {
			writeError(w, http.StatusNotFound, "no stored session")
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// IdentityHandler returns the resolved display identity. Always succeeds, per
// the resolver's totality.
func (s *Server) IdentityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.resolver.Resolve(r.Context()))
	}
}

// LogoutHandler destroys the session and redirects the browser to the login
// route.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := s.auth.ForceLogout(r.Context(), func(loginURL string) {
			http.Redirect(w, r, loginURL, http.StatusFound)
		})
		if err != nil {
			s.logger.Error().Err(err).Msg("forced logout")
			writeError(w, http.StatusInternalServerError, "could not clear session")
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
