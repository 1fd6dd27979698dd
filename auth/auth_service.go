// Package auth decides whether the stored session may act as an
// authenticated admin, and tears sessions down.
package auth

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/consolekit/consoleauth/session"
)

// StatusActive is the only user status that counts as a usable login.
const StatusActive = "active"

// RedirectFunc performs the full-page navigation after a forced logout.
// The server layer supplies an http.Redirect-backed implementation; tests
// supply a recorder.
type RedirectFunc func(loginURL string)

// IsActive reports whether record is usable as an authenticated admin
// session: present, carrying a bearer token, with an assigned role and an
// "active" status. All four conditions are required. A stored-but-inactive
// session models the window between login and provisioning, where a role and
// status have not been assigned yet. Pure function of its input, no I/O.
func IsActive(record *session.Record) bool {
	if record == nil {
		return false
	}
	if record.AccessToken == "" {
		return false
	}
	if record.User.Role == "" {
		return false
	}
	return record.User.Status == StatusActive
}

// Service applies the activation policy over the session store.
type Service struct {
	store     *session.Store
	loginPath string
	logger    zerolog.Logger
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithLogger sets the logger used on forced logouts.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// NewService initializes a Service. loginPath is the route ForceLogout
// navigates to.
func NewService(store *session.Store, loginPath string, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("[NewService] session store is required")
	}
	if loginPath == "" {
		return nil, errors.New("[NewService] login path is required")
	}

	service := &Service{
		store:     store,
		loginPath: loginPath,
		logger:    log.Logger,
	}
	for _, opt := range options {
		opt(service)
	}
	return service, nil
}

// GetActive returns the stored session only when it passes IsActive. This is
// the accessor everything downstream should use to decide whether someone is
// authenticated enough to act.
func (s *Service) GetActive(ctx context.Context) (*session.Record, bool) {
	record, ok := s.store.Get(ctx)
	if !ok || !IsActive(record) {
		return nil, false
	}
	return record, true
}

// ForceLogout destroys the session unconditionally and hands the login route
// to the redirect collaborator, which is invoked exactly once. Safe to call
// with no session present. Server-side token revocation is the login
// collaborator's job, not this layer's.
func (s *Service) ForceLogout(ctx context.Context, redirect RedirectFunc) error {
	if err := s.store.Clear(ctx); err != nil {
		return errors.Wrap(err, "[Service.ForceLogout] store.Clear")
	}
	s.logger.Info().Str("redirect", s.loginPath).Msg("forced logout")
	redirect(s.loginPath)
	return nil
}
