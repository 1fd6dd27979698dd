// Package identity derives the display identity for the acting admin.
package identity

import (
	"context"
	"strings"

	"github.com/consolekit/consoleauth/session"
)

// Identity is the display-ready view of the acting admin. It is derived fresh
// on every Resolve call and never stored, so it cannot go stale relative to
// the session record.
type Identity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Resolver composes an Identity from the stored session, falling back to a
// seeded default when no session exists.
type Resolver struct {
	store           *session.Store
	defaultIdentity Identity
}

// NewResolver wires the resolver to a session store. defaultIdentity is
// returned unchanged whenever no session is stored.
func NewResolver(store *session.Store, defaultIdentity Identity) *Resolver {
	return &Resolver{
		store:           store,
		defaultIdentity: defaultIdentity,
	}
}

// Resolve never fails: every branch terminates in a defined Identity.
//
// It deliberately reads the raw stored session rather than the active-filtered
// accessor. Identity display does not require an active session, only a stored
// one, so a pending, not-yet-activated session still has a displayable owner.
// That keeps "who is this" separate from the authorization decision.
func (r *Resolver) Resolve(ctx context.Context) Identity {
	record, ok := r.store.Get(ctx)
	if !ok {
		return r.defaultIdentity
	}

	name := composeName(record.User.FirstName, record.User.LastName)
	if name == "" {
		name = record.User.Username
	}
	if name == "" {
		name = r.defaultIdentity.Name
	}

	email := record.User.Mail
	if email == "" {
		email = r.defaultIdentity.Email
	}

	return Identity{
		ID:       record.User.ID,
		Name:     name,
		Email:    email,
		Username: record.User.Username,
	}
}

// composeName space-joins the trimmed name parts, skipping empty ones.
func composeName(firstName, lastName string) string {
	parts := make([]string, 0, 2)
	for _, part := range []string{firstName, lastName} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}
