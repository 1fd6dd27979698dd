// Package token inspects stored bearer tokens for display purposes.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Inspection is a non-authoritative view of a bearer token's claims, for UI
// hints like "session expires soon". The signature is never verified here and
// authorization decisions must not be based on it; the issuing server remains
// the authority on token validity.
type Inspection struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect parses raw as a JWT without verifying its signature. Tokens that are
// not JWTs (the credential is opaque to this layer) simply fail to parse.
func Inspect(raw string) (*Inspection, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return nil, errors.Wrap(err, "[token.Inspect] ParseUnverified")
	}

	inspection := &Inspection{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.IssuedAt != nil {
		inspection.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		inspection.ExpiresAt = claims.ExpiresAt.Time
	}
	return inspection, nil
}

// Expired reports whether the token carries an exp claim in the past. Tokens
// without an exp claim never report expired.
func (i *Inspection) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}
