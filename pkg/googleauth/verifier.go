// Package googleauth verifies Google-issued ID tokens for the OAuth login flow.
package googleauth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

var ErrNotConfigured = errors.New("google client id is not configured")

// Payload is the subset of the Google ID-token claims the backend uses.
type Payload struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// Verifier validates a Google ID token and extracts its identity claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Payload, error)
}

type idTokenVerifier struct {
	clientID string
}

// New returns a Verifier bound to the given OAuth client id. An empty client id
// yields ErrNotConfigured on every call rather than failing at startup.
func New(clientID string) Verifier {
	return &idTokenVerifier{clientID: clientID}
}

func (v *idTokenVerifier) Verify(ctx context.Context, token string) (*Payload, error) {
	if v.clientID == "" {
		return nil, ErrNotConfigured
	}

	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, err
	}

	p := &Payload{GoogleID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		p.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		p.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		p.Picture = picture
	}
	return p, nil
}
