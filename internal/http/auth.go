package http

import (
	"context"
	"net/http"
	"strings"
)

// Authenticator resolves the owner behind a request. The token scheme is
// deliberately simple; swapping in a real identity provider only needs a
// new implementation of this interface.
type Authenticator interface {
	Authenticate(r *http.Request) (ownerID string, ok bool)
}

// TokenAuthenticator maps static bearer tokens to owner identifiers.
type TokenAuthenticator struct {
	owners map[string]string
}

func NewTokenAuthenticator(tokenOwners map[string]string) *TokenAuthenticator {
	return &TokenAuthenticator{owners: tokenOwners}
}

var _ Authenticator = (*TokenAuthenticator)(nil)

func (a *TokenAuthenticator) Authenticate(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return "", false
	}
	owner, ok := a.owners[strings.TrimSpace(token)]
	return owner, ok
}

type ctxKey string

const ctxKeyOwnerID ctxKey = "owner_id"

func withOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ctxKeyOwnerID, ownerID)
}

// ownerID returns the authenticated owner from the request context. The
// auth middleware guarantees it is set on every protected route.
func ownerID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKeyOwnerID).(string)
	return id
}
