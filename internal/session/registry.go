// Package session keeps the in-memory mapping from login sessions to the
// client that owns them. Sessions live until the process exits.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// Registry binds session ids to client ids
type Registry struct {
	mu       sync.Mutex
	sessions map[string]string // session id -> client id
	secret   []byte
}

// NewRegistry returns an empty registry signing tokens with signingKey
func NewRegistry(signingKey []byte) *Registry {
	return &Registry{
		sessions: make(map[string]string),
		secret:   signingKey,
	}
}

// CreateSession starts a session for clientID and returns its bearer token
func (r *Registry) CreateSession(clientID string) (string, error) {
	sid := uuid.New().String()

	claims := jwt.RegisteredClaims{
		ID:      sid,
		Subject: clientID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	r.mu.Lock()
	r.sessions[sid] = clientID
	r.mu.Unlock()

	return token, nil
}

// Resolve returns the client id bound to token. Tokens that are malformed,
// signed with another key or refer to an unknown session resolve to false.
func (r *Registry) Resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return r.secret, nil
	})
	if err != nil || !parsed.Valid || claims.ID == "" {
		return "", false
	}

	r.mu.Lock()
	clientID, ok := r.sessions[claims.ID]
	r.mu.Unlock()

	if !ok || clientID != claims.Subject {
		return "", false
	}
	return clientID, true
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
