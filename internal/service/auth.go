package service

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-locker-sync/internal/utils"
)

// TokenAuthContext is an [AuthContext] backed by the signed-in user's token.
// The token is only decoded; the cloud verifies it on every request.
type TokenAuthContext struct {
	mu     sync.RWMutex
	userID string
	token  string
}

func NewTokenAuthContext() *TokenAuthContext {
	return &TokenAuthContext{}
}

// SignIn takes a JWT, bare or as a Bearer header value, and makes its
// subject the current user.
func (a *TokenAuthContext) SignIn(token string) (string, error) {
	raw, err := utils.ParseBearerToken(token)
	if err != nil {
		return "", fmt.Errorf("sign in: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(raw)
	if err != nil {
		return "", fmt.Errorf("sign in: %w", err)
	}

	a.mu.Lock()
	a.userID, a.token = userID, raw
	a.mu.Unlock()

	return userID, nil
}

func (a *TokenAuthContext) SignOut() {
	a.mu.Lock()
	a.userID, a.token = "", ""
	a.mu.Unlock()
}

// CurrentUserID implements AuthContext.
func (a *TokenAuthContext) CurrentUserID() (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userID, a.userID != ""
}

// Token returns the raw token of the signed-in user, empty when signed out.
func (a *TokenAuthContext) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}
