/*
Package session implements the session manager: the mapping from opaque
session tokens to authenticated accounts.

Tokens are signed JWTs carrying the account's stable handle and a random
nonce, but the live-token map stays authoritative: a token unknown to the map
is invalid regardless of its signature, and a full reset invalidates all
tokens at once. Sessions never expire on their own.
*/
package session

import (
	"github.com/rs/zerolog"

	"kith/internal/app/account"
	"kith/internal/pkg/auth/jwt"
	"kith/internal/pkg/errs"
	"kith/internal/pkg/logx"
	"kith/internal/pkg/randx"
)

// Manager issues and resolves session tokens. Multiple concurrent sessions
// per account are permitted.
//
// Like the Directory, it relies on the owning service for serialization.
type Manager struct {
	// secret signs issued tokens.
	secret string

	// tokens maps each live token to the authenticated account's handle.
	tokens map[string]string

	// structured logger with SessionManager context.
	logger zerolog.Logger
}

// NewManager constructs an empty session Manager signing tokens with secret.
func NewManager(secret string) *Manager {
	return &Manager{
		secret: secret,
		tokens: make(map[string]string),
		logger: logx.Logger().With().Str("component", "SessionManager").Logger(),
	}
}

// Issue mints a token bound to the given account and records it as live.
// The caller has already authenticated the account.
func (m *Manager) Issue(acc *account.Account) (string, *errs.CustomError) {
	nonce, err := randx.TokenNonce()
	if err != nil {
		logx.Error(err, "failed to generate session token nonce")
		return "", errs.NewError(errs.ErrUnknown, err)
	}

	payload := &jwt.Payload{
		AccountID: acc.Handle,
		Login:     acc.Login,
		Nonce:     nonce,
	}

	token, err := jwt.GenerateToken(payload, m.secret)
	if err != nil {
		logx.Error(err, "failed to sign session token")
		return "", errs.NewError(errs.ErrUnknown, err)
	}

	m.tokens[token] = acc.Handle

	m.logger.Info().Str("login", acc.Login).Int("live_sessions", len(m.tokens)).Msg("Session opened.")
	return token, nil
}

// Resolve returns the account handle bound to a live token. Unknown tokens
// fail with ErrAccountNotFound, the unauthenticated outcome surfaced to callers.
func (m *Manager) Resolve(token string) (string, *errs.CustomError) {
	handle, ok := m.tokens[token]
	if !ok {
		return "", errs.NewError(errs.ErrAccountNotFound)
	}
	return handle, nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	return len(m.tokens)
}

// Reset invalidates every live session.
func (m *Manager) Reset() {
	m.tokens = make(map[string]string)

	m.logger.Info().Msg("All sessions invalidated.")
}
