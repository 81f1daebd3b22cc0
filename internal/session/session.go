// Package session assigns every browser an opaque identity carried in a
// signed cookie, so cart state can be keyed without accounts.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "shop_session"

type ctxKey string

const sessionKey ctxKey = "session_id"

func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey).(string)
	return id, ok
}

type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		issuer: "minishop",
		ttl:    ttl,
	}
}

type claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func (m *Manager) newToken(sessionID string) (string, error) {
	now := time.Now()

	c := claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

func (m *Manager) parse(token string) (string, error) {
	var c claims

	tok, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid || c.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	if c.Issuer != "" && c.Issuer != m.issuer {
		return "", errors.New("invalid issuer")
	}

	return c.SessionID, nil
}

// Middleware resolves the caller's session id, minting a fresh one when
// the cookie is absent, expired, or tampered with.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(CookieName); err == nil {
			id, _ = m.parse(c.Value)
		}

		if id == "" {
			id = "s_" + uuid.NewString()
			if tok, err := m.newToken(id); err == nil {
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    tok,
					Path:     "/",
					MaxAge:   int(m.ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
		}

		ctx := context.WithValue(r.Context(), sessionKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
