// Package session implements the stateless session token: a signed JWT held
// by the client in a cookie, encoding only the user id. Tokens are not stored
// server-side, integrity relies on the HMAC signature.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName имя cookie с токеном сессии
const CookieName = "session"

// Claims представляет JWT claims токена сессии
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager issues and resolves session tokens
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager создает новый session manager
// secret должен быть криптографически стойкой случайной строкой
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Establish creates a new signed token encoding only the user id
func (m *Manager) Establish(userID int64) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "gophblog",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Resolve returns the user id encoded in the token. A missing, malformed,
// expired or forged token yields ok=false, never an error: the caller treats
// that as an anonymous request.
func (m *Manager) Resolve(tokenString string) (int64, bool) {
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, false
	}

	return claims.UserID, true
}

// SetCookie hands the token to the client
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true, // недоступна из JS
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie invalidates the session on the client
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// TokenFromRequest extracts the session token from the request cookie,
// empty string if the cookie is absent
func (m *Manager) TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
