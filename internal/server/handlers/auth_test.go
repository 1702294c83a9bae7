package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vblinov/gophblog/internal/server/auth"
	"github.com/vblinov/gophblog/internal/server/session"
)

// mockCredentials is a mock implementation of CredentialService for testing
type mockCredentials struct {
	registerErr error
	verifyErr   error
	registerID  int64
	verifyID    int64
}

func (m *mockCredentials) Register(ctx context.Context, username, password string) (int64, error) {
	if m.registerErr != nil {
		return 0, m.registerErr
	}
	return m.registerID, nil
}

func (m *mockCredentials) Verify(ctx context.Context, username, password string) (int64, error) {
	if m.verifyErr != nil {
		return 0, m.verifyErr
	}
	return m.verifyID, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthHandler(credentials *mockCredentials) *AuthHandler {
	sessions := session.NewManager("test-secret", time.Hour)
	return NewAuthHandler(testLogger(), credentials, sessions)
}

func postForm(t *testing.T, handler http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func TestAuthHandler_Register_RendersForm(t *testing.T) {
	h := newAuthHandler(&mockCredentials{})

	r := httptest.NewRequest(http.MethodGet, "/auth/register", nil)
	w := httptest.NewRecorder()
	h.Register(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Register")
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := newAuthHandler(&mockCredentials{registerID: 1})

	w := postForm(t, h.Register, "/auth/register", url.Values{
		"username": {"a"},
		"password": {"a"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestAuthHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		err         error
		name        string
		username    string
		wantMessage string
	}{
		{
			name:        "empty username",
			err:         auth.ErrUsernameRequired,
			wantMessage: "Username is required.",
		},
		{
			name:        "empty password",
			err:         auth.ErrPasswordRequired,
			username:    "a",
			wantMessage: "Password is required.",
		},
		{
			name:        "duplicate username",
			err:         auth.ErrDuplicateUsername,
			username:    "test",
			wantMessage: "User test is already registered.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(&mockCredentials{registerErr: tt.err})

			w := postForm(t, h.Register, "/auth/register", url.Values{
				"username": {tt.username},
				"password": {""},
			})

			// Ошибка показывается на форме, редиректа на login не происходит
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Header().Get("Location"))
			assert.Contains(t, w.Body.String(), tt.wantMessage)
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := newAuthHandler(&mockCredentials{verifyID: 1})

	w := postForm(t, h.Login, "/auth/login", url.Values{
		"username": {"test"},
		"password": {"test"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Сессия устанавливается и резолвится обратно в тот же user id
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)

	userID, ok := session.NewManager("test-secret", time.Hour).Resolve(cookies[0].Value)
	require.True(t, ok)
	assert.Equal(t, int64(1), userID)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		err         error
		name        string
		wantMessage string
	}{
		{
			name:        "unknown username",
			err:         auth.ErrUnknownUser,
			wantMessage: "Incorrect username.",
		},
		{
			name:        "wrong password",
			err:         auth.ErrBadPassword,
			wantMessage: "Incorrect password.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(&mockCredentials{verifyErr: tt.err})

			w := postForm(t, h.Login, "/auth/login", url.Values{
				"username": {"test"},
				"password": {"wrong"},
			})

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMessage)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := newAuthHandler(&mockCredentials{})

	r := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	w := httptest.NewRecorder()
	h.Logout(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
