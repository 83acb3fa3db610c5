package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	req := require.New(t)
	tokens := NewTokenManager("a-secret-long-enough-for-hs256", time.Hour)

	token, err := tokens.GenerateToken("session-42")
	req.NoError(err)

	sessionID, err := tokens.ValidateToken(token)
	req.NoError(err)
	req.Equal("session-42", sessionID)
}

func TestToken_Rejected(t *testing.T) {
	tokens := NewTokenManager("a-secret-long-enough-for-hs256", time.Hour)
	other := NewTokenManager("another-secret-entirely", time.Hour)
	expired := NewTokenManager("a-secret-long-enough-for-hs256", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	forged, err := other.GenerateToken("session-42")
	require.NoError(t, err)
	stale, err := expired.GenerateToken("session-42")
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x", Issuer: issuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", forged},
		{"expired", stale},
		{"none algorithm", unsigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.ValidateToken(tt.token)
			require.Error(t, err)
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	tokens := NewTokenManager("a-secret-long-enough-for-hs256", time.Hour)
	var seen string
	handler := SessionMiddleware(tokens, false, slog.Default())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = SessionID(r.Context())
	}))

	t.Run("issues a session when the cookie is missing", func(t *testing.T) {
		req := require.New(t)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		req.NotEmpty(seen)
		cookies := rec.Result().Cookies()
		req.Len(cookies, 1)
		req.Equal(CookieName, cookies[0].Name)
		req.True(cookies[0].HttpOnly)
		sessionID, err := tokens.ValidateToken(cookies[0].Value)
		req.NoError(err)
		req.Equal(seen, sessionID)
	})

	t.Run("keeps a valid session", func(t *testing.T) {
		req := require.New(t)
		token, err := tokens.GenerateToken("session-7")
		req.NoError(err)
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: token})

		handler.ServeHTTP(rec, r)

		req.Equal("session-7", seen)
		req.Empty(rec.Result().Cookies())
	})

	t.Run("replaces an invalid session", func(t *testing.T) {
		req := require.New(t)
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})

		handler.ServeHTTP(rec, r)

		req.NotEmpty(seen)
		req.Len(rec.Result().Cookies(), 1)
	})
}

func TestSessionID_Missing(t *testing.T) {
	_, ok := SessionID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.False(t, ok)
}
