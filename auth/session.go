package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

const CookieName = "GAMESESSION"

type contextKey string

const SessionIDKey contextKey = "session_id"

// SessionMiddleware makes sure every request carries a session id.
// A missing, expired or forged cookie yields a fresh session and a new cookie.
func SessionMiddleware(tokens *TokenManager, secure bool, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(CookieName); err == nil {
				if id, err := tokens.ValidateToken(cookie.Value); err == nil {
					sessionID = id
				} else {
					log.Debug("Session cookie rejected", "error", err)
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				token, err := tokens.GenerateToken(sessionID)
				if err != nil {
					log.Error("Unable to sign session token", "error", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(tokens.Duration().Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
		})
	}
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// SessionID returns the session injected by SessionMiddleware, if any.
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok && id != ""
}
