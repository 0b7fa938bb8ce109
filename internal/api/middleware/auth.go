package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/karanvir-s/employee-directory-api/internal/token"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the identity resolved from a verified session token. It lives
// only for the duration of one request.
type Principal struct {
	AccountID int
	Username  string
}

// SessionCookieName is the cookie the gate reads and the auth handler sets.
const SessionCookieName = "token"

// Auth is the authorization gate in front of every protected route. It reads
// the session cookie, verifies it, and attaches the resolved principal to the
// request context. Missing, malformed, forged and expired tokens all produce
// the same 401 responses; the distinction exists only in server logs. The
// gate never renews a token and never touches storage.
func Auth(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				unauthorized(w, "No token, authorization denied")
				return
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token verification failed: %v", err)
				unauthorized(w, "Token is not valid")
				return
			}

			principal := Principal{
				AccountID: claims.AccountID,
				Username:  claims.Username,
			}
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal returns the principal the gate attached for this request.
func GetPrincipal(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalKey).(Principal)
	return principal, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
