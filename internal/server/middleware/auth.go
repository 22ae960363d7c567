package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/arpmotors/siteadmin/internal/service"
)

type contextKeyAuth string

// AuthSubjectKey is the context key for the authenticated admin username.
const AuthSubjectKey contextKeyAuth = "auth_subject"

// unauthorizedBody is the one response body used for every authentication
// failure. A missing header, a malformed token, a bad signature, and an
// expired token must be indistinguishable to the caller.
const unauthorizedBody = `{"error":{"code":401,"message":"Not authenticated"}}`

// Authenticate returns an HTTP middleware that validates the request's
// bearer token via the auth service. On success the token subject is
// attached to the request context; on any failure a uniform 401 is
// returned with a WWW-Authenticate challenge.
func Authenticate(authSvc *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeUnauthorized(w)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			subject, err := authSvc.VerifyToken(token)
			if err != nil {
				// Expired and malformed collapse to the same response.
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), AuthSubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject extracts the authenticated username from the context. Returns
// an empty string for unauthenticated requests.
func GetSubject(ctx context.Context) string {
	if sub, ok := ctx.Value(AuthSubjectKey).(string); ok {
		return sub
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(unauthorizedBody))
}
