package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arpmotors/siteadmin/internal/service"
	"github.com/arpmotors/siteadmin/internal/store"
)

func TestRequestIDGenerated(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Error("expected a request ID in the handler context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("response header %q does not match context ID %q", got, seen)
	}
}

func TestRequestIDHonorsInbound(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "proxy-assigned-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "proxy-assigned-id" {
		t.Errorf("request ID: got %q, want %q", got, "proxy-assigned-id")
	}
}

func TestLoggerPassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusTeapot)
	}
	if rec.Body.String() != "short and stout" {
		t.Errorf("body: got %q", rec.Body.String())
	}
}

func newGuard(t *testing.T, ttl time.Duration) (*service.AuthService, func(http.Handler) http.Handler) {
	t.Helper()
	st, err := store.New("")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	authSvc := service.NewAuthService(st, "guard-secret", ttl)
	return authSvc, Authenticate(authSvc)
}

func TestAuthenticateValidToken(t *testing.T) {
	authSvc, guard := newGuard(t, 1*time.Hour)
	token, err := authSvc.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	var subject string
	h := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = GetSubject(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if subject != "admin" {
		t.Errorf("subject: got %q, want %q", subject, "admin")
	}
}

func TestAuthenticateFailuresUniform(t *testing.T) {
	authSvc, guard := newGuard(t, -1*time.Hour)
	expired, err := authSvc.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	h := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for unauthenticated requests")
	}))

	headers := map[string]string{
		"missing":    "",
		"not bearer": "Token abc",
		"garbage":    "Bearer not.a.jwt",
		"expired":    "Bearer " + expired,
	}

	var firstBody string
	for name, value := range headers {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if value != "" {
			req.Header.Set("Authorization", value)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status got %d, want 401", name, rec.Code)
		}
		if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
			t.Errorf("%s: WWW-Authenticate got %q, want %q", name, got, "Bearer")
		}
		if firstBody == "" {
			firstBody = rec.Body.String()
		} else if rec.Body.String() != firstBody {
			t.Errorf("%s: body %q differs from %q", name, rec.Body, firstBody)
		}
	}
}

func TestGetSubjectUnauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetSubject(req.Context()); got != "" {
		t.Errorf("subject: got %q, want empty", got)
	}
}
