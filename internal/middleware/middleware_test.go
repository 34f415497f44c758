package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	handler := RequestIDMiddleware(okHandler())

	// A fresh ID is generated when the client sends none.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("no request ID generated")
	}

	// A client-supplied ID is echoed back.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id-1")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "client-id-1" {
		t.Errorf("request ID = %q, want client-id-1", got)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(okHandler())

	// Distinct address so other tests sharing the limiter map stay isolated.
	fire := func() int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:40000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// The burst allowance passes.
	for i := 0; i < 5; i++ {
		if code := fire(); code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i+1, code)
		}
	}
	// The next request trips the limiter.
	if code := fire(); code != http.StatusTooManyRequests {
		t.Fatalf("burst exceeded: status %d, want 429", code)
	}
}

func TestRequireSessionMiddleware(t *testing.T) {
	authority, err := auth.NewJWTAuthority("middleware-test-secret")
	if err != nil {
		t.Fatalf("NewJWTAuthority: %v", err)
	}
	sessions := auth.NewCookieManager(authority, "development")

	var seen *auth.Session
	handler := RequireSessionMiddleware(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.GetSession(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// No cookie: blocked before the handler runs.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/team", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no cookie: status %d, want 401", rec.Code)
	}
	if seen != nil {
		t.Fatal("handler ran without a session")
	}

	// Valid cookie: the session lands in the request context.
	issueRec := httptest.NewRecorder()
	if _, err := sessions.IssueSession(issueRec, "admin"); err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/admin/team", nil)
	for _, c := range issueRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid cookie: status %d, want 200", rec.Code)
	}
	if seen == nil || seen.Username != "admin" {
		t.Errorf("context session = %+v", seen)
	}
}
