package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestCookieManager(t *testing.T) *CookieManager {
	t.Helper()
	authority, err := NewJWTAuthority("cookie-test-secret")
	if err != nil {
		t.Fatalf("NewJWTAuthority: %v", err)
	}
	return NewCookieManager(authority, "development")
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", SessionCookieName)
	return nil
}

func TestCookieManager_IssueSetsCookie(t *testing.T) {
	m := newTestCookieManager(t)

	rec := httptest.NewRecorder()
	session, err := m.IssueSession(rec, "admin")
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	c := sessionCookie(t, rec)
	if c.Value == "" {
		t.Error("cookie value is empty")
	}
	if !c.HttpOnly {
		t.Error("cookie is not HttpOnly")
	}
	if c.Secure {
		t.Error("cookie is Secure outside production")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Errorf("SameSite = %v, want strict", c.SameSite)
	}
	if c.Path != "/" {
		t.Errorf("Path = %q, want /", c.Path)
	}
	if c.Expires.Unix() != session.ExpiresAt.Unix() {
		t.Errorf("cookie expiry %v does not match session expiry %v", c.Expires, session.ExpiresAt)
	}
}

func TestCookieManager_SecureInProduction(t *testing.T) {
	authority, err := NewJWTAuthority("cookie-test-secret")
	if err != nil {
		t.Fatalf("NewJWTAuthority: %v", err)
	}
	m := NewCookieManager(authority, "production")

	rec := httptest.NewRecorder()
	if _, err := m.IssueSession(rec, "admin"); err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	if !sessionCookie(t, rec).Secure {
		t.Error("production cookie is not Secure")
	}
}

func TestCookieManager_ReadSessionRoundTrip(t *testing.T) {
	m := newTestCookieManager(t)

	rec := httptest.NewRecorder()
	if _, err := m.IssueSession(rec, "admin"); err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.AddCookie(sessionCookie(t, rec))

	session := m.ReadSession(httptest.NewRecorder(), req)
	if session == nil {
		t.Fatal("valid cookie produced no session")
	}
	if session.Username != "admin" {
		t.Errorf("username = %q", session.Username)
	}
}

func TestCookieManager_ReadSessionNoCookie(t *testing.T) {
	m := newTestCookieManager(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	if s := m.ReadSession(httptest.NewRecorder(), req); s != nil {
		t.Fatal("session returned for request without cookie")
	}
}

func TestCookieManager_ReadSessionInvalidClearsCookie(t *testing.T) {
	m := newTestCookieManager(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-valid-token"})

	rec := httptest.NewRecorder()
	if s := m.ReadSession(rec, req); s != nil {
		t.Fatal("session returned for forged cookie")
	}

	// Fail-closed also clears the bad cookie.
	cleared := sessionCookie(t, rec)
	if cleared.Value != "" || cleared.MaxAge != -1 {
		t.Errorf("invalid cookie not cleared: value=%q maxAge=%d", cleared.Value, cleared.MaxAge)
	}
}

func TestCookieManager_ReadSessionExpired(t *testing.T) {
	authority, err := NewJWTAuthority("cookie-test-secret")
	if err != nil {
		t.Fatalf("NewJWTAuthority: %v", err)
	}
	issued := time.Now().Add(-8 * 24 * time.Hour)
	authority.now = func() time.Time { return issued }
	m := NewCookieManager(authority, "development")

	rec := httptest.NewRecorder()
	if _, err := m.IssueSession(rec, "admin"); err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	cookie := sessionCookie(t, rec)

	authority.now = time.Now
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.AddCookie(cookie)
	if s := m.ReadSession(httptest.NewRecorder(), req); s != nil {
		t.Fatal("expired session accepted")
	}
}

func TestCookieManager_ClearSession(t *testing.T) {
	m := newTestCookieManager(t)
	rec := httptest.NewRecorder()
	m.ClearSession(rec)

	c := sessionCookie(t, rec)
	if c.Value != "" {
		t.Errorf("cleared cookie value = %q", c.Value)
	}
	if c.MaxAge != -1 {
		t.Errorf("cleared cookie MaxAge = %d, want -1", c.MaxAge)
	}
}
