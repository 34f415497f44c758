package auth

import (
	"net/http"
	"time"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/logging"
)

// SessionCookieName is the cookie carrying the signed admin token.
const SessionCookieName = "ieee_admin_session"

// CookieManager binds a SessionAuthority to the HTTP cookie jar. Secure is
// set in production so the cookie only travels over TLS.
type CookieManager struct {
	Authority SessionAuthority
	Secure    bool
}

func NewCookieManager(authority SessionAuthority, appEnv string) *CookieManager {
	return &CookieManager{
		Authority: authority,
		Secure:    appEnv == "production",
	}
}

// IssueSession signs a token for username and sets the session cookie.
func (m *CookieManager) IssueSession(w http.ResponseWriter, username string) (*Session, error) {
	token, session, err := m.Authority.Issue(username)
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  session.ExpiresAt,
	})
	return session, nil
}

// ReadSession returns the verified session from the request cookie, or nil.
// Every failure mode is fail-closed: absent cookie, bad signature, malformed
// token, and past expiry all come back as nil, and any invalid cookie is
// cleared on the way out.
func (m *CookieManager) ReadSession(w http.ResponseWriter, r *http.Request) *Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	session, err := m.Authority.Verify(cookie.Value)
	if err != nil {
		logging.Warn("Invalid session cookie", "error", err.Error())
		m.ClearSession(w)
		return nil
	}
	return session
}

// RequireSession is the guard used at the top of mutating handlers. Alias of
// ReadSession; callers translate nil into an unauthorized response.
func (m *CookieManager) RequireSession(w http.ResponseWriter, r *http.Request) *Session {
	return m.ReadSession(w, r)
}

// ClearSession deletes the cookie unconditionally. It does not invalidate
// copies of the token held elsewhere; see ErrRevocationUnsupported.
func (m *CookieManager) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
