package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/securecookie"
)

const (
	// CookieName is the session cookie holding the encoded principal.
	CookieName = "biomedico_session"

	// SessionDuration is the session lifetime in seconds (24 hours).
	SessionDuration = 24 * 60 * 60
)

// SessionManager encodes the principal into an authenticated cookie and
// resolves it back on each request. The cookie itself is the session
// store; there is no server-side session state.
type SessionManager struct {
	codec *securecookie.SecureCookie
}

func NewSessionManager(secret string) *SessionManager {
	hashKey := sha256.Sum256([]byte(secret))
	blockKey := sha256.Sum256([]byte(secret + "-block"))

	codec := securecookie.New(hashKey[:], blockKey[:])
	codec.MaxAge(SessionDuration)

	return &SessionManager{codec: codec}
}

// Set writes the principal into the session cookie.
func (m *SessionManager) Set(w http.ResponseWriter, p Principal) error {
	encoded, err := m.codec.Encode(CookieName, p)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   SessionDuration,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get decodes the principal from the request cookie. Returns (nil, nil)
// for anonymous requests and for expired or tampered cookies; an
// unreadable cookie is treated as no session, not as an error.
func (m *SessionManager) Get(r *http.Request) *Principal {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	var p Principal
	if err := m.codec.Decode(CookieName, cookie.Value, &p); err != nil {
		return nil
	}
	return &p
}

// WithPrincipal resolves the session cookie and stores the principal on
// the request context. Anonymous requests pass through unchanged.
func (m *SessionManager) WithPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := m.Get(r); p != nil {
			r = r.WithContext(SetPrincipal(r.Context(), *p))
		}
		next.ServeHTTP(w, r)
	})
}
