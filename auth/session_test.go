package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"biomedico/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSessionRoundtrip(t *testing.T) {
	m := NewSessionManager("test-secret")

	p := Principal{ID: 42, Username: "dra.perez", Tipo: models.RolMedico, Nombre: "Dra. Pérez"}

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, p))

	cookie := setCookieFrom(t, rec)
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, SessionDuration, cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	got := m.Get(req)
	require.NotNil(t, got)
	assert.Equal(t, p, *got)
}

func TestSessionGetAnonymous(t *testing.T) {
	m := NewSessionManager("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, m.Get(req))
}

func TestSessionGetTampered(t *testing.T) {
	m := NewSessionManager("test-secret")

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, Principal{ID: 1, Username: "x", Tipo: models.RolAdmin}))
	cookie := setCookieFrom(t, rec)

	cookie.Value = cookie.Value[:len(cookie.Value)-4] + "AAAA"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	assert.Nil(t, m.Get(req))
}

func TestSessionWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a")
	verifier := NewSessionManager("secret-b")

	rec := httptest.NewRecorder()
	require.NoError(t, issuer.Set(rec, Principal{ID: 1, Username: "x", Tipo: models.RolAdmin}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(setCookieFrom(t, rec))

	assert.Nil(t, verifier.Get(req))
}

func TestSessionClear(t *testing.T) {
	m := NewSessionManager("test-secret")

	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookie := setCookieFrom(t, rec)
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.Empty(t, cookie.Value)
}

func TestWithPrincipal(t *testing.T) {
	m := NewSessionManager("test-secret")

	p := Principal{ID: 9, Username: "admin", Tipo: models.RolAdmin}
	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, p))

	var seen *Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, ok := GetPrincipal(r.Context()); ok {
			seen = &got
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(setCookieFrom(t, rec))
	m.WithPrincipal(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, p, *seen)

	// Anonymous request passes through without a principal.
	seen = nil
	m.WithPrincipal(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Nil(t, seen)
}
