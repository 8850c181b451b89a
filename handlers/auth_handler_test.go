package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"biomedico/auth"
	"biomedico/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthHandler(users *fakeUserRepo) *AuthHandler {
	return &AuthHandler{
		Repo:     users,
		Auth:     auth.NewAuthenticator(users),
		Sessions: auth.NewSessionManager("test-secret"),
		Views:    NewViews("../templates"),
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: []*models.Usuario{
		{ID: 1, Username: "ana", Password: string(hash), TipoUsuario: models.RolMedico, NombreCompleto: "Ana Pérez"},
	}}
	h := testAuthHandler(users)

	t.Run("success sets session and redirects home", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strReader("username=ana&password=clave123"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/index.html", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.CookieName, cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
	})

	t.Run("unknown user notice", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strReader("username=nadie&password=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Contains(t, rec.Body.String(), "Usuario No Encontrado")
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("wrong password notice", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strReader("username=ana&password=mala"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Contains(t, rec.Body.String(), "Contraseña Incorrecta")
	})
}

func TestRegistro(t *testing.T) {
	t.Run("creates account", func(t *testing.T) {
		users := &fakeUserRepo{}
		h := testAuthHandler(users)

		form := "username=nuevo&password=secreto&tipo_usuario=investigador&nombre_completo=Nuevo+Usuario&email=nuevo%40clinica.test"
		req := httptest.NewRequest(http.MethodPost, "/registro", strReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		h.Registro(rec, req)

		assert.Contains(t, rec.Body.String(), "Registro Exitoso")

		require.Len(t, users.created, 1)
		u := users.created[0]
		assert.Equal(t, "nuevo", u.Username)
		assert.Equal(t, models.RolInvestigador, u.TipoUsuario)
		require.NotNil(t, u.Email)
		assert.Equal(t, "nuevo@clinica.test", *u.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secreto")))
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		users := &fakeUserRepo{users: []*models.Usuario{{ID: 1, Username: "tomado"}}}
		h := testAuthHandler(users)

		req := httptest.NewRequest(http.MethodPost, "/registro", strReader("username=tomado&password=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		h.Registro(rec, req)

		assert.Contains(t, rec.Body.String(), "Usuario Existente")
		assert.Empty(t, users.created)
	})
}

func TestLogout(t *testing.T) {
	h := testAuthHandler(&fakeUserRepo{})

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login.html", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSessionEndpoints(t *testing.T) {
	h := testAuthHandler(&fakeUserRepo{})
	p := auth.Principal{ID: 4, Username: "ana", Tipo: models.RolMedico, Nombre: "Ana Pérez"}

	t.Run("session info logged in", func(t *testing.T) {
		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/session", nil), p)
		rec := httptest.NewRecorder()
		h.SessionInfo(rec, req)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["loggedIn"])
		assert.Equal(t, "medico", body["tipo"])
		assert.Equal(t, "ana", body["username"])
	})

	t.Run("session info anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.SessionInfo(rec, httptest.NewRequest(http.MethodGet, "/api/session", nil))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["loggedIn"])
		assert.NotContains(t, body, "tipo")
	})

	t.Run("auth status", func(t *testing.T) {
		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/auth/status", nil), p)
		rec := httptest.NewRecorder()
		h.AuthStatus(rec, req)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["authenticated"])
	})

	t.Run("tipo usuario anonymous is null", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.TipoUsuario(rec, httptest.NewRequest(http.MethodGet, "/tipo-usuario", nil))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		v, ok := body["tipo_usuario"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})
}
