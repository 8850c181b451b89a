package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"biomedico/auth"
	"biomedico/models"

	"github.com/stretchr/testify/assert"
)

func TestRequireLogin(t *testing.T) {
	called := false
	next := func(w http.ResponseWriter, r *http.Request) { called = true }

	t.Run("anonymous redirects to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireLogin(next)(rec, httptest.NewRequest(http.MethodGet, "/buscar-pacientes", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login.html", rec.Header().Get("Location"))
	})

	t.Run("logged in passes through", func(t *testing.T) {
		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/buscar-pacientes", nil),
			auth.Principal{ID: 1, Tipo: models.RolPaciente})
		RequireLogin(next)(httptest.NewRecorder(), req)
		assert.True(t, called)
	})
}

func TestRequireRoles(t *testing.T) {
	views := NewViews("../templates")

	t.Run("anonymous redirects to login", func(t *testing.T) {
		called := false
		h := RequireRoles(views, func(w http.ResponseWriter, r *http.Request) { called = true }, models.RolAdmin)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/ver-usuarios", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login.html", rec.Header().Get("Location"))
	})

	t.Run("wrong role gets forbidden notice", func(t *testing.T) {
		called := false
		h := RequireRoles(views, func(w http.ResponseWriter, r *http.Request) { called = true }, models.RolAdmin)

		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/ver-usuarios", nil),
			auth.Principal{ID: 2, Tipo: models.RolPaciente})
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Acceso Denegado")
		assert.Contains(t, rec.Body.String(), "paciente")
		assert.Contains(t, rec.Body.String(), "admin")
	})

	t.Run("allowed role passes through", func(t *testing.T) {
		called := false
		h := RequireRoles(views, func(w http.ResponseWriter, r *http.Request) { called = true },
			models.RolAdmin, models.RolMedico)

		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/ver-pacientes", nil),
			auth.Principal{ID: 3, Tipo: models.RolMedico})
		h(httptest.NewRecorder(), req)
		assert.True(t, called)
	})
}
