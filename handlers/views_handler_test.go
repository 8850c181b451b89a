package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"biomedico/auth"
	"biomedico/models"

	"github.com/stretchr/testify/assert"
)

func TestEstadoClass(t *testing.T) {
	assert.Equal(t, "tech-btn-accent", estadoClass("activo"))
	assert.Equal(t, "tech-btn-primary", estadoClass("completado"))
	assert.Equal(t, "tech-btn-secondary", estadoClass("suspendido"))
	assert.Equal(t, "tech-btn-secondary", estadoClass(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 50))
	long := strings.Repeat("a", 60)
	got := truncate(long, 50)
	assert.Equal(t, strings.Repeat("a", 50)+"…", got)

	// Accented text cuts on rune boundaries.
	accented := strings.Repeat("á", 60)
	got = truncate(accented, 50)
	assert.Equal(t, strings.Repeat("á", 50)+"…", got)
}

func TestVerPacientes(t *testing.T) {
	owner := int64(1)
	nombre := "Ana Pérez"
	longHistory := strings.Repeat("x", 80)

	h := &PageHandler{
		Users: &fakeUserRepo{},
		Pacientes: &fakePacienteRepo{pacientes: []*models.Paciente{
			{ID: 1, UsuarioID: &owner, NombreCompleto: &nombre, GrupoSanguineo: "A+", HistorialClinico: longHistory},
			{ID: 2, GrupoSanguineo: "O+"},
		}},
		Ensayos: &fakeEnsayoRepo{},
		Views:   NewViews("../templates"),
	}

	req := withPrincipal(httptest.NewRequest(http.MethodGet, "/ver-pacientes", nil),
		auth.Principal{ID: 1, Username: "admin", Tipo: models.RolAdmin})
	rec := httptest.NewRecorder()
	h.VerPacientes(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ana Pérez")
	assert.Contains(t, body, "Sin nombre")
	assert.Contains(t, body, "No tiene email")
	assert.NotContains(t, body, longHistory)
	assert.Contains(t, body, strings.Repeat("x", 50)+"…")
}

func TestEnsayosPage(t *testing.T) {
	desc := "Fase 2 en curso"
	creador := "Dr. Ruiz"

	h := &PageHandler{
		Users:     &fakeUserRepo{},
		Pacientes: &fakePacienteRepo{},
		Ensayos: &fakeEnsayoRepo{ensayos: []*models.EnsayoClinico{
			{ID: 1, Titulo: "Estudio Alfa", Description: &desc, Estado: "activo", NombreCompleto: &creador},
			{ID: 2, Titulo: "Estudio Beta", Estado: "completado"},
		}},
		Views: NewViews("../templates"),
	}

	req := withPrincipal(httptest.NewRequest(http.MethodGet, "/ensayos", nil),
		auth.Principal{ID: 1, Username: "inv", Tipo: models.RolInvestigador})
	rec := httptest.NewRecorder()
	h.EnsayosPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Estudio Alfa")
	assert.Contains(t, body, "ACTIVO")
	assert.Contains(t, body, "tech-btn-accent")
	assert.Contains(t, body, "Dr. Ruiz")
	assert.Contains(t, body, "No definida")
	assert.Contains(t, body, "Sin descripción")
}
