package utils

import (
	"errors"
	"strings"
	"testing"

	"biomedico/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	existing  map[string]*models.Usuario
	created   []*models.Usuario
	createErr error
}

func (s *stubUserRepo) CreateUser(user *models.Usuario) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = int64(len(s.created) + 1)
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserRepo) GetUserByIdentifier(identifier string) (*models.Usuario, error) {
	return s.existing[identifier], nil
}

func (s *stubUserRepo) FindExisting(identity, email string) (*models.Usuario, error) {
	if u, ok := s.existing[identity]; ok {
		return u, nil
	}
	if email != "" {
		if u, ok := s.existing[email]; ok {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) GetAllUsers() ([]*models.Usuario, error) {
	return nil, nil
}

type stubPacienteRepo struct {
	created   []*models.Paciente
	createErr error
}

func (s *stubPacienteRepo) CreatePaciente(p *models.Paciente) error {
	if s.createErr != nil {
		return s.createErr
	}
	p.ID = int64(len(s.created) + 1)
	s.created = append(s.created, p)
	return nil
}

func (s *stubPacienteRepo) GetPacienteByID(id int64) (*models.Paciente, error) {
	return nil, nil
}

func (s *stubPacienteRepo) SearchPacientes(q string, ownerUserID *int64) ([]*models.PacienteResumen, error) {
	return nil, nil
}

func (s *stubPacienteRepo) GetAllPacientes() ([]*models.Paciente, error) {
	return s.created, nil
}

func TestReconcileOneOutcomePerRow(t *testing.T) {
	users := &stubUserRepo{existing: map[string]*models.Usuario{
		"duplicado": {ID: 99, Username: "duplicado"},
	}}
	pacientes := &stubPacienteRepo{}
	rec := NewReconciler(users, pacientes)

	rows := []ImportRow{
		{"usuario": "nuevo1", "nombre": "Paciente Uno"},
		{"usuario": "duplicado"},
		{"usuario": "nuevo2", "email": "dos@clinica.test"},
	}

	report := rec.Reconcile(rows)

	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, models.ImportCreated, report.Outcomes[0].Status)
	assert.Equal(t, models.ImportDuplicate, report.Outcomes[1].Status)
	assert.Equal(t, models.ImportCreated, report.Outcomes[2].Status)

	// Spreadsheet row numbers: header is row 1, data starts at 2.
	assert.Equal(t, 2, report.Outcomes[0].Row)
	assert.Equal(t, 3, report.Outcomes[1].Row)
	assert.Equal(t, 4, report.Outcomes[2].Row)

	assert.Equal(t, 2, report.RegistrosExitosos)
	assert.Equal(t, 1, report.Duplicados)
	assert.Empty(t, report.Errores)

	require.Len(t, users.created, 2)
	require.Len(t, pacientes.created, 2)
}

func TestReconcileDuplicateSkipsWrites(t *testing.T) {
	users := &stubUserRepo{existing: map[string]*models.Usuario{
		"existente": {ID: 1, Username: "existente"},
	}}
	pacientes := &stubPacienteRepo{}
	rec := NewReconciler(users, pacientes)

	report := rec.Reconcile([]ImportRow{{"usuario": "existente"}})

	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, models.ImportDuplicate, report.Outcomes[0].Status)
	assert.Contains(t, report.Outcomes[0].Reason, "existente")
	assert.Empty(t, users.created)
	assert.Empty(t, pacientes.created)
}

func TestReconcileIdentityFallbacks(t *testing.T) {
	users := &stubUserRepo{existing: map[string]*models.Usuario{}}
	pacientes := &stubPacienteRepo{}
	rec := NewReconciler(users, pacientes)

	rows := []ImportRow{
		{"email": "solo.email@clinica.test"},
		{"nombre": "Sin identidad"},
	}

	report := rec.Reconcile(rows)
	assert.Equal(t, 2, report.RegistrosExitosos)

	require.Len(t, users.created, 2)
	assert.Equal(t, "solo.email@clinica.test", users.created[0].Username)
	assert.True(t, strings.HasPrefix(users.created[1].Username, "paciente_"),
		"synthesized username, got %q", users.created[1].Username)
}

func TestReconcileDefaultsAndPassword(t *testing.T) {
	users := &stubUserRepo{existing: map[string]*models.Usuario{}}
	pacientes := &stubPacienteRepo{}
	rec := NewReconciler(users, pacientes)

	rec.Reconcile([]ImportRow{{"usuario": "minimo"}})

	require.Len(t, users.created, 1)
	u := users.created[0]
	assert.Equal(t, models.RolPaciente, u.TipoUsuario)
	assert.Equal(t, "Paciente sin nombre", u.NombreCompleto)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(TempPassword)))

	require.Len(t, pacientes.created, 1)
	p := pacientes.created[0]
	assert.Equal(t, "O+", p.GrupoSanguineo)
	assert.Equal(t, "No especificadas", p.Alergias)
	assert.Equal(t, "No especificadas", p.EnfermedadesCronicas)
	assert.Equal(t, "No especificados", p.MedicamentosActuales)
}

func TestReconcileRowErrorDoesNotAbortBatch(t *testing.T) {
	users := &stubUserRepo{existing: map[string]*models.Usuario{}}
	pacientes := &stubPacienteRepo{createErr: errors.New("disco lleno")}
	rec := NewReconciler(users, pacientes)

	report := rec.Reconcile([]ImportRow{
		{"usuario": "fila1"},
		{"usuario": "fila2"},
	})

	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, models.ImportFailed, report.Outcomes[0].Status)
	assert.Equal(t, models.ImportFailed, report.Outcomes[1].Status)
	assert.Equal(t, 0, report.RegistrosExitosos)

	require.Len(t, report.Errores, 2)
	assert.Contains(t, report.Errores[0], "Fila 2:")
	assert.Contains(t, report.Errores[1], "Fila 3:")
}

func TestReconcileEmptyInput(t *testing.T) {
	rec := NewReconciler(&stubUserRepo{existing: map[string]*models.Usuario{}}, &stubPacienteRepo{})

	report := rec.Reconcile(nil)
	assert.Empty(t, report.Outcomes)
	assert.Equal(t, 0, report.RegistrosExitosos)
	assert.NotNil(t, report.Errores)
	assert.Empty(t, report.Errores)
}
