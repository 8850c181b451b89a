package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"biomedico/auth"
	"biomedico/models"
	"biomedico/repository"

	"golang.org/x/crypto/bcrypt"
)

type PacienteHandler struct {
	Pacientes repository.PacienteRepository
	Users     repository.UserRepository
	Views     *Views
}

var pacienteViewRoles = auth.NewRoleSet(models.RolAdmin, models.RolMedico, models.RolInvestigador, models.RolPaciente)

// BuscarPacientes answers the search box. A paciente only ever sees
// their own record, whatever they type.
func (h *PacienteHandler) BuscarPacientes(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No autenticado", "")
		return
	}

	q := r.URL.Query().Get("q")

	var ownerUserID *int64
	if p.Tipo == models.RolPaciente {
		ownerUserID = &p.ID
	}

	results, err := h.Pacientes.SearchPacientes(q, ownerUserID)
	if err != nil {
		slog.Error("paciente search failed", slog.String("q", q), slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al buscar pacientes", "")
		return
	}
	if results == nil {
		results = []*models.PacienteResumen{}
	}
	writeJSON(w, http.StatusOK, results)
}

// GetPaciente returns one patient record. The existence check runs
// before the ownership check so a missing id is always a 404.
func (h *PacienteHandler) GetPaciente(w http.ResponseWriter, r *http.Request, id int64) {
	p, ok := auth.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No autenticado", "")
		return
	}

	paciente, err := h.Pacientes.GetPacienteByID(id)
	if err != nil {
		slog.Error("paciente fetch failed", slog.Int64("id", id), slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al obtener el paciente", "")
		return
	}
	if paciente == nil {
		writeError(w, http.StatusNotFound, "Paciente no encontrado", "")
		return
	}

	if auth.DecideOwnership(&p, pacienteViewRoles, paciente.UsuarioID) != auth.Allow {
		writeError(w, http.StatusForbidden, "No tienes permisos para ver este paciente", "")
		return
	}

	writeJSON(w, http.StatusOK, paciente)
}

// SubmitData registers a patient from the intake form, creating the
// login account alongside the clinical record. The username falls back
// to a timestamp-based one when no email is given.
func (h *PacienteHandler) SubmitData(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	age := r.FormValue("age")
	heartRate := r.FormValue("heart_rate")
	email := r.FormValue("email")
	grupoSanguineo := r.FormValue("grupo_sanguineo")
	alergias := r.FormValue("alergias")
	enfermedades := r.FormValue("enfermedades_cronicas")

	username := email
	if username == "" {
		username = fmt.Sprintf("paciente_%d", time.Now().Unix())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("temp123"), 10)
	if err != nil {
		h.submitFailure(w, err)
		return
	}

	user := &models.Usuario{
		Username:       username,
		Password:       string(hash),
		TipoUsuario:    models.RolPaciente,
		NombreCompleto: name,
	}
	if email != "" {
		user.Email = &email
	}
	if err := h.Users.CreateUser(user); err != nil {
		h.submitFailure(w, err)
		return
	}

	historial := fmt.Sprintf("Registro inicial - Nombre: %s, Edad: %s, Frecuencia cardíaca: %s",
		name, age, heartRate)

	paciente := &models.Paciente{
		UsuarioID:            &user.ID,
		HistorialClinico:     historial,
		GrupoSanguineo:       valueOrDefault(grupoSanguineo, "O+"),
		Alergias:             valueOrDefault(alergias, "Ninguna conocida"),
		EnfermedadesCronicas: valueOrDefault(enfermedades, "Ninguna"),
	}
	if err := h.Pacientes.CreatePaciente(paciente); err != nil {
		h.submitFailure(w, err)
		return
	}

	slog.Info("paciente registered",
		slog.Int64("paciente_id", paciente.ID),
		slog.String("username", username))

	h.Views.RenderNotice(w, http.StatusOK, NoticeData{
		Title:   "Paciente Registrado",
		Message: "Los datos del paciente se guardaron correctamente.",
		ExtraRows: []NoticeRow{
			{Label: "Nombre", Value: name},
			{Label: "Usuario", Value: username},
			{Label: "Contraseña temporal", Value: "temp123"},
		},
		RedirectURL: "/index.html",
		ButtonText:  "Volver al Inicio",
	})
}

func (h *PacienteHandler) submitFailure(w http.ResponseWriter, err error) {
	slog.Error("paciente submit failed", slog.String("err", err.Error()))
	h.Views.RenderNotice(w, http.StatusOK, NoticeData{
		Title:       "Error al Guardar",
		Message:     "No se pudieron guardar los datos del paciente. Inténtalo nuevamente.",
		RedirectURL: "/index.html",
		ButtonText:  "Volver al Inicio",
	})
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
