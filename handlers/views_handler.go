package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"biomedico/auth"
	"biomedico/repository"
)

// PageHandler serves the server-rendered management pages.
type PageHandler struct {
	Users     repository.UserRepository
	Pacientes repository.PacienteRepository
	Ensayos   repository.EnsayoRepository
	Views     *Views
}

type usuarioRow struct {
	ID            int64
	Username      string
	Tipo          string
	Nombre        string
	Email         string
	FechaRegistro string
}

type pacienteRow struct {
	ID             int64
	Nombre         string
	Email          string
	GrupoSanguineo string
	Historial      string
}

type ensayoRow struct {
	Titulo      string
	Descripcion string
	Estado      string
	EstadoClass string
	FechaInicio string
	FechaFin    string
	CreadoPor   string
}

// VerUsuarios renders the user administration table.
func (h *PageHandler) VerUsuarios(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.GetPrincipal(r.Context())

	usuarios, err := h.Users.GetAllUsers()
	if err != nil {
		h.pageError(w, "usuarios", err)
		return
	}

	rows := make([]usuarioRow, 0, len(usuarios))
	for _, u := range usuarios {
		row := usuarioRow{
			ID:            u.ID,
			Username:      u.Username,
			Tipo:          u.TipoUsuario,
			Nombre:        u.NombreCompleto,
			Email:         "No tiene email",
			FechaRegistro: u.FechaRegistro.Format("02/01/2006"),
		}
		if u.Email != nil && *u.Email != "" {
			row.Email = *u.Email
		}
		if row.Nombre == "" {
			row.Nombre = "Sin nombre"
		}
		rows = append(rows, row)
	}

	h.Views.render(w, http.StatusOK, "usuarios.html", map[string]interface{}{
		"CurrentUser": p,
		"Usuarios":    rows,
	})
}

// VerPacientes renders the patient records table. Clinical histories are
// truncated so long intake notes do not blow up the layout.
func (h *PageHandler) VerPacientes(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.GetPrincipal(r.Context())

	pacientes, err := h.Pacientes.GetAllPacientes()
	if err != nil {
		h.pageError(w, "pacientes", err)
		return
	}

	rows := make([]pacienteRow, 0, len(pacientes))
	for _, pac := range pacientes {
		row := pacienteRow{
			ID:             pac.ID,
			Nombre:         "Sin nombre",
			Email:          "No tiene email",
			GrupoSanguineo: pac.GrupoSanguineo,
			Historial:      truncate(pac.HistorialClinico, 50),
		}
		if pac.NombreCompleto != nil && *pac.NombreCompleto != "" {
			row.Nombre = *pac.NombreCompleto
		}
		if pac.Email != nil && *pac.Email != "" {
			row.Email = *pac.Email
		}
		rows = append(rows, row)
	}

	h.Views.render(w, http.StatusOK, "pacientes.html", map[string]interface{}{
		"CurrentUser": p,
		"Pacientes":   rows,
		"Total":       len(rows),
	})
}

// EnsayosPage renders the clinical trials board.
func (h *PageHandler) EnsayosPage(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.GetPrincipal(r.Context())

	ensayos, err := h.Ensayos.GetAllEnsayos()
	if err != nil {
		h.pageError(w, "ensayos", err)
		return
	}

	rows := make([]ensayoRow, 0, len(ensayos))
	for _, e := range ensayos {
		row := ensayoRow{
			Titulo:      e.Titulo,
			Descripcion: "Sin descripción",
			Estado:      strings.ToUpper(e.Estado),
			EstadoClass: estadoClass(e.Estado),
			FechaInicio: "No definida",
			FechaFin:    "No definida",
			CreadoPor:   "Desconocido",
		}
		if e.Description != nil && *e.Description != "" {
			row.Descripcion = *e.Description
		}
		if e.FechaInicio != nil && *e.FechaInicio != "" {
			row.FechaInicio = *e.FechaInicio
		}
		if e.FechaFin != nil && *e.FechaFin != "" {
			row.FechaFin = *e.FechaFin
		}
		if e.NombreCompleto != nil && *e.NombreCompleto != "" {
			row.CreadoPor = *e.NombreCompleto
		} else if e.CreadoPor != nil && *e.CreadoPor != "" {
			row.CreadoPor = *e.CreadoPor
		}
		rows = append(rows, row)
	}

	h.Views.render(w, http.StatusOK, "ensayos.html", map[string]interface{}{
		"CurrentUser": p,
		"Ensayos":     rows,
	})
}

func (h *PageHandler) pageError(w http.ResponseWriter, page string, err error) {
	slog.Error("page query failed", slog.String("page", page), slog.String("err", err.Error()))
	h.Views.RenderNotice(w, http.StatusInternalServerError, NoticeData{
		Title:   "Error del Sistema",
		Message: "No se pudieron cargar los datos. Inténtalo nuevamente.",
	})
}

func estadoClass(estado string) string {
	switch estado {
	case "activo":
		return "tech-btn-accent"
	case "completado":
		return "tech-btn-primary"
	default:
		return "tech-btn-secondary"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Cut on a rune boundary; histories contain accented text.
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
