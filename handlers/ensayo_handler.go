package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"biomedico/auth"
	"biomedico/models"
	"biomedico/repository"
)

type EnsayoHandler struct {
	Repo repository.EnsayoRepository
}

type ensayoPayload struct {
	Titulo      string  `json:"titulo"`
	Description *string `json:"description"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
	Estado      string  `json:"estado"`
}

// ListEnsayos returns every trial, newest first.
func (h *EnsayoHandler) ListEnsayos(w http.ResponseWriter, r *http.Request) {
	ensayos, err := h.Repo.GetAllEnsayos()
	if err != nil {
		slog.Error("ensayo list failed", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al obtener los ensayos", "")
		return
	}
	if ensayos == nil {
		ensayos = []*models.EnsayoClinico{}
	}
	writeJSON(w, http.StatusOK, ensayos)
}

// CreateEnsayo inserts a trial owned by the logged-in user. A missing
// estado defaults to activo.
func (h *EnsayoHandler) CreateEnsayo(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No autenticado", "")
		return
	}

	var payload ensayoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido", err.Error())
		return
	}
	if payload.Titulo == "" {
		writeError(w, http.StatusBadRequest, "El título es obligatorio", "")
		return
	}
	if payload.Estado == "" {
		payload.Estado = "activo"
	}

	ensayo := &models.EnsayoClinico{
		Titulo:      payload.Titulo,
		Description: payload.Description,
		FechaInicio: payload.FechaInicio,
		FechaFin:    payload.FechaFin,
		Estado:      payload.Estado,
		UsuarioID:   &p.ID,
	}
	if err := h.Repo.CreateEnsayo(ensayo); err != nil {
		slog.Error("ensayo create failed", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al crear el ensayo", "")
		return
	}

	slog.Info("ensayo created", slog.Int64("id", ensayo.ID), slog.String("titulo", ensayo.Titulo))
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Ensayo clínico creado exitosamente",
		"id":      ensayo.ID,
	})
}

// UpdateEnsayo rewrites a trial's fields.
func (h *EnsayoHandler) UpdateEnsayo(w http.ResponseWriter, r *http.Request, id int64) {
	var payload ensayoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido", err.Error())
		return
	}
	if payload.Titulo == "" {
		writeError(w, http.StatusBadRequest, "El título es obligatorio", "")
		return
	}
	if payload.Estado == "" {
		payload.Estado = "activo"
	}

	ensayo := &models.EnsayoClinico{
		ID:          id,
		Titulo:      payload.Titulo,
		Description: payload.Description,
		FechaInicio: payload.FechaInicio,
		FechaFin:    payload.FechaFin,
		Estado:      payload.Estado,
	}
	if err := h.Repo.UpdateEnsayo(ensayo); err != nil {
		slog.Error("ensayo update failed", slog.Int64("id", id), slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al actualizar el ensayo", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Ensayo clínico actualizado exitosamente",
	})
}

// DeleteEnsayo removes a trial.
func (h *EnsayoHandler) DeleteEnsayo(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.Repo.DeleteEnsayo(id); err != nil {
		slog.Error("ensayo delete failed", slog.Int64("id", id), slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al eliminar el ensayo", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Ensayo clínico eliminado exitosamente",
	})
}
