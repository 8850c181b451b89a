package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"biomedico/auth"
	"biomedico/models"
	"biomedico/repository"
	"biomedico/utils"
)

type ReportHandler struct {
	Reports      *repository.ReportRepository
	TemplatesDir string
	PDFSavePath  string
}

var reportRoles = auth.NewRoleSet(models.RolAdmin, models.RolMedico, models.RolPaciente)

// GenerateReport renders the clinical report PDF for a patient, saves it
// locally and, when archival is configured, uploads a copy to R2.
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request, pacienteID int64) {
	p, ok := auth.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No autenticado", "")
		return
	}

	paciente, err := h.Reports.GetPacienteForReport(pacienteID)
	if err != nil {
		slog.Error("report paciente fetch failed", slog.Int64("id", pacienteID), slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al generar el reporte", "")
		return
	}
	if paciente == nil {
		writeError(w, http.StatusNotFound, "Paciente no encontrado", "")
		return
	}

	if auth.DecideOwnership(&p, reportRoles, paciente.UsuarioID) != auth.Allow {
		writeError(w, http.StatusForbidden, "No tienes permisos para ver este paciente", "")
		return
	}

	pdfBytes, err := utils.GenerateReportPDF(h.Reports, pacienteID, p.Nombre, h.TemplatesDir)
	if err != nil {
		slog.Error("report render failed", slog.Int64("id", pacienteID), slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al generar el reporte", "")
		return
	}
	if pdfBytes == nil {
		writeError(w, http.StatusNotFound, "Paciente no encontrado", "")
		return
	}

	if err := os.MkdirAll(h.PDFSavePath, 0o755); err != nil {
		slog.Error("pdf dir create failed", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al guardar el reporte", "")
		return
	}

	filename := fmt.Sprintf("reporte_%d_%d.pdf", pacienteID, time.Now().Unix())
	localPath := filepath.Join(h.PDFSavePath, filename)
	if err := os.WriteFile(localPath, pdfBytes, 0o644); err != nil {
		slog.Error("pdf save failed", slog.String("path", localPath), slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al guardar el reporte", "")
		return
	}

	resp := map[string]interface{}{
		"success":  true,
		"message":  "Reporte generado exitosamente",
		"filename": filename,
	}

	if utils.R2Configured() {
		url, err := utils.UploadReportToR2(pdfBytes, filename)
		if err != nil {
			// Archival is best effort; the local copy already exists.
			slog.Warn("report archive failed", slog.String("filename", filename), slog.String("err", err.Error()))
		} else {
			resp["url"] = url
		}
	}

	slog.Info("report generated",
		slog.Int64("paciente_id", pacienteID),
		slog.String("by", p.Username),
		slog.String("filename", filename))

	writeJSON(w, http.StatusOK, resp)
}
