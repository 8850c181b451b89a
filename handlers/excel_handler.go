package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"biomedico/repository"
	"biomedico/utils"
)

const maxUploadBytes = 10 << 20 // 10MB

type ExcelHandler struct {
	Users     repository.UserRepository
	Pacientes repository.PacienteRepository
	UploadDir string
}

// UploadExcel imports patients from a spreadsheet. The upload is saved
// under UploadDir for the duration of the request and removed afterwards
// whatever the outcome.
func (h *ExcelHandler) UploadExcel(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "El archivo excede el tamaño máximo de 10MB", "")
		return
	}

	file, header, err := r.FormFile("excelFile")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No se recibió ningún archivo", "")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		writeError(w, http.StatusBadRequest, "Solo se permiten archivos Excel (.xlsx, .xls)", "")
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		slog.Error("upload dir create failed", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al guardar el archivo", "")
		return
	}

	tmpPath := filepath.Join(h.UploadDir, fmt.Sprintf("import_%d%s", time.Now().UnixNano(), ext))
	dst, err := os.Create(tmpPath)
	if err != nil {
		slog.Error("upload save failed", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al guardar el archivo", "")
		return
	}
	defer os.Remove(tmpPath)

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		writeError(w, http.StatusInternalServerError, "Error al guardar el archivo", "")
		return
	}
	if err := dst.Close(); err != nil {
		writeError(w, http.StatusInternalServerError, "Error al guardar el archivo", "")
		return
	}

	rows, err := utils.ReadRows(tmpPath)
	if err != nil {
		slog.Error("excel parse failed", slog.String("file", header.Filename), slog.String("err", err.Error()))
		writeError(w, http.StatusBadRequest, "El archivo Excel no se pudo procesar", err.Error())
		return
	}

	report := utils.NewReconciler(h.Users, h.Pacientes).Reconcile(rows)

	slog.Info("excel import finished",
		slog.String("file", header.Filename),
		slog.Int("filas", len(rows)),
		slog.Int("exitosos", report.RegistrosExitosos),
		slog.Int("duplicados", report.Duplicados),
		slog.Int("errores", len(report.Errores)))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"message":           fmt.Sprintf("Importación completada: %d registros creados", report.RegistrosExitosos),
		"registrosExitosos": report.RegistrosExitosos,
		"duplicados":        report.Duplicados,
		"errores":           report.Errores,
	})
}

// DownloadExcel streams all patient records as an xlsx attachment.
func (h *ExcelHandler) DownloadExcel(w http.ResponseWriter, r *http.Request) {
	pacientes, err := h.Pacientes.GetAllPacientes()
	if err != nil {
		slog.Error("paciente export query failed", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al generar el archivo Excel", "")
		return
	}

	buf, err := utils.BuildPacientesWorkbook(pacientes)
	if err != nil {
		slog.Error("workbook build failed", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error al generar el archivo Excel", "")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="pacientes.xlsx"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("excel download write failed", slog.String("err", err.Error()))
	}
}
