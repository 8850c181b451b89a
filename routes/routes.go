package routes

import (
	"net/http"
	"strconv"
	"strings"

	"biomedico/auth"
	"biomedico/handlers"
	"biomedico/models"
)

// withCORS allows any origin; the clinic frontend is normally served
// from the same host, so lock this down when that changes.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	sessions *auth.SessionManager,
	views *handlers.Views,
	authHandler *handlers.AuthHandler,
	pacienteHandler *handlers.PacienteHandler,
	ensayoHandler *handlers.EnsayoHandler,
	excelHandler *handlers.ExcelHandler,
	reportHandler *handlers.ReportHandler,
	pageHandler *handlers.PageHandler,
) {
	handle := func(pattern string, h http.HandlerFunc) {
		http.Handle(pattern, withCORS(sessions.WithPrincipal(http.HandlerFunc(handlers.RecoverWrapper(h)))))
	}

	// Auth routes
	handle("/login", methodOnly(http.MethodPost, authHandler.Login))
	handle("/logout", authHandler.Logout)
	handle("/registro", methodOnly(http.MethodPost, authHandler.Registro))
	handle("/api/session", authHandler.SessionInfo)
	handle("/auth/status", authHandler.AuthStatus)
	handle("/tipo-usuario", authHandler.TipoUsuario)

	// Patient routes
	handle("/buscar-pacientes", handlers.RequireLogin(pacienteHandler.BuscarPacientes))
	handle("/submit-data", methodOnly(http.MethodPost,
		handlers.RequireRoles(views, pacienteHandler.SubmitData, models.RolAdmin, models.RolMedico)))

	// /paciente/{id} and /paciente/{id}/reporte-pdf
	handle("/paciente/", handlers.RequireLogin(func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/paciente/")
		idStr, tail, _ := strings.Cut(rest, "/")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		switch tail {
		case "":
			pacienteHandler.GetPaciente(w, r, id)
		case "reporte-pdf":
			reportHandler.GenerateReport(w, r, id)
		default:
			http.NotFound(w, r)
		}
	}))

	// Clinical trial API. Reads are open to investigadores; writes are
	// admin/medico, and deletion is admin-only.
	listEnsayos := handlers.RequireRoles(views, ensayoHandler.ListEnsayos,
		models.RolAdmin, models.RolMedico, models.RolInvestigador)
	createEnsayo := handlers.RequireRoles(views, ensayoHandler.CreateEnsayo,
		models.RolAdmin, models.RolMedico)

	handle("/api/ensayos", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listEnsayos(w, r)
		case http.MethodPost:
			createEnsayo(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	handle("/api/ensayos/", func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/api/ensayos/")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodPut:
			handlers.RequireRoles(views, func(w http.ResponseWriter, r *http.Request) {
				ensayoHandler.UpdateEnsayo(w, r, id)
			}, models.RolAdmin, models.RolMedico)(w, r)
		case http.MethodDelete:
			handlers.RequireRoles(views, func(w http.ResponseWriter, r *http.Request) {
				ensayoHandler.DeleteEnsayo(w, r, id)
			}, models.RolAdmin)(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Spreadsheet import/export
	handle("/upload-excel", methodOnly(http.MethodPost,
		handlers.RequireRoles(views, excelHandler.UploadExcel, models.RolAdmin, models.RolMedico)))
	handle("/download-excel",
		handlers.RequireRoles(views, excelHandler.DownloadExcel, models.RolAdmin, models.RolMedico))

	// Server-rendered pages
	handle("/ver-usuarios",
		handlers.RequireRoles(views, pageHandler.VerUsuarios, models.RolAdmin))
	handle("/ver-pacientes",
		handlers.RequireRoles(views, pageHandler.VerPacientes, models.RolAdmin, models.RolMedico))
	handle("/ensayos",
		handlers.RequireRoles(views, pageHandler.EnsayosPage, models.RolAdmin, models.RolMedico, models.RolInvestigador))

	handle("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func methodOnly(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
