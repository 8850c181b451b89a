package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"biomedico/auth"
	"biomedico/models"
	"biomedico/repository"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Repo     repository.UserRepository
	Auth     *auth.Authenticator
	Sessions *auth.SessionManager
	Views    *Views
}

// Login verifies credentials and opens the session. Each failure kind
// gets its own notice on purpose; see auth.Authenticator.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")

	slog.Info("login attempt", slog.String("username", username))

	user, err := h.Auth.Authenticate(username, password)
	if err != nil {
		h.loginFailure(w, err)
		return
	}

	principal := auth.Principal{
		ID:       user.ID,
		Username: user.Username,
		Tipo:     user.TipoUsuario,
		Nombre:   user.NombreCompleto,
	}
	if err := h.Sessions.Set(w, principal); err != nil {
		slog.Error("session encode failed", slog.String("err", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	slog.Info("login successful", slog.String("username", user.Username), slog.String("tipo", user.TipoUsuario))
	http.Redirect(w, r, "/index.html", http.StatusFound)
}

func (h *AuthHandler) loginFailure(w http.ResponseWriter, err error) {
	notice := NoticeData{RedirectURL: "/login.html", ButtonText: "Volver al Login"}

	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		notice.Title = "Usuario No Encontrado"
		notice.Message = "El nombre de usuario o email no está registrado en el sistema."
	case errors.Is(err, auth.ErrNoCredential):
		notice.Title = "Error de Configuración"
		notice.Message = "Este usuario no tiene contraseña configurada. Contacta al administrador."
	case errors.Is(err, auth.ErrBadPassword):
		notice.Title = "Contraseña Incorrecta"
		notice.Message = "La contraseña ingresada no es válida."
	default:
		slog.Error("login error", slog.String("err", err.Error()))
		notice.Title = "Error del Sistema"
		notice.Message = upstreamMessage(err)
	}

	h.Views.RenderNotice(w, http.StatusOK, notice)
}

// upstreamMessage maps database failures to the user-facing system
// error text; the raw error stays in the logs only.
func upstreamMessage(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "42P01": // undefined_table
			return "La tabla de usuarios no existe"
		case "28P01": // invalid_password
			return "Error de acceso a la base de datos"
		}
	}
	return "Error en el servidor durante el login"
}

// Registro creates a new account after an existence check on username
// and email. Not atomic with respect to concurrent registrations; the
// database uniqueness constraints are the real backstop.
func (h *AuthHandler) Registro(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	tipoUsuario := r.FormValue("tipo_usuario")
	nombreCompleto := r.FormValue("nombre_completo")
	email := r.FormValue("email")

	existing, err := h.Repo.FindExisting(username, email)
	if err != nil {
		h.registroError(w, err)
		return
	}
	if existing != nil {
		h.Views.RenderNotice(w, http.StatusOK, NoticeData{
			Title:       "Usuario Existente",
			Message:     "El nombre de usuario o email ya está registrado en el sistema.",
			RedirectURL: "/registro.html",
			ButtonText:  "Volver al Registro",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		h.registroError(w, err)
		return
	}

	user := &models.Usuario{
		Username:       username,
		Password:       string(hash),
		TipoUsuario:    tipoUsuario,
		NombreCompleto: nombreCompleto,
	}
	if email != "" {
		user.Email = &email
	}
	if err := h.Repo.CreateUser(user); err != nil {
		h.registroError(w, err)
		return
	}

	h.Views.RenderNotice(w, http.StatusOK, NoticeData{
		Title:       "Registro Exitoso",
		Message:     "Tu cuenta ha sido creada exitosamente. Ahora puedes iniciar sesión.",
		RedirectURL: "/login.html",
		ButtonText:  "Ir al Login",
	})
}

func (h *AuthHandler) registroError(w http.ResponseWriter, err error) {
	slog.Error("registro error", slog.String("err", err.Error()))
	h.Views.RenderNotice(w, http.StatusOK, NoticeData{
		Title:       "Error en Registro",
		Message:     "Hubo un problema al crear tu cuenta. Inténtalo nuevamente.",
		RedirectURL: "/registro.html",
		ButtonText:  "Volver al Registro",
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	http.Redirect(w, r, "/login.html", http.StatusFound)
}

// SessionInfo answers /api/session.
func (h *AuthHandler) SessionInfo(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.GetPrincipal(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"loggedIn": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"loggedIn": true,
		"tipo":     p.Tipo,
		"username": p.Username,
		"nombre":   p.Nombre,
	})
}

// AuthStatus answers /auth/status.
func (h *AuthHandler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.GetPrincipal(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          p,
	})
}

// TipoUsuario answers /tipo-usuario.
func (h *AuthHandler) TipoUsuario(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.GetPrincipal(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"tipo_usuario": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tipo_usuario": p.Tipo})
}
