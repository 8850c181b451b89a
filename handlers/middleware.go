package handlers

import (
	"net/http"

	"biomedico/auth"
)

// RequireLogin redirects anonymous requests to the login page. The
// session middleware must have run first so the principal is on the
// request context.
func RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.GetPrincipal(r.Context()); !ok {
			http.Redirect(w, r, "/login.html", http.StatusFound)
			return
		}
		next(w, r)
	}
}

// RequireRoles gates a route on a statically declared role set.
// Unauthenticated requests are redirected to the login page; a role
// mismatch renders the access-denied notice naming the principal's role
// and the allowed set.
func RequireRoles(v *Views, next http.HandlerFunc, roles ...string) http.HandlerFunc {
	allowed := auth.NewRoleSet(roles...)
	return func(w http.ResponseWriter, r *http.Request) {
		var principal *auth.Principal
		if p, ok := auth.GetPrincipal(r.Context()); ok {
			principal = &p
		}

		switch auth.Decide(principal, allowed) {
		case auth.DenyUnauthenticated:
			http.Redirect(w, r, "/login.html", http.StatusFound)
		case auth.DenyForbidden:
			v.RenderNotice(w, http.StatusForbidden, NoticeData{
				Title:   "Acceso Denegado",
				Message: "No tienes permisos para acceder a esta sección.",
				ExtraRows: []NoticeRow{
					{Label: "Tu rol", Value: principal.Tipo},
					{Label: "Roles permitidos", Value: allowed.String()},
				},
			})
		default:
			next(w, r)
		}
	}
}
