package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
)

// Views renders the HTML pages and notices from the templates directory.
type Views struct {
	Dir string
}

func NewViews(dir string) *Views {
	return &Views{Dir: dir}
}

// NoticeRow is an extra label/value line on a notice page.
type NoticeRow struct {
	Label string
	Value string
}

// NoticeData is the view model for the shared notice page: a title, a
// message and a redirect target the page navigates to after 3 seconds.
type NoticeData struct {
	Title       string
	Message     string
	Icon        string
	RedirectURL string
	ButtonText  string
	ExtraRows   []NoticeRow
}

func (v *Views) RenderNotice(w http.ResponseWriter, status int, data NoticeData) {
	if data.ButtonText == "" {
		data.ButtonText = "Volver al Inicio"
	}
	if data.RedirectURL == "" {
		data.RedirectURL = "/index.html"
	}
	v.render(w, status, "notice.html", data)
}

func (v *Views) render(w http.ResponseWriter, status int, name string, data interface{}) {
	tmpl, err := template.ParseFiles(filepath.Join(v.Dir, name))
	if err != nil {
		slog.Error("template parse failed", slog.String("template", name), slog.String("err", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("template execute failed", slog.String("template", name), slog.String("err", err.Error()))
	}
}
