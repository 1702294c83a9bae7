package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/vblinov/gophblog/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// templateData передается в шаблоны при рендеринге
type templateData struct {
	Error string            // сообщение об ошибке формы
	Form  map[string]string // введенные значения для повторного показа
	User  *models.User      // текущий пользователь, nil для анонимных
	Post  *models.Post
	Posts []*models.PostWithAuthor
}

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
}

// templates: страница -> полный набор (base + страница)
var templates = parseTemplates()

func parseTemplates() map[string]*template.Template {
	pages := []string{"index", "register", "login", "create", "update"}

	ts := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		ts[page] = template.Must(template.New(page).Funcs(templateFuncs).ParseFS(
			templateFS,
			"templates/base.html",
			"templates/"+page+".html",
		))
	}
	return ts
}

// render renders the page into a buffer first so a template error never
// produces a half-written response
func render(w http.ResponseWriter, logger *slog.Logger, r *http.Request, page string, data *templateData) {
	if data == nil {
		data = &templateData{}
	}

	// Текущий пользователь нужен каждому layout (навигация)
	if data.User == nil {
		if user, ok := CurrentUser(r.Context()); ok {
			data.User = user
		}
	}

	ts, ok := templates[page]
	if !ok {
		logger.Error("unknown template page", slog.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		logger.Error("failed to render template",
			slog.String("page", page),
			slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// serverError логирует неожиданную ошибку и отвечает 500
func serverError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.Any("error", err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
