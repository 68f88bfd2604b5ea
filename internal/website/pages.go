// Package website serves the minimal server-rendered pages of the portfolio
// site. The pages exist to give the session gate real routes; presentation
// is intentionally bare.
package website

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rmarchant/folio/internal/auth"
	"github.com/rmarchant/folio/internal/models"
	"github.com/rmarchant/folio/internal/store"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages renders the public and dashboard pages.
type Pages struct {
	templates *template.Template
	skills    []Skill
}

// New parses the embedded page templates.
func New(skills []Skill) (*Pages, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &Pages{templates: tmpl, skills: skills}, nil
}

func (p *Pages) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render page")
	}
}

// Index serves the public home page with the visible projects and the
// skills catalogue.
func (p *Pages) Index(projects store.ProjectStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		all, err := projects.List(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("failed to list projects for home page")
			all = nil
		}

		visible := make([]*models.Project, 0, len(all))
		for _, project := range all {
			if project.StatusShow {
				visible = append(visible, project)
			}
		}

		p.render(w, "index.html", map[string]any{
			"Projects": visible,
			"Skills":   p.skills,
		})
	}
}

// Login serves the login form.
func (p *Pages) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.render(w, "login.html", nil)
	}
}

// Dashboard serves the admin landing page. The session gate guarantees a
// verified session is present in the request context.
func (p *Pages) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := auth.ClaimsFromContext(r.Context())

		username := ""
		if claims != nil {
			username = claims.Username
		}

		p.render(w, "dashboard.html", map[string]any{
			"Username": username,
		})
	}
}
