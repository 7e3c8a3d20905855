package handlers

import (
	"embed"
	"html/template"

	"github.com/vit0-9/cors_inspector/pkg/config"
	"github.com/vit0-9/cors_inspector/pkg/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

// LoadTemplates parses the embedded inspection page templates.
func LoadTemplates() (*template.Template, error) {
	return template.New("pages").
		Funcs(template.FuncMap{"corsHeaderNames": utils.CORSHeaderNames}).
		ParseFS(templatesFS, "templates/*.html")
}

// TemplateName returns the page template for a presentation.
func TemplateName(presentation string) string {
	if presentation == config.PresentationPlain {
		return "plain.html"
	}
	return "styled.html"
}
