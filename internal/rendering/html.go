// Package rendering produces the final resume document: an HTML page styled
// per the chosen variant, optionally printed to PDF through headless Chrome.
// Empty optional sections are omitted entirely, never rendered blank.
package rendering

import (
	"embed"
	"html/template"
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/types"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

var templates = template.Must(template.New("resume").
	Funcs(template.FuncMap{"join": strings.Join}).
	ParseFS(templateFiles, "templates/*.gohtml"))

// templateData is the view model handed to the resume templates.
type templateData struct {
	Name        string
	ContactLine string
	Links       []string
	Summary     string
	Skills      []string
	Experience  []types.WorkExperience
	Projects    []types.Project
	Education   []types.Education
	Certs       []types.Certification
	Languages   []string
}

// RenderHTML renders an optimized resume to a standalone HTML document using
// the resume's style variant (modern when unset).
func RenderHTML(resume *types.OptimizedResume) (string, error) {
	style := resume.Style
	if style == "" {
		style = types.StyleModern
	}

	name := string(style) + ".gohtml"
	if templates.Lookup(name) == nil {
		return "", &RenderError{Message: "unknown style variant " + string(style)}
	}

	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, buildTemplateData(resume)); err != nil {
		return "", &RenderError{Message: "template execution failed", Cause: err}
	}
	return sb.String(), nil
}

func buildTemplateData(resume *types.OptimizedResume) *templateData {
	contact := make([]string, 0, 3)
	for _, part := range []string{resume.Personal.Email, resume.Personal.Phone, resume.Personal.Address} {
		if part != "" {
			contact = append(contact, part)
		}
	}

	links := make([]string, 0, 3)
	for _, link := range []string{resume.Personal.LinkedIn, resume.Personal.GitHub, resume.Personal.Portfolio} {
		if link != "" {
			links = append(links, link)
		}
	}

	return &templateData{
		Name:        resume.Personal.FullName,
		ContactLine: strings.Join(contact, " | "),
		Links:       links,
		Summary:     resume.OptimizedObjective,
		Skills:      resume.Skills,
		Experience:  resume.OptimizedExperience,
		Projects:    resume.OptimizedProjects,
		Education:   resume.Education,
		Certs:       resume.Certifications,
		Languages:   resume.Languages,
	}
}
