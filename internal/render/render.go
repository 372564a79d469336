// Package render turns a resume snapshot into a styled HTML visual surface
// for one of the built-in templates. The export pipeline treats the output as
// opaque: it only promises a single root element with the resume-section
// class and utility-class styling that the normalizer knows how to resolve.
package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// Template names selectable on a resume.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateSplit   = "split"
)

// DefaultTemplate is used when a resume has no template selected.
const DefaultTemplate = TemplateClassic

var templates = map[string]*template.Template{}

func init() {
	sources := map[string]string{
		TemplateClassic: classicTemplate,
		TemplateModern:  modernTemplate,
		TemplateSplit:   splitTemplate,
	}
	for name, src := range sources {
		templates[name] = template.Must(template.New(name).Funcs(template.FuncMap{
			"yearMonth": FormatYearMonth,
			"filled":    types.Filled,
		}).Parse(src))
	}
}

// Render produces the visual surface for the resume's selected template.
func Render(r *types.Resume) (string, error) {
	name := r.Template
	if name == "" {
		name = DefaultTemplate
	}

	tmpl, ok := templates[name]
	if !ok {
		return "", &TemplateError{Message: fmt.Sprintf("unknown template: %s", name)}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, r); err != nil {
		return "", &TemplateError{Message: fmt.Sprintf("failed to execute template %s", name), Cause: err}
	}
	return out.String(), nil
}

// TemplateNames returns the selectable template names.
func TemplateNames() []string {
	return []string{TemplateClassic, TemplateModern, TemplateSplit}
}

// dateLayouts accepted by FormatYearMonth, most specific first.
var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01", "2006"}

// FormatYearMonth renders a stored date string as "Jan 2006" for template
// display. Unparseable or empty input is returned trimmed, so hand-typed
// values like "Present" pass through.
func FormatYearMonth(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return date
}
