package page

import (
	"fmt"

	"github.com/aymerick/raymond"
	"github.com/nais/lander/pkg/theme"
)

// Variables holds every value substituted into the landing page.
type Variables struct {
	Title       string
	Description string
	Year        int
	Colors      theme.Colors
}

var template = raymond.MustParse(pageTemplate)

func (v Variables) context() map[string]interface{} {
	return map[string]interface{}{
		"templateVersion": TemplateVersion,
		"title":           v.Title,
		"description":     v.Description,
		"year":            v.Year,
		"colors": map[string]string{
			"primary":    v.Colors.Primary,
			"secondary":  v.Colors.Secondary,
			"accent":     v.Colors.Accent,
			"text":       v.Colors.Text,
			"background": v.Colors.Background,
		},
	}
}

// Render produces a self-contained HTML document.
// Identical variables always yield identical output.
func Render(v Variables) (string, error) {
	output, err := template.Exec(v.context())
	if err != nil {
		return "", fmt.Errorf("execute template: %s", err)
	}
	return output, nil
}
