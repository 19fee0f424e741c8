// Package templates provides email template rendering functionality.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer creates a new template renderer.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// Render renders both HTML and text versions of a template.
// A missing text template yields an empty text body.
func (r *Renderer) Render(templateName string, data interface{}) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		return htmlBuf.String(), "", nil
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// DigestItem is one objective row of the expiry digest.
type DigestItem struct {
	Department      string  `json:"department"`
	Name            string  `json:"name"`
	EndDate         string  `json:"end_date"`
	DaysUntilExpiry int     `json:"days_until_expiry"`
	ProgressPercent float64 `json:"progress_percent"`
	Status          string  `json:"status"`
	Expired         bool    `json:"expired"`
}

// ExpiryDigestData contains data for the expiry digest template.
type ExpiryDigestData struct {
	RecipientName string       `json:"recipient_name"`
	GeneratedOn   string       `json:"generated_on"`
	WindowDays    int          `json:"window_days"`
	DashboardURL  string       `json:"dashboard_url"`
	Expired       []DigestItem `json:"expired"`
	Expiring      []DigestItem `json:"expiring"`
}
