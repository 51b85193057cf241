package cli

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

const resumeMarkdownTemplate = `# {{fullName .PersonalInfo}}{{contacts .PersonalInfo}}
{{- range .PersonalInfo.Links}}
- [{{.Type}}]({{.URL}})
{{- end}}
{{- with .Summary}}

## Summary

{{.}}
{{- end}}
{{- with .WorkExperience}}

## Experience
{{- range .}}

### {{.Position}}{{with .Company}}, {{.}}{{end}}
{{- with workMeta .}}
*{{.}}*
{{- end}}
{{- with .Description}}

{{.}}
{{- end}}
{{- range .Achievements}}
- {{.}}
{{- end}}
{{- end}}
{{- end}}
{{- with .Education}}

## Education
{{- range .}}

### {{degree .}}
{{- with eduMeta .}}
*{{.}}*
{{- end}}
{{- end}}
{{- end}}
{{- if or .Skills.Technical .Skills.Soft .Skills.Languages}}

## Skills
{{with .Skills.Technical}}
**Technical:** {{join .}}
{{- end}}
{{- with .Skills.Soft}}
**Soft:** {{join .}}
{{- end}}
{{- with .Skills.Languages}}
**Languages:** {{languages .}}
{{- end}}
{{- end}}
{{- with .Certifications}}

## Certifications
{{range .}}
- {{.Name}}, {{.Issuer}} ({{.Date}})
{{- end}}
{{- end}}
{{- with .Projects}}

## Projects
{{- range .}}

### {{.Name}}
{{- with .Description}}

{{.}}
{{- end}}
{{- with .Technologies}}

*Technologies:* {{join .}}
{{- end}}
{{- with .URL}}

{{deref .}}
{{- end}}
{{- end}}
{{- end}}
`

const usageTemplate = `ResumeAI Client

Usage:
  resumeai [OPTIONS] COMMAND [ARGS]

Options:
  --version            Show version information
  --server URL         API base URL (default: http://localhost:8000/v1)
  --db PATH            Path to local database (default: resumeai-client.db)
  --log-level LEVEL    debug, info, warn or error (default: warn)
  --download-dir DIR   Directory for downloaded resumes (default: .)
  --timeout DURATION   Per-request timeout (default: 30s)
  --page-size N        Sessions per page (default: 10)

Commands:
{{- range .}}
  {{printf "%-58s" .Usage}} {{.Summary}}{{if .Protected}} *{{end}}
{{- end}}

* requires login

Environment variables use the RESUMEAI_ prefix (RESUMEAI_API_URL, RESUMEAI_DB, ...)
and may also be set in a .env file.
`

var templateFuncs = template.FuncMap{
	"join":  func(items []string) string { return strings.Join(items, ", ") },
	"deref": deref,
	"fullName": func(p pkgapi.PersonalInfo) string {
		name := strings.TrimSpace(p.FirstName + " " + p.LastName)
		if name == "" {
			return "Resume"
		}
		return name
	},
	"contacts": func(p pkgapi.PersonalInfo) string {
		var parts []string
		for _, s := range []string{p.Email, p.Phone, p.Location} {
			if s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		return "\n\n" + strings.Join(parts, " · ")
	},
	"workMeta": func(w pkgapi.WorkExperience) string {
		return joinNonEmpty(" · ", period(w.StartDate, deref(w.EndDate), w.Current), w.Location)
	},
	"degree": func(e pkgapi.Education) string {
		title := e.Degree
		if e.Field != "" {
			title = joinNonEmpty(" in ", title, e.Field)
		}
		return joinNonEmpty(", ", title, e.Institution)
	},
	"eduMeta": func(e pkgapi.Education) string {
		var gpa string
		if e.GPA != nil {
			gpa = fmt.Sprintf("GPA %.2f", *e.GPA)
		}
		return joinNonEmpty(" · ", period(e.StartDate, e.EndDate, false), gpa)
	},
	"languages": func(langs []pkgapi.LanguageSkill) string {
		parts := make([]string, 0, len(langs))
		for _, l := range langs {
			if l.Level != "" {
				parts = append(parts, fmt.Sprintf("%s (%s)", l.Language, l.Level))
			} else {
				parts = append(parts, l.Language)
			}
		}
		return strings.Join(parts, ", ")
	},
}

func period(start, end string, current bool) string {
	switch {
	case current:
		end = "Present"
	case end == "":
		return start
	}
	return joinNonEmpty(" – ", start, end)
}

func joinNonEmpty(sep string, parts ...string) string {
	items := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			items = append(items, p)
		}
	}
	return strings.Join(items, sep)
}

var (
	resumeTmpl = template.Must(template.New("resume").Funcs(templateFuncs).Parse(resumeMarkdownTemplate))
	usageTmpl  = template.Must(template.New("usage").Parse(usageTemplate))
)

// RenderMarkdown формирует markdown-представление резюме
func RenderMarkdown(data pkgapi.ResumeData) (string, error) {
	var buf bytes.Buffer
	if err := resumeTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render resume: %w", err)
	}
	return buf.String(), nil
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() error {
	var buf bytes.Buffer
	if err := usageTmpl.Execute(&buf, c.routes()); err != nil {
		return fmt.Errorf("failed to render usage: %w", err)
	}
	c.io.Printf("%s", buf.String())
	return nil
}
