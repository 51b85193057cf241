package interviewer

import (
	"strings"

	"github.com/iudanet/resumeai/pkg/api"
)

// RenderText формирует текстовую версию резюме для выгрузки в формате txt
func RenderText(data api.ResumeData) string {
	var b strings.Builder

	info := data.PersonalInfo
	name := strings.TrimSpace(info.FirstName + " " + info.LastName)
	if name == "" {
		name = "Resume"
	}
	b.WriteString(strings.ToUpper(name) + "\n")
	if contacts := joinNonEmpty(" | ", info.Email, info.Phone, info.Location); contacts != "" {
		b.WriteString(contacts + "\n")
	}

	if data.Summary != "" {
		section(&b, "SUMMARY")
		b.WriteString(data.Summary + "\n")
	}

	if len(data.WorkExperience) > 0 {
		section(&b, "EXPERIENCE")
		for _, w := range data.WorkExperience {
			b.WriteString(joinNonEmpty(", ", w.Position, w.Company) + "\n")
			if w.Description != "" {
				b.WriteString("  " + w.Description + "\n")
			}
			for _, a := range w.Achievements {
				b.WriteString("  - " + a + "\n")
			}
		}
	}

	if len(data.Education) > 0 {
		section(&b, "EDUCATION")
		for _, e := range data.Education {
			b.WriteString(joinNonEmpty(", ", e.Degree, e.Field, e.Institution) + "\n")
		}
	}

	if len(data.Skills.Technical)+len(data.Skills.Soft) > 0 {
		section(&b, "SKILLS")
		b.WriteString(strings.Join(append(append([]string{}, data.Skills.Technical...), data.Skills.Soft...), ", ") + "\n")
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + title + "\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			items = append(items, p)
		}
	}
	return strings.Join(items, sep)
}
