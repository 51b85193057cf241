package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

func ptr[T any](v T) *T { return &v }

func TestRenderMarkdown(t *testing.T) {
	data := pkgapi.ResumeData{
		PersonalInfo: pkgapi.PersonalInfo{
			FirstName: "Ivan",
			LastName:  "Petrov",
			Email:     "ivan@example.com",
			Phone:     "+7 900",
			Location:  "Moscow",
			Links:     []pkgapi.Link{{Type: "github", URL: "https://github.com/ivan"}},
		},
		Summary: "Backend developer.",
		WorkExperience: []pkgapi.WorkExperience{
			{
				Position:     "Go developer",
				Company:      "Acme",
				Location:     "Remote",
				StartDate:    "2020-01",
				Current:      true,
				Description:  "Payment APIs.",
				Achievements: []string{"Cut latency by 40%"},
			},
			{Position: "Intern", StartDate: "2019-06", EndDate: ptr("2019-12")},
		},
		Education: []pkgapi.Education{{
			Degree:      "BSc",
			Field:       "Computer Science",
			Institution: "MSU",
			StartDate:   "2015",
			EndDate:     "2019",
			GPA:         ptr(4.5),
		}},
		Skills: pkgapi.Skills{
			Technical: []string{"Go", "SQL"},
			Soft:      []string{"Teamwork"},
			Languages: []pkgapi.LanguageSkill{{Language: "English", Level: "C1"}, {Language: "Russian"}},
		},
		Certifications: []pkgapi.Certification{{Name: "CKA", Issuer: "CNCF", Date: "2023"}},
		Projects: []pkgapi.Project{{
			Name:         "resumeai",
			Description:  "CLI client.",
			Technologies: []string{"Go"},
			URL:          ptr("https://example.com"),
		}},
	}

	want := `# Ivan Petrov

ivan@example.com · +7 900 · Moscow
- [github](https://github.com/ivan)

## Summary

Backend developer.

## Experience

### Go developer, Acme
*2020-01 – Present · Remote*

Payment APIs.
- Cut latency by 40%

### Intern
*2019-06 – 2019-12*

## Education

### BSc in Computer Science, MSU
*2015 – 2019 · GPA 4.50*

## Skills

**Technical:** Go, SQL
**Soft:** Teamwork
**Languages:** English (C1), Russian

## Certifications

- CKA, CNCF (2023)

## Projects

### resumeai

CLI client.

*Technologies:* Go

https://example.com
`

	got, err := RenderMarkdown(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRenderMarkdown_Empty(t *testing.T) {
	got, err := RenderMarkdown(pkgapi.ResumeData{})
	require.NoError(t, err)
	assert.Equal(t, "# Resume\n", got)
}

func TestRenderMarkdown_OnlySkills(t *testing.T) {
	got, err := RenderMarkdown(pkgapi.ResumeData{
		PersonalInfo: pkgapi.PersonalInfo{FirstName: "Anna"},
		Skills:       pkgapi.Skills{Soft: []string{"Patience"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "# Anna\n\n## Skills\n\n**Soft:** Patience\n", got)
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "2020 – Present", period("2020", "", true))
	assert.Equal(t, "2020", period("2020", "", false))
	assert.Equal(t, "2020 – 2021", period("2020", "2021", false))
	assert.Equal(t, "", period("", "", false))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[--------------------] 0%", progressBar(-5))
	assert.Equal(t, "[##########----------] 50%", progressBar(50))
	assert.Equal(t, "[####################] 100%", progressBar(140))
}
