package interviewer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/resumeai/pkg/api"
)

func TestRenderText(t *testing.T) {
	data := api.ResumeData{
		PersonalInfo:   api.PersonalInfo{FirstName: "Ivan", LastName: "Petrov", Email: "ivan@example.com"},
		Summary:        "Backend developer",
		WorkExperience: []api.WorkExperience{{Position: "Go developer", Company: "Acme", Description: "Payments"}},
		Education:      []api.Education{{Degree: "BSc", Institution: "MSU"}},
		Skills:         api.Skills{Technical: []string{"Go", "SQL"}, Soft: []string{"Mentoring"}},
	}

	want := `IVAN PETROV
ivan@example.com

SUMMARY
Backend developer

EXPERIENCE
Go developer, Acme
  Payments

EDUCATION
BSc, MSU

SKILLS
Go, SQL, Mentoring
`
	assert.Equal(t, want, RenderText(data))
}

func TestRenderText_Empty(t *testing.T) {
	assert.Equal(t, "RESUME\n", RenderText(api.ResumeData{}))
}
