package interviewer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/iudanet/resumeai/pkg/api"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s()\-]{6,}$`)

// BuildResume собирает ResumeData из ответов. Пустые контакты берутся из профиля.
func BuildResume(answers map[string]string, profile api.User) api.ResumeData {
	data := api.ResumeData{
		PersonalInfo:   parsePersonalInfo(answers[SectionPersonalInfo]),
		Summary:        strings.TrimSpace(answers[SectionSummary]),
		WorkExperience: parseExperience(answers[SectionExperience]),
		Education:      parseEducation(answers[SectionEducation]),
		Skills:         api.Skills{Technical: splitList(answers[SectionSkills], ",;\n"), Soft: []string{}},
	}

	info := &data.PersonalInfo
	if info.FirstName == "" && info.LastName == "" {
		info.FirstName, info.LastName = profile.FirstName, profile.LastName
	}
	if info.Email == "" {
		info.Email = profile.Email
	}
	if info.Phone == "" && profile.Phone != nil {
		info.Phone = *profile.Phone
	}

	return data
}

// Title собирает заголовок резюме из имени и первой должности
func Title(data api.ResumeData, lang api.Language) string {
	name := strings.TrimSpace(data.PersonalInfo.FirstName + " " + data.PersonalInfo.LastName)
	if name == "" {
		if lang == api.LanguageRU {
			name = "Резюме"
		} else {
			name = "Resume"
		}
	}
	if len(data.WorkExperience) > 0 && data.WorkExperience[0].Position != "" {
		return name + ", " + data.WorkExperience[0].Position
	}
	return name
}

func parsePersonalInfo(answer string) api.PersonalInfo {
	var info api.PersonalInfo
	var rest []string

	for i, part := range splitList(answer, ",\n") {
		switch {
		case strings.Contains(part, "@") && info.Email == "":
			info.Email = part
		case phonePattern.MatchString(part) && info.Phone == "":
			info.Phone = part
		case i == 0:
			first, last, _ := strings.Cut(part, " ")
			info.FirstName, info.LastName = first, strings.TrimSpace(last)
		default:
			rest = append(rest, part)
		}
	}

	info.Location = strings.Join(rest, ", ")
	info.Links = []api.Link{}
	return info
}

// parseExperience разбирает строки вида "Position at Company: description"
func parseExperience(answer string) []api.WorkExperience {
	items := []api.WorkExperience{}
	for _, line := range splitList(answer, ";\n") {
		head, desc, _ := strings.Cut(line, ":")
		position, company, _ := cutWord(head, "at", "в")

		items = append(items, api.WorkExperience{
			Position:     strings.TrimSpace(position),
			Company:      strings.TrimSpace(company),
			Description:  capitalize(strings.TrimSpace(desc)),
			Achievements: []string{},
		})
	}
	return items
}

// parseEducation разбирает строки вида "Degree, Institution"
func parseEducation(answer string) []api.Education {
	items := []api.Education{}
	for _, line := range splitList(answer, ";\n") {
		degree, institution, found := strings.Cut(line, ",")
		if !found {
			items = append(items, api.Education{Institution: strings.TrimSpace(line)})
			continue
		}
		items = append(items, api.Education{
			Degree:      strings.TrimSpace(degree),
			Institution: strings.TrimSpace(institution),
		})
	}
	return items
}

// cutWord делит s по первому отдельному слову из words
func cutWord(s string, words ...string) (before, after string, found bool) {
	fields := strings.Fields(s)
	for i, f := range fields {
		for _, w := range words {
			if strings.EqualFold(f, w) && i > 0 && i < len(fields)-1 {
				return strings.Join(fields[:i], " "), strings.Join(fields[i+1:], " "), true
			}
		}
	}
	return s, "", false
}

// splitList делит s по любому из разделителей, пустые элементы отбрасываются
func splitList(s, seps string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})

	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
