// Package interviewer реализует детерминированный сценарий интервью devserver.
//
// Вопросы идут по фиксированному списку разделов, каждый ответ закрывает
// текущий раздел. Резюме собирается из ответов простым разбором текста.
package interviewer

import (
	"strings"

	"github.com/iudanet/resumeai/pkg/api"
)

// Разделы интервью в порядке вопросов
const (
	SectionPersonalInfo = "personal_info"
	SectionSummary      = "summary"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
)

var sections = []string{
	SectionPersonalInfo,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
}

type phrases struct {
	questions map[string]string
	greeting  string
	ack       string
	closing   string
}

var script = map[api.Language]phrases{
	api.LanguageEN: {
		greeting: "Hi! I will ask you a few questions and build your resume from the answers.",
		ack:      "Got it.",
		closing:  "Thank you! I have everything I need, your resume is ready.",
		questions: map[string]string{
			SectionPersonalInfo: "What is your full name, and how can employers reach you? For example: Ivan Petrov, ivan@example.com, +7 900 000-00-00, Moscow.",
			SectionSummary:      "Tell me briefly about yourself as a professional: your role, experience and strengths.",
			SectionExperience:   "Describe your work experience, one position per line or separated by ';'. For example: Backend developer at Acme: built payment APIs.",
			SectionEducation:    "What is your education? One entry per line, for example: BSc Computer Science, Moscow State University.",
			SectionSkills:       "Finally, list your key skills separated by commas.",
		},
	},
	api.LanguageRU: {
		greeting: "Здравствуйте! Я задам несколько вопросов и составлю резюме по вашим ответам.",
		ack:      "Понятно.",
		closing:  "Спасибо! Информации достаточно, ваше резюме готово.",
		questions: map[string]string{
			SectionPersonalInfo: "Как вас зовут и как с вами связаться? Например: Иван Петров, ivan@example.com, +7 900 000-00-00, Москва.",
			SectionSummary:      "Кратко расскажите о себе как о специалисте: роль, опыт, сильные стороны.",
			SectionExperience:   "Опишите опыт работы, по одной должности в строке или через ';'. Например: Backend developer at Acme: разработка платежного API.",
			SectionEducation:    "Какое у вас образование? По одной записи в строке, например: Бакалавр информатики, МГУ.",
			SectionSkills:       "И последнее: перечислите ключевые навыки через запятую.",
		},
	},
}

func phrasesFor(lang api.Language) phrases {
	if p, ok := script[lang]; ok {
		return p
	}
	return script[api.LanguageEN]
}

// Step содержит результат обработки одного ответа
type Step struct {
	Extracted map[string]any
	Reply     string
	Progress  api.InterviewProgress
}

// InitialProgress возвращает прогресс новой сессии
func InitialProgress() api.InterviewProgress {
	return api.InterviewProgress{
		CurrentSection:    sections[0],
		CompletedSections: []string{},
	}
}

// Greeting возвращает приветствие с первым вопросом
func Greeting(lang api.Language) string {
	p := phrasesFor(lang)
	return p.greeting + " " + p.questions[sections[0]]
}

// Advance записывает ответ в текущий раздел и возвращает следующий вопрос.
// answers изменяется на месте.
func Advance(lang api.Language, progress api.InterviewProgress, answers map[string]string, answer string) Step {
	p := phrasesFor(lang)
	answer = strings.TrimSpace(answer)

	current := progress.CurrentSection
	if current == "" || !contains(sections, current) {
		current = nextSection(progress.CompletedSections)
	}

	if prev, ok := answers[current]; ok && prev != "" {
		answers[current] = prev + "\n" + answer
	} else {
		answers[current] = answer
	}

	completed := append([]string{}, progress.CompletedSections...)
	if !contains(completed, current) {
		completed = append(completed, current)
	}

	next := nextSection(completed)
	step := Step{
		Extracted: map[string]any{current: answer},
		Progress: api.InterviewProgress{
			CurrentSection:    next,
			CompletedSections: completed,
			Percentage:        len(completed) * 100 / len(sections),
		},
	}

	if next == "" {
		step.Progress.Percentage = 100
		step.Reply = p.closing
		return step
	}

	step.Reply = p.ack + " " + p.questions[next]
	return step
}

func nextSection(completed []string) string {
	for _, s := range sections {
		if !contains(completed, s) {
			return s
		}
	}
	return ""
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
