package api

import "time"

// ResumeFormat: формат выгрузки резюме
type ResumeFormat string

const (
	FormatPDF  ResumeFormat = "pdf"
	FormatDOCX ResumeFormat = "docx"
	FormatTXT  ResumeFormat = "txt"
)

// Valid проверяет, что формат поддерживается API
func (f ResumeFormat) Valid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatTXT:
		return true
	}
	return false
}

type Link struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// PersonalInfo: контактные данные
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Links     []Link `json:"links,omitempty"`
}

// WorkExperience: место работы
type WorkExperience struct {
	EndDate      *string  `json:"endDate"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Current      bool     `json:"current"`
}

type Education struct {
	GPA         *float64 `json:"gpa,omitempty"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
}

// LanguageSkill: владение языком
type LanguageSkill struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

type Skills struct {
	Technical []string        `json:"technical"`
	Soft      []string        `json:"soft"`
	Languages []LanguageSkill `json:"languages,omitempty"`
}

type Certification struct {
	ExpirationDate *string `json:"expirationDate,omitempty"`
	CredentialID   *string `json:"credentialId,omitempty"`
	Name           string  `json:"name"`
	Issuer         string  `json:"issuer"`
	Date           string  `json:"date"`
}

type Project struct {
	URL          *string  `json:"url,omitempty"`
	EndDate      *string  `json:"endDate,omitempty"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	Technologies []string `json:"technologies"`
}

// ResumeData представляет структурированное содержимое резюме
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         Skills           `json:"skills"`
	Certifications []Certification  `json:"certifications,omitempty"`
	Projects       []Project        `json:"projects,omitempty"`
}

// Resume представляет сгенерированное резюме
type Resume struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	SessionID string     `json:"sessionId"`
	Title     string     `json:"title"`
	Template  string     `json:"template"`
	Language  Language   `json:"language"`
	Data      ResumeData `json:"data"`
	Version   int        `json:"version"`
}

// RegenerateResumeRequest: параметры повторной генерации
type RegenerateResumeRequest struct {
	Template string `json:"template,omitempty" validate:"omitempty,oneof=modern classic minimal creative"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=ru en"`
}
