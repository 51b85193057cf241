package models

import (
	"time"

	"github.com/iudanet/resumeai/pkg/api"
)

// Session представляет интервью-сессию в базе
type Session struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time
	Answers      map[string]string // ответы по разделам интервью
	ID           string
	UserID       string
	Status       api.SessionStatus
	Language     api.Language
	Progress     api.InterviewProgress
	MessageCount int
}

// API возвращает публичное представление сессии
func (s *Session) API() api.InterviewSession {
	progress := s.Progress
	if progress.CompletedSections == nil {
		progress.CompletedSections = []string{}
	}
	return api.InterviewSession{
		ID:           s.ID,
		UserID:       s.UserID,
		Status:       s.Status,
		Language:     s.Language,
		Progress:     progress,
		MessageCount: s.MessageCount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		CompletedAt:  s.CompletedAt,
	}
}

type Message struct {
	CreatedAt time.Time
	Extracted map[string]any
	ID        string
	SessionID string
	Role      api.MessageRole
	Content   string
}

// API возвращает публичное представление сообщения
func (m *Message) API() api.Message {
	msg := api.Message{
		ID:        m.ID,
		SessionID: m.SessionID,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if len(m.Extracted) > 0 {
		msg.Metadata = &api.MessageMetadata{ExtractedData: m.Extracted}
	}
	return msg
}

// Resume представляет резюме, собранное по итогам сессии
type Resume struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	UserID    string
	SessionID string
	Title     string
	Template  string
	Language  api.Language
	Data      api.ResumeData
	Version   int
}

// API возвращает публичное представление резюме
func (r *Resume) API() api.Resume {
	return api.Resume{
		ID:        r.ID,
		UserID:    r.UserID,
		SessionID: r.SessionID,
		Title:     r.Title,
		Template:  r.Template,
		Language:  r.Language,
		Data:      r.Data,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
