package api

import "time"

// SessionStatus: статус интервью-сессии
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

// Terminal сообщает, что сессия больше не принимает сообщения
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// Language: язык интервью и резюме
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
)

type MessageRole string

const (
	RoleUser MessageRole = "user"
	RoleAI   MessageRole = "ai"
)

// InterviewProgress описывает прогресс интервью
type InterviewProgress struct {
	CurrentSection    string   `json:"currentSection"`
	CompletedSections []string `json:"completedSections"`
	Percentage        int      `json:"percentage"`
}

// Done сообщает, что сбор информации завершен
func (p InterviewProgress) Done() bool {
	return p.Percentage >= 100
}

// InterviewSession представляет одну попытку интервью
type InterviewSession struct {
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	CompletedAt  *time.Time        `json:"completedAt"`
	ID           string            `json:"id"`
	UserID       string            `json:"userId"`
	Status       SessionStatus     `json:"status"`
	Language     Language          `json:"language"`
	Progress     InterviewProgress `json:"progress"`
	MessageCount int               `json:"messageCount"`
}

// CreateSessionRequest представляет запрос на создание сессии
type CreateSessionRequest struct {
	Language Language `json:"language,omitempty" validate:"omitempty,oneof=ru en"`
}

// MessageMetadata содержит данные, извлеченные из ответа пользователя
type MessageMetadata struct {
	ExtractedData map[string]any `json:"extractedData,omitempty"`
}

type Message struct {
	CreatedAt time.Time        `json:"createdAt"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
	ID        string           `json:"id"`
	SessionID string           `json:"sessionId"`
	Role      MessageRole      `json:"role"`
	Content   string           `json:"content"`
}

// SendMessageRequest представляет ответ пользователя
type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// SendMessageResponse содержит пару сообщений одного шага интервью
type SendMessageResponse struct {
	UserMessage Message           `json:"userMessage"`
	AIResponse  Message           `json:"aiResponse"`
	Progress    InterviewProgress `json:"progress"`
}

// SessionMessagesResponse содержит историю сообщений сессии
type SessionMessagesResponse struct {
	SessionID string    `json:"sessionId"`
	Messages  []Message `json:"messages"`
}

// CompleteInterviewResponse: результат завершения интервью
type CompleteInterviewResponse struct {
	Session  InterviewSession `json:"session"`
	ResumeID string           `json:"resumeId"`
}

// SessionListParams задает фильтр и страницу списка сессий
type SessionListParams struct {
	Status SessionStatus
	Limit  int
	Offset int
}
