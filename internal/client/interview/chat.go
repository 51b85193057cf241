// Package interview реализует состояние экрана интервью: история сообщений,
// отправка ответов, прогресс и досрочное завершение.
package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	clientapi "github.com/iudanet/resumeai/internal/client/api"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API описывает endpoint'ы сессии, которые вызывает Chat
type API interface {
	GetMessages(ctx context.Context, sessionID string) (*pkgapi.SessionMessagesResponse, error)
	SendMessage(ctx context.Context, sessionID string, req pkgapi.SendMessageRequest) (*pkgapi.SendMessageResponse, error)
	CompleteInterview(ctx context.Context, sessionID string) (*pkgapi.CompleteInterviewResponse, error)
}

// State: состояние экрана интервью
type State string

const (
	StateLoadingHistory State = "loading_history"
	StateIdle           State = "idle"
	StateSending        State = "sending"
	StateEnding         State = "ending"
	StateCompleted      State = "completed"
	StateError          State = "error"
)

var (
	// ErrEmptyInput: пустой ответ не отправляется
	ErrEmptyInput = errors.New("message cannot be empty")
	// ErrBusy: предыдущая операция еще выполняется
	ErrBusy = errors.New("previous request is still in progress")
	// ErrCompleted: интервью уже завершено
	ErrCompleted = errors.New("interview is already completed")
	// ErrNotEnding: Complete вызывается только из диалога завершения
	ErrNotEnding = errors.New("end dialog is not open")
)

// Snapshot содержит копию состояния для отрисовки
type Snapshot struct {
	SessionID string
	State     State
	Error     string
	Messages  []pkgapi.Message
	Progress  pkgapi.InterviewProgress
	ResumeID  string
}

// Chat реализует конечный автомат экрана интервью.
// Результаты запросов, пришедшие после отмены контекста вызывающего, отбрасываются.
type Chat struct {
	api       API
	logger    *slog.Logger
	sessionID string

	mu         sync.Mutex
	state      State
	beforeEnd  State
	messages   []pkgapi.Message
	progress   pkgapi.InterviewProgress
	lastErr    string
	resumeID   string
	completing bool
	done       bool
}

// NewChat создает чат для сессии. Завершенная сессия сразу в StateCompleted
// после загрузки истории.
func NewChat(client API, session pkgapi.InterviewSession, logger *slog.Logger) *Chat {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chat{
		api:       client,
		logger:    logger.With(slog.String("session_id", session.ID)),
		sessionID: session.ID,
		state:     StateLoadingHistory,
		progress:  session.Progress,
		done:      session.Status.Terminal(),
	}
}

// restingState возвращает состояние после завершения операции
func (c *Chat) restingState() State {
	if c.done {
		return StateCompleted
	}
	return StateIdle
}

// LoadHistory загружает историю. Ошибка не фатальна: чат остается
// в idle с пустой историей и сообщением об ошибке.
func (c *Chat) LoadHistory(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateLoadingHistory
	c.mu.Unlock()

	resp, err := c.api.GetMessages(ctx, c.sessionID)

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.restingState()
	if ctx.Err() != nil {
		c.state = next
		return ctx.Err()
	}

	if err != nil {
		c.messages = nil
		c.lastErr = errorMessage(err)
		c.state = next
		c.logger.WarnContext(ctx, "failed to load messages", slog.Any("error", err))
		return err
	}

	c.messages = append([]pkgapi.Message(nil), resp.Messages...)
	c.lastErr = ""
	c.state = next
	return nil
}

// Send отправляет ответ пользователя. Одновременно выполняется не больше
// одной отправки. При успехе оба сообщения добавляются вместе.
func (c *Chat) Send(ctx context.Context, input string) (*pkgapi.SendMessageResponse, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, ErrEmptyInput
	}

	c.mu.Lock()
	switch c.state {
	case StateSending, StateLoadingHistory, StateEnding:
		c.mu.Unlock()
		return nil, ErrBusy
	case StateCompleted:
		c.mu.Unlock()
		return nil, ErrCompleted
	}
	c.state = StateSending
	c.lastErr = ""
	c.mu.Unlock()

	resp, err := c.api.SendMessage(ctx, c.sessionID, pkgapi.SendMessageRequest{Message: text})

	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil {
		c.state = c.restingState()
		return nil, ctx.Err()
	}

	if err != nil {
		c.state = StateError
		c.lastErr = errorMessage(err)
		c.logger.WarnContext(ctx, "failed to send message", slog.Any("error", err))
		return nil, err
	}

	c.messages = append(c.messages, resp.UserMessage, resp.AIResponse)
	c.progress = resp.Progress
	if resp.Progress.Done() {
		c.done = true
		c.state = StateCompleted
		c.logger.InfoContext(ctx, "interview progress reached 100%")
	} else {
		c.state = StateIdle
	}
	return resp, nil
}

// BeginEnd открывает диалог досрочного завершения
func (c *Chat) BeginEnd() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateSending, StateLoadingHistory:
		return ErrBusy
	case StateCompleted:
		return ErrCompleted
	case StateEnding:
		return nil
	}
	c.beforeEnd = c.state
	c.state = StateEnding
	return nil
}

// CancelEnd закрывает диалог и возвращает предыдущее состояние
func (c *Chat) CancelEnd() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEnding {
		return ErrNotEnding
	}
	if c.completing {
		return ErrBusy
	}
	c.state = c.beforeEnd
	return nil
}

// ReturnLater закрывает диалог, ничего не завершая. Вызывающий
// переходит к списку сессий.
func (c *Chat) ReturnLater() error {
	if err := c.CancelEnd(); err != nil {
		return err
	}
	c.logger.Debug("interview postponed")
	return nil
}

// Complete завершает интервью на сервере. Доступно только из диалога завершения.
func (c *Chat) Complete(ctx context.Context) (*pkgapi.CompleteInterviewResponse, error) {
	c.mu.Lock()
	if c.state != StateEnding {
		c.mu.Unlock()
		return nil, ErrNotEnding
	}
	if c.completing {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.completing = true
	c.lastErr = ""
	c.mu.Unlock()

	resp, err := c.api.CompleteInterview(ctx, c.sessionID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.completing = false

	if ctx.Err() != nil {
		c.state = c.beforeEnd
		return nil, ctx.Err()
	}

	if err != nil {
		// диалог закрывается, ошибка показывается в чате
		c.state = StateError
		c.lastErr = errorMessage(err)
		c.logger.WarnContext(ctx, "failed to complete interview", slog.Any("error", err))
		return nil, err
	}

	c.done = true
	c.state = StateCompleted
	c.resumeID = resp.ResumeID
	if resp.Session.ID != "" {
		c.progress = resp.Session.Progress
	}
	c.logger.InfoContext(ctx, "interview completed", slog.String("resume_id", resp.ResumeID))
	return resp, nil
}

// State возвращает текущее состояние
func (c *Chat) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SessionID возвращает id сессии
func (c *Chat) SessionID() string {
	return c.sessionID
}

// Snapshot возвращает копию состояния
func (c *Chat) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		SessionID: c.sessionID,
		State:     c.state,
		Error:     c.lastErr,
		Messages:  append([]pkgapi.Message(nil), c.messages...),
		Progress:  c.progress,
		ResumeID:  c.resumeID,
	}
}

// errorMessage возвращает текст для показа: сообщение API без префиксов обертки
func errorMessage(err error) string {
	if apiErr, ok := clientapi.AsError(err); ok {
		return apiErr.Error()
	}
	return fmt.Sprint(err)
}
