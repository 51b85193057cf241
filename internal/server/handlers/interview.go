package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/resumeai/internal/models"
	"github.com/iudanet/resumeai/internal/server/interviewer"
	"github.com/iudanet/resumeai/internal/server/respond"
	"github.com/iudanet/resumeai/internal/server/storage"
	"github.com/iudanet/resumeai/internal/validation"
	"github.com/iudanet/resumeai/pkg/api"
)

const defaultTemplate = "modern"

// InterviewStore объединяет хранилища, которые нужны InterviewHandler
type InterviewStore interface {
	storage.UserStorage
	storage.SessionStorage
	storage.ResumeStorage
}

// InterviewHandler обрабатывает /v1/interview/sessions
type InterviewHandler struct {
	now       func() time.Time
	logger    *slog.Logger
	store     InterviewStore
	validator *validation.Validator
}

// NewInterviewHandler создает handler интервью
func NewInterviewHandler(logger *slog.Logger, store InterviewStore, v *validation.Validator) *InterviewHandler {
	return &InterviewHandler{
		now:       time.Now,
		logger:    logger,
		store:     store,
		validator: v,
	}
}

// List обрабатывает GET /v1/interview/sessions?status=&limit=&offset=
func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		respond.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	status := api.SessionStatus(r.URL.Query().Get("status"))
	switch status {
	case "", api.StatusInProgress, api.StatusCompleted, api.StatusAbandoned:
	default:
		respond.Detail(w, http.StatusBadRequest, fmt.Sprintf("Invalid status %q", status))
		return
	}

	sessions, total, err := h.store.ListSessions(r.Context(), currentUserID(r), storage.SessionFilter{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		serverError(w, r, h.logger, "failed to list sessions", err)
		return
	}

	items := make([]api.InterviewSession, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, s.API())
	}
	respond.JSON(w, http.StatusOK, api.NewPage(items, total, limit, offset))
}

// Create обрабатывает POST /v1/interview/sessions. Первым сообщением сессии идет вопрос AI.
func (h *InterviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateSessionRequest
	if !decodeBody(w, r, h.logger, &req, true) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respond.Invalid(w, err)
		return
	}
	if req.Language == "" {
		req.Language = api.LanguageRU
	}

	now := h.now()
	session := &models.Session{
		ID:           uuid.New().String(),
		UserID:       currentUserID(r),
		Status:       api.StatusInProgress,
		Language:     req.Language,
		Progress:     interviewer.InitialProgress(),
		Answers:      map[string]string{},
		MessageCount: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	greeting := h.message(session.ID, api.RoleAI, interviewer.Greeting(req.Language), nil, now)

	if err := h.store.CreateSession(ctx, session, greeting); err != nil {
		serverError(w, r, h.logger, "failed to create session", err)
		return
	}

	h.logger.InfoContext(ctx, "interview session created",
		slog.String("session_id", session.ID),
		slog.String("language", string(session.Language)))
	respond.JSON(w, http.StatusCreated, session.API())
}

// Get обрабатывает GET /v1/interview/sessions/{id}
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, session.API())
}

// Delete обрабатывает DELETE /v1/interview/sessions/{id}
func (h *InterviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteSession(r.Context(), currentUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			respond.NotFound(w, "Session not found")
			return
		}
		serverError(w, r, h.logger, "failed to delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Messages обрабатывает GET /v1/interview/sessions/{id}/messages
func (h *InterviewHandler) Messages(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	messages, err := h.store.ListMessages(r.Context(), session.ID)
	if err != nil {
		serverError(w, r, h.logger, "failed to list messages", err)
		return
	}

	resp := api.SessionMessagesResponse{SessionID: session.ID, Messages: make([]api.Message, 0, len(messages))}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, m.API())
	}
	respond.JSON(w, http.StatusOK, resp)
}

// Send обрабатывает POST /v1/interview/sessions/{id}/messages.
// Последний ответ сценария завершает сессию и собирает резюме.
func (h *InterviewHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SendMessageRequest
	if !decodeBody(w, r, h.logger, &req, false) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respond.Invalid(w, err)
		return
	}

	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	if session.Status != api.StatusInProgress {
		respond.Detail(w, http.StatusBadRequest, "Interview session is not active")
		return
	}
	if session.Answers == nil {
		session.Answers = map[string]string{}
	}

	step := interviewer.Advance(session.Language, session.Progress, session.Answers, req.Message)

	now := h.now()
	userMsg := h.message(session.ID, api.RoleUser, req.Message, step.Extracted, now)
	aiMsg := h.message(session.ID, api.RoleAI, step.Reply, nil, now.Add(time.Millisecond))

	session.Progress = step.Progress
	session.MessageCount += 2
	session.UpdatedAt = now
	if step.Progress.Done() {
		markCompleted(session, now)
	}

	if err := h.store.UpdateSession(ctx, session, userMsg, aiMsg); err != nil {
		serverError(w, r, h.logger, "failed to update session", err)
		return
	}

	if session.Status == api.StatusCompleted {
		if _, err := h.ensureResume(ctx, session); err != nil {
			serverError(w, r, h.logger, "failed to build resume", err)
			return
		}
		h.logger.InfoContext(ctx, "interview completed", slog.String("session_id", session.ID))
	}

	respond.JSON(w, http.StatusOK, api.SendMessageResponse{
		UserMessage: userMsg.API(),
		AIResponse:  aiMsg.API(),
		Progress:    session.Progress,
	})
}

// Complete обрабатывает POST /v1/interview/sessions/{id}/complete.
// Повторный вызов для завершенной сессии возвращает то же резюме.
func (h *InterviewHandler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	switch session.Status {
	case api.StatusAbandoned:
		respond.Detail(w, http.StatusBadRequest, "Interview session was abandoned")
		return
	case api.StatusInProgress:
		markCompleted(session, h.now())
		if err := h.store.UpdateSession(ctx, session); err != nil {
			serverError(w, r, h.logger, "failed to complete session", err)
			return
		}
	}

	resume, err := h.ensureResume(ctx, session)
	if err != nil {
		serverError(w, r, h.logger, "failed to build resume", err)
		return
	}

	h.logger.InfoContext(ctx, "interview completed",
		slog.String("session_id", session.ID),
		slog.String("resume_id", resume.ID))
	respond.JSON(w, http.StatusOK, api.CompleteInterviewResponse{Session: session.API(), ResumeID: resume.ID})
}

// Resume обрабатывает GET /v1/interview/sessions/{id}/resume
func (h *InterviewHandler) Resume(w http.ResponseWriter, r *http.Request) {
	resume, err := h.store.GetSessionResume(r.Context(), currentUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrResumeNotFound) {
			respond.NotFound(w, "Resume not found")
			return
		}
		serverError(w, r, h.logger, "failed to get session resume", err)
		return
	}
	respond.JSON(w, http.StatusOK, resume.API())
}

func (h *InterviewHandler) loadSession(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	session, err := h.store.GetSession(r.Context(), currentUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			respond.NotFound(w, "Session not found")
			return nil, false
		}
		serverError(w, r, h.logger, "failed to get session", err)
		return nil, false
	}
	return session, true
}

// ensureResume возвращает резюме сессии, собирая его при отсутствии
func (h *InterviewHandler) ensureResume(ctx context.Context, session *models.Session) (*models.Resume, error) {
	resume, err := h.store.GetSessionResume(ctx, session.UserID, session.ID)
	if err == nil {
		return resume, nil
	}
	if !errors.Is(err, storage.ErrResumeNotFound) {
		return nil, err
	}

	user, err := h.store.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	data := interviewer.BuildResume(session.Answers, user.API())
	now := h.now()
	resume = &models.Resume{
		ID:        uuid.New().String(),
		UserID:    session.UserID,
		SessionID: session.ID,
		Title:     interviewer.Title(data, session.Language),
		Template:  defaultTemplate,
		Language:  session.Language,
		Data:      data,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.store.SaveResume(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (h *InterviewHandler) message(sessionID string, role api.MessageRole, content string, extracted map[string]any, at time.Time) *models.Message {
	return &models.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Extracted: extracted,
		CreatedAt: at,
	}
}

func markCompleted(s *models.Session, now time.Time) {
	s.Status = api.StatusCompleted
	s.CompletedAt = &now
	s.UpdatedAt = now
}
