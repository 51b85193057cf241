// Package sessions держит локальную копию списка сессий интервью.
//
// Копия отражает состояние сервера приблизительно: удаление убирает
// элемент и уменьшает total без перезагрузки, "еще" дописывает страницу
// в конец. Сверка с сервером выполняется только явным Refresh.
package sessions

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	clientapi "github.com/iudanet/resumeai/internal/client/api"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

//go:generate moq -out api_mock.go . API

const DefaultPageSize = 10

// minResumeLimit: минимальный limit запроса резюме
const minResumeLimit = 10

// ErrNoMore означает, что сервер больше не сообщает has_more
var ErrNoMore = errors.New("no more sessions to load")

// API описывает endpoint'ы, которые вызывает List
type API interface {
	ListSessions(ctx context.Context, params pkgapi.SessionListParams) (*pkgapi.Page[pkgapi.InterviewSession], error)
	DeleteSession(ctx context.Context, sessionID string) error
	CompleteInterview(ctx context.Context, sessionID string) (*pkgapi.CompleteInterviewResponse, error)
	ListResumes(ctx context.Context, params pkgapi.ListParams) (*pkgapi.Page[pkgapi.Resume], error)
}

// Snapshot содержит копию списка для отрисовки
type Snapshot struct {
	Resumes map[string]pkgapi.Resume // по id сессии
	Error   string
	Items   []pkgapi.InterviewSession
	Total   int
	HasMore bool
}

// List кэширует список сессий с постраничной загрузкой
type List struct {
	api      API
	logger   *slog.Logger
	pageSize int

	mu      sync.Mutex
	items   []pkgapi.InterviewSession
	resumes map[string]pkgapi.Resume
	lastErr string
	total   int
	hasMore bool
}

// NewList создает пустой список. pageSize <= 0 означает DefaultPageSize.
func NewList(client API, pageSize int, logger *slog.Logger) *List {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &List{
		api:      client,
		logger:   logger,
		pageSize: pageSize,
		resumes:  map[string]pkgapi.Resume{},
	}
}

// Refresh загружает первую страницу и заменяет все загруженное
func (l *List) Refresh(ctx context.Context) error {
	return l.load(ctx, true)
}

// LoadMore дописывает следующую страницу с offset = числу загруженных элементов
func (l *List) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	hasMore := l.hasMore
	l.mu.Unlock()

	if !hasMore {
		return ErrNoMore
	}
	return l.load(ctx, false)
}

func (l *List) load(ctx context.Context, reset bool) error {
	l.mu.Lock()
	offset := 0
	if !reset {
		offset = len(l.items)
	}
	l.lastErr = ""
	l.mu.Unlock()

	page, err := l.api.ListSessions(ctx, pkgapi.SessionListParams{Limit: l.pageSize, Offset: offset})
	if err != nil {
		return l.fail(ctx, "failed to load sessions", err)
	}

	l.mu.Lock()
	if ctx.Err() != nil {
		l.mu.Unlock()
		return ctx.Err()
	}
	if reset {
		l.items = append([]pkgapi.InterviewSession(nil), page.Items...)
	} else {
		l.items = append(l.items, page.Items...)
	}
	l.total = page.Total
	l.hasMore = page.HasMore
	loaded := len(l.items)
	l.mu.Unlock()

	l.logger.DebugContext(ctx, "sessions loaded",
		slog.Int("offset", offset),
		slog.Int("received", len(page.Items)),
		slog.Int("total", page.Total),
		slog.Bool("has_more", page.HasMore))

	return l.loadResumes(ctx, loaded)
}

// loadResumes загружает резюме для всех загруженных сессий
func (l *List) loadResumes(ctx context.Context, loaded int) error {
	limit := max(loaded, minResumeLimit)

	page, err := l.api.ListResumes(ctx, pkgapi.ListParams{Limit: limit})
	if err != nil {
		return l.fail(ctx, "failed to load resumes", err)
	}

	bySession := make(map[string]pkgapi.Resume, len(page.Items))
	for _, r := range page.Items {
		if r.SessionID != "" {
			bySession[r.SessionID] = r
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	l.resumes = bySession
	return nil
}

// Delete удаляет сессию на сервере, затем убирает ее локально и уменьшает total
func (l *List) Delete(ctx context.Context, sessionID string) error {
	if err := l.api.DeleteSession(ctx, sessionID); err != nil {
		return l.fail(ctx, "failed to delete session", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if ctx.Err() != nil {
		return ctx.Err()
	}

	for i, s := range l.items {
		if s.ID == sessionID {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			break
		}
	}
	delete(l.resumes, sessionID)
	l.total = max(0, l.total-1)
	l.lastErr = ""
	return nil
}

// Complete завершает сессию и перезагружает список
func (l *List) Complete(ctx context.Context, sessionID string) (*pkgapi.CompleteInterviewResponse, error) {
	resp, err := l.api.CompleteInterview(ctx, sessionID)
	if err != nil {
		return nil, l.fail(ctx, "failed to complete session", err)
	}
	return resp, l.Refresh(ctx)
}

// Find возвращает загруженную сессию по id
func (l *List) Find(sessionID string) (pkgapi.InterviewSession, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.items {
		if s.ID == sessionID {
			return s, true
		}
	}
	return pkgapi.InterviewSession{}, false
}

// ResumeFor возвращает резюме сессии, если оно загружено
func (l *List) ResumeFor(sessionID string) (pkgapi.Resume, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.resumes[sessionID]
	return r, ok
}

// Snapshot возвращает копию состояния
func (l *List) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	resumes := make(map[string]pkgapi.Resume, len(l.resumes))
	for k, v := range l.resumes {
		resumes[k] = v
	}
	return Snapshot{
		Items:   append([]pkgapi.InterviewSession(nil), l.items...),
		Resumes: resumes,
		Total:   l.total,
		HasMore: l.hasMore,
		Error:   l.lastErr,
	}
}

func (l *List) fail(ctx context.Context, msg string, err error) error {
	l.logger.WarnContext(ctx, msg, slog.Any("error", err))

	text := err.Error()
	if apiErr, ok := clientapi.AsError(err); ok {
		text = apiErr.Error()
	}

	l.mu.Lock()
	l.lastErr = text
	l.mu.Unlock()
	return err
}
