package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/resumeai/pkg/api"
)

func sessionPath(sessionID string, suffix string) string {
	return "/interview/sessions/" + url.PathEscape(sessionID) + suffix
}

// listQuery собирает limit/offset, нулевые значения не отправляются
func listQuery(limit, offset int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return q
}

// ListSessions возвращает страницу сессий пользователя
func (c *Client) ListSessions(ctx context.Context, params api.SessionListParams) (*api.Page[api.InterviewSession], error) {
	q := listQuery(params.Limit, params.Offset)
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}

	var env pageEnvelope[api.InterviewSession]
	if err := c.doRequest(ctx, http.MethodGet, "/interview/sessions", q, nil, &env); err != nil {
		return nil, fmt.Errorf("list sessions request failed: %w", err)
	}
	return env.page(), nil
}

// CreateSession создает новую сессию интервью
func (c *Client) CreateSession(ctx context.Context, req api.CreateSessionRequest) (*api.InterviewSession, error) {
	var resp api.InterviewSession
	if err := c.doRequest(ctx, http.MethodPost, "/interview/sessions", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create session request failed: %w", err)
	}
	return &resp, nil
}

// GetSession возвращает сессию по id
func (c *Client) GetSession(ctx context.Context, sessionID string) (*api.InterviewSession, error) {
	var resp api.InterviewSession
	if err := c.doRequest(ctx, http.MethodGet, sessionPath(sessionID, ""), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get session request failed: %w", err)
	}
	return &resp, nil
}

// DeleteSession удаляет сессию
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, sessionPath(sessionID, ""), nil, nil, nil); err != nil {
		return fmt.Errorf("delete session request failed: %w", err)
	}
	return nil
}

// GetMessages возвращает историю сообщений сессии
func (c *Client) GetMessages(ctx context.Context, sessionID string) (*api.SessionMessagesResponse, error) {
	var resp api.SessionMessagesResponse
	if err := c.doRequest(ctx, http.MethodGet, sessionPath(sessionID, "/messages"), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get messages request failed: %w", err)
	}
	return &resp, nil
}

// SendMessage отправляет ответ пользователя и возвращает пару сообщений
func (c *Client) SendMessage(ctx context.Context, sessionID string, req api.SendMessageRequest) (*api.SendMessageResponse, error) {
	var resp api.SendMessageResponse
	if err := c.doRequest(ctx, http.MethodPost, sessionPath(sessionID, "/messages"), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("send message request failed: %w", err)
	}
	return &resp, nil
}

// CompleteInterview завершает интервью и запускает генерацию резюме
func (c *Client) CompleteInterview(ctx context.Context, sessionID string) (*api.CompleteInterviewResponse, error) {
	var resp api.CompleteInterviewResponse
	if err := c.doRequest(ctx, http.MethodPost, sessionPath(sessionID, "/complete"), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("complete interview request failed: %w", err)
	}
	return &resp, nil
}

// GetSessionResume возвращает резюме, построенное по сессии
func (c *Client) GetSessionResume(ctx context.Context, sessionID string) (*api.Resume, error) {
	var resp api.Resume
	if err := c.doRequest(ctx, http.MethodGet, sessionPath(sessionID, "/resume"), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get session resume request failed: %w", err)
	}
	return &resp, nil
}
