package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/resumeai/pkg/api"
)

func resumePath(resumeID, suffix string) string {
	return "/resumes/" + url.PathEscape(resumeID) + suffix
}

// ListResumes возвращает страницу резюме пользователя
func (c *Client) ListResumes(ctx context.Context, params api.ListParams) (*api.Page[api.Resume], error) {
	var env pageEnvelope[api.Resume]
	err := c.doRequest(ctx, http.MethodGet, "/resumes", listQuery(params.Limit, params.Offset), nil, &env)
	if err != nil {
		return nil, fmt.Errorf("list resumes request failed: %w", err)
	}
	return env.page(), nil
}

// GetResume возвращает резюме по id
func (c *Client) GetResume(ctx context.Context, resumeID string) (*api.Resume, error) {
	var resp api.Resume
	if err := c.doRequest(ctx, http.MethodGet, resumePath(resumeID, ""), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get resume request failed: %w", err)
	}
	return &resp, nil
}

// DownloadResume возвращает файл резюме в заданном формате.
// Вызывающий обязан закрыть RawResponse.Body.
func (c *Client) DownloadResume(ctx context.Context, resumeID string, format api.ResumeFormat) (*RawResponse, error) {
	if format == "" {
		format = api.FormatPDF
	}
	q := url.Values{}
	q.Set("format", string(format))

	raw, err := c.doRaw(ctx, http.MethodGet, resumePath(resumeID, "/download"), q)
	if err != nil {
		return nil, fmt.Errorf("download resume request failed: %w", err)
	}
	return raw, nil
}

// RegenerateResume генерирует резюме заново с другим шаблоном или языком
func (c *Client) RegenerateResume(ctx context.Context, resumeID string, req api.RegenerateResumeRequest) (*api.Resume, error) {
	var resp api.Resume
	if err := c.doRequest(ctx, http.MethodPost, resumePath(resumeID, "/regenerate"), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("regenerate resume request failed: %w", err)
	}
	return &resp, nil
}
