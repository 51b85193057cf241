package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultTimeout = 30 * time.Second

// TokenSource отдает текущий bearer token, пустая строка если его нет
type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	baseURL    string
	timeout    time.Duration
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут одного запроса
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithTokenSource задает источник bearer token
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithLogger задает логгер для отладки запросов
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient подменяет http.Client (тесты, прокси)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
		httpClient: &http.Client{
			// Таймаут задается контекстом каждого запроса
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RawResponse содержит успешный ответ с не-JSON телом (выгрузка файлов).
// Body нужно закрыть, закрытие освобождает таймаут запроса.
type RawResponse struct {
	Body        io.ReadCloser
	Header      http.Header
	ContentType string
	Status      int
}

// Filename возвращает имя файла из Content-Disposition или fallback
func (r *RawResponse) Filename(fallback string) string {
	cd := r.Header.Get("Content-Disposition")
	if cd == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(cd)
	if err != nil || params["filename"] == "" {
		return fallback
	}
	return params["filename"]
}

// cancelOnClose отменяет контекст запроса при закрытии тела
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

// doRequest выполняет JSON запрос. Пустой ответ или 204 оставляют result без изменений.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, err)
	}

	// пустое тело успешного ответа не зависит от Content-Type
	if len(bytes.TrimSpace(respBody)) == 0 {
		if !isSuccess(resp.StatusCode) {
			return httpStatusError(resp.StatusCode)
		}
		return nil
	}

	// Не-JSON ответ
	if ct := resp.Header.Get("Content-Type"); ct != "" && !isJSON(ct) {
		if !isSuccess(resp.StatusCode) {
			return httpStatusError(resp.StatusCode)
		}
		if result == nil {
			return nil
		}
		return &Error{
			Code:    CodeParseError,
			Message: fmt.Sprintf("Expected JSON response, got %s", ct),
			Status:  resp.StatusCode,
		}
	}

	if !isSuccess(resp.StatusCode) {
		apiErr := normalizeError(resp.StatusCode, respBody)
		c.logger.DebugContext(ctx, "api error response",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("code", apiErr.Code))
		return apiErr
	}

	if !json.Valid(respBody) {
		return &Error{
			Code:    CodeParseError,
			Message: "Failed to parse response as JSON",
			Status:  resp.StatusCode,
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{
				Err:     err,
				Code:    CodeParseError,
				Message: "Failed to parse response as JSON",
				Status:  resp.StatusCode,
			}
		}
	}

	return nil
}

// doRaw выполняет запрос и возвращает тело как поток.
// Ошибочные ответы нормализуются так же, как в doRequest.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values) (*RawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	resp, err := c.send(ctx, method, path, query, nil)
	if err != nil {
		cancel()
		return nil, err
	}

	if !isSuccess(resp.StatusCode) {
		defer cancel()
		defer func() {
			_ = resp.Body.Close()
		}()

		if ct := resp.Header.Get("Content-Type"); ct != "" && !isJSON(ct) {
			return nil, httpStatusError(resp.StatusCode)
		}
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, c.transportError(ctx, err)
		}
		return nil, normalizeError(resp.StatusCode, respBody)
	}

	return &RawResponse{
		Body:        &cancelOnClose{ReadCloser: resp.Body, cancel: cancel},
		Header:      resp.Header,
		ContentType: resp.Header.Get("Content-Type"),
		Status:      resp.StatusCode,
	}, nil
}

// send собирает запрос с заголовками и выполняет его
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Err: err, Code: CodeUnknownError, Message: "failed to marshal request body"}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, &Error{Err: err, Code: CodeUnknownError, Message: "failed to create request"}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return nil, &Error{Err: err, Code: CodeUnknownError, Message: "failed to read auth token"}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}

	c.logger.DebugContext(ctx, "api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", requestID))

	return resp, nil
}

// transportError различает таймаут и прочие сетевые ошибки
func (c *Client) transportError(ctx context.Context, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Error{Err: err, Code: CodeTimeout, Message: "Request timeout"}
	}
	return &Error{Err: err, Code: CodeNetworkError, Message: err.Error()}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
