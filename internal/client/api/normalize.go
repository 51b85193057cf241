package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iudanet/resumeai/pkg/api"
)

// errorMatcher пытается распознать одну известную форму тела ошибки
type errorMatcher func(body map[string]json.RawMessage, status int) (*Error, bool)

// errorMatchers проверяются по порядку, первый сработавший определяет ошибку
var errorMatchers = []errorMatcher{
	matchNestedError,
	matchFlatError,
	matchDetailString,
	matchDetailArray,
	matchMessage,
}

// normalizeError превращает тело non-2xx ответа в *Error.
// Неизвестная форма дает HTTP_ERROR только со статусом.
func normalizeError(status int, body []byte) *Error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return httpStatusError(status)
	}

	for _, match := range errorMatchers {
		if apiErr, ok := match(fields, status); ok {
			return apiErr
		}
	}
	return httpStatusError(status)
}

// {"detail": {"error": {"code", "message", "details"}}}
func matchNestedError(body map[string]json.RawMessage, status int) (*Error, bool) {
	raw, ok := body["detail"]
	if !ok || !isObject(raw) {
		return nil, false
	}
	var detail struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &detail); err != nil || !isObject(detail.Error) {
		return nil, false
	}
	return errorFromBody(detail.Error, status)
}

// {"error": {"code", "message", "details"}}
func matchFlatError(body map[string]json.RawMessage, status int) (*Error, bool) {
	raw, ok := body["error"]
	if !ok || !isObject(raw) {
		return nil, false
	}
	return errorFromBody(raw, status)
}

// {"detail": "message"}
func matchDetailString(body map[string]json.RawMessage, status int) (*Error, bool) {
	raw, ok := body["detail"]
	if !ok || !isString(raw) {
		return nil, false
	}
	var detail string
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, false
	}
	return &Error{Code: CodeHTTPError, Message: detail, Status: status}, true
}

// {"detail": [{"loc": [...], "msg": "..."}]}
func matchDetailArray(body map[string]json.RawMessage, status int) (*Error, bool) {
	raw, ok := body["detail"]
	if !ok || !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		return nil, false
	}
	var issues []api.ValidationIssue
	if err := json.Unmarshal(raw, &issues); err != nil {
		return nil, false
	}

	details := make([]api.FieldError, 0, len(issues))
	for _, issue := range issues {
		details = append(details, api.FieldError{
			Field:   joinLoc(issue.Loc),
			Message: withDefault(issue.Msg, "Validation error"),
		})
	}
	return &Error{
		Code:    CodeValidationError,
		Message: "Validation failed",
		Details: details,
		Status:  status,
	}, true
}

// {"message": "..."}, только если detail отсутствует
func matchMessage(body map[string]json.RawMessage, status int) (*Error, bool) {
	if _, ok := body["detail"]; ok {
		return nil, false
	}
	raw, ok := body["message"]
	if !ok || !isString(raw) {
		return nil, false
	}
	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		return nil, false
	}
	return &Error{Code: CodeHTTPError, Message: message, Status: status}, true
}

func errorFromBody(raw json.RawMessage, status int) (*Error, bool) {
	var body api.ErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, false
	}
	return &Error{
		Code:    withDefault(body.Code, CodeHTTPError),
		Message: withDefault(body.Message, fmt.Sprintf("HTTP error! status: %d", status)),
		Details: body.Details,
		Status:  status,
	}, true
}

// joinLoc склеивает путь поля через точку: ["body", "email"] -> "body.email"
func joinLoc(loc []any) string {
	if len(loc) == 0 {
		return "unknown"
	}
	parts := make([]string, 0, len(loc))
	for _, p := range loc {
		switch v := p.(type) {
		case string:
			parts = append(parts, v)
		case float64:
			parts = append(parts, fmt.Sprintf("%d", int64(v)))
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, ".")
}

func isObject(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}

func isString(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`))
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// pageEnvelope принимает обе формы списка:
// {items, total, limit, offset, has_more} и {data, pagination: {...}}
type pageEnvelope[T any] struct {
	Pagination *api.Pagination `json:"pagination"`
	Items      []T             `json:"items"`
	Data       []T             `json:"data"`
	Total      int             `json:"total"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
	HasMore    bool            `json:"has_more"`
}

// page приводит ответ к клиентскому формату api.Page
func (e *pageEnvelope[T]) page() *api.Page[T] {
	if e.Pagination != nil || (e.Data != nil && e.Items == nil) {
		p := &api.Page[T]{Items: e.Data}
		if e.Pagination != nil {
			p.Total = e.Pagination.Total
			p.Limit = e.Pagination.Limit
			p.Offset = e.Pagination.Offset
			p.HasMore = e.Pagination.HasMore
		}
		if p.Items == nil {
			p.Items = []T{}
		}
		return p
	}

	items := e.Items
	if items == nil {
		items = []T{}
	}
	return &api.Page[T]{
		Items:   items,
		Total:   e.Total,
		Limit:   e.Limit,
		Offset:  e.Offset,
		HasMore: e.HasMore,
	}
}
