// Package respond пишет JSON ответы devserver в форматах ошибок API.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/resumeai/internal/validation"
	"github.com/iudanet/resumeai/pkg/api"
)

// Коды ошибок в теле {"error": {"code": ...}}
const (
	CodeNotFound       = "NOT_FOUND"
	CodeNotImplemented = "NOT_IMPLEMENTED"
	CodeBadRequest     = "BAD_REQUEST"
)

// JSON пишет v с указанным статусом
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("Failed to encode response", slog.Any("error", err))
	}
}

// Detail пишет {"detail": "..."}
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, api.DetailMessageResponse{Detail: msg})
}

// Message пишет {"message": "..."}
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Error пишет {"error": {"code", "message"}}
func Error(w http.ResponseWriter, status int, code, msg string) {
	JSON(w, status, api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}})
}

// NotFound пишет {"detail": {"error": {...}}} со статусом 404
func NotFound(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusNotFound, api.DetailErrorResponse{
		Detail: api.ErrorResponse{Error: api.ErrorBody{Code: CodeNotFound, Message: msg}},
	})
}

// Invalid пишет 422 {"detail": [{"loc", "msg"}]} для ошибок валидации.
// Прочие ошибки отдаются как 400 {"detail": "..."}.
func Invalid(w http.ResponseWriter, err error) {
	var issues validation.Errors
	if !errors.As(err, &issues) {
		Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	detail := make([]api.ValidationIssue, 0, len(issues))
	for _, fi := range issues {
		detail = append(detail, api.ValidationIssue{
			Loc:  []any{"body", fi.Field},
			Msg:  fi.Message,
			Type: "value_error",
		})
	}
	JSON(w, http.StatusUnprocessableEntity, api.ValidationErrorResponse{Detail: detail})
}

// Decode читает JSON тело запроса в v
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
