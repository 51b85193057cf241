package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/resumeai/pkg/api"
)

// Коды нормализованных ошибок. Коды структурированных ошибок бэкенда
// ({"error": {"code": ...}}) передаются как есть.
const (
	CodeHTTPError       = "HTTP_ERROR"
	CodeValidationError = "VALIDATION_ERROR"
	CodeTimeout         = "TIMEOUT"
	CodeNetworkError    = "NETWORK_ERROR"
	CodeParseError      = "PARSE_ERROR"
	CodeUnknownError    = "UNKNOWN_ERROR"
)

// Error единственный тип ошибки, который HTTP клиент возвращает наверх
type Error struct {
	Err     error            // исходная ошибка транспорта или разбора, может быть nil
	Code    string           // машиночитаемый код
	Message string           // сообщение для пользователя
	Details []api.FieldError // ошибки полей, только для валидации
	Status  int              // HTTP статус, 0 если ответа не было
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: %s", d.Field, d.Message))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable сообщает, имеет ли смысл предлагать пользователю повтор
func (e *Error) Retryable() bool {
	return e.Code == CodeTimeout || e.Code == CodeNetworkError
}

// AsError извлекает *Error из цепочки ошибок
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// CodeOf возвращает код ошибки API или UNKNOWN_ERROR для прочих ошибок
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsError(err); ok {
		return apiErr.Code
	}
	return CodeUnknownError
}

// StatusOf возвращает HTTP статус ошибки API или 0
func StatusOf(err error) int {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Status
	}
	return 0
}

func httpStatusError(status int) *Error {
	return &Error{
		Code:    CodeHTTPError,
		Message: fmt.Sprintf("HTTP error! status: %d", status),
		Status:  status,
	}
}
