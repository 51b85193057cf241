// Package handlers реализует REST API devserver.
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/resumeai/internal/server/middleware"
	"github.com/iudanet/resumeai/internal/server/respond"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

var errBadPagination = errors.New("limit and offset must be non-negative integers")

// currentUserID возвращает id пользователя из claims запроса
func currentUserID(r *http.Request) string {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return ""
	}
	return claims.UserID
}

// pageParams читает limit/offset из query, limit ограничен maxLimit
func pageParams(r *http.Request) (limit, offset int, err error) {
	limit, offset = defaultLimit, 0
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			return 0, 0, errBadPagination
		}
		if limit == 0 {
			limit = defaultLimit
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, errBadPagination
		}
	}
	return min(limit, maxLimit), offset, nil
}

// decodeBody читает JSON тело. Пустое тело допустимо при allowEmpty.
// При ошибке ответ уже отправлен.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, v any, allowEmpty bool) bool {
	err := respond.Decode(r, v)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}

	logger.WarnContext(r.Context(), "failed to decode request body", slog.Any("error", err))
	respond.Detail(w, http.StatusBadRequest, "Invalid request body")
	return false
}

func serverError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, msg string, err error) {
	logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	respond.Detail(w, http.StatusInternalServerError, "Internal server error")
}
