package api

// FieldError: ошибка валидации конкретного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorBody представляет структурированную ошибку бэкенда
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// ErrorResponse представляет ответ {"error": {...}}
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// DetailErrorResponse представляет ответ {"detail": {"error": {...}}}
type DetailErrorResponse struct {
	Detail ErrorResponse `json:"detail"`
}

// DetailMessageResponse представляет ответ {"detail": "..."}
type DetailMessageResponse struct {
	Detail string `json:"detail"`
}

// ValidationIssue: один элемент {"detail": [{"loc": [...], "msg": "..."}]}
type ValidationIssue struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type,omitempty"`
}

// ValidationErrorResponse представляет ответ {"detail": [...]}
type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}
