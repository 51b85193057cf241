package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldIssue описывает ошибку одного поля. Field содержит имя из json тега.
type FieldIssue struct {
	Field   string
	Tag     string
	Message string
}

// Errors возвращается из Validator.Struct, по элементу на поле
type Errors []FieldIssue

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fi := range e {
		msgs = append(msgs, fi.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validator проверяет DTO запросов по тегам validate
type Validator struct {
	v *validator.Validate
}

// New создает Validator с json именами полей и правилом username
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// ошибка регистрации возможна только при пустом имени тега
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return ValidateUsername(fl.Field().String()) == nil
	})

	return &Validator{v: v}
}

// Struct проверяет структуру. Ошибки полей возвращаются как Errors.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	issues := make(Errors, 0, len(ve))
	for _, fe := range ve {
		issues = append(issues, FieldIssue{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldError(fe),
		})
	}
	return issues
}

// fieldError переводит ошибку validator в сообщение для пользователя
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fe.Param())
	case "username":
		return field + " can only contain letters, numbers and underscores (3-32 characters)"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
