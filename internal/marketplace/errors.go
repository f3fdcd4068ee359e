package marketplace

import (
	"errors"
	"fmt"
	"strings"
)

// Базовые ошибки домена. Сравниваются через errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
)

// Уточняющие причины внутри категорий.
var (
	// ErrConcurrentUpdate — строка изменилась между чтением и compare-and-set.
	ErrConcurrentUpdate = errors.New("concurrent update")
	// ErrUnauthenticated — личность участника не установлена (нет или битый токен).
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Kind — категория ошибки, по ней транспорт выбирает код ответа.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindAuthorization Kind = "authorization"
	KindInvalidState  Kind = "invalid_state"
	KindConflict      Kind = "conflict"
	KindValidation    Kind = "validation"
	KindInternal      Kind = "internal"
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindAuthorization:
		return ErrUnauthorized
	case KindInvalidState:
		return ErrInvalidState
	case KindConflict:
		return ErrConflict
	case KindValidation:
		return ErrValidation
	}
	return nil
}

// Error — доменная ошибка с человекочитаемым сообщением.
// Field заполняется для ошибок валидации конкретного поля.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap позволяет errors.Is находить как базовую ошибку категории, так и причину.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Invalid создаёт ошибку валидации поля field.
func Invalid(field, format string, args ...any) error {
	return &Error{Kind: KindValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// WithCause добавляет исходную ошибку к доменной.
func WithCause(err, cause error) error {
	var e *Error
	if errors.As(err, &e) {
		cp := *e
		if cp.Cause != nil {
			cp.Cause = errors.Join(cp.Cause, cause)
		} else {
			cp.Cause = cause
		}
		return &cp
	}
	return err
}

// StaleWrite создаёт конфликт проигранного compare-and-set.
func StaleWrite(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...), Cause: ErrConcurrentUpdate}
}

// Unauthenticated создаёт ошибку авторизации без установленной личности.
func Unauthenticated(format string, args ...any) error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...), Cause: ErrUnauthenticated}
}

// StatusMismatch описывает переход из неподходящего статуса.
// Сообщение содержит текущий и допустимые статусы.
func StatusMismatch(action, current string, required ...string) error {
	allowed := make([]string, 0, len(required))
	for _, r := range required {
		allowed = append(allowed, "'"+r+"'")
	}
	return InvalidState("cannot %s request with status '%s'; must be %s", action, current, strings.Join(allowed, " or "))
}

// KindOf возвращает категорию ошибки; всё, что не распознано, считается внутренней.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Kind != "" {
		return e.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindAuthorization
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValidation):
		return KindValidation
	}
	return KindInternal
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsUnauthorized(err error) bool { return KindOf(err) == KindAuthorization }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
