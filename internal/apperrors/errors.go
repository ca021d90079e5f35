package apperrors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error categories surfaced by the ledger.
type Kind string

const (
	KindValidation      Kind = "VALIDATION"
	KindDuplicateSource Kind = "DUPLICATE_SOURCE"
	KindConfiguration   Kind = "CONFIGURATION"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindStorage         Kind = "STORAGE"
	KindUnauthorized    Kind = "UNAUTHORIZED"
)

// AppError carries a kind, an optional specific code and the underlying cause.
// errors.Is matches on Code when the target has one, otherwise on Kind.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if t.Code != "" {
		return e.Code == t.Code
	}
	return e.Kind == t.Kind
}

// Kind-level sentinels.
var (
	ErrValidation    = &AppError{Kind: KindValidation, Message: "validation error"}
	ErrNotFound      = &AppError{Kind: KindNotFound, Message: "resource not found"}
	ErrConflict      = &AppError{Kind: KindConflict, Message: "conflicting state"}
	ErrConfiguration = &AppError{Kind: KindConfiguration, Message: "configuration error"}
	ErrStorage       = &AppError{Kind: KindStorage, Message: "storage error"}
	ErrUnauthorized  = &AppError{Kind: KindUnauthorized, Message: "unauthorized"}
)

// Specific errors.
var (
	ErrUnbalancedEntry       = &AppError{Kind: KindValidation, Code: "UNBALANCED_ENTRY", Message: "journal entry does not balance"}
	ErrInvalidLine           = &AppError{Kind: KindValidation, Code: "INVALID_LINE", Message: "invalid journal line"}
	ErrUnknownAccount        = &AppError{Kind: KindValidation, Code: "UNKNOWN_ACCOUNT", Message: "unknown or inactive account"}
	ErrDuplicateCode         = &AppError{Kind: KindValidation, Code: "DUPLICATE_CODE", Message: "account code already exists"}
	ErrInvalidHierarchy      = &AppError{Kind: KindValidation, Code: "INVALID_HIERARCHY", Message: "invalid account hierarchy"}
	ErrAccountInUse          = &AppError{Kind: KindConflict, Code: "ACCOUNT_IN_USE", Message: "account has a nonzero balance"}
	ErrInvalidStatus         = &AppError{Kind: KindConflict, Code: "INVALID_STATUS", Message: "journal entry status does not allow this action"}
	ErrDuplicateSource       = &AppError{Kind: KindDuplicateSource, Code: "DUPLICATE_SOURCE", Message: "source already posted"}
	ErrUnmappedEventKind     = &AppError{Kind: KindConfiguration, Code: "UNMAPPED_EVENT_KIND", Message: "no posting rule for event kind"}
	ErrControlAccountMissing = &AppError{Kind: KindConfiguration, Code: "CONTROL_ACCOUNT_MISSING", Message: "control account not configured"}
)

// NewAppError builds an error of the given kind around a cause.
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// Newf derives an error from a sentinel, appending formatted detail to its message.
func Newf(base *AppError, format string, args ...any) error {
	return &AppError{
		Kind:    base.Kind,
		Code:    base.Code,
		Message: base.Message + ": " + fmt.Sprintf(format, args...),
	}
}

// Wrap derives an error from a sentinel and keeps err as the cause.
func Wrap(base *AppError, err error, format string, args ...any) error {
	return &AppError{
		Kind:    base.Kind,
		Code:    base.Code,
		Message: base.Message + ": " + fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// KindOf reports the kind of the first AppError in err's chain, or KindStorage
// for errors that carry none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// CodeOf reports the specific code of the first AppError in err's chain.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
