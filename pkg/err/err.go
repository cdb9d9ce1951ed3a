package errprocess

import (
	"errors"

	"short_video_service/pkg/logger"
)

// Kind 區分服務錯誤類別，handler 據此對應 HTTP 狀態碼
type Kind int

const (
	// KindValidation required field missing or empty
	KindValidation Kind = iota
	// KindConflict duplicate identity
	KindConflict
	// KindAuth credential mismatch
	KindAuth
	// KindNotFound unknown video or account id
	KindNotFound
)

// ServiceError definition service error with kind
type ServiceError struct {
	Kind Kind
	Msg  string
}

// Error implement error interface
func (e *ServiceError) Error() string {
	return e.Msg
}

// SetKind set err info with kind
func SetKind(kind Kind, errMsg string) error {
	logger.Log.Error(errMsg)
	return &ServiceError{Kind: kind, Msg: errMsg}
}

// Validation create a validation error
func Validation(msg string) error { return SetKind(KindValidation, msg) }

// Conflict create a conflict error
func Conflict(msg string) error { return SetKind(KindConflict, msg) }

// Auth create an auth error
func Auth(msg string) error { return SetKind(KindAuth, msg) }

// NotFound create a not found error
func NotFound(msg string) error { return SetKind(KindNotFound, msg) }

// KindOf report the kind of a service error
func KindOf(err error) (Kind, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}

// IsKind check err belongs to kind
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
