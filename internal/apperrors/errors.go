package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	// KindNotWritable means the storage exists but refused the write
	// (permission denied, read-only filesystem, disk full).
	KindNotWritable Kind = "not_writable"
	// KindStorageUnavailable means the storage location could not be used at all.
	KindStorageUnavailable Kind = "storage_unavailable"
	KindInvalidInput       Kind = "invalid_input"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindNotWritable:
		return "Settings location is not writable."
	case KindStorageUnavailable:
		return "Settings storage is unavailable."
	case KindInvalidInput:
		return "Invalid input."
	default:
		return "Operation failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func NotWritable(err error) error {
	return New(KindNotWritable, "", err)
}

func StorageUnavailable(err error) error {
	return New(KindStorageUnavailable, "", err)
}

func InvalidInput(msg string, err error) error {
	return New(KindInvalidInput, msg, err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// IsPersistence reports whether err came from a failed write or delete of
// durable storage.
func IsPersistence(err error) bool {
	kind, ok := KindOf(err)
	if !ok {
		return false
	}
	return kind == KindNotWritable || kind == KindStorageUnavailable
}
