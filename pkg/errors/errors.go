// Package errors carries machine-readable codes through floorsmith's error
// chains so the CLI, the editor and the HTTP API can react to a failure
// without parsing messages.
//
//	err := errors.New(errors.ErrCodeInvalidVariant, "unknown variant: %s", name)
//	if errors.IsInvalid(err) {
//	    // 400
//	}
//
// Codes group by family: INVALID_* for rejected input, *NOT_FOUND for
// missing rooms, projects and files, SESSION_ACTIVE and NO_SESSION for drag
// state, NETWORK_ERROR and INTERNAL_ERROR for everything else.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidProgram Code = "INVALID_PROGRAM"
	ErrCodeInvalidVariant Code = "INVALID_VARIANT"
	ErrCodeInvalidFacing  Code = "INVALID_FACING"
	ErrCodeInvalidSize    Code = "INVALID_SIZE"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidHandle  Code = "INVALID_HANDLE"

	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeRoomNotFound    Code = "ROOM_NOT_FOUND"
	ErrCodeProjectNotFound Code = "PROJECT_NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// A drag is already running on the editor, or none is.
	ErrCodeSessionActive Code = "SESSION_ACTIVE"
	ErrCodeNoSession     Code = "NO_SESSION"

	ErrCodeNetwork  Code = "NETWORK_ERROR"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

type family int

const (
	familyOther family = iota
	familyInvalid
	familyNotFound
)

var families = map[Code]family{
	ErrCodeInvalidInput:    familyInvalid,
	ErrCodeInvalidProgram:  familyInvalid,
	ErrCodeInvalidVariant:  familyInvalid,
	ErrCodeInvalidFacing:   familyInvalid,
	ErrCodeInvalidSize:     familyInvalid,
	ErrCodeInvalidFormat:   familyInvalid,
	ErrCodeInvalidHandle:   familyInvalid,
	ErrCodeNotFound:        familyNotFound,
	ErrCodeRoomNotFound:    familyNotFound,
	ErrCodeProjectNotFound: familyNotFound,
	ErrCodeFileNotFound:    familyNotFound,
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage returns the message without its code prefix. Errors from
// outside this package are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries one of the INVALID_* codes.
func IsInvalid(err error) bool { return families[GetCode(err)] == familyInvalid }

// IsNotFound reports whether err carries one of the not-found codes.
func IsNotFound(err error) bool { return families[GetCode(err)] == familyNotFound }
