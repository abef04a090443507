package pkg

import (
	"fmt"
	"net/http"
)

type ErrType int

// AppError carries a stable code plus the HTTP status it maps to.
// The wrapped error keeps the storage-level detail for logs; Message
// is what goes over the wire.
type AppError struct {
	HttpStatus int
	Code       ErrType
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

const (
	ErrInternal ErrType = iota + 1001
	ErrInvalidInput
	ErrUnauthorized
	ErrNotFound
	ErrConflict
)

const (
	ErrBadCredentials ErrType = iota + 2001
	ErrEmailTaken
)

var errTypeMap = map[ErrType]AppError{
	ErrInternal: {
		HttpStatus: http.StatusInternalServerError,
		Code:       ErrInternal,
		Message:    "internal server error",
	},
	ErrInvalidInput: {
		HttpStatus: http.StatusBadRequest,
		Code:       ErrInvalidInput,
		Message:    "invalid request parameters",
	},
	ErrUnauthorized: {
		HttpStatus: http.StatusUnauthorized,
		Code:       ErrUnauthorized,
		Message:    "authentication required",
	},
	ErrNotFound: {
		HttpStatus: http.StatusNotFound,
		Code:       ErrNotFound,
		Message:    "resource not found",
	},
	ErrConflict: {
		HttpStatus: http.StatusConflict,
		Code:       ErrConflict,
		Message:    "conflicting concurrent update",
	},

	ErrBadCredentials: {
		HttpStatus: http.StatusUnauthorized,
		Code:       ErrBadCredentials,
		Message:    "incorrect email or password",
	},
	ErrEmailTaken: {
		HttpStatus: http.StatusConflict,
		Code:       ErrEmailTaken,
		Message:    "a user with this email already exists",
	},
}

func NewError(errType ErrType, detail error) *AppError {
	appErr, ok := errTypeMap[errType]
	if !ok {
		appErr = errTypeMap[ErrInternal]
	}

	appErr.Err = detail
	return &appErr
}
