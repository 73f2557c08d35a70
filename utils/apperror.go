package utils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/constants"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindBadRequest
	// KindFormat marks an invariant violation (e.g. an unparseable
	// document number); it is an internal failure, not a user error.
	KindFormat
	KindInternal
)

// AppError carries a discriminable kind so business-rule failures raised
// deep inside a transaction map to the right HTTP status at the edge.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFoundError(msg string) *AppError   { return &AppError{Kind: KindNotFound, Message: msg} }
func ConflictError(msg string) *AppError   { return &AppError{Kind: KindConflict, Message: msg} }
func BadRequestError(msg string) *AppError { return &AppError{Kind: KindBadRequest, Message: msg} }
func FormatError(msg string) *AppError     { return &AppError{Kind: KindFormat, Message: msg} }

func statusFor(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindBadRequest:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondError maps a typed error to its HTTP response. Unknown errors are
// logged with the operation for diagnosis and surfaced as a plain 500 so
// store internals never leak to the caller.
func RespondError(c *fiber.Ctx, operation string, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == KindFormat {
			log.Printf("[%s] invariant violation: %s", operation, appErr.Message)
		}
		return ErrorResponse(c, statusFor(appErr.Kind), appErr.Message, nil)
	}
	log.Printf("[%s] unexpected error: %v", operation, err)
	return ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
}
