package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

// StatusClientClosedRequest is the non-standard status for a request the
// client abandoned before the response was ready.
const StatusClientClosedRequest = 499

const (
	KindNotConfigured         Kind = "NOT_CONFIGURED"
	KindInvalidFormat         Kind = "INVALID_FORMAT"
	KindFileTooLarge          Kind = "FILE_TOO_LARGE"
	KindRegionInvalid         Kind = "REGION_INVALID"
	KindImageProcessing       Kind = "IMAGE_PROCESSING"
	KindRemoteTransient       Kind = "REMOTE_TRANSIENT"
	KindRemoteTerminal        Kind = "REMOTE_TERMINAL"
	KindContentPolicy         Kind = "CONTENT_POLICY"
	KindUnexpectedRemoteShape Kind = "UNEXPECTED_REMOTE_SHAPE"
	KindTimeout               Kind = "TIMEOUT"
	KindCanceled              Kind = "CLIENT_CLOSED_REQUEST"
	KindNotFound              Kind = "NOT_FOUND"
	KindBadRequest            Kind = "BAD_REQUEST"
	KindInternal              Kind = "INTERNAL_ERROR"
)

type AppError struct {
	Code       Kind   `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code Kind, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotConfigured() *AppError {
	return &AppError{
		Code:       KindNotConfigured,
		Message:    "Gemini API key is not configured. Please set GEMINI_API_KEY environment variable.",
		StatusCode: http.StatusServiceUnavailable,
	}
}

func InvalidFormat(mimeType string) *AppError {
	return &AppError{
		Code:       KindInvalidFormat,
		Message:    fmt.Sprintf("Invalid image format: %s. Supported formats: PNG, JPEG, WebP, GIF", mimeType),
		StatusCode: http.StatusBadRequest,
	}
}

func FileTooLarge(size, maxSize int64) *AppError {
	return &AppError{
		Code: KindFileTooLarge,
		Message: fmt.Sprintf("File size %.2fMB exceeds maximum allowed size of %dMB",
			float64(size)/(1024*1024), maxSize/(1024*1024)),
		StatusCode: http.StatusRequestEntityTooLarge,
	}
}

func RegionInvalid(err error) *AppError {
	return &AppError{
		Code:       KindRegionInvalid,
		Message:    err.Error(),
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

func ImageProcessing(message string, err error) *AppError {
	return &AppError{
		Code:       KindImageProcessing,
		Message:    "Image processing failed: " + message,
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

func RemoteTransient(message string, err error) *AppError {
	return &AppError{
		Code:       KindRemoteTransient,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

// RemoteTerminal is a remote failure that retrying will not fix. statusCode
// is 400 when the remote rejected the request and 502 otherwise.
func RemoteTerminal(message string, statusCode int) *AppError {
	return &AppError{
		Code:       KindRemoteTerminal,
		Message:    message,
		StatusCode: statusCode,
	}
}

func ContentPolicy(message string) *AppError {
	return &AppError{
		Code:       KindContentPolicy,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func UnexpectedRemoteShape(message string, err error) *AppError {
	return &AppError{
		Code:       KindUnexpectedRemoteShape,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

func Timeout(err error) *AppError {
	return &AppError{
		Code:       KindTimeout,
		Message:    "the request took too long to complete",
		StatusCode: http.StatusGatewayTimeout,
		Err:        err,
	}
}

func Canceled(err error) *AppError {
	return &AppError{
		Code:       KindCanceled,
		Message:    "the request was cancelled by the client",
		StatusCode: StatusClientClosedRequest,
		Err:        err,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       KindNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       KindBadRequest,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       KindInternal,
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func Wrap(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:       appErr.Code,
			Message:    message,
			StatusCode: appErr.StatusCode,
			Err:        err,
		}
	}
	return Internal(fmt.Errorf("%s: %w", message, err))
}

func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == kind
}

// IsRetryable reports whether another attempt at the same remote call may
// succeed.
func IsRetryable(err error) bool {
	return IsKind(err, KindRemoteTransient)
}
