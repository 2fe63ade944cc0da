package httputil

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/apperror"
)

const RequestIDKey = "request_id"

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	RequestID  string `json:"requestId,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, message string) {
	ErrorWithCode(c, status, "", message)
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		Code:       code,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Request.URL.Path,
		RequestID:  GetRequestID(c),
	})
}

func ValidationError(c *gin.Context, err error) {
	ErrorWithCode(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}

func InternalError(c *gin.Context) {
	ErrorWithCode(c, http.StatusInternalServerError, string(apperror.KindInternal), "internal server error")
}

func HandleError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		ErrorWithCode(c, appErr.StatusCode, string(appErr.Code), appErr.Message)
	case errors.Is(err, domain.ErrBlobNotFound):
		ErrorWithCode(c, http.StatusNotFound, string(apperror.KindNotFound), "file not found")
	case errors.Is(err, domain.ErrInvalidBlobID):
		ErrorWithCode(c, http.StatusBadRequest, string(apperror.KindBadRequest), "invalid filename")
	case errors.Is(err, context.DeadlineExceeded):
		timeout := apperror.Timeout(err)
		ErrorWithCode(c, timeout.StatusCode, string(timeout.Code), timeout.Message)
	case errors.Is(err, context.Canceled):
		canceled := apperror.Canceled(err)
		ErrorWithCode(c, canceled.StatusCode, string(canceled.Code), canceled.Message)
	default:
		InternalError(c)
	}
}

func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
