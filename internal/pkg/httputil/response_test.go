package httputil_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/httputil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, httputil.ErrorResponse) {
	t.Helper()

	router := gin.New()
	router.GET("/api/watermark/thing", func(c *gin.Context) {
		c.Set(httputil.RequestIDKey, "req-123")
		httputil.HandleError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/watermark/thing", nil)
	router.ServeHTTP(w, req)

	var body httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", apperror.ContentPolicy("refused"), http.StatusForbidden, "CONTENT_POLICY"},
		{"wrapped app error", fmt.Errorf("process: %w", apperror.FileTooLarge(30<<20, 20<<20)), http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"blob not found", fmt.Errorf("read: %w", domain.ErrBlobNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"invalid blob id", domain.ErrInvalidBlobID, http.StatusBadRequest, "BAD_REQUEST"},
		{"deadline", fmt.Errorf("remote: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "TIMEOUT"},
		{"client gone", context.Canceled, apperror.StatusClientClosedRequest, "CLIENT_CLOSED_REQUEST"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus, body.StatusCode)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, "/api/watermark/thing", body.Path)
			assert.Equal(t, "req-123", body.RequestID)
			assert.NotEmpty(t, body.Timestamp)
			assert.NotEmpty(t, body.Message)
		})
	}
}
