package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/httputil"
)

// Recovery turns a handler panic into the standard INTERNAL_ERROR body.
// http.ErrAbortHandler is re-raised so net/http drops the connection.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.Error("panic recovered",
				zap.Any("error", rec),
				zap.String("stack", string(debug.Stack())),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetString(RequestIDKey)),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			httputil.InternalError(c)
			c.Abort()
		}()
		c.Next()
	}
}
