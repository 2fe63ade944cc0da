package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/httputil"
)

type CleanupHandler struct {
	cleanupSvc CleanupService
}

func NewCleanupHandler(cleanupSvc CleanupService) *CleanupHandler {
	return &CleanupHandler{cleanupSvc: cleanupSvc}
}

// Cleanup godoc
//
//	@Summary	Sweep expired files
//	@Tags		watermark
//	@Success	204
//	@Failure	500	{object}	httputil.ErrorResponse
//	@Router		/watermark/cleanup [post]
func (h *CleanupHandler) Cleanup(c *gin.Context) {
	if _, err := h.cleanupSvc.Sweep(c.Request.Context()); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}
