package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/usecase/watermark"
)

const (
	APIKeyHeader = "X-Gemini-Api-Key"

	// room for multipart boundaries and the region fields
	multipartOverhead = 1 << 20
)

type WatermarkHandler struct {
	watermarkSvc WatermarkService
	maxFileSize  int64
}

func NewWatermarkHandler(watermarkSvc WatermarkService, maxFileSize int64) *WatermarkHandler {
	if maxFileSize <= 0 {
		maxFileSize = watermark.DefaultMaxFileSize
	}
	return &WatermarkHandler{
		watermarkSvc: watermarkSvc,
		maxFileSize:  maxFileSize,
	}
}

type uploadedImage struct {
	data        []byte
	filename    string
	contentType string
	size        int64
}

// Remove godoc
//
//	@Summary		Remove a watermark
//	@Description	Inpaints the selected region with the remote model and stores the result
//	@Tags			watermark
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image			formData	file	true	"Image (PNG, JPEG, WebP, GIF)"
//	@Param			region[x]		formData	int		true	"Region left edge"
//	@Param			region[y]		formData	int		true	"Region top edge"
//	@Param			region[width]	formData	int		true	"Region width"
//	@Param			region[height]	formData	int		true	"Region height"
//	@Param			lossless		formData	bool	false	"Encode the result as PNG"
//	@Param			X-Gemini-Api-Key	header	string	false	"API key override"
//	@Success		200				{object}	response.ProcessResultResponse
//	@Failure		400				{object}	httputil.ErrorResponse
//	@Failure		403				{object}	httputil.ErrorResponse	"Refused by content policy"
//	@Failure		413				{object}	httputil.ErrorResponse
//	@Failure		502				{object}	httputil.ErrorResponse
//	@Failure		503				{object}	httputil.ErrorResponse	"API key not configured"
//	@Router			/watermark/remove [post]
func (h *WatermarkHandler) Remove(c *gin.Context) {
	img, err := h.readImage(c)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	var req request.RemoveWatermarkRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.watermarkSvc.Process(c.Request.Context(), watermark.ProcessInput{
		File:        img.data,
		Filename:    img.filename,
		ContentType: img.contentType,
		Size:        img.size,
		Region:      req.Region(),
		Lossless:    req.Lossless,
		APIKey:      c.GetHeader(APIKeyHeader),
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ProcessResultFromEntity(result))
}

// Info godoc
//
//	@Summary	Read image metadata
//	@Tags		watermark
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		image	formData	file	true	"Image"
//	@Success	200		{object}	response.ImageInfoResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	413		{object}	httputil.ErrorResponse
//	@Router		/watermark/info [post]
func (h *WatermarkHandler) Info(c *gin.Context) {
	img, err := h.readImage(c)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	info, err := h.watermarkSvc.Info(c.Request.Context(), watermark.InfoInput{
		File:        img.data,
		ContentType: img.contentType,
		Size:        img.size,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ImageInfoFromEntity(info))
}

// Download godoc
//
//	@Summary	Download a processed image
//	@Tags		watermark
//	@Produce	image/png,image/jpeg
//	@Param		filename	path	string	true	"Processed file name"
//	@Success	200
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/watermark/download/{filename} [get]
func (h *WatermarkHandler) Download(c *gin.Context) {
	blob, err := h.watermarkSvc.Download(c.Request.Context(), c.Param("filename"))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, blob.ID))
	c.Data(http.StatusOK, blob.ContentType, blob.Data)
}

// Preview godoc
//
//	@Summary	Preview a processed image
//	@Tags		watermark
//	@Produce	image/jpeg
//	@Param		filename	path	string	true	"Processed file name"
//	@Success	200
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/watermark/preview/{filename} [get]
func (h *WatermarkHandler) Preview(c *gin.Context) {
	data, err := h.watermarkSvc.Preview(c.Request.Context(), c.Param("filename"))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/jpeg", data)
}

// Delete godoc
//
//	@Summary	Delete a processed image
//	@Tags		watermark
//	@Param		filename	path	string	true	"Processed file name"
//	@Success	204
//	@Failure	400	{object}	httputil.ErrorResponse
//	@Router		/watermark/{filename} [delete]
func (h *WatermarkHandler) Delete(c *gin.Context) {
	if err := h.watermarkSvc.Delete(c.Request.Context(), c.Param("filename")); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

// TestConnection godoc
//
//	@Summary	Check the remote model credentials
//	@Tags		watermark
//	@Produce	json
//	@Param		X-Gemini-Api-Key	header	string	false	"API key override"
//	@Success	200	{object}	response.ConnectionResponse
//	@Router		/watermark/test-connection [get]
func (h *WatermarkHandler) TestConnection(c *gin.Context) {
	connected := h.watermarkSvc.TestConnection(c.Request.Context(), c.GetHeader(APIKeyHeader))
	httputil.OK(c, response.ConnectionResponse{Connected: connected})
}

// Models godoc
//
//	@Summary	List remote models
//	@Tags		watermark
//	@Produce	json
//	@Param		X-Gemini-Api-Key	header	string	false	"API key override"
//	@Success	200	{object}	response.ModelsResponse
//	@Failure	502	{object}	httputil.ErrorResponse
//	@Failure	503	{object}	httputil.ErrorResponse
//	@Router		/watermark/models [get]
func (h *WatermarkHandler) Models(c *gin.Context) {
	models, err := h.watermarkSvc.ListModels(c.Request.Context(), c.GetHeader(APIKeyHeader))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	if models == nil {
		models = []string{}
	}
	httputil.OK(c, response.ModelsResponse{Models: models})
}

func (h *WatermarkHandler) readImage(c *gin.Context) (*uploadedImage, error) {
	limit := h.maxFileSize + multipartOverhead
	if c.Request.ContentLength > limit {
		return nil, apperror.FileTooLarge(c.Request.ContentLength, h.maxFileSize)
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperror.FileTooLarge(limit, h.maxFileSize)
		}
		return nil, apperror.BadRequest("image file is required")
	}
	if header.Size > h.maxFileSize {
		return nil, apperror.FileTooLarge(header.Size, h.maxFileSize)
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperror.BadRequest("unable to read uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperror.BadRequest("unable to read uploaded image")
	}

	return &uploadedImage{
		data:        data,
		filename:    header.Filename,
		contentType: header.Header.Get("Content-Type"),
		size:        header.Size,
	}, nil
}
