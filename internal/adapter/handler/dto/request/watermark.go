package request

import "github.com/marcos-nsantos/watermark-remover-backend/internal/domain/valueobject"

type RemoveWatermarkRequest struct {
	X        *int `form:"region[x]" binding:"required"`
	Y        *int `form:"region[y]" binding:"required"`
	Width    *int `form:"region[width]" binding:"required"`
	Height   *int `form:"region[height]" binding:"required"`
	Lossless bool `form:"lossless"`
}

func (r RemoveWatermarkRequest) Region() valueobject.Region {
	return valueobject.NewRegion(*r.X, *r.Y, *r.Width, *r.Height)
}
