package valueobject

import (
	"fmt"
	"image"
	"math"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain"
)

const MinRegionSize = 5

// Region is a rectangle in pixel coordinates of the image it applies to.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

func NewRegion(x, y, width, height int) Region {
	return Region{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (r Region) Validate(imageWidth, imageHeight int) error {
	if r.X < 0 || r.Y < 0 {
		return domain.ErrRegionNegative
	}
	if r.Width < MinRegionSize || r.Height < MinRegionSize {
		return domain.ErrRegionTooSmall
	}
	// compared without adding so huge coordinates cannot wrap around
	if r.X > imageWidth-r.Width || r.Y > imageHeight-r.Height {
		return domain.ErrRegionOutOfBounds
	}
	return nil
}

// Scale maps the region onto an image resized by independent axis factors.
func (r Region) Scale(scaleX, scaleY float64) Region {
	return Region{
		X:      int(math.Round(float64(r.X) * scaleX)),
		Y:      int(math.Round(float64(r.Y) * scaleY)),
		Width:  int(math.Round(float64(r.Width) * scaleX)),
		Height: int(math.Round(float64(r.Height) * scaleY)),
	}
}

// Pad grows the region by padding on every side, clamped to the image.
func (r Region) Pad(padding, imageWidth, imageHeight int) Region {
	x := max(0, r.X-padding)
	y := max(0, r.Y-padding)
	return Region{
		X:      x,
		Y:      y,
		Width:  min(imageWidth-x, r.Width+padding*2),
		Height: min(imageHeight-y, r.Height+padding*2),
	}
}

func (r Region) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Region) Origin() image.Point {
	return image.Pt(r.X, r.Y)
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X, r.Y, r.Width, r.Height)
}
