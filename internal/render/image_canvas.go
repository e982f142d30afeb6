package render

import (
	"image"

	"github.com/twilight-wallpaper/twilight/internal/sky"
	xdraw "golang.org/x/image/draw"
)

// ImageCanvas draws into an in-memory RGBA image.
type ImageCanvas struct {
	img *image.RGBA
	clr *image.Uniform
}

// NewImageCanvas creates a w x h canvas, initially transparent.
func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		clr: image.NewUniform(RGBA(sky.Night)),
	}
}

// Pixels returns the backing image.
func (c *ImageCanvas) Pixels() *image.RGBA {
	return c.img
}

func (c *ImageCanvas) Clear(clr sky.Color) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(RGBA(clr)), image.Point{}, xdraw.Src)
}

func (c *ImageCanvas) SetColor(clr sky.Color) {
	c.clr = image.NewUniform(RGBA(clr))
}

func (c *ImageCanvas) DrawHLine(x0, x1, y int) {
	c.FillRect(x0, y, x1-x0, 1)
}

func (c *ImageCanvas) DrawPoint(x, y int) {
	c.FillRect(x, y, 1, 1)
}

// FillRect fills the part of the rectangle that lies inside the canvas.
func (c *ImageCanvas) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(c.img, r, c.clr, image.Point{}, xdraw.Src)
}
