package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/twilight-wallpaper/twilight/internal/sky"
)

// ScreenCanvas draws straight onto an ebiten image on the GPU.
type ScreenCanvas struct {
	dst   *ebiten.Image
	pixel *ebiten.Image // 1x1 white pixel, scaled and tinted for every fill
	clr   color.RGBA
}

// NewScreenCanvas creates a w x h GPU canvas.
func NewScreenCanvas(w, h int) *ScreenCanvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &ScreenCanvas{
		dst:   ebiten.NewImage(w, h),
		pixel: pixel,
		clr:   RGBA(sky.Night),
	}
}

func (c *ScreenCanvas) Clear(clr sky.Color) {
	c.dst.Fill(RGBA(clr))
}

func (c *ScreenCanvas) SetColor(clr sky.Color) {
	c.clr = RGBA(clr)
}

func (c *ScreenCanvas) DrawHLine(x0, x1, y int) {
	c.FillRect(x0, y, x1-x0, 1)
}

func (c *ScreenCanvas) DrawPoint(x, y int) {
	c.FillRect(x, y, 1, 1)
}

func (c *ScreenCanvas) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.clr)
	c.dst.DrawImage(c.pixel, &op)
}

// Flush is a no-op: draw calls land on the image directly.
func (c *ScreenCanvas) Flush() {}

func (c *ScreenCanvas) Release() {
	c.dst.Deallocate()
	c.pixel.Deallocate()
}

func (c *ScreenCanvas) Image() *ebiten.Image {
	return c.dst
}
