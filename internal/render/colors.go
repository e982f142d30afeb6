package render

import (
	"image/color"

	"github.com/twilight-wallpaper/twilight/internal/sky"
)

// RGBA converts a sky color to an opaque image color.
func RGBA(c sky.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
