// Package sky paints the twilight wallpaper: a two-stage vertical gradient
// (dawn orange, twilight blue, night black) with a random star field on top.
//
// Rows and star heights are measured bottom-up (y = 0 is the bottom edge of
// the viewport). Only the final draw calls translate to the top-down raster.
package sky

// Fixed aesthetic. Changing any of these requires a rebuild.
const (
	Transition      = 0.2  // fraction of the height covered by the dawn-to-twilight band
	NumSmallStars   = 2500 // single-pixel stars per pass
	NumBigStars     = 200  // plus-shaped stars per pass
	MaxBigStarScale = 4    // big stars are scaled 1..MaxBigStarScale
	FrameRate       = 60   // display loop ticks per second
)

// Color is an opaque RGB value.
type Color struct {
	R, G, B uint8
}

// Palette reference colors.
var (
	Dawn     = Color{255, 72, 0}
	Twilight = Color{0, 110, 189}
	Night    = Color{0, 0, 0}
	White    = Color{255, 255, 255}
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Empty reports whether nothing can be drawn into the viewport.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Lerp interpolates linearly between a and b. Lerp(a, b, 0) is a and
// Lerp(a, b, 1) is b.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Blend interpolates each channel from one color to another, truncating
// the result.
func Blend(from, to Color, t float64) Color {
	return Color{
		R: channel(Lerp(float64(from.R), float64(to.R), t)),
		G: channel(Lerp(float64(from.G), float64(to.G), t)),
		B: channel(Lerp(float64(from.B), float64(to.B), t)),
	}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
