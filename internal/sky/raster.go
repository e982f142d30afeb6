package sky

// Raster is an immediate-mode 2D drawing target with a top-left origin.
// Drawing outside the target is clipped.
type Raster interface {
	// Clear fills the whole target with c.
	Clear(c Color)
	// SetColor sets the color used by subsequent draw calls.
	SetColor(c Color)
	// DrawHLine draws row y from x0 up to, but not including, x1.
	DrawHLine(x0, x1, y int)
	DrawPoint(x, y int)
	FillRect(x, y, w, h int)
}
