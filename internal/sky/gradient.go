package sky

// GradientRows returns how many rows the dawn band and the night band cover
// in a viewport h pixels tall. Together they always add up to h.
func GradientRows(h int) (dawn, night int) {
	if h <= 0 {
		return 0, 0
	}
	dawn = int(float64(h) * Transition)
	return dawn, h - dawn
}

// PaintGradient fills the viewport with the sky ramp, one full-width line
// per row: Dawn to Twilight over the bottom band, then Twilight to Night up
// to the top edge.
func PaintGradient(r Raster, vp Viewport) {
	if vp.Empty() {
		return
	}
	w, h := vp.Width, vp.Height
	dawnRows, nightRows := GradientRows(h)

	// Each stage normalises t over its own fractional span.
	band := float64(h) * Transition
	for i := 0; i < dawnRows; i++ {
		r.SetColor(Blend(Dawn, Twilight, float64(i)/band))
		r.DrawHLine(0, w, displayRow(h, i))
	}

	rest := float64(h) * (1 - Transition)
	for i := 0; i < nightRows; i++ {
		r.SetColor(Blend(Twilight, Night, float64(i)/rest))
		r.DrawHLine(0, w, displayRow(h, dawnRows+i))
	}
}

// displayRow maps a bottom-up row index onto the top-down raster.
func displayRow(h, row int) int {
	return h - 1 - row
}
