package sky

// Renderer produces complete redraw passes.
type Renderer struct {
	rng RandSource
}

// NewRenderer creates a renderer drawing star positions from rng.
func NewRenderer(rng RandSource) *Renderer {
	return &Renderer{rng: rng}
}

// Render runs one redraw pass into r: the gradient, then a freshly generated
// star field. An empty viewport draws nothing. The field is discarded once
// drawn and is returned only for inspection.
func (rd *Renderer) Render(r Raster, vp Viewport) StarField {
	if vp.Empty() {
		return StarField{}
	}
	if rw, ok := rd.rng.(Rewinder); ok {
		rw.Rewind()
	}

	PaintGradient(r, vp)
	field := GenerateStars(rd.rng, vp)
	field.Draw(r, vp.Height)
	return field
}
