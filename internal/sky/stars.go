package sky

// Star is one star of a field. Y is measured bottom-up. Scale is zero for
// small stars.
type Star struct {
	X, Y  int
	Scale int
}

// StarField is the throwaway star layout of a single pass.
type StarField struct {
	Small []Star
	Big   []Star
}

// GenerateStars places NumSmallStars and NumBigStars uniformly inside vp.
// Each small star draws x then y from rng; each big star draws x, y, then
// its scale.
func GenerateStars(rng RandSource, vp Viewport) StarField {
	if vp.Empty() {
		return StarField{}
	}
	f := StarField{
		Small: make([]Star, NumSmallStars),
		Big:   make([]Star, NumBigStars),
	}
	for i := range f.Small {
		x := rng.IntN(vp.Width)
		y := rng.IntN(vp.Height)
		f.Small[i] = Star{X: x, Y: y}
	}
	for i := range f.Big {
		x := rng.IntN(vp.Width)
		y := rng.IntN(vp.Height)
		scale := rng.IntN(MaxBigStarScale) + 1
		f.Big[i] = Star{X: x, Y: y, Scale: scale}
	}
	return f
}

// Draw paints the field onto r for a viewport h pixels tall. Small stars are
// single points; big stars are a 2-wide vertical bar and a 2-tall
// horizontal bar crossing near the star's position.
func (f StarField) Draw(r Raster, h int) {
	for _, s := range f.Small {
		r.SetColor(StarColor(s.Y, h))
		r.DrawPoint(s.X, starRow(h, s.Y))
	}
	for _, s := range f.Big {
		r.SetColor(StarColor(s.Y, h))
		row := starRow(h, s.Y)
		r.FillRect(s.X+1, row, 2, s.Scale)
		r.FillRect(s.X, row+1, s.Scale, 2)
	}
}

// starRow flips a star height onto the raster. A star at y = 0 lands one
// row below the bottom edge and is clipped.
func starRow(h, y int) int {
	return h - y
}
