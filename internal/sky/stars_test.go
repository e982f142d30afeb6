package sky

import (
	"math/rand/v2"
	"testing"
)

func TestGenerateStars_Counts(t *testing.T) {
	f := GenerateStars(rand.New(rand.NewPCG(1, 2)), Viewport{Width: 1920, Height: 1080})
	if len(f.Small) != NumSmallStars {
		t.Errorf("small stars = %d, want %d", len(f.Small), NumSmallStars)
	}
	if len(f.Big) != NumBigStars {
		t.Errorf("big stars = %d, want %d", len(f.Big), NumBigStars)
	}
}

func TestGenerateStars_InBounds(t *testing.T) {
	vps := []Viewport{{1920, 1080}, {1, 1}, {3, 700}, {640, 2}}
	for _, vp := range vps {
		f := GenerateStars(rand.New(rand.NewPCG(7, 9)), vp)
		for _, s := range append(f.Small, f.Big...) {
			if s.X < 0 || s.X >= vp.Width || s.Y < 0 || s.Y >= vp.Height {
				t.Fatalf("%+v: star %+v out of bounds", vp, s)
			}
		}
		for _, s := range f.Small {
			if s.Scale != 0 {
				t.Fatalf("small star %+v has a scale", s)
			}
		}
		for _, s := range f.Big {
			if s.Scale < 1 || s.Scale > MaxBigStarScale {
				t.Fatalf("big star %+v scale out of [1, %d]", s, MaxBigStarScale)
			}
		}
	}
}

func TestGenerateStars_DrawOrder(t *testing.T) {
	src := &script{vals: []int{5, 6, 7}}
	vp := Viewport{Width: 100, Height: 50}
	f := GenerateStars(src, vp)

	// Small stars consume x, y; big stars consume x, y, scale.
	want := 2*NumSmallStars + 3*NumBigStars
	if len(src.ns) != want {
		t.Fatalf("made %d draws, want %d", len(src.ns), want)
	}
	if src.ns[0] != 100 || src.ns[1] != 50 {
		t.Errorf("first small star drew from %v, want [100 50]", src.ns[:2])
	}
	off := 2 * NumSmallStars
	if got := src.ns[off : off+3]; got[0] != 100 || got[1] != 50 || got[2] != MaxBigStarScale {
		t.Errorf("first big star drew from %v, want [100 50 %d]", got, MaxBigStarScale)
	}

	if f.Small[0] != (Star{X: 5, Y: 6}) {
		t.Errorf("first small star = %+v, want {5 6 0}", f.Small[0])
	}
	// 2*2500 draws is 5000, 5000 % 3 == 2, so the first big star starts at 7.
	if got, wantBig := f.Big[0], (Star{X: 7, Y: 5, Scale: 6%MaxBigStarScale + 1}); got != wantBig {
		t.Errorf("first big star = %+v, want %+v", got, wantBig)
	}
}

func TestGenerateStars_EmptyViewport(t *testing.T) {
	src := &script{vals: []int{1}}
	f := GenerateStars(src, Viewport{})
	if len(f.Small)+len(f.Big) != 0 || len(src.ns) != 0 {
		t.Errorf("empty viewport generated %d stars with %d draws", len(f.Small)+len(f.Big), len(src.ns))
	}
}

func TestStarField_Draw(t *testing.T) {
	const h = 1000
	f := StarField{
		Small: []Star{{X: 10, Y: 100}, {X: 20, Y: 700}},
		Big:   []Star{{X: 30, Y: 250, Scale: 3}},
	}
	r := &recorder{}
	f.Draw(r, h)

	points := r.only("point")
	if len(points) != 2 {
		t.Fatalf("drew %d points, want 2", len(points))
	}
	if p := points[0]; p.x != 10 || p.y != 900 || p.color != (Color{152, 123, 126}) {
		t.Errorf("first point = %+v, want (10, 900) colored {152 123 126}", p)
	}
	if p := points[1]; p.y != 300 || p.color != White {
		t.Errorf("second point = %+v, want row 300 white", p)
	}

	rects := r.only("rect")
	if len(rects) != 2 {
		t.Fatalf("drew %d rects, want 2", len(rects))
	}
	vert, horz := rects[0], rects[1]
	if vert.x != 31 || vert.y != 750 || vert.w != 2 || vert.h != 3 {
		t.Errorf("vertical bar = %+v, want at (31, 750) size 2x3", vert)
	}
	if horz.x != 30 || horz.y != 751 || horz.w != 3 || horz.h != 2 {
		t.Errorf("horizontal bar = %+v, want at (30, 751) size 3x2", horz)
	}
	if want := StarColor(250, h); vert.color != want || horz.color != want {
		t.Errorf("big star colors = %v, %v; want %v", vert.color, horz.color, want)
	}
}
