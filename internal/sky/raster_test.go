package sky

// call is one recorded draw call.
type call struct {
	op         string
	color      Color
	x, y, w, h int
}

// recorder is a Raster that remembers every draw call with the color that
// was current when it was made.
type recorder struct {
	cur   Color
	calls []call
}

func (r *recorder) Clear(c Color) { r.calls = append(r.calls, call{op: "clear", color: c}) }
func (r *recorder) SetColor(c Color) { r.cur = c }

func (r *recorder) DrawHLine(x0, x1, y int) {
	r.calls = append(r.calls, call{op: "line", color: r.cur, x: x0, y: y, w: x1 - x0, h: 1})
}

func (r *recorder) DrawPoint(x, y int) {
	r.calls = append(r.calls, call{op: "point", color: r.cur, x: x, y: y, w: 1, h: 1})
}

func (r *recorder) FillRect(x, y, w, h int) {
	r.calls = append(r.calls, call{op: "rect", color: r.cur, x: x, y: y, w: w, h: h})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (r *recorder) only(op string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

// script is a RandSource replaying fixed values, each reduced modulo n.
type script struct {
	vals []int
	i    int
	ns   []int
}

func (s *script) IntN(n int) int {
	s.ns = append(s.ns, n)
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}
