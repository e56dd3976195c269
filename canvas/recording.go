package canvas

// Call records one method invocation against a Recording canvas, for
// tests that need to assert exactly what the evaluator told the
// canvas to do without rendering anything.
type Call struct {
	Method string
	Args   []float64
}

// Recording is a Canvas test double that appends every call it
// receives to Calls instead of drawing anything. Grounded in the
// teacher's habit of testing the evaluator against a small recording
// stand-in for its environment (scope.Scope in evaluator tests) rather
// than a real one.
type Recording struct {
	Calls []Call
}

func (r *Recording) record(method string, args ...float64) {
	r.Calls = append(r.Calls, Call{Method: method, Args: args})
}

func (r *Recording) SetOrigin(x, y float64) { r.record("SetOrigin", x, y) }
func (r *Recording) SetScale(x, y float64)  { r.record("SetScale", x, y) }
func (r *Recording) SetRotation(radians float64) {
	r.record("SetRotation", radians)
}
func (r *Recording) SetPointSize(pixels int) {
	r.record("SetPointSize", float64(pixels))
}
func (r *Recording) SetPointColor(red, green, blue int) {
	r.record("SetPointColor", float64(red), float64(green), float64(blue))
}
func (r *Recording) SetBackgroundColor(red, green, blue int) {
	r.record("SetBackgroundColor", float64(red), float64(green), float64(blue))
}
func (r *Recording) DrawPoint(x, y float64) { r.record("DrawPoint", x, y) }
func (r *Recording) Clear()                 { r.record("Clear") }

// Points returns every (x, y) pair passed to DrawPoint, in order —
// the shape most end-to-end tests (spec.md §8) actually want to
// assert against.
func (r *Recording) Points() [][2]float64 {
	var pts [][2]float64
	for _, c := range r.Calls {
		if c.Method == "DrawPoint" {
			pts = append(pts, [2]float64{c.Args[0], c.Args[1]})
		}
	}
	return pts
}
