package planner

// Viewport is the clamped source-image rectangle visible in one frame.
type Viewport struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ResolveViewport converts a camera state into an integer pixel rectangle
// sized by zoom and fully contained in the width x height image.
//
// The size uses floor(dim/zoom), clamped to a minimum of 1; rounding up
// instead would add sub-pixel jitter between consecutive frames. The
// top-left corner is clamped low-bound first and high-bound last: with a
// viewport comparable in size to the image both bounds can be violated at
// once, and only this order guarantees containment (assuming vw <= W and
// vh <= H, which zoom >= 1.0 enforces upstream).
func ResolveViewport(state CameraState, width, height int) Viewport {
	vw := int(float64(width) / state.Zoom)
	vh := int(float64(height) / state.Zoom)
	if vw < 1 {
		vw = 1
	}
	if vh < 1 {
		vh = 1
	}

	x0 := state.X - vw/2
	y0 := state.Y - vh/2

	if x0 < 0 {
		x0 = 0
	}
	if x0+vw > width {
		x0 = width - vw
	}
	if y0 < 0 {
		y0 = 0
	}
	if y0+vh > height {
		y0 = height - vh
	}

	return Viewport{X: x0, Y: y0, W: vw, H: vh}
}
