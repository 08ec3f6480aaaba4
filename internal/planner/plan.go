package planner

// Options is the planning configuration, validated by the caller before any
// scoring begins.
type Options struct {
	Grid             int
	TopK             int
	FramesPerSegment int
	ZoomMedium       float64
}

// Plan is the complete flight plan over one image: the waypoint tour and the
// per-frame viewport sequence. A plan is deterministic for identical inputs
// and immutable once built.
type Plan struct {
	Version   string     `yaml:"version"`
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	Waypoints []Waypoint `yaml:"waypoints"`
	Viewports []Viewport `yaml:"viewports"`
}

// BuildPlan runs the whole planning pass: score the detail grid, pick the
// top-K waypoints, interpolate camera states and resolve each into a clamped
// viewport rectangle. Any scoring error aborts the pass.
func BuildPlan(width, height int, opts Options, score ScoreFunc) (*Plan, error) {
	cells, err := BuildGrid(width, height, opts.Grid, score)
	if err != nil {
		return nil, err
	}

	waypoints := SelectWaypoints(cells, opts.TopK, width, height, opts.ZoomMedium)
	states := Interpolate(waypoints, opts.FramesPerSegment)

	viewports := make([]Viewport, len(states))
	for i, st := range states {
		viewports[i] = ResolveViewport(st, width, height)
	}

	return &Plan{
		Version:   "1.0",
		Width:     width,
		Height:    height,
		Waypoints: waypoints,
		Viewports: viewports,
	}, nil
}
