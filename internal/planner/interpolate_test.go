package planner

import (
	"math"
	"testing"
)

func TestInterpolateSegmentEndpoints(t *testing.T) {
	waypoints := []Waypoint{
		{X: 500, Y: 400, Zoom: 1.0},
		{X: 150, Y: 120, Zoom: 1.4},
		{X: 850, Y: 40, Zoom: 1.4},
		{X: 500, Y: 400, Zoom: 1.0},
	}

	for _, framesPerSeg := range []int{1, 2, 3, 60} {
		states := Interpolate(waypoints, framesPerSeg)

		wantTotal := (len(waypoints) - 1) * framesPerSeg
		if len(states) != wantTotal {
			t.Fatalf("F=%d: expected %d states, got %d", framesPerSeg, wantTotal, len(states))
		}

		for seg := 0; seg < len(waypoints)-1; seg++ {
			first := states[seg*framesPerSeg]
			start := waypoints[seg]
			if first.X != start.X || first.Y != start.Y || first.Zoom != start.Zoom {
				t.Errorf("F=%d seg %d: first state %+v != start waypoint %+v", framesPerSeg, seg, first, start)
			}

			if framesPerSeg > 1 {
				last := states[seg*framesPerSeg+framesPerSeg-1]
				end := waypoints[seg+1]
				if last.X != end.X || last.Y != end.Y || last.Zoom != end.Zoom {
					t.Errorf("F=%d seg %d: last state %+v != end waypoint %+v", framesPerSeg, seg, last, end)
				}
			}
		}
	}
}

func TestInterpolateZoomProgression(t *testing.T) {
	// Zoom 1.0 -> 1.4 over 60 frames.
	waypoints := []Waypoint{
		{X: 0, Y: 0, Zoom: 1.0},
		{X: 0, Y: 0, Zoom: 1.4},
	}
	states := Interpolate(waypoints, 60)

	if states[0].Zoom != 1.0 {
		t.Errorf("Frame 0 zoom: got %f, want 1.0", states[0].Zoom)
	}
	if states[59].Zoom != 1.4 {
		t.Errorf("Frame 59 zoom: got %f, want 1.4", states[59].Zoom)
	}

	want := 1.0 + 0.4*(30.0/59.0) // ~1.203
	if math.Abs(states[30].Zoom-want) > 1e-12 {
		t.Errorf("Frame 30 zoom: got %f, want %f", states[30].Zoom, want)
	}

	for i := 1; i < len(states); i++ {
		if states[i].Zoom < states[i-1].Zoom {
			t.Fatalf("Zoom must be monotonic on this segment, dipped at frame %d", i)
		}
	}
}

func TestInterpolatePositionRounding(t *testing.T) {
	waypoints := []Waypoint{
		{X: 0, Y: 0, Zoom: 1.0},
		{X: 3, Y: 3, Zoom: 1.0},
	}
	states := Interpolate(waypoints, 3)

	// t=0.5 gives 1.5, which rounds to 2.
	if states[1].X != 2 || states[1].Y != 2 {
		t.Errorf("Midpoint must round to nearest pixel: got (%d,%d), want (2,2)", states[1].X, states[1].Y)
	}
}

func TestInterpolateStaticPath(t *testing.T) {
	// The K=0 tour: center -> center, one segment, no movement.
	center := Waypoint{X: 500, Y: 400, Zoom: 1.0}
	states := Interpolate([]Waypoint{center, center}, 60)

	if len(states) != 60 {
		t.Fatalf("Expected 60 states, got %d", len(states))
	}
	for i, st := range states {
		if st.X != 500 || st.Y != 400 || st.Zoom != 1.0 {
			t.Fatalf("Frame %d: static path must not move, got %+v", i, st)
		}
	}
}

func TestInterpolateSingleFrameUsesSegmentStart(t *testing.T) {
	waypoints := []Waypoint{
		{X: 10, Y: 20, Zoom: 1.0},
		{X: 90, Y: 80, Zoom: 1.4},
	}
	states := Interpolate(waypoints, 1)

	if len(states) != 1 {
		t.Fatalf("Expected 1 state, got %d", len(states))
	}
	if states[0].X != 10 || states[0].Y != 20 || states[0].Zoom != 1.0 {
		t.Errorf("F=1 sample must sit on the segment start, got %+v", states[0])
	}
}
