package planner

import "math"

// CameraState is the interpolated camera position and zoom at one frame.
type CameraState struct {
	X    int
	Y    int
	Zoom float64
}

// Interpolate samples each consecutive waypoint pair at framesPerSegment
// evenly spaced points t = f/(F-1). Positions interpolate linearly and round
// to the nearest pixel; zoom interpolates linearly in floating point. Motion
// is strictly piecewise-linear, no easing.
//
// Frame 0 of a segment equals the start waypoint exactly and the last frame
// equals the end waypoint, so the total count is (len(waypoints)-1) * F.
// With F == 1 the single sample sits on the segment start.
func Interpolate(waypoints []Waypoint, framesPerSegment int) []CameraState {
	if len(waypoints) < 2 {
		return nil
	}

	states := make([]CameraState, 0, (len(waypoints)-1)*framesPerSegment)
	for i := 0; i < len(waypoints)-1; i++ {
		a, b := waypoints[i], waypoints[i+1]
		for f := 0; f < framesPerSegment; f++ {
			t := 0.0
			if framesPerSegment > 1 {
				t = float64(f) / float64(framesPerSegment-1)
			}
			states = append(states, CameraState{
				X:    int(math.Round(lerp(float64(a.X), float64(b.X), t))),
				Y:    int(math.Round(lerp(float64(a.Y), float64(b.Y), t))),
				Zoom: lerp(a.Zoom, b.Zoom, t),
			})
		}
	}
	return states
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
