package planner

import "sort"

// Waypoint is a named stop of the camera path.
type Waypoint struct {
	X    int     `yaml:"x"`
	Y    int     `yaml:"y"`
	Zoom float64 `yaml:"zoom"`
}

// SelectWaypoints picks the k highest-scoring cells and assembles the tour:
// image center, then the selected cell centers in descending score order,
// then the image center again. The endpoints fly at zoom 1.0, every interior
// stop at zoom.
//
// Ties are broken by ascending cell index, so the order is fully
// deterministic. k larger than the cell count is clamped to all cells; this
// is deliberate policy, not an error. k == 0 yields the static two-waypoint
// path center -> center.
func SelectWaypoints(cells []Cell, k, width, height int, zoom float64) []Waypoint {
	if k > len(cells) {
		k = len(cells)
	}

	ranked := make([]Cell, len(cells))
	copy(ranked, cells)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Index < ranked[j].Index
	})

	center := Waypoint{X: width / 2, Y: height / 2, Zoom: 1.0}

	waypoints := make([]Waypoint, 0, k+2)
	waypoints = append(waypoints, center)
	for _, c := range ranked[:k] {
		waypoints = append(waypoints, Waypoint{X: c.CenterX(), Y: c.CenterY(), Zoom: zoom})
	}
	waypoints = append(waypoints, center)
	return waypoints
}
