package anim

import (
	"math"
	"sort"

	"github.com/taigrr/planar/pkg/math2d"
)

// Path is a polyline through keyframe points, sampled by arc length.
type Path struct {
	points []math2d.Vec2
	cum    []float64 // cum[i] is the arc length from points[0] to points[i]
}

// NewPath creates a path through points. The slice is copied.
func NewPath(points ...math2d.Vec2) *Path {
	p := &Path{
		points: append([]math2d.Vec2(nil), points...),
		cum:    make([]float64, len(points)),
	}
	for i := 1; i < len(p.points); i++ {
		p.cum[i] = p.cum[i-1] + math2d.Distance(&p.points[i-1], &p.points[i])
	}
	return p
}

// Points returns the number of keyframes.
func (p *Path) Points() int {
	return len(p.points)
}

// Length returns the total polyline length.
func (p *Path) Length() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

// Sample writes the point at fraction t of the path's length into out.
// t is clamped to [0, 1] and NaN samples the start. An empty path yields
// the zero vector.
func (p *Path) Sample(out *math2d.Vec2, t float64) *math2d.Vec2 {
	switch {
	case len(p.points) == 0:
		return math2d.Set(out, 0, 0)
	case t <= 0 || math.IsNaN(t) || p.Length() == 0:
		return math2d.Copy(out, &p.points[0])
	case t >= 1:
		return math2d.Copy(out, &p.points[len(p.points)-1])
	}

	target := t * p.Length()
	// cum[i-1] < target <= cum[i], so the segment is never zero length.
	i := sort.SearchFloat64s(p.cum, target)
	if i == 0 {
		return math2d.Copy(out, &p.points[0])
	}
	local := (target - p.cum[i-1]) / (p.cum[i] - p.cum[i-1])
	return math2d.Lerp(out, &p.points[i-1], &p.points[i], local)
}
