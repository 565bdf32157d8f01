package spline

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// Closest is the result of a closest point query.
type Closest[P, D any] struct {
	// Query is the position the query was made for.
	Query P
	// Position is the point on the spline found closest to Query.
	Position P
	Location NormalizedLocation
	Distance float64
	// Spline is the spline Position lies on, and SplineIndex its index in the
	// queried collection, or 0 for queries on a single spline.
	Spline      Spline[P, D]
	SplineIndex int

	absolute func() (Location, error)
}

// AbsoluteLocation returns the arc length location of the result. It is
// computed on first use.
func (c Closest[P, D]) AbsoluteLocation() (Location, error) {
	if c.absolute == nil {
		return c.Spline.Denormalize(c.Location)
	}
	return c.absolute()
}

func checkClosestSamples(samples int) {
	if samples < 2 {
		panic(fmt.Sprintf("closest point search needs at least 2 samples, got %d", samples))
	}
}

// ClosestPoint finds the point on the spline closest to q. See
// [DefaultClosestSamples] for a suitable number of samples.
//
// The search is greedy. It first determines the segment by binary search over
// the segment boundaries, testing on which side of the plane through the
// boundary, normal to the spline's tangent, q lies. It then refines the point
// within that segment with [Segment.ClosestPointTo]. For strongly curved
// splines the side of the plane is not monotonic along the spline, and the
// result may be a local rather than the global closest point.
//
// Queries made before the start or past the end of the spline are clamped to
// the first or last segment.
func (s Spline[P, D]) ClosestPoint(q P, samples int) (Closest[P, D], error) {
	checkClosestSamples(samples)
	segs, err := s.segs()
	if err != nil {
		return Closest[P, D]{}, err
	}
	ops := s.ops
	n := len(segs)
	// side is positive when q lies ahead of boundary i, in the direction of
	// the tangent there.
	side := func(i int) float64 {
		poly, t := segs[min(i, n-1)].poly, 0.0
		if i == n {
			t = 1
		}
		return ops.Dot(ops.Sub(q, poly.Eval(t)), poly.Derivative(t))
	}

	var idx int
	switch {
	case side(0) <= 0:
		idx = 0
	case side(n) >= 0:
		idx = n - 1
	default:
		ahead, behind := 0, n
		for behind-ahead > 1 {
			mid := (ahead + behind) / 2
			if side(mid) > 0 {
				ahead = mid
			} else {
				behind = mid
			}
		}
		idx = ahead
	}

	seg := segs[idx]
	_, t := seg.ClosestPointTo(q, samples)
	pos := seg.poly.Eval(t)
	c := Closest[P, D]{
		Query:    q,
		Position: pos,
		Location: NormalizedLocation(float64(idx) + t),
		Distance: Distance(ops, q, pos),
		Spline:   s,
	}
	c.absolute = sync.OnceValues(func() (Location, error) {
		return s.Denormalize(c.Location)
	})
	return c, nil
}

// TryClosestPoint is like [Spline.ClosestPoint] but reports failure as false.
func (s Spline[P, D]) TryClosestPoint(q P, samples int) (Closest[P, D], bool) {
	c, err := s.ClosestPoint(q, samples)
	return c, err == nil
}

// ClosestPointOnSplines finds the point closest to q on any of the splines,
// by querying each valid spline with [Spline.ClosestPoint] and picking the
// result with the smallest distance. It fails if none of the splines is
// valid.
func ClosestPointOnSplines[P, D any](splines []Spline[P, D], q P, samples int) (Closest[P, D], error) {
	checkClosestSamples(samples)
	var results []Closest[P, D]
	for i, s := range splines {
		c, ok := s.TryClosestPoint(q, samples)
		if !ok {
			continue
		}
		c.SplineIndex = i
		results = append(results, c)
	}
	if len(results) == 0 {
		return Closest[P, D]{}, &InvalidSplineError{
			Reason: fmt.Sprintf("none of the %d splines is valid", len(splines)),
		}
	}
	return lo.MinBy(results, func(a, b Closest[P, D]) bool {
		return a.Distance < b.Distance
	}), nil
}

// TryClosestPointOnSplines is like [ClosestPointOnSplines] but reports
// failure as false.
func TryClosestPointOnSplines[P, D any](splines []Spline[P, D], q P, samples int) (Closest[P, D], bool) {
	c, err := ClosestPointOnSplines(splines, q, samples)
	return c, err == nil
}
