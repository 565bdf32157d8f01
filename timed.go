package spline

import "fmt"

// TimedSpline is a spline traversed over time, spending the same duration in
// each segment.
type TimedSpline[P, D, T, V any] struct {
	ops        TimedOperations[P, D, T, V]
	spline     Spline[P, D]
	perSegment T
}

// TimedSample is a [Sample] of a [TimedSpline], with the velocity of the
// traversal at the sample.
type TimedSample[P, D, V any] struct {
	Sample[P, D]
	Velocity V
}

// NewTimed returns a timed spline that traverses s, spending perSegment in
// each of its segments. perSegment must not be zero.
func NewTimed[P, D, T, V any](ops TimedOperations[P, D, T, V], s Spline[P, D], perSegment T) TimedSpline[P, D, T, V] {
	if r := ops.Ratio(perSegment, perSegment); !(r > 0) {
		panic(fmt.Sprintf("segment duration must not be zero, got %v", perSegment))
	}
	return TimedSpline[P, D, T, V]{
		ops:        ops,
		spline:     s,
		perSegment: perSegment,
	}
}

func (ts TimedSpline[P, D, T, V]) Spline() Spline[P, D] { return ts.spline }

// SegmentDuration returns the time spent in each segment.
func (ts TimedSpline[P, D, T, V]) SegmentDuration() T { return ts.perSegment }

// Location returns the normalized location reached after the given elapsed
// time.
func (ts TimedSpline[P, D, T, V]) Location(elapsed T) NormalizedLocation {
	return NormalizedLocation(ts.ops.Ratio(elapsed, ts.perSegment))
}

// At returns the sample reached after the given elapsed time. It fails for
// times before the start or after the end of the traversal.
func (ts TimedSpline[P, D, T, V]) At(elapsed T) (TimedSample[P, D, V], error) {
	sample, err := ts.spline.Sample(ts.Location(elapsed))
	if err != nil {
		return TimedSample[P, D, V]{}, err
	}
	return TimedSample[P, D, V]{
		Sample:   sample,
		Velocity: ts.ops.Velocity(sample.Tangent, ts.perSegment),
	}, nil
}

// Extrapolate predicts the position dt after elapsed, assuming the velocity at
// elapsed stays constant.
func (ts TimedSpline[P, D, T, V]) Extrapolate(elapsed, dt T) (P, error) {
	sample, err := ts.At(elapsed)
	if err != nil {
		return *new(P), err
	}
	return ts.ops.Add(sample.Position, ts.ops.Displacement(sample.Velocity, dt)), nil
}
