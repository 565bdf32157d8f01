package spline

// Sample is the state of a spline at one location.
type Sample[P, D any] struct {
	Location NormalizedLocation
	Segment  SegmentIndex
	// T is the parameter within the segment.
	T        float64
	Position P
	// Tangent is the first derivative with respect to the segment parameter.
	Tangent D
	// Curvature is the second derivative with respect to the segment
	// parameter.
	Curvature D

	poly Polynomial[P, D]
}

func newSample[P, D any](poly Polynomial[P, D], idx SegmentIndex, t float64) Sample[P, D] {
	return Sample[P, D]{
		Location:  NormalizedLocation(float64(idx) + t),
		Segment:   idx,
		T:         t,
		Position:  poly.Eval(t),
		Tangent:   poly.Derivative(t),
		Curvature: poly.SecondDerivative(t),
		poly:      poly,
	}
}

// NthDerivative returns the n-th derivative at the sample, n ≥ 1.
func (s Sample[P, D]) NthDerivative(n int) D {
	return s.poly.NthDerivative(s.T, n)
}

// Sample returns the sample at a normalized location. The location must be in
// [0, SegmentCount]; SegmentCount itself is the end of the last segment.
func (s Spline[P, D]) Sample(loc NormalizedLocation) (Sample[P, D], error) {
	segs, err := s.segs()
	if err != nil {
		return Sample[P, D]{}, err
	}
	idx, t, ok := s.resolve(loc)
	if !ok {
		return Sample[P, D]{}, s.locationError("normalized location out of range", float64(loc))
	}
	return newSample(segs[idx].poly, idx, t), nil
}

// TrySample is like [Spline.Sample] but reports failure as false.
func (s Spline[P, D]) TrySample(loc NormalizedLocation) (Sample[P, D], bool) {
	sample, err := s.Sample(loc)
	return sample, err == nil
}

// MustSample is like [Spline.Sample] but panics with an
// [*InvalidSplineError] on failure.
func (s Spline[P, D]) MustSample(loc NormalizedLocation) Sample[P, D] {
	sample, err := s.Sample(loc)
	if err != nil {
		panic(err)
	}
	return sample
}

// SampleAt returns the sample at an arc length location.
func (s Spline[P, D]) SampleAt(loc Location) (Sample[P, D], error) {
	return s.SampleAtWith(loc, DefaultSamplesPerSegment)
}

// SampleAtWith is like [Spline.SampleAt] but measures arc length with the
// given number of sections per segment, as [Spline.NormalizeWith] does.
func (s Spline[P, D]) SampleAtWith(loc Location, samplesPerSegment int) (Sample[P, D], error) {
	n, err := s.NormalizeWith(loc, samplesPerSegment)
	if err != nil {
		return Sample[P, D]{}, err
	}
	return s.Sample(n)
}

// TrySampleAt is like [Spline.SampleAt] but reports failure as false.
func (s Spline[P, D]) TrySampleAt(loc Location) (Sample[P, D], bool) {
	sample, err := s.SampleAt(loc)
	return sample, err == nil
}

// MustSampleAt is like [Spline.SampleAt] but panics with an
// [*InvalidSplineError] on failure.
func (s Spline[P, D]) MustSampleAt(loc Location) Sample[P, D] {
	sample, err := s.SampleAt(loc)
	if err != nil {
		panic(err)
	}
	return sample
}
