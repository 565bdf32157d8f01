package spline

import "math"

// Location is a position along a spline, measured as arc length from the
// spline's start.
type Location float64

// NormalizedLocation is a position along a spline, expressed as a segment
// index plus the parameter within that segment. The integer part selects the
// segment and the fractional part is the parameter t ∈ [0, 1).
//
// A spline with n segments has normalized locations in [0, n]; n itself is
// the end of the last segment.
type NormalizedLocation float64

// SegmentIndex is the index of a segment within a spline.
type SegmentIndex int

// HandleIndex is the index of a handle within a spline, counting margin
// handles.
type HandleIndex int

// Split returns the segment index and the parameter within the segment.
func (l NormalizedLocation) Split() (SegmentIndex, float64) {
	i := math.Floor(float64(l))
	return SegmentIndex(i), float64(l) - i
}

// locationSlack is the relative amount by which an arc length location may
// exceed the spline's length and still be treated as its end. It absorbs
// summation error.
const locationSlack = 1e-9

// Normalize converts an arc length location into a normalized location.
//
// It walks the segments, accumulating their lengths until loc falls within a
// segment, and then solves for the parameter within that segment using
// [Segment.ProgressAt]. Segment lengths are those of
// Length(DefaultSamplesPerSegment).
func (s Spline[P, D]) Normalize(loc Location) (NormalizedLocation, error) {
	return s.NormalizeWith(loc, DefaultSamplesPerSegment)
}

// NormalizeWith is like [Spline.Normalize] but measures arc length with the
// given number of sections per segment. Length(samplesPerSegment) is the end
// of the spline.
func (s Spline[P, D]) NormalizeWith(loc Location, samplesPerSegment int) (NormalizedLocation, error) {
	checkSections(samplesPerSegment)
	segs, err := s.segs()
	if err != nil {
		return 0, err
	}
	l := float64(loc)
	if math.IsNaN(l) || l < 0 {
		return 0, s.locationError("arc length location out of range", float64(loc))
	}
	var walked float64
	for i, seg := range segs {
		segLen := seg.LengthWith(Simpson, samplesPerSegment)
		if l <= walked+segLen {
			return NormalizedLocation(float64(i) + seg.ProgressAtWith(l-walked, samplesPerSegment)), nil
		}
		walked += segLen
	}
	if l <= walked*(1+locationSlack) {
		return NormalizedLocation(len(segs)), nil
	}
	return 0, s.locationError("arc length location beyond the end of the spline", float64(loc))
}

// Denormalize converts a normalized location into an arc length location, by
// summing the lengths of the segments before it and the partial length within
// its segment.
func (s Spline[P, D]) Denormalize(loc NormalizedLocation) (Location, error) {
	return s.DenormalizeWith(loc, DefaultSamplesPerSegment)
}

// DenormalizeWith is like [Spline.Denormalize] but measures arc length with
// the given number of sections per segment.
func (s Spline[P, D]) DenormalizeWith(loc NormalizedLocation, samplesPerSegment int) (Location, error) {
	checkSections(samplesPerSegment)
	segs, err := s.segs()
	if err != nil {
		return 0, err
	}
	idx, t, ok := s.resolve(loc)
	if !ok {
		return 0, s.locationError("normalized location out of range", float64(loc))
	}
	var walked float64
	for _, seg := range segs[:idx] {
		walked += seg.LengthWith(Simpson, samplesPerSegment)
	}
	return Location(walked + segs[idx].LengthToWith(t, samplesPerSegment)), nil
}

// resolve maps a normalized location to a segment and parameter. The end of
// the spline maps to t = 1 of the last segment.
func (s Spline[P, D]) resolve(loc NormalizedLocation) (SegmentIndex, float64, bool) {
	n := s.SegmentCount()
	if n == 0 || math.IsNaN(float64(loc)) || loc < 0 || loc > NormalizedLocation(n) {
		return 0, 0, false
	}
	if loc == NormalizedLocation(n) {
		return SegmentIndex(n - 1), 1, true
	}
	idx, t := loc.Split()
	return idx, t, true
}
