package spline

import (
	"fmt"
	"slices"
	"sync"
)

// MinHandles is the minimum number of handles, including the two margin
// handles, that a spline needs to define a segment.
const MinHandles = 4

// Spline is a Catmull-Rom spline: a continuous curve through a sequence of
// handles, made of one cubic [Segment] per pair of consecutive interpolated
// handles.
//
// The first and last handles are margin handles. They are not interpolated;
// they only determine the tangents at the ends of the curve. A spline with n
// handles including margins has n−3 segments. Splines with fewer than
// [MinHandles] handles are invalid, and queries on them fail with an
// [*InvalidSplineError]. The zero value is an invalid spline.
//
// Splines are immutable values. Segments are derived from the handles on first
// use, once, and are safe to query concurrently.
type Spline[P, D any] struct {
	ops      Operations[P, D]
	typ      Type
	handles  []P
	segments func() []*Segment[P, D]
}

func newSpline[P, D any](ops Operations[P, D], handles []P, typ Type) Spline[P, D] {
	if ops == nil {
		panic("spline needs operations")
	}
	alpha := typ.Alpha()
	return Spline[P, D]{
		ops:     ops,
		typ:     typ,
		handles: handles,
		segments: sync.OnceValue(func() []*Segment[P, D] {
			if len(handles) < MinHandles {
				return nil
			}
			segs := make([]*Segment[P, D], len(handles)-3)
			for i := range segs {
				h := handles[i : i+4]
				segs[i] = NewSegment(CatmullRom(ops, h[0], h[1], h[2], h[3], alpha))
			}
			return segs
		}),
	}
}

// FromInterpolating returns the spline that interpolates all of the given
// handles. The margin handles are extrapolated linearly from the first two and
// last two handles, respectively.
//
// A single handle is used as its own margins, which still results in an
// invalid spline.
func FromInterpolating[P, D any](ops Operations[P, D], handles []P, typ Type) Spline[P, D] {
	n := len(handles)
	switch n {
	case 0:
		return newSpline(ops, nil, typ)
	case 1:
		return newSpline(ops, []P{handles[0], handles[0], handles[0]}, typ)
	}
	all := make([]P, 0, n+2)
	all = append(all, ops.Add(handles[0], ops.Sub(handles[0], handles[1])))
	all = append(all, handles...)
	all = append(all, ops.Add(handles[n-1], ops.Sub(handles[n-1], handles[n-2])))
	return newSpline(ops, all, typ)
}

// FromHandles returns the spline that interpolates the given handles, using
// explicit margin handles.
func FromHandles[P, D any](ops Operations[P, D], beginMargin P, interpolated []P, endMargin P, typ Type) Spline[P, D] {
	all := make([]P, 0, len(interpolated)+2)
	all = append(all, beginMargin)
	all = append(all, interpolated...)
	all = append(all, endMargin)
	return newSpline(ops, all, typ)
}

// FromHandlesIncludingMargin returns the spline for the given handles, the
// first and last of which are the margin handles.
func FromHandlesIncludingMargin[P, D any](ops Operations[P, D], handles []P, typ Type) Spline[P, D] {
	return newSpline(ops, slices.Clone(handles), typ)
}

func (s Spline[P, D]) Ops() Operations[P, D] { return s.ops }

func (s Spline[P, D]) Type() Type { return s.typ }

// Valid reports whether the spline has enough handles to define a segment.
func (s Spline[P, D]) Valid() bool {
	return len(s.handles) >= MinHandles
}

// HandleCount returns the number of handles, including margins.
func (s Spline[P, D]) HandleCount() int {
	return len(s.handles)
}

// SegmentCount returns the number of segments, which is zero for invalid
// splines.
func (s Spline[P, D]) SegmentCount() int {
	return max(len(s.handles)-3, 0)
}

// Handle returns the handle at index i, counting margins. It panics if i is
// out of range.
func (s Spline[P, D]) Handle(i HandleIndex) P {
	if i < 0 || int(i) >= len(s.handles) {
		panic(fmt.Sprintf("handle index %d out of range [0, %d)", i, len(s.handles)))
	}
	return s.handles[i]
}

// Handles returns a copy of all handles, including margins.
func (s Spline[P, D]) Handles() []P {
	return slices.Clone(s.handles)
}

// InterpolatedHandles returns a copy of the handles without the margins.
func (s Spline[P, D]) InterpolatedHandles() []P {
	if len(s.handles) < 2 {
		return nil
	}
	return slices.Clone(s.handles[1 : len(s.handles)-1])
}

// segs returns the spline's segments without copying the slice.
func (s Spline[P, D]) segs() ([]*Segment[P, D], error) {
	if !s.Valid() {
		return nil, s.invalidError()
	}
	return s.segments(), nil
}

// Segments returns the spline's segments.
func (s Spline[P, D]) Segments() ([]*Segment[P, D], error) {
	segs, err := s.segs()
	return slices.Clone(segs), err
}

// Segment returns the segment at index i.
func (s Spline[P, D]) Segment(i SegmentIndex) (*Segment[P, D], error) {
	segs, err := s.segs()
	if err != nil {
		return nil, err
	}
	if i < 0 || int(i) >= len(segs) {
		return nil, s.locationError("segment index out of range", float64(i))
	}
	return segs[i], nil
}

// MustSegment is like [Spline.Segment] but panics with an
// [*InvalidSplineError] on failure.
func (s Spline[P, D]) MustSegment(i SegmentIndex) *Segment[P, D] {
	seg, err := s.Segment(i)
	if err != nil {
		panic(err)
	}
	return seg
}

// Length returns the arc length of the spline, the sum of its segments'
// lengths, each integrated with Simpson's rule over samplesPerSegment
// sections. See [DefaultSamplesPerSegment].
func (s Spline[P, D]) Length(samplesPerSegment int) (float64, error) {
	return s.LengthWith(Simpson, samplesPerSegment)
}

// LengthWith is like [Spline.Length] but uses the given integration method.
func (s Spline[P, D]) LengthWith(m Integration, samplesPerSegment int) (float64, error) {
	checkSections(samplesPerSegment)
	segs, err := s.segs()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, seg := range segs {
		sum += seg.LengthWith(m, samplesPerSegment)
	}
	return sum, nil
}

// MustLength is like [Spline.Length] but panics with an
// [*InvalidSplineError] on failure.
func (s Spline[P, D]) MustLength(samplesPerSegment int) float64 {
	l, err := s.Length(samplesPerSegment)
	if err != nil {
		panic(err)
	}
	return l
}
