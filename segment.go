package spline

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// DefaultSamplesPerSegment is the default number of integration sections used
// to compute the arc length of a segment.
const DefaultSamplesPerSegment = 10

// DefaultClosestSamples is the default number of samples of the coarse scan in
// closest point queries.
const DefaultClosestSamples = 5

const (
	// progressTolerance is the relative error in arc length at which
	// [Segment.ProgressAt] stops iterating.
	progressTolerance = 1e-6
	// progressMaxIterations bounds the iterations of [Segment.ProgressAt].
	// Two iterations usually suffice for the tolerance above.
	progressMaxIterations = 16
	// progressOverstep makes corrections move slightly past the interpolated
	// guess, so that a bound stuck on one side of the solution gets replaced.
	progressOverstep = 1.1
)

// Segment is a single polynomial piece of a spline, together with its cached
// arc length.
//
// Segments are immutable and safe for concurrent use. A Segment must not be
// copied after first use.
type Segment[P, D any] struct {
	poly Polynomial[P, D]
	// lengths maps lengthKey to func() float64 created by sync.OnceValue.
	lengths sync.Map
}

type lengthKey struct {
	method   Integration
	sections int
}

// NewSegment returns a segment for the given polynomial.
func NewSegment[P, D any](poly Polynomial[P, D]) *Segment[P, D] {
	if poly.ops == nil {
		panic("segment needs a polynomial with operations")
	}
	return &Segment[P, D]{poly: poly}
}

func (s *Segment[P, D]) Polynomial() Polynomial[P, D] { return s.poly }

// Sample returns the position and derivatives at parameter t.
func (s *Segment[P, D]) Sample(t float64) Sample[P, D] {
	return newSample(s.poly, 0, t)
}

// speed returns |C'(t)|, the integrand of the arc length.
func (s *Segment[P, D]) speed(t float64) float64 {
	return Length(s.poly.ops, s.poly.Derivative(t))
}

// Length returns the arc length of the segment, integrated with Simpson's rule
// over [DefaultSamplesPerSegment] sections.
func (s *Segment[P, D]) Length() float64 {
	return s.LengthWith(Simpson, DefaultSamplesPerSegment)
}

// LengthWith returns the arc length of the segment, integrated with the given
// method and number of sections.
//
// Lengths are computed at most once per method and section count, even when
// requested concurrently.
func (s *Segment[P, D]) LengthWith(m Integration, sections int) float64 {
	checkSections(sections)
	key := lengthKey{m, sections}
	if fn, ok := s.lengths.Load(key); ok {
		return fn.(func() float64)()
	}
	fn, _ := s.lengths.LoadOrStore(key, sync.OnceValue(func() float64 {
		return Integrate(m, s.speed, 0, 1, sections)
	}))
	return fn.(func() float64)()
}

// LengthTo returns the arc length of the segment between 0 and t, using the
// same integration as [Segment.Length]. t is clamped to [0, 1].
func (s *Segment[P, D]) LengthTo(t float64) float64 {
	return s.LengthToWith(t, DefaultSamplesPerSegment)
}

// LengthToWith is like [Segment.LengthTo] but integrates with the given number
// of Simpson sections. LengthToWith(1, n) equals LengthWith(Simpson, n).
func (s *Segment[P, D]) LengthToWith(t float64, sections int) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return s.LengthWith(Simpson, sections)
	default:
		return IntegrateSimpson(s.speed, 0, t, sections)
	}
}

// ProgressAt returns the parameter t at which the arc length of the segment
// from 0 to t equals length. Lengths outside [0, Length()] are clamped.
//
// Arc length has no closed-form inverse, so t is found iteratively: starting
// from the guess that the segment is traversed at constant speed, each step
// interpolates between the known bounds and oversteps slightly.
func (s *Segment[P, D]) ProgressAt(length float64) float64 {
	return s.ProgressAtWith(length, DefaultSamplesPerSegment)
}

// ProgressAtWith is like [Segment.ProgressAt] but measures arc length with
// the given number of Simpson sections, as [Segment.LengthToWith] does.
func (s *Segment[P, D]) ProgressAtWith(length float64, sections int) float64 {
	total := s.LengthWith(Simpson, sections)
	if length <= 0 || total <= 0 {
		return 0
	}
	if length >= total {
		return 1
	}

	lo, loLen := 0.0, 0.0
	hi, hiLen := 1.0, total
	t := length / total
	for iter := 0; iter < progressMaxIterations; iter++ {
		l := s.LengthToWith(t, sections)
		if math.Abs(l-length) <= progressTolerance*total {
			return t
		}
		if l < length {
			lo, loLen = t, l
		} else {
			hi, hiLen = t, l
		}
		guess := lo + (length-loLen)/(hiLen-loLen)*(hi-lo)
		next := t + progressOverstep*(guess-t)
		if next <= lo || next >= hi {
			next = guess
		}
		t = next
	}
	return t
}

// ClosestPointTo finds the parameter of the point on the segment closest to
// q, and returns it together with the squared distance.
//
// The segment is scanned at the given number of uniformly spaced parameters
// (at least 2, including both ends), and the best sample is refined by solving
// for the nearby zero of the distance's derivative. The result is a local
// optimum; for strongly curved segments more samples make it likelier to be
// the global one.
func (s *Segment[P, D]) ClosestPointTo(q P, samples int) (distSq, t float64) {
	if samples < 2 {
		panic(fmt.Sprintf("closest point search needs at least 2 samples, got %d", samples))
	}
	ops := s.poly.ops
	param := func(i int) float64 { return float64(i) / float64(samples-1) }

	dists := make([]float64, samples)
	for i := range dists {
		dists[i] = DistanceSquared(ops, s.poly.Eval(param(i)), q)
	}
	k := floats.MinIdx(dists)
	bestT, best := param(k), dists[k]

	// g is half the derivative of the squared distance with respect to t.
	g := func(t float64) float64 {
		return ops.Dot(ops.Sub(s.poly.Eval(t), q), s.poly.Derivative(t))
	}
	refine := func(a, b float64) {
		ya, yb := g(a), g(b)
		if !(ya < 0 && yb > 0) {
			return
		}
		t := SolveITP(g, a, b, 1e-12, 1, 0.2/(b-a), ya, yb)
		if d := DistanceSquared(ops, s.poly.Eval(t), q); d < best {
			bestT, best = t, d
		}
	}
	if k > 0 {
		refine(param(k-1), param(k))
	}
	if k < samples-1 {
		refine(param(k), param(k+1))
	}
	return best, bestT
}
