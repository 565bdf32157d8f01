package spline_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"honnef.co/go/spline"
	"honnef.co/go/spline/geom"
)

// straight returns the segment from (0, 0) to (3, 0), traversed at constant
// speed.
func straight() *spline.Segment[geom.Point, geom.Vec2] {
	return spline.NewSegment(spline.Bezier[geom.Point, geom.Vec2](geom.Planar{},
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(3, 0)))
}

func curved() *spline.Segment[geom.Point, geom.Vec2] {
	return spline.NewSegment(spline.Bezier[geom.Point, geom.Vec2](geom.Planar{},
		geom.Pt(0, 0), geom.Pt(0, 2), geom.Pt(3, 3), geom.Pt(4, 0)))
}

func TestSegmentLength(t *testing.T) {
	seg := straight()
	opt := approx(1e-12)
	diff(t, 3.0, seg.Length(), opt)
	for _, m := range []spline.Integration{spline.Simpson, spline.Trapezoid, spline.GaussLegendre} {
		diff(t, 3.0, seg.LengthWith(m, 4), opt)
	}
	diff(t, 0.0, seg.LengthTo(-1))
	diff(t, 0.0, seg.LengthTo(0))
	diff(t, 1.5, seg.LengthTo(0.5), opt)
	diff(t, seg.Length(), seg.LengthTo(1))
	diff(t, seg.Length(), seg.LengthTo(2))

	panics(t, func() { seg.LengthWith(spline.Simpson, 0) })
}

func TestSegmentLengthConverges(t *testing.T) {
	seg := curved()
	want := seg.LengthWith(spline.GaussLegendre, 64)
	chord := 4.0
	if want <= chord {
		t.Fatalf("length %g isn't longer than the chord %g", want, chord)
	}
	coarse := math.Abs(seg.LengthWith(spline.Simpson, 1) - want)
	fine := math.Abs(seg.LengthWith(spline.Simpson, 16) - want)
	if fine >= coarse {
		t.Errorf("error %g with 16 sections isn't smaller than %g with 1", fine, coarse)
	}
	if fine > 1e-4 {
		t.Errorf("got error %g with 16 sections", fine)
	}
}

func TestSegmentLengthMonotonic(t *testing.T) {
	seg := curved()
	prev := 0.0
	for i := 1; i <= 20; i++ {
		l := seg.LengthTo(float64(i) / 20)
		if l <= prev {
			t.Errorf("length %g at t = %g isn't larger than %g", l, float64(i)/20, prev)
		}
		prev = l
	}
}

func TestSegmentLengthConcurrent(t *testing.T) {
	seg := curved()
	want := curved().Length()
	var wg sync.WaitGroup
	lengths := make([]float64, 16)
	for i := range lengths {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			lengths[i] = seg.Length()
		}()
	}
	wg.Wait()
	for _, l := range lengths {
		diff(t, want, l)
	}
}

func TestSegmentProgressAt(t *testing.T) {
	for _, seg := range []*spline.Segment[geom.Point, geom.Vec2]{straight(), curved()} {
		total := seg.Length()
		for i := 0; i < 11; i++ {
			l := total * float64(i) / 10
			ts := seg.ProgressAt(l)
			if ts < 0 || ts > 1 {
				t.Fatalf("got t = %g for length %g", ts, l)
			}
			diff(t, l, seg.LengthTo(ts), approx(1e-5*total))
		}
		diff(t, 0.0, seg.ProgressAt(-1))
		diff(t, 1.0, seg.ProgressAt(total+1))
	}
	diff(t, 0.5, straight().ProgressAt(1.5), approx(1e-9))
}

func TestSegmentProgressAtDegenerate(t *testing.T) {
	p := geom.Pt(1, 1)
	seg := spline.NewSegment(spline.Bezier[geom.Point, geom.Vec2](geom.Planar{}, p, p, p, p))
	diff(t, 0.0, seg.Length())
	diff(t, 0.0, seg.ProgressAt(0.5))
}

func TestSegmentClosestPointTo(t *testing.T) {
	seg := straight()
	tests := []struct {
		q      geom.Point
		t      float64
		distSq float64
	}{
		{geom.Pt(1.2, 5), 0.4, 25},
		{geom.Pt(2.9, -1), 2.9 / 3, 1},
		{geom.Pt(-5, 1), 0, 26},
		{geom.Pt(4, 0), 1, 1},
		{geom.Pt(1.5, 0), 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.q.String(), func(t *testing.T) {
			distSq, ts := seg.ClosestPointTo(tt.q, spline.DefaultClosestSamples)
			diff(t, tt.t, ts, approx(1e-9))
			diff(t, tt.distSq, distSq, approx(1e-9))
		})
	}
	panics(t, func() { seg.ClosestPointTo(geom.Pt(0, 0), 1) })
}

func TestSegmentClosestPointToCurved(t *testing.T) {
	seg := curved()
	poly := seg.Polynomial()
	q := geom.Pt(2, 1)
	distSq, ts := seg.ClosestPointTo(q, 8)
	// The refined point is at least as close as any point of a dense scan.
	for i := 0; i < 1001; i++ {
		s := float64(i) / 1000
		if d := poly.Eval(s).Sub(q); d.Dot(d) < distSq-1e-12 {
			t.Fatalf("point at t = %g is closer than t = %g: %g < %g", s, ts, d.Dot(d), distSq)
		}
	}
	diff(t, distSq, poly.Eval(ts).Sub(q).Dot(poly.Eval(ts).Sub(q)), approx(1e-12))
}

func TestSegmentSample(t *testing.T) {
	seg := curved()
	sample := seg.Sample(0.25)
	poly := seg.Polynomial()
	diff(t, 0.25, sample.T)
	diff(t, spline.SegmentIndex(0), sample.Segment)
	diff(t, poly.Eval(0.25), sample.Position)
	diff(t, poly.Derivative(0.25), sample.Tangent)
	diff(t, poly.SecondDerivative(0.25), sample.Curvature)
	diff(t, poly.NthDerivative(0.25, 3), sample.NthDerivative(3))
}

func TestNewSegmentPanics(t *testing.T) {
	panics(t, func() { spline.NewSegment(spline.Polynomial[geom.Point, geom.Vec2]{}) })
}

func BenchmarkSegmentLength(b *testing.B) {
	for _, m := range []spline.Integration{spline.Simpson, spline.Trapezoid, spline.GaussLegendre} {
		b.Run(m.String(), func(b *testing.B) {
			for iter := 0; iter < b.N; iter++ {
				// A fresh segment, so that the length isn't cached.
				curved().LengthWith(m, spline.DefaultSamplesPerSegment)
			}
		})
	}
}

func BenchmarkSegmentClosestPointTo(b *testing.B) {
	seg := curved()
	for _, samples := range []int{2, 5, 20} {
		b.Run(fmt.Sprintf("%d", samples), func(b *testing.B) {
			for iter := 0; iter < b.N; iter++ {
				seg.ClosestPointTo(geom.Pt(2, 1), samples)
			}
		})
	}
}
