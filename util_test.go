package spline_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/spline"
	"honnef.co/go/spline/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those in structs, with an absolute
// tolerance.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// panics calls fn and returns the value it panicked with. It fails the test if
// fn doesn't panic.
func panics(t *testing.T, fn func()) (v any) {
	t.Helper()
	defer func() {
		v = recover()
		if v == nil {
			t.Error("expected a panic")
		}
	}()
	fn()
	return nil
}

func planar(typ spline.Type, handles ...geom.Point) spline.Spline[geom.Point, geom.Vec2] {
	return spline.FromInterpolating[geom.Point, geom.Vec2](geom.Planar{}, handles, typ)
}

// lineSpline returns a spline through (0, 0), (1, 0), (2, 0) and (3, 0).
// Its extrapolated margins continue the spacing, so each segment is linear
// and traversed at unit speed.
func lineSpline() spline.Spline[geom.Point, geom.Vec2] {
	return planar(spline.Centripetal, geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(3, 0))
}

// curvedSpline returns a spline with segments of varying length and
// curvature.
func curvedSpline(typ spline.Type) spline.Spline[geom.Point, geom.Vec2] {
	return planar(typ,
		geom.Pt(0, 0),
		geom.Pt(2, 1),
		geom.Pt(3, 4),
		geom.Pt(7, 4),
		geom.Pt(8, 0),
	)
}

// scenarioSpline returns a spline along the x axis whose margins repeat the
// first and last handle.
func scenarioSpline() spline.Spline[r3.Vector, r3.Vector] {
	return spline.FromHandlesIncludingMargin[r3.Vector, r3.Vector](geom.Space{}, []r3.Vector{
		{X: 0}, {X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 3},
	}, spline.Centripetal)
}
