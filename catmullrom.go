package spline

import (
	"fmt"
	"math"
	"strings"
)

// Type selects the knot parametrization of Catmull-Rom splines.
//
// The zero value is [Centripetal], which avoids cusps and self-intersections
// within a segment and is the recommended choice.
type Type int

const (
	// Centripetal parametrization, alpha = 0.5.
	Centripetal Type = iota
	// Uniform parametrization, alpha = 0.
	Uniform
	// Chordal parametrization, alpha = 1.
	Chordal
)

// Alpha returns the exponent applied to handle distances when computing knot
// spacing.
func (typ Type) Alpha() float64 {
	switch typ {
	case Centripetal:
		return 0.5
	case Uniform:
		return 0
	case Chordal:
		return 1
	default:
		panic(fmt.Sprintf("unhandled spline type %d", int(typ)))
	}
}

func (typ Type) String() string {
	switch typ {
	case Centripetal:
		return "centripetal"
	case Uniform:
		return "uniform"
	case Chordal:
		return "chordal"
	default:
		return fmt.Sprintf("Type(%d)", int(typ))
	}
}

// ParseType parses the name of a spline type, as returned by [Type.String].
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(s) {
	case "centripetal":
		return Centripetal, true
	case "uniform":
		return Uniform, true
	case "chordal":
		return Chordal, true
	default:
		return 0, false
	}
}

// minKnotSpacing is the smallest knot spacing used as is, relative to the
// largest of the three spacings of a segment. Smaller spacings occur for
// coincident or nearly coincident handles, and are replaced to keep the
// tangent computation finite.
const minKnotSpacing = 1e-4

// CatmullRom returns the cubic polynomial of the Catmull-Rom segment that
// interpolates p1 and p2, using p0 and p3 to determine the tangents.
//
// Knots are spaced by |pᵢ₊₁ − pᵢ|^alpha. An alpha of 0 gives the uniform, 0.5
// the centripetal and 1 the chordal Catmull-Rom spline; see [Type.Alpha].
// Coincident handles do not produce NaNs: a spacing between p1 and p2 that is
// negligible next to the others falls back to the largest spacing, and
// negligible outer spacings fall back to the middle one. The tangents scale
// with the handles, so the curve doesn't depend on the units of the positions.
func CatmullRom[P, D any](ops Operations[P, D], p0, p1, p2, p3 P, alpha float64) Polynomial[P, D] {
	if !(alpha >= 0 && alpha <= 1) {
		panic(fmt.Sprintf("alpha must be in [0, 1], got %g", alpha))
	}
	v1, v2 := catmullRomTangents(ops, p0, p1, p2, p3, alpha)
	return Hermite(ops, p1, v1, p2, v2)
}

// catmullRomTangents returns the tangents at p1 and p2, scaled to a segment
// parametrized over [0, 1].
func catmullRomTangents[P, D any](ops Operations[P, D], p0, p1, p2, p3 P, alpha float64) (D, D) {
	d01 := ops.Sub(p1, p0)
	d12 := ops.Sub(p2, p1)
	d23 := ops.Sub(p3, p2)
	d02 := ops.Sub(p2, p0)
	d13 := ops.Sub(p3, p1)

	dt0 := math.Pow(ops.Dot(d01, d01), 0.5*alpha)
	dt1 := math.Pow(ops.Dot(d12, d12), 0.5*alpha)
	dt2 := math.Pow(ops.Dot(d23, d23), 0.5*alpha)
	largest := max(dt0, dt1, dt2)
	if largest == 0 {
		// All handles coincide.
		largest = 1
	}
	limit := largest * minKnotSpacing
	if dt1 < limit {
		dt1 = largest
	}
	if dt0 < limit {
		dt0 = dt1
	}
	if dt2 < limit {
		dt2 = dt1
	}

	// v₁ = (d01/dt0 − d02/(dt0+dt1) + d12/dt1) · dt1
	v1 := ops.AddDiff(SubDiff(ops, ops.Mul(d01, 1/dt0), ops.Mul(d02, 1/(dt0+dt1))), ops.Mul(d12, 1/dt1))
	// v₂ = (d12/dt1 − d13/(dt1+dt2) + d23/dt2) · dt1
	v2 := ops.AddDiff(SubDiff(ops, ops.Mul(d12, 1/dt1), ops.Mul(d13, 1/(dt1+dt2))), ops.Mul(d23, 1/dt2))
	return ops.Mul(v1, dt1), ops.Mul(v2, dt1)
}
