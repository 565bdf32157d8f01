package spline

import "math"

// Operations is the algebra the spline engine requires from a position type P
// and its displacement type D.
//
// Implementations must be pure and deterministic. They are strategy values
// without identity; the zero value of a struct type with no fields is the
// usual implementation.
//
// Only the minimal set of operations is required. Derived operations are
// provided by [SubDiff], [Offset], [Div], [Distance], [DistanceSquared],
// [Lerp] and [Zero], which defer to the optional interfaces [DiffSubtracter],
// [Offsetter], [Divider], [Distancer] and [Lerper] when the algebra implements
// them.
type Operations[P, D any] interface {
	// Add translates p by d.
	Add(p P, d D) P
	// Sub returns the displacement from b to a, that is a−b.
	Sub(a, b P) D
	// AddDiff adds two displacements.
	AddDiff(a, b D) D
	// Mul scales d by f.
	Mul(d D, f float64) D
	// Dot returns the dot product of a and b.
	Dot(a, b D) float64
}

// DiffSubtracter can be implemented by algebras that have a better way of
// subtracting displacements than adding the negated displacement.
type DiffSubtracter[D any] interface {
	SubDiff(a, b D) D
}

// Offsetter can be implemented by algebras that have a better way of
// computing p−d than adding the negated displacement.
type Offsetter[P, D any] interface {
	Offset(p P, d D) P
}

// Divider can be implemented by algebras that have a better way of dividing a
// displacement than multiplying with the reciprocal.
type Divider[D any] interface {
	Div(d D, f float64) D
}

// Distancer can be implemented by algebras that have a better way of
// computing the distance between two positions.
type Distancer[P any] interface {
	Distance(a, b P) float64
}

// Lerper can be implemented by algebras that have a better way of linearly
// interpolating between two positions.
type Lerper[P any] interface {
	Lerp(a, b P, t float64) P
}

// SubDiff computes a−b.
func SubDiff[P, D any](ops Operations[P, D], a, b D) D {
	if ops, ok := ops.(DiffSubtracter[D]); ok {
		return ops.SubDiff(a, b)
	}
	return ops.AddDiff(a, ops.Mul(b, -1))
}

// Offset computes p−d.
func Offset[P, D any](ops Operations[P, D], p P, d D) P {
	if ops, ok := ops.(Offsetter[P, D]); ok {
		return ops.Offset(p, d)
	}
	return ops.Add(p, ops.Mul(d, -1))
}

// Div computes d/f.
func Div[P, D any](ops Operations[P, D], d D, f float64) D {
	if ops, ok := ops.(Divider[D]); ok {
		return ops.Div(d, f)
	}
	return ops.Mul(d, 1/f)
}

// Distance returns the euclidean distance between two positions.
func Distance[P, D any](ops Operations[P, D], a, b P) float64 {
	if ops, ok := ops.(Distancer[P]); ok {
		return ops.Distance(a, b)
	}
	return math.Sqrt(DistanceSquared(ops, a, b))
}

// DistanceSquared returns the squared euclidean distance between two
// positions.
//
// This function is more efficient than squaring the result of [Distance].
func DistanceSquared[P, D any](ops Operations[P, D], a, b P) float64 {
	d := ops.Sub(a, b)
	return ops.Dot(d, d)
}

// Length returns the magnitude of a displacement.
func Length[P, D any](ops Operations[P, D], d D) float64 {
	return math.Sqrt(ops.Dot(d, d))
}

// Lerp linearly interpolates between two positions.
func Lerp[P, D any](ops Operations[P, D], a, b P, t float64) P {
	if ops, ok := ops.(Lerper[P]); ok {
		return ops.Lerp(a, b, t)
	}
	// a + t * (b-a)
	return ops.Add(a, ops.Mul(ops.Sub(b, a), t))
}

// Zero returns the zero displacement of the space p lives in.
func Zero[P, D any](ops Operations[P, D], p P) D {
	return ops.Sub(p, p)
}

// TimedOperations extends [Operations] with a time type T and a velocity type
// V, for splines that are traversed over time.
type TimedOperations[P, D, T, V any] interface {
	Operations[P, D]
	// Ratio returns a/b.
	Ratio(a, b T) float64
	// Velocity returns the velocity of covering d in the given time.
	Velocity(d D, over T) V
	// Displacement returns the displacement of moving at v for the given
	// time.
	Displacement(v V, over T) D
}
