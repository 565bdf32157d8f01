// Package spline provides Catmull-Rom splines and polynomial curve segments
// over an abstract position and displacement algebra, with arc length
// parametrization and closest point queries.
//
// # Algebra
//
// The package never works with a concrete vector type. Instead, every
// function is generic over a position type P and a displacement type D, and
// takes an [Operations] value that adds, subtracts, scales and dots them. Any
// type satisfying the contract works, from 2D and 3D vectors to scalars or
// even zero-dimensional types. Package [honnef.co/go/spline/geom] provides
// implementations for common types.
//
// Only a minimal set of operations is required. Derived operations such as
// [Distance] and [Lerp] are free functions. Algebras can optionally implement
// interfaces such as [Distancer] to provide more efficient versions, in which
// case the free functions defer to them.
//
// # Polynomials and segments
//
// Curves are made of [Polynomial] pieces, constructed from four Catmull-Rom
// handles ([CatmullRom]), Bézier control points ([Bezier]), or endpoint
// constraints ([Hermite], [QuinticHermite]). A [Segment] wraps a polynomial
// and adds arc length computations, which are cached since they require
// numerical integration (see [Integration]).
//
// # Splines
//
// A [Spline] is an immutable sequence of Catmull-Rom segments through a list of
// handles. The first and last handles are margins that only shape the tangents
// at the ends. Use [FromInterpolating] to have margins extrapolated, or
// [FromHandles] and [FromHandlesIncludingMargin] to provide them.
//
// Positions along a spline are expressed either as arc length, [Location], or
// as segment index plus parameter, [NormalizedLocation]. [Spline.Normalize]
// and [Spline.Denormalize] convert between the two.
//
// # Failure
//
// Splines with fewer than [MinHandles] handles are invalid. Queries come in
// up to three forms: methods returning an error, which is an
// [*InvalidSplineError] for invalid splines and out of range locations;
// Try variants returning a boolean; and Must variants that panic. Misuse such
// as a negative sample count panics in all forms.
//
// # Closest points
//
// [Spline.ClosestPoint] and [ClosestPointOnSplines] find the point on a spline
// closest to a position. The search is greedy and may report a local optimum
// for strongly curved splines.
//
// # Literature
//
//   - [On the Parameterization of Catmull-Rom Curves] by Yuksel, Schaefer and Keyser
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [On the Parameterization of Catmull-Rom Curves]: https://www.cemyuksel.com/research/catmullrom_param/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
package spline
