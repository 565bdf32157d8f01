package spline

import "fmt"

// Polynomial is a polynomial curve
//
//	C(t) = origin + c₁t + c₂t² + … + cₙtⁿ
//
// whose constant term is a position and whose other coefficients are
// displacements. Segments of a spline are cubic polynomials (n = 3); quintic
// polynomials (n = 5) are produced by [QuinticHermite].
//
// Polynomials are immutable. They are usually evaluated for t ∈ [0, 1], but are
// defined for all t, which allows extrapolating beyond either end.
type Polynomial[P, D any] struct {
	ops    Operations[P, D]
	origin P
	// coeffs[i] is the coefficient of t^(i+1).
	coeffs []D
}

// NewPolynomial returns the polynomial with the given constant term and
// coefficients, in increasing order of power. At least one coefficient is
// required.
func NewPolynomial[P, D any](ops Operations[P, D], origin P, coeffs ...D) Polynomial[P, D] {
	if len(coeffs) == 0 {
		panic("polynomial needs at least one non-constant coefficient")
	}
	return Polynomial[P, D]{
		ops:    ops,
		origin: origin,
		coeffs: append([]D(nil), coeffs...),
	}
}

// Degree returns the degree of the polynomial.
func (c Polynomial[P, D]) Degree() int {
	return len(c.coeffs)
}

// Coefficient returns the coefficient of tⁱ, for 1 ≤ i ≤ [Polynomial.Degree].
func (c Polynomial[P, D]) Coefficient(i int) D {
	if i < 1 || i > len(c.coeffs) {
		panic(fmt.Sprintf("coefficient %d out of range [1, %d]", i, len(c.coeffs)))
	}
	return c.coeffs[i-1]
}

func (c Polynomial[P, D]) Ops() Operations[P, D] { return c.ops }

// Start returns the position at t = 0.
func (c Polynomial[P, D]) Start() P { return c.origin }

// End returns the position at t = 1.
func (c Polynomial[P, D]) End() P { return c.Eval(1) }

// Eval evaluates the curve at parameter t.
func (c Polynomial[P, D]) Eval(t float64) P {
	ops := c.ops
	n := len(c.coeffs)
	acc := c.coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		acc = ops.AddDiff(ops.Mul(acc, t), c.coeffs[i])
	}
	return ops.Add(c.origin, ops.Mul(acc, t))
}

// Derivative evaluates the first derivative C'(t).
func (c Polynomial[P, D]) Derivative(t float64) D {
	return c.NthDerivative(t, 1)
}

// SecondDerivative evaluates the second derivative C''(t).
func (c Polynomial[P, D]) SecondDerivative(t float64) D {
	return c.NthDerivative(t, 2)
}

// NthDerivative evaluates the n-th derivative of the curve at parameter t.
// n must be at least 1. Derivatives beyond the polynomial's degree are zero.
func (c Polynomial[P, D]) NthDerivative(t float64, n int) D {
	if n < 1 {
		panic(fmt.Sprintf("derivative order must be at least 1, got %d", n))
	}
	ops := c.ops
	deg := len(c.coeffs)
	if n > deg {
		return Zero(ops, c.origin)
	}
	// The term cₖtᵏ contributes k!/(k-n)! cₖ t^(k-n).
	acc := ops.Mul(c.coeffs[deg-1], fallingFactorial(deg, n))
	for k := deg - 1; k >= n; k-- {
		acc = ops.AddDiff(ops.Mul(acc, t), ops.Mul(c.coeffs[k-1], fallingFactorial(k, n)))
	}
	return acc
}

// Differentiate returns the derivative of the curve, expressed as a
// polynomial of one degree less with the given position as its origin. The
// derivative of a linear polynomial has no non-constant coefficients and is
// reported as false.
//
// This is mostly useful for position types that double as vectors, where
// the origin is the zero vector.
func (c Polynomial[P, D]) Differentiate(origin P) (Polynomial[P, D], bool) {
	deg := len(c.coeffs)
	if deg < 2 {
		return Polynomial[P, D]{}, false
	}
	coeffs := make([]D, deg-1)
	for k := 2; k <= deg; k++ {
		coeffs[k-2] = c.ops.Mul(c.coeffs[k-1], float64(k))
	}
	return Polynomial[P, D]{
		ops:    c.ops,
		origin: c.ops.Add(origin, c.coeffs[0]),
		coeffs: coeffs,
	}, true
}

// Subsegment returns the polynomial that traces the portion of c between t0
// and t1, reparametrized to [0, 1].
func (c Polynomial[P, D]) Subsegment(t0, t1 float64) Polynomial[P, D] {
	ops := c.ops
	deg := len(c.coeffs)
	// Substitute t = t0 + s·h and expand with Taylor's theorem around t0:
	// cₖ' = C⁽ᵏ⁾(t0) hᵏ / k!
	h := t1 - t0
	coeffs := make([]D, deg)
	scale := 1.0
	for k := 1; k <= deg; k++ {
		scale *= h / float64(k)
		coeffs[k-1] = ops.Mul(c.NthDerivative(t0, k), scale)
	}
	return Polynomial[P, D]{
		ops:    ops,
		origin: c.Eval(t0),
		coeffs: coeffs,
	}
}

// fallingFactorial returns k!/(k-n)!.
func fallingFactorial(k, n int) float64 {
	p := 1.0
	for i := 0; i < n; i++ {
		p *= float64(k - i)
	}
	return p
}
