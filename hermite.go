package spline

// Hermite returns the cubic polynomial that starts at p0 with velocity v0 and
// ends at p1 with velocity v1.
func Hermite[P, D any](ops Operations[P, D], p0 P, v0 D, p1 P, v1 D) Polynomial[P, D] {
	d := ops.Sub(p1, p0)
	// c₂ = 3d − 2v₀ − v₁
	c2 := SubDiff(ops, SubDiff(ops, ops.Mul(d, 3), ops.Mul(v0, 2)), v1)
	// c₃ = −2d + v₀ + v₁
	c3 := ops.AddDiff(ops.AddDiff(ops.Mul(d, -2), v0), v1)
	return Polynomial[P, D]{
		ops:    ops,
		origin: p0,
		coeffs: []D{v0, c2, c3},
	}
}

// QuinticHermite returns the quintic polynomial that starts at p0 with
// velocity v0 and acceleration a0, and ends at p1 with velocity v1 and
// acceleration a1. Chaining such polynomials gives curves that are continuous
// in acceleration.
func QuinticHermite[P, D any](ops Operations[P, D], p0 P, v0, a0 D, p1 P, v1, a1 D) Polynomial[P, D] {
	d := ops.Sub(p1, p0)
	sum := func(terms ...D) D {
		acc := terms[0]
		for _, term := range terms[1:] {
			acc = ops.AddDiff(acc, term)
		}
		return acc
	}
	// c₃ = 10d − 6v₀ − 4v₁ − 1.5a₀ + 0.5a₁
	c3 := sum(ops.Mul(d, 10), ops.Mul(v0, -6), ops.Mul(v1, -4), ops.Mul(a0, -1.5), ops.Mul(a1, 0.5))
	// c₄ = −15d + 8v₀ + 7v₁ + 1.5a₀ − a₁
	c4 := sum(ops.Mul(d, -15), ops.Mul(v0, 8), ops.Mul(v1, 7), ops.Mul(a0, 1.5), ops.Mul(a1, -1))
	// c₅ = 6d − 3v₀ − 3v₁ − 0.5a₀ + 0.5a₁
	c5 := sum(ops.Mul(d, 6), ops.Mul(v0, -3), ops.Mul(v1, -3), ops.Mul(a0, -0.5), ops.Mul(a1, 0.5))
	return Polynomial[P, D]{
		ops:    ops,
		origin: p0,
		coeffs: []D{v0, ops.Mul(a0, 0.5), c3, c4, c5},
	}
}

// Bezier returns the cubic polynomial of the Bézier curve with control points
// p0, p1, p2 and p3.
func Bezier[P, D any](ops Operations[P, D], p0, p1, p2, p3 P) Polynomial[P, D] {
	c1 := ops.Mul(ops.Sub(p1, p0), 3)
	c2 := SubDiff(ops, ops.Mul(ops.Sub(p2, p1), 3), c1)
	c3 := SubDiff(ops, SubDiff(ops, ops.Sub(p3, p0), c1), c2)
	return Polynomial[P, D]{
		ops:    ops,
		origin: p0,
		coeffs: []D{c1, c2, c3},
	}
}
