package spline

import (
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"
)

// Integration selects the quadrature rule used for arc lengths.
type Integration int

const (
	// Simpson uses the composite Simpson's rule. It is the default and gives
	// the best accuracy per evaluation for the smooth integrands of polynomial
	// segments.
	Simpson Integration = iota
	// Trapezoid uses the composite trapezoidal rule. It is cheaper per
	// section but less accurate.
	Trapezoid
	// GaussLegendre uses fixed-order Gauss-Legendre quadrature, with the
	// section count as the number of nodes.
	GaussLegendre
)

func (m Integration) String() string {
	switch m {
	case Simpson:
		return "simpson"
	case Trapezoid:
		return "trapezoid"
	case GaussLegendre:
		return "gauss-legendre"
	default:
		return fmt.Sprintf("Integration(%d)", int(m))
	}
}

// Integrate integrates f over [a, b] using the given method and number of
// sections. sections must be at least 1.
func Integrate(m Integration, f func(float64) float64, a, b float64, sections int) float64 {
	switch m {
	case Simpson:
		return IntegrateSimpson(f, a, b, sections)
	case Trapezoid:
		return IntegrateTrapezoid(f, a, b, sections)
	case GaussLegendre:
		checkSections(sections)
		switch {
		case a == b:
			return 0
		case a > b:
			return -quad.Fixed(f, b, a, sections, quad.Legendre{}, 0)
		default:
			return quad.Fixed(f, a, b, sections, quad.Legendre{}, 0)
		}
	default:
		panic(fmt.Sprintf("unhandled integration method %d", int(m)))
	}
}

// IntegrateSimpson integrates f over [a, b] with the composite Simpson's rule.
//
// Each of the sections is split in two, so f is evaluated 2·sections+1 times.
func IntegrateSimpson(f func(float64) float64, a, b float64, sections int) float64 {
	checkSections(sections)
	n := 2 * sections
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3
}

// IntegrateTrapezoid integrates f over [a, b] with the composite trapezoidal
// rule, evaluating f sections+1 times.
func IntegrateTrapezoid(f func(float64) float64, a, b float64, sections int) float64 {
	checkSections(sections)
	h := (b - a) / float64(sections)
	sum := 0.5 * (f(a) + f(b))
	for i := 1; i < sections; i++ {
		sum += f(a + float64(i)*h)
	}
	return sum * h
}

func checkSections(sections int) {
	if sections < 1 {
		panic(fmt.Sprintf("number of sections must be at least 1, got %d", sections))
	}
}
