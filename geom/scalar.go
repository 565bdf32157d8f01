package geom

import (
	"math"

	"honnef.co/go/spline"
)

var _ spline.Operations[float64, float64] = Scalar{}
var _ spline.Distancer[float64] = Scalar{}

// Scalar is the algebra of the real line.
type Scalar struct{}

func (Scalar) Add(p, d float64) float64 { return p + d }
func (Scalar) Sub(a, b float64) float64 { return a - b }
func (Scalar) AddDiff(a, b float64) float64 { return a + b }
func (Scalar) SubDiff(a, b float64) float64 { return a - b }
func (Scalar) Mul(d, f float64) float64 { return d * f }
func (Scalar) Div(d, f float64) float64 { return d / f }
func (Scalar) Dot(a, b float64) float64 { return a * b }
func (Scalar) Distance(a, b float64) float64 { return math.Abs(a - b) }
