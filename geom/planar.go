package geom

import (
	"fmt"
	"math"

	"honnef.co/go/spline"
)

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) String() string { return fmt.Sprintf("(%g, %g)", pt.X, pt.Y) }

// Translate moves pt by d.
func (pt Point) Translate(d Vec2) Point { return Point{X: pt.X + d.X, Y: pt.Y + d.Y} }

// Sub returns the displacement from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y} }

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point { return pt.Translate(o.Sub(pt).Mul(t)) }

// Distance returns the euclidean distance between pt and o.
func (pt Point) Distance(o Point) float64 { return pt.Sub(o).Hypot() }

// Vec2 is a displacement in the plane.
type Vec2 struct {
	X, Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }
func (v Vec2) Div(f float64) Vec2 { return Vec2{X: v.X / f, Y: v.Y / f} }

var _ spline.Operations[Point, Vec2] = Planar{}
var _ spline.Distancer[Point] = Planar{}
var _ spline.Lerper[Point] = Planar{}
var _ spline.DiffSubtracter[Vec2] = Planar{}
var _ spline.Divider[Vec2] = Planar{}

// Planar is the algebra of [Point] and [Vec2].
type Planar struct{}

func (Planar) Add(p Point, d Vec2) Point { return p.Translate(d) }
func (Planar) Sub(a, b Point) Vec2 { return a.Sub(b) }
func (Planar) AddDiff(a, b Vec2) Vec2 { return a.Add(b) }
func (Planar) SubDiff(a, b Vec2) Vec2 { return a.Sub(b) }
func (Planar) Mul(d Vec2, f float64) Vec2 { return d.Mul(f) }
func (Planar) Div(d Vec2, f float64) Vec2 { return d.Div(f) }
func (Planar) Dot(a, b Vec2) float64 { return a.Dot(b) }
func (Planar) Distance(a, b Point) float64 { return a.Distance(b) }
func (Planar) Lerp(a, b Point, t float64) Point { return a.Lerp(b, t) }
