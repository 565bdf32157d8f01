package geom

import (
	"time"

	"github.com/golang/geo/r3"

	"honnef.co/go/spline"
)

var _ spline.Operations[r3.Vector, r3.Vector] = Space{}
var _ spline.Distancer[r3.Vector] = Space{}
var _ spline.DiffSubtracter[r3.Vector] = Space{}
var _ spline.Offsetter[r3.Vector, r3.Vector] = Space{}
var _ spline.TimedOperations[r3.Vector, r3.Vector, time.Duration, r3.Vector] = SpaceTime{}

// Space is the algebra of three-dimensional euclidean space, using
// [r3.Vector] for both positions and displacements.
type Space struct{}

func (Space) Add(p, d r3.Vector) r3.Vector { return p.Add(d) }
func (Space) Sub(a, b r3.Vector) r3.Vector { return a.Sub(b) }
func (Space) AddDiff(a, b r3.Vector) r3.Vector { return a.Add(b) }
func (Space) SubDiff(a, b r3.Vector) r3.Vector { return a.Sub(b) }
func (Space) Offset(p, d r3.Vector) r3.Vector { return p.Sub(d) }
func (Space) Mul(d r3.Vector, f float64) r3.Vector { return d.Mul(f) }
func (Space) Dot(a, b r3.Vector) float64 { return a.Dot(b) }
func (Space) Distance(a, b r3.Vector) float64 { return a.Distance(b) }

// SpaceTime is [Space] traversed over time. Time is measured as a
// [time.Duration] and velocities are in units per second.
type SpaceTime struct {
	Space
}

func (SpaceTime) Ratio(a, b time.Duration) float64 {
	return float64(a) / float64(b)
}

func (SpaceTime) Velocity(d r3.Vector, over time.Duration) r3.Vector {
	return d.Mul(1 / over.Seconds())
}

func (SpaceTime) Displacement(v r3.Vector, over time.Duration) r3.Vector {
	return v.Mul(over.Seconds())
}
