package geom

import "honnef.co/go/spline"

var _ spline.Operations[struct{}, struct{}] = Nil{}

// Nil is the algebra of a zero-dimensional space, which has a single position
// and a single displacement. Every distance and length in it is zero.
type Nil struct{}

func (Nil) Add(struct{}, struct{}) struct{} { return struct{}{} }
func (Nil) Sub(struct{}, struct{}) struct{} { return struct{}{} }
func (Nil) AddDiff(struct{}, struct{}) struct{} { return struct{}{} }
func (Nil) Mul(struct{}, float64) struct{} { return struct{}{} }
func (Nil) Dot(struct{}, struct{}) float64 { return 0 }
