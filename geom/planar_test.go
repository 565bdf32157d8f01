package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(2, 1), Pt(0, 0).Lerp(Pt(4, 2), 0.5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVecArithmetic(t *testing.T) {
	a, b := Vec(1, 2), Vec(3, -1)
	diff(t, Vec(4, 1), a.Add(b))
	diff(t, Vec(-2, 3), a.Sub(b))
	diff(t, Vec(2, 4), a.Mul(2))
	diff(t, Vec(0.5, 1), a.Div(2))
	diff(t, 1.0, a.Dot(b))
	diff(t, 5.0, Vec(3, 4).Hypot())
}

func TestPlanar(t *testing.T) {
	var ops Planar
	p, q := Pt(1, 1), Pt(4, 5)
	diff(t, Vec(3, 4), ops.Sub(q, p))
	diff(t, q, ops.Add(p, ops.Sub(q, p)))
	diff(t, 5.0, ops.Distance(p, q))
	diff(t, Pt(2.5, 3), ops.Lerp(p, q, 0.5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 25.0, ops.Dot(ops.Sub(q, p), ops.Sub(q, p)))
}

func TestString(t *testing.T) {
	diff(t, "(1, -2.5)", Pt(1, -2.5).String())
	diff(t, "⟨0.5, 3⟩", Vec(0.5, 3).String())
}
