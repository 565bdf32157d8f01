// Package geom provides algebras for use with package spline: the plane
// ([Planar]), three-dimensional space ([Space], [SpaceTime]), the real line
// ([Scalar]) and a zero-dimensional space ([Nil]).
package geom
