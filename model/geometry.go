package model

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Heading returns the unit vector for an angle in radians.
func Heading(angle float64) orb.Point {
	return orb.Point{math.Cos(angle), math.Sin(angle)}
}

// Offset moves p by dist along the given heading.
func Offset(p orb.Point, angle, dist float64) orb.Point {
	h := Heading(angle)
	return orb.Point{p[0] + h[0]*dist, p[1] + h[1]*dist}
}

func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}
