package main

import (
	"math"
	"math/rand"
)

// randFloat returns a uniform random float64 in [0, 1)
func randFloat() float64 {
	return rand.Float64()
}

// Distance returns the distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSq returns the squared distance between two points
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// round1 rounds to one decimal place to keep snapshots compact
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
