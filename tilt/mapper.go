// Package tilt maps raw 2-axis accelerometer readings onto the
// instrument's 8 angular sectors.
package tilt

import "math"

// DeadZone is the minimum tilt magnitude, in raw sensor counts, below
// which a sample is treated as neutral.
const DeadZone = 100

// Buckets is the number of 45°-wide sectors a full rotation is split into.
const Buckets = 8

// Sample is one raw accelerometer reading in signed 16-bit sensor counts.
type Sample struct {
	X, Y int16
}

// Point is the musical reading of a Sample: which sector the tilt falls
// in and how hard it leans. Silent means the sample is inside the dead
// zone and carries no pitch or velocity.
type Point struct {
	Bucket   int
	Velocity uint8
	Silent   bool
}

// Map converts a raw sample into a Point. Pure function of the inputs
// and the dead-zone constant.
//
// The dead-zone check runs before any angle math, so the degenerate
// (0,0) sample never reaches atan2.
func Map(s Sample) Point {
	x := float64(s.X)
	y := float64(s.Y)
	magnitude := math.Sqrt(x*x + y*y)
	if magnitude < DeadZone {
		return Point{Silent: true}
	}

	angle := math.Atan2(y, x) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	// Mod guards the angle == 360 float edge.
	bucket := int(angle/360*Buckets) % Buckets

	v := math.Round((magnitude - DeadZone) / 32767 * 127)
	if v < 0 {
		v = 0
	}
	if v > 127 {
		v = 127
	}
	return Point{Bucket: bucket, Velocity: uint8(v)}
}
