package mathutil

import "math"

// Rotation returns the 3×3 rotation by a radians about axis.
func Rotation(axis Axis, a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	switch axis {
	case AxisX:
		return Mat3{
			1, 0, 0,
			0, c, -s,
			0, s, c,
		}
	case AxisY:
		return Mat3{
			c, 0, s,
			0, 1, 0,
			-s, 0, c,
		}
	}
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// UpToZ returns the rotation that stands a model authored with up along
// the given axis upright in a Z-up scene.
func UpToZ(up Axis) Mat3 {
	switch up {
	case AxisX:
		return Rotation(AxisY, -math.Pi/2)
	case AxisY:
		return Rotation(AxisX, math.Pi/2)
	}
	return Mat3Identity()
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
