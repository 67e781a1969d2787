// internal/utils/math.go
package utils

import "math"

// Lerp performs plain linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	return NormalizeAngle(from + NormalizeAngle(to-from)*t)
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// PositiveAngle wraps an angle into [0, 2π).
func PositiveAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleBetween returns the signed angle that takes direction `from` onto direction `to`,
// both given as atan2 headings.
func AngleBetween(toX, toY, fromX, fromY float64) float64 {
	return NormalizeAngle(math.Atan2(toY, toX) - math.Atan2(fromY, fromX))
}

func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// ClampMagnitude limits |v| to max while keeping its sign.
func ClampMagnitude(v, max float64) float64 {
	if math.Abs(v) > max {
		return Sign(v) * max
	}
	return v
}
