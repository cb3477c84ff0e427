// Package geom provides the grid geometry used by furnace line layouts.
//
// Blueprints live on a unit grid with eight discrete orientations. This
// package implements exact quarter-turn rotation for both points and
// orientations so that rotating a whole layout never introduces
// floating-point drift: every quarter turn is a sign flip and/or a
// coordinate swap, nothing more.
//
// # Rotation Model
//
// A rotation is expressed as a number of 90° counter-clockwise steps.
// Steps are normalized modulo 4, so any integer (including negatives)
// is accepted:
//
//	x, y := geom.RotatePoint(2, 0, 1)  // (0, -2)
//	d := geom.DirectionEast.Rotate(1)  // geom.DirectionSouth
//
// Point and direction rotation stay consistent under the same step count,
// which is what allows a layout to be built once in a canonical
// orientation and rotated as a unit.
package geom

// =============================================================================
// Point Rotation
// =============================================================================

// RotatePoint rotates the point (x, y) by steps quarter turns
// counter-clockwise about the origin. Steps are normalized modulo 4, so
// negative and out-of-range values are accepted.
//
// The four cases are closed-form sign/swap identities, so rotating by any
// multiple of 4 steps returns the input exactly.
func RotatePoint(x, y float64, steps int) (float64, float64) {
	switch normalizeSteps(steps) {
	case 1:
		return y, -x
	case 2:
		return -x, -y
	case 3:
		return -y, x
	default:
		return x, y
	}
}

// normalizeSteps reduces a step count to [0, 3]. Go's % operator keeps the
// sign of the dividend, so negative inputs need the extra +4.
func normalizeSteps(steps int) int {
	return (steps%4 + 4) % 4
}

// =============================================================================
// Direction - Discrete Orientation
// =============================================================================

// Direction is a discrete orientation in 45° increments: 0 = north,
// 2 = east, 4 = south, 6 = west. Odd values are the diagonals; the furnace
// line only produces axis-aligned directions, but rotation preserves
// diagonals generically.
type Direction int

// Axis-aligned directions.
const (
	DirectionNorth Direction = 0
	DirectionEast  Direction = 2
	DirectionSouth Direction = 4
	DirectionWest  Direction = 6
)

// directionCount is the number of discrete orientation values.
const directionCount = 8

// Rotate returns the direction turned by steps quarter turns
// counter-clockwise. One quarter turn advances the direction by two 45°
// increments, matching [RotatePoint] under the same step count.
func (d Direction) Rotate(steps int) Direction {
	r := (int(d) + 2*steps) % directionCount
	if r < 0 {
		r += directionCount
	}
	return Direction(r)
}

// Valid reports whether d is one of the eight discrete orientations.
func (d Direction) Valid() bool {
	return d >= 0 && d < directionCount
}
