package geom

import "github.com/factorykit/furnaceline/pkg/errors"

// =============================================================================
// Side - Cardinal Attachment Side
// =============================================================================

// Side is a cardinal side of a layout, used to express where material
// enters and leaves a furnace line.
type Side string

// Cardinal sides in canonical rotation order.
const (
	SideNorth Side = "north"
	SideEast  Side = "east"
	SideSouth Side = "south"
	SideWest  Side = "west"
)

// rotationOrder is the cyclic order a canonical layout steps through as it
// is rotated counter-clockwise. The index of a side in this order is the
// number of quarter turns that bring north onto it.
var rotationOrder = []Side{SideNorth, SideEast, SideSouth, SideWest}

// opposites maps each side to its geometric opposite.
var opposites = map[Side]Side{
	SideNorth: SideSouth,
	SideSouth: SideNorth,
	SideEast:  SideWest,
	SideWest:  SideEast,
}

// ParseSide validates a side name and returns it as a Side.
func ParseSide(s string) (Side, error) {
	side := Side(s)
	if !side.Valid() {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"unknown side %q (must be one of: north, east, south, west)", s)
	}
	return side, nil
}

// Valid reports whether s is one of the four cardinal sides.
func (s Side) Valid() bool {
	_, ok := opposites[s]
	return ok
}

// Opposite returns the geometrically opposite side.
// Calling Opposite on an invalid side returns the empty side.
func (s Side) Opposite() Side {
	return opposites[s]
}

// RotationSteps returns the number of 90° counter-clockwise steps that
// rotate a north-oriented canonical layout so its input faces s.
// Invalid sides return 0.
func (s Side) RotationSteps() int {
	for i, side := range rotationOrder {
		if side == s {
			return i
		}
	}
	return 0
}

// String returns the side name.
func (s Side) String() string { return string(s) }
