// Package blueprint models the game's blueprint exchange format.
//
// A blueprint is a JSON document describing placed entities, wrapped in a
// portable text envelope for copy/paste transfer:
//
//	"0" + base64(deflate(canonical JSON))
//
// This package defines the document types, the envelope codec
// ([Encode], [Decode]), and file export helpers. Field declaration order
// on the structs matters: it fixes the key order of the canonical JSON,
// which is part of the interchange contract.
package blueprint

import "github.com/factorykit/furnaceline/pkg/geom"

// =============================================================================
// Constants - Exchange Format Contract
// =============================================================================

const (
	// ItemBlueprint is the fixed item-kind marker of a blueprint document.
	ItemBlueprint = "blueprint"

	// FormatVersion is the blueprint format version emitted by this tool.
	FormatVersion = 0

	// EnvelopeVersion is the single version character prepended to the
	// base64 payload of an exchange string.
	EnvelopeVersion = '0'
)

// =============================================================================
// Document Types
// =============================================================================

// Document is the top-level blueprint exchange document.
type Document struct {
	Blueprint Blueprint `json:"blueprint"`
}

// Blueprint is the body of a blueprint document: an ordered set of placed
// entities plus display metadata. Entity order is significant only in that
// it determines entity numbers.
type Blueprint struct {
	Label    string   `json:"label"`
	Item     string   `json:"item"`
	Version  int      `json:"version"`
	Entities []Entity `json:"entities"`
	Icons    []Icon   `json:"icons"`
	Metadata Metadata `json:"metadata"`
}

// Entity is one placed game object. Entities are value objects: after
// entity numbers are assigned they are never mutated, only rebuilt.
type Entity struct {
	Name         string          `json:"name"`
	Position     Position        `json:"position"`
	Direction    *geom.Direction `json:"direction,omitempty"`
	EntityNumber int             `json:"entity_number,omitempty"`
}

// Position is a 2D position on the unit grid. Canonical layouts place
// entities on integer coordinates; rotation may make them negative but
// keeps them on the same lattice.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Icon is a blueprint icon reference.
type Icon struct {
	Signal Signal `json:"signal"`
	Index  int    `json:"index"`
}

// Signal identifies the item shown by an icon.
type Signal struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Metadata echoes the resolved generation settings alongside the standard
// schema for round-trip convenience. It is additive data, not part of the
// game's blueprint schema.
type Metadata struct {
	InputSide    string `json:"input_side"`
	OutputSide   string `json:"output_side"`
	Belt         string `json:"belt"`
	FurnaceCount int    `json:"furnace_count"`
}

// =============================================================================
// Entity Operations
// =============================================================================

// NewEntity creates an oriented entity at (x, y).
func NewEntity(name string, x, y float64, direction geom.Direction) Entity {
	d := direction
	return Entity{Name: name, Position: Position{X: x, Y: y}, Direction: &d}
}

// Rotate returns a copy of the entity rotated by steps quarter turns
// counter-clockwise about the origin. The position is always rotated;
// the direction only if the entity has one.
func (e Entity) Rotate(steps int) Entity {
	rotated := e
	rotated.Position.X, rotated.Position.Y = geom.RotatePoint(e.Position.X, e.Position.Y, steps)
	if e.Direction != nil {
		d := e.Direction.Rotate(steps)
		rotated.Direction = &d
	}
	return rotated
}

// Number assigns 1-based entity numbers in slice order. It mutates the
// slice in place and returns it for chaining; call it once, after all
// placement and rotation is finished.
func Number(entities []Entity) []Entity {
	for i := range entities {
		entities[i].EntityNumber = i + 1
	}
	return entities
}
