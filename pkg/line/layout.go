package line

import (
	"github.com/factorykit/furnaceline/pkg/blueprint"
	"github.com/factorykit/furnaceline/pkg/errors"
	"github.com/factorykit/furnaceline/pkg/geom"
)

// =============================================================================
// Config - Generation Input
// =============================================================================

// DefaultLabel is the blueprint label used when none is configured.
const DefaultLabel = "Furnace line"

// Config describes one furnace line. It is constructed once from caller
// input and never mutated; every generation call builds fresh entities.
type Config struct {
	// Furnace is the furnace entity type to place.
	Furnace FurnaceType

	// Belt is the belt entity type for the input, output, and coal lanes.
	Belt BeltType

	// Length is an explicit furnace count. Zero means derive the count
	// from the throughput model; positive values override it (clamped to
	// the supported range).
	Length int

	// InputSide is the side material enters from. OutputSide must be its
	// geometric opposite.
	InputSide  geom.Side
	OutputSide geom.Side

	// Label is the human-readable blueprint label.
	Label string
}

// Validate checks the side combination. Input and output must be
// geometric opposites; anything else is an error, never a silent fallback.
func (c Config) Validate() error {
	if !c.InputSide.Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "unknown input side: %q", string(c.InputSide))
	}
	if !c.OutputSide.Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "unknown output side: %q", string(c.OutputSide))
	}
	if c.InputSide.Opposite() != c.OutputSide {
		return errors.New(errors.ErrCodeInvalidSides,
			"output side must be opposite the input side for the furnace line layout (input %s, output %s)",
			c.InputSide, c.OutputSide)
	}
	return nil
}

// =============================================================================
// Layout Builder
// =============================================================================

// Canonical layout offsets, in grid units from the furnace row. The
// canonical orientation is input-from-north, output-to-south; the whole
// entity set is rotated afterwards to match the configured sides.
const (
	inputBeltY      = -3.0
	outputBeltY     = 3.0
	inputInserterY  = -2.0
	outputInserterY = 2.0
	furnaceSpacing  = 2
)

// Build generates the blueprint document for the configured furnace line.
//
// It resolves the furnace count, validates the side combination, places
// all entities in the canonical north→south orientation, rotates the
// entire set to the requested input side, and assigns entity numbers in
// final order. On any error no document is produced.
func Build(cfg Config) (*blueprint.Document, error) {
	count, err := FurnaceCount(cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	steps := cfg.InputSide.RotationSteps()

	// Block order is fixed: it determines entity numbering.
	entities := make([]blueprint.Entity, 0, entityCount(count))
	entities = append(entities, furnaceRow(count, cfg.Furnace)...)
	entities = append(entities, beltRow(count, cfg.Belt, inputBeltY)...)
	entities = append(entities, beltRow(count, cfg.Belt, outputBeltY)...)
	entities = append(entities, inserterRow(count, inputInserterY)...)
	entities = append(entities, inserterRow(count, outputInserterY)...)
	entities = append(entities, coalMerge(cfg.Belt)...)

	for i := range entities {
		entities[i] = entities[i].Rotate(steps)
	}
	blueprint.Number(entities)

	label := cfg.Label
	if label == "" {
		label = DefaultLabel
	}

	return &blueprint.Document{
		Blueprint: blueprint.Blueprint{
			Label:    label,
			Item:     blueprint.ItemBlueprint,
			Version:  blueprint.FormatVersion,
			Entities: entities,
			Icons: []blueprint.Icon{
				{Signal: blueprint.Signal{Type: "item", Name: string(cfg.Furnace)}, Index: 1},
			},
			Metadata: blueprint.Metadata{
				InputSide:    cfg.InputSide.String(),
				OutputSide:   cfg.OutputSide.String(),
				Belt:         string(cfg.Belt),
				FurnaceCount: count,
			},
		},
	}, nil
}

// entityCount is the total number of entities a line of count furnaces
// produces: the furnace row, two belt rows of 2·count segments, two
// inserter rows, and the three coal-merge segments.
func entityCount(count int) int {
	return 6*count + 3
}

// furnaceRow places count furnaces at (2i, 0), all facing north.
func furnaceRow(count int, furnace FurnaceType) []blueprint.Entity {
	entities := make([]blueprint.Entity, 0, count)
	for i := 0; i < count; i++ {
		entities = append(entities,
			blueprint.NewEntity(string(furnace), float64(i*furnaceSpacing), 0, geom.DirectionNorth))
	}
	return entities
}

// beltRow places a continuous east-flowing belt lane spanning the furnace
// row at the given y offset.
func beltRow(count int, belt BeltType, y float64) []blueprint.Entity {
	entities := make([]blueprint.Entity, 0, count*2)
	for i := 0; i < count*2; i++ {
		entities = append(entities,
			blueprint.NewEntity(string(belt), float64(i), y, geom.DirectionEast))
	}
	return entities
}

// inserterRow places one south-facing inserter per furnace at the given
// y offset. South-facing inserters pull from the input belt into the
// furnaces (y<0) and push furnace output onto the output belt (y>0).
func inserterRow(count int, y float64) []blueprint.Entity {
	entities := make([]blueprint.Entity, 0, count)
	for i := 0; i < count; i++ {
		entities = append(entities,
			blueprint.NewEntity(inserterName, float64(i*furnaceSpacing), y, geom.DirectionSouth))
	}
	return entities
}

// coalMerge places the short merge lane that turns a perpendicular coal
// feed onto the input belt: two north-flowing segments joining an
// east-flowing corner at the west end of the input lane.
func coalMerge(belt BeltType) []blueprint.Entity {
	return []blueprint.Entity{
		blueprint.NewEntity(string(belt), -1, -5, geom.DirectionNorth),
		blueprint.NewEntity(string(belt), -1, -4, geom.DirectionNorth),
		blueprint.NewEntity(string(belt), -1, -3, geom.DirectionEast),
	}
}
