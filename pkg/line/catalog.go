// Package line computes single-row furnace line layouts.
//
// A furnace line is the classic early-game smelting array: one row of
// furnaces, an input belt feeding them through inserters, an output belt
// collecting through a second inserter row, and a short coal-merge lane
// turning a perpendicular fuel feed onto the input belt.
//
// The package is split into three concerns: catalogs of supported
// furnace and belt types, a throughput-driven sizing calculator, and the
// layout builder that places entities and rotates the whole line to the
// requested orientation. Generation is a pure function of a [Config];
// nothing is shared between calls.
package line

import (
	"slices"

	"github.com/factorykit/furnaceline/pkg/errors"
)

// =============================================================================
// Catalogs - Supported Game Entities
// =============================================================================

// FurnaceType identifies a supported furnace entity.
type FurnaceType string

// Supported furnace types.
const (
	StoneFurnace    FurnaceType = "stone-furnace"
	SteelFurnace    FurnaceType = "steel-furnace"
	ElectricFurnace FurnaceType = "electric-furnace"
)

// BeltType identifies a supported transport belt entity.
type BeltType string

// Supported belt types.
const (
	TransportBelt        BeltType = "transport-belt"
	FastTransportBelt    BeltType = "fast-transport-belt"
	ExpressTransportBelt BeltType = "express-transport-belt"
)

// inserterName is the entity name of the plain inserter used on both the
// input and output rows.
const inserterName = "inserter"

// furnaceSpeed maps each furnace type to its crafting speed multiplier.
var furnaceSpeed = map[FurnaceType]float64{
	StoneFurnace:    1.0,
	SteelFurnace:    2.0,
	ElectricFurnace: 2.0,
}

// beltThroughput maps each belt type to its capacity in items per second.
var beltThroughput = map[BeltType]float64{
	TransportBelt:        15.0,
	FastTransportBelt:    30.0,
	ExpressTransportBelt: 45.0,
}

// ParseFurnaceType validates a furnace type name.
// Unknown names fail with ErrCodeUnknownFurnace; there is no default.
func ParseFurnaceType(name string) (FurnaceType, error) {
	ft := FurnaceType(name)
	if _, ok := furnaceSpeed[ft]; !ok {
		return "", errors.New(errors.ErrCodeUnknownFurnace, "unknown furnace type: %q", name)
	}
	return ft, nil
}

// ParseBeltType validates a belt type name.
// Unknown names fail with ErrCodeUnknownBelt; there is no default.
func ParseBeltType(name string) (BeltType, error) {
	bt := BeltType(name)
	if _, ok := beltThroughput[bt]; !ok {
		return "", errors.New(errors.ErrCodeUnknownBelt, "unknown belt type: %q", name)
	}
	return bt, nil
}

// Speed returns the furnace's crafting speed multiplier.
func (f FurnaceType) Speed() (float64, error) {
	speed, ok := furnaceSpeed[f]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownFurnace, "unknown furnace type: %q", string(f))
	}
	return speed, nil
}

// Throughput returns the belt's capacity in items per second.
func (b BeltType) Throughput() (float64, error) {
	rate, ok := beltThroughput[b]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownBelt, "unknown belt type: %q", string(b))
	}
	return rate, nil
}

// FurnaceTypes returns the supported furnace type names, sorted.
func FurnaceTypes() []string {
	names := make([]string, 0, len(furnaceSpeed))
	for ft := range furnaceSpeed {
		names = append(names, string(ft))
	}
	slices.Sort(names)
	return names
}

// BeltTypes returns the supported belt type names, sorted.
func BeltTypes() []string {
	names := make([]string, 0, len(beltThroughput))
	for bt := range beltThroughput {
		names = append(names, string(bt))
	}
	slices.Sort(names)
	return names
}
