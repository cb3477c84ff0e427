// Package pipeline provides the core generation pipeline for furnaceline.
//
// This package implements the size → layout → encode pipeline behind the
// CLI. By centralizing this logic, any entry point (CLI, a wrapping
// server) gets identical behavior from the same options struct.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: resolve the furnace count and place the rotated entity layout
//  2. Encode: wrap the document in the portable exchange envelope
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Furnace:    "steel-furnace",
//	    Belt:       "fast-transport-belt",
//	    InputSide:  "west",
//	    OutputSide: "east",
//	}
//	result, err := runner.Execute(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Exchange)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/factorykit/furnaceline/pkg/errors"
	"github.com/factorykit/furnaceline/pkg/geom"
	"github.com/factorykit/furnaceline/pkg/line"
)

// =============================================================================
// Default Values - Single Source of Truth for All Entry Points
// =============================================================================

const (
	// DefaultFurnace is the furnace type used when none is configured.
	DefaultFurnace = string(line.StoneFurnace)

	// DefaultBelt is the belt type used when none is configured.
	DefaultBelt = string(line.TransportBelt)

	// DefaultInputSide is the side material enters from by default.
	DefaultInputSide = string(geom.SideNorth)

	// DefaultOutputSide is the side material leaves to by default.
	DefaultOutputSide = string(geom.SideSouth)

	// DefaultLabel is the default blueprint label.
	DefaultLabel = line.DefaultLabel
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for non-CLI entry points.
type Options struct {
	// Line options
	Furnace    string `json:"furnace,omitempty"`
	Belt       string `json:"belt,omitempty"`
	Length     int    `json:"length,omitempty"` // 0 = size from throughput
	InputSide  string `json:"input_side,omitempty"`
	OutputSide string `json:"output_side,omitempty"`
	Label      string `json:"label,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults applies defaults and resolves the typed line
// config. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Furnace == "" {
		o.Furnace = DefaultFurnace
	}
	if o.Belt == "" {
		o.Belt = DefaultBelt
	}
	if o.InputSide == "" {
		o.InputSide = DefaultInputSide
	}
	if o.OutputSide == "" {
		o.OutputSide = DefaultOutputSide
	}
	if o.Label == "" {
		o.Label = DefaultLabel
	}
	if o.Length < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "length must be positive, got %d", o.Length)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	// Fail fast on identifiers and sides; the builder re-checks the side
	// combination, but unknown names should never reach it.
	if _, err := line.ParseFurnaceType(o.Furnace); err != nil {
		return err
	}
	if _, err := line.ParseBeltType(o.Belt); err != nil {
		return err
	}
	if _, err := geom.ParseSide(o.InputSide); err != nil {
		return err
	}
	if _, err := geom.ParseSide(o.OutputSide); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// LineConfig converts the options into the immutable line configuration.
// Call ValidateAndSetDefaults first; unvalidated options produce a config
// with whatever raw values the caller set.
func (o *Options) LineConfig() line.Config {
	return line.Config{
		Furnace:    line.FurnaceType(o.Furnace),
		Belt:       line.BeltType(o.Belt),
		Length:     o.Length,
		InputSide:  geom.Side(o.InputSide),
		OutputSide: geom.Side(o.OutputSide),
		Label:      o.Label,
	}
}
