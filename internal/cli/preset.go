package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/factorykit/furnaceline/pkg/pipeline"
)

// preset is the TOML file shape for reusable line configurations:
//
//	label = "Iron smelter"
//	furnace = "steel-furnace"
//	belt = "fast-transport-belt"
//	length = 24
//	input_side = "west"
//	output_side = "east"
//
// All fields are optional; omitted fields keep their defaults.
type preset struct {
	Furnace    string `toml:"furnace"`
	Belt       string `toml:"belt"`
	Length     int    `toml:"length"`
	InputSide  string `toml:"input_side"`
	OutputSide string `toml:"output_side"`
	Label      string `toml:"label"`
}

// applyPreset loads a TOML preset file into the pipeline options. Flags
// set explicitly on the command line win over preset values, so a preset
// can serve as a base configuration.
func applyPreset(cmd *cobra.Command, path string, opts *pipeline.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset %s: %w", path, err)
	}

	var p preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parse preset %s: %w", path, err)
	}

	flags := cmd.Flags()
	if p.Furnace != "" && !flags.Changed("furnace") {
		opts.Furnace = p.Furnace
	}
	if p.Belt != "" && !flags.Changed("belt") {
		opts.Belt = p.Belt
	}
	if p.Length != 0 && !flags.Changed("length") {
		opts.Length = p.Length
	}
	if p.InputSide != "" && !flags.Changed("input-side") {
		opts.InputSide = p.InputSide
	}
	if p.OutputSide != "" && !flags.Changed("output-side") {
		opts.OutputSide = p.OutputSide
	}
	if p.Label != "" && !flags.Changed("label") {
		opts.Label = p.Label
	}
	return nil
}
