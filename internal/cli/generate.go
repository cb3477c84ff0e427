package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/factorykit/furnaceline/pkg/blueprint"
	"github.com/factorykit/furnaceline/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output string // output file path (default: stdout)
	preset string // TOML preset file with line options
	asJSON bool   // emit the structured document instead of the exchange string
	verify bool   // decode the emitted string and check the round trip
}

// generateCommand creates the generate command, the main entry point of the
// tool. It sizes the line, builds the layout, and emits either the encoded
// exchange string (default) or the structured blueprint JSON.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts
	popts := pipeline.Options{
		Furnace:    pipeline.DefaultFurnace,
		Belt:       pipeline.DefaultBelt,
		InputSide:  pipeline.DefaultInputSide,
		OutputSide: pipeline.DefaultOutputSide,
		Label:      pipeline.DefaultLabel,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a furnace line blueprint string",
		Long: `Generate a furnace line blueprint string.

The line is sized to saturate one belt of the configured type unless an
explicit --length is given. Input and output sides must be geometric
opposites; the layout is rotated so material enters from the requested
input side.

By default the encoded exchange string is printed to stdout. Use --json
for the structured blueprint document, and --output to write to a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.preset != "" {
				if err := applyPreset(cmd, opts.preset, &popts); err != nil {
					return err
				}
			}
			return c.runGenerate(&popts, &opts)
		},
	}

	cmd.Flags().StringVar(&popts.Furnace, "furnace", popts.Furnace, "furnace type: stone-furnace (default), steel-furnace, electric-furnace")
	cmd.Flags().StringVar(&popts.Belt, "belt", popts.Belt, "belt type: transport-belt (default), fast-transport-belt, express-transport-belt")
	cmd.Flags().IntVar(&popts.Length, "length", 0, "explicit furnace count (default: size from belt throughput)")
	cmd.Flags().StringVar(&popts.InputSide, "input-side", popts.InputSide, "side material enters from: north (default), east, south, west")
	cmd.Flags().StringVar(&popts.OutputSide, "output-side", popts.OutputSide, "side material leaves to (must be opposite the input side)")
	cmd.Flags().StringVar(&popts.Label, "label", popts.Label, "blueprint label")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "TOML preset file with line options")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "output the structured blueprint JSON instead of the encoded string")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "decode the emitted string and verify the round trip")

	return cmd
}

// runGenerate executes the pipeline and writes the requested output form.
func (c *CLI) runGenerate(popts *pipeline.Options, opts *generateOpts) error {
	popts.Logger = c.Logger
	runner := c.newRunner()

	result, err := runner.Execute(*popts)
	if err != nil {
		return err
	}

	if opts.verify {
		if err := verifyRoundTrip(result.Document, result.Exchange); err != nil {
			return fmt.Errorf("round-trip verification: %w", err)
		}
		c.Logger.Debug("round trip verified", "chars", len(result.Exchange))
	}

	if err := writeOutput(result, opts); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Blueprint written")
		printFile(opts.output)
		printStats(result.Stats.FurnaceCount, result.Stats.EntityCount, result.Stats.EncodedBytes)
	}
	return nil
}

// writeOutput emits either the exchange string or the structured document,
// to stdout or to the configured file.
func writeOutput(result *pipeline.Result, opts *generateOpts) error {
	if opts.asJSON {
		if opts.output != "" {
			return blueprint.ExportDocument(result.Document, opts.output)
		}
		return blueprint.WriteDocument(result.Document, os.Stdout)
	}

	if opts.output != "" {
		return blueprint.ExportExchange(result.Exchange, opts.output)
	}
	fmt.Println(result.Exchange)
	return nil
}

// verifyRoundTrip decodes the exchange string and checks that it
// reproduces the structured document exactly (compared as canonical JSON).
func verifyRoundTrip(doc *blueprint.Document, exchange string) error {
	decoded, err := blueprint.Decode(exchange)
	if err != nil {
		return err
	}

	want, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	got, err := json.Marshal(decoded)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, got) {
		return fmt.Errorf("decoded document differs from generated document")
	}
	return nil
}
