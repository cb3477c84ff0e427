package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/factorykit/furnaceline/pkg/pipeline"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "line.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestApplyPreset(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.generateCommand()

	path := writePreset(t, `
label = "Iron smelter"
furnace = "steel-furnace"
belt = "fast-transport-belt"
length = 24
input_side = "west"
output_side = "east"
`)

	opts := pipeline.Options{}
	if err := applyPreset(cmd, path, &opts); err != nil {
		t.Fatalf("applyPreset error: %v", err)
	}

	if opts.Furnace != "steel-furnace" || opts.Belt != "fast-transport-belt" {
		t.Errorf("preset types not applied: %+v", opts)
	}
	if opts.Length != 24 {
		t.Errorf("Length = %d, want 24", opts.Length)
	}
	if opts.InputSide != "west" || opts.OutputSide != "east" {
		t.Errorf("preset sides not applied: %+v", opts)
	}
	if opts.Label != "Iron smelter" {
		t.Errorf("Label = %q, want %q", opts.Label, "Iron smelter")
	}
}

func TestApplyPresetFlagsWin(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.generateCommand()
	if err := cmd.Flags().Set("furnace", "electric-furnace"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	path := writePreset(t, `furnace = "steel-furnace"`+"\n"+`belt = "fast-transport-belt"`)

	opts := pipeline.Options{Furnace: "electric-furnace"}
	if err := applyPreset(cmd, path, &opts); err != nil {
		t.Fatalf("applyPreset error: %v", err)
	}

	// The explicitly set flag wins; the untouched field takes the preset value.
	if opts.Furnace != "electric-furnace" {
		t.Errorf("explicit flag overridden by preset: %q", opts.Furnace)
	}
	if opts.Belt != "fast-transport-belt" {
		t.Errorf("preset belt not applied: %q", opts.Belt)
	}
}

func TestApplyPresetPartial(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.generateCommand()

	path := writePreset(t, `length = 10`)

	opts := pipeline.Options{Furnace: pipeline.DefaultFurnace}
	if err := applyPreset(cmd, path, &opts); err != nil {
		t.Fatalf("applyPreset error: %v", err)
	}

	if opts.Length != 10 {
		t.Errorf("Length = %d, want 10", opts.Length)
	}
	if opts.Furnace != pipeline.DefaultFurnace {
		t.Errorf("omitted preset field changed Furnace to %q", opts.Furnace)
	}
}

func TestApplyPresetErrors(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.generateCommand()

	opts := pipeline.Options{}
	if err := applyPreset(cmd, filepath.Join(t.TempDir(), "missing.toml"), &opts); err == nil {
		t.Error("missing preset file should fail")
	}

	path := writePreset(t, `length = "not a number"`)
	if err := applyPreset(cmd, path, &opts); err == nil {
		t.Error("malformed preset should fail")
	}
}
