package line

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/factorykit/furnaceline/pkg/blueprint"
	"github.com/factorykit/furnaceline/pkg/errors"
	"github.com/factorykit/furnaceline/pkg/geom"
)

func validConfig() Config {
	return Config{
		Furnace:    StoneFurnace,
		Belt:       TransportBelt,
		InputSide:  geom.SideNorth,
		OutputSide: geom.SideSouth,
		Label:      "Test line",
	}
}

func TestBuildEntityCount(t *testing.T) {
	for _, length := range []int{1, 5, 48, 200} {
		cfg := validConfig()
		cfg.Length = length

		doc, err := Build(cfg)
		require.NoError(t, err)

		want := 6*length + 3
		require.Len(t, doc.Blueprint.Entities, want, "length %d", length)
		require.Equal(t, length, doc.Blueprint.Metadata.FurnaceCount)
	}
}

func TestBuildEntityNumbersContiguous(t *testing.T) {
	cfg := validConfig()
	cfg.Length = 7

	doc, err := Build(cfg)
	require.NoError(t, err)

	seen := map[int]bool{}
	for i, e := range doc.Blueprint.Entities {
		require.Equal(t, i+1, e.EntityNumber, "numbers follow final order")
		require.False(t, seen[e.EntityNumber], "duplicate entity number %d", e.EntityNumber)
		seen[e.EntityNumber] = true
	}
}

func TestBuildCanonicalPlacement(t *testing.T) {
	cfg := validConfig()
	cfg.Length = 2

	doc, err := Build(cfg)
	require.NoError(t, err)
	entities := doc.Blueprint.Entities

	north := geom.DirectionNorth
	east := geom.DirectionEast
	south := geom.DirectionSouth

	// Block order: 2 furnaces, 4 input belts, 4 output belts, 2 input
	// inserters, 2 output inserters, 3 coal-merge belts.
	want := []blueprint.Entity{
		{Name: "stone-furnace", Position: blueprint.Position{X: 0, Y: 0}, Direction: &north},
		{Name: "stone-furnace", Position: blueprint.Position{X: 2, Y: 0}, Direction: &north},
		{Name: "transport-belt", Position: blueprint.Position{X: 0, Y: -3}, Direction: &east},
		{Name: "transport-belt", Position: blueprint.Position{X: 1, Y: -3}, Direction: &east},
		{Name: "transport-belt", Position: blueprint.Position{X: 2, Y: -3}, Direction: &east},
		{Name: "transport-belt", Position: blueprint.Position{X: 3, Y: -3}, Direction: &east},
		{Name: "transport-belt", Position: blueprint.Position{X: 0, Y: 3}, Direction: &east},
		{Name: "transport-belt", Position: blueprint.Position{X: 1, Y: 3}, Direction: &east},
		{Name: "transport-belt", Position: blueprint.Position{X: 2, Y: 3}, Direction: &east},
		{Name: "transport-belt", Position: blueprint.Position{X: 3, Y: 3}, Direction: &east},
		{Name: "inserter", Position: blueprint.Position{X: 0, Y: -2}, Direction: &south},
		{Name: "inserter", Position: blueprint.Position{X: 2, Y: -2}, Direction: &south},
		{Name: "inserter", Position: blueprint.Position{X: 0, Y: 2}, Direction: &south},
		{Name: "inserter", Position: blueprint.Position{X: 2, Y: 2}, Direction: &south},
		{Name: "transport-belt", Position: blueprint.Position{X: -1, Y: -5}, Direction: &north},
		{Name: "transport-belt", Position: blueprint.Position{X: -1, Y: -4}, Direction: &north},
		{Name: "transport-belt", Position: blueprint.Position{X: -1, Y: -3}, Direction: &east},
	}

	require.Len(t, entities, len(want))
	for i, w := range want {
		got := entities[i]
		require.Equal(t, w.Name, got.Name, "entity %d name", i)
		require.Equal(t, w.Position, got.Position, "entity %d position", i)
		require.NotNil(t, got.Direction, "entity %d direction", i)
		require.Equal(t, *w.Direction, *got.Direction, "entity %d direction", i)
		require.Equal(t, i+1, got.EntityNumber, "entity %d number", i)
	}
}

func TestBuildRotationMatchesKernel(t *testing.T) {
	// Generating with input from the east must equal generating the
	// canonical north layout and rotating every entity by one step.
	base := validConfig()
	base.Length = 4

	northDoc, err := Build(base)
	require.NoError(t, err)

	east := base
	east.InputSide = geom.SideEast
	east.OutputSide = geom.SideWest
	eastDoc, err := Build(east)
	require.NoError(t, err)

	require.Len(t, eastDoc.Blueprint.Entities, len(northDoc.Blueprint.Entities))
	for i, n := range northDoc.Blueprint.Entities {
		rotated := n.Rotate(1)
		e := eastDoc.Blueprint.Entities[i]
		require.Equal(t, rotated.Position, e.Position, "entity %d position", i)
		require.Equal(t, *rotated.Direction, *e.Direction, "entity %d direction", i)
		require.Equal(t, n.EntityNumber, e.EntityNumber, "entity %d number", i)
	}
}

func TestBuildPositionsStayOnLattice(t *testing.T) {
	for _, input := range []geom.Side{geom.SideNorth, geom.SideEast, geom.SideSouth, geom.SideWest} {
		cfg := validConfig()
		cfg.Length = 3
		cfg.InputSide = input
		cfg.OutputSide = input.Opposite()

		doc, err := Build(cfg)
		require.NoError(t, err)

		for _, e := range doc.Blueprint.Entities {
			require.Equal(t, float64(int(e.Position.X)), e.Position.X, "x off lattice: %+v", e)
			require.Equal(t, float64(int(e.Position.Y)), e.Position.Y, "y off lattice: %+v", e)
		}
	}
}

func TestBuildRejectsNonOppositeSides(t *testing.T) {
	tests := []struct {
		input, output geom.Side
	}{
		{geom.SideNorth, geom.SideEast},
		{geom.SideNorth, geom.SideNorth},
		{geom.SideEast, geom.SideNorth},
		{geom.SideEast, geom.SideEast},
		{geom.SideSouth, geom.SideWest},
		{geom.SideWest, geom.SideWest},
	}

	for _, tt := range tests {
		cfg := validConfig()
		cfg.InputSide = tt.input
		cfg.OutputSide = tt.output

		doc, err := Build(cfg)
		require.Nil(t, doc, "(%s, %s) must not produce a document", tt.input, tt.output)
		require.True(t, errors.Is(err, errors.ErrCodeInvalidSides),
			"(%s, %s) error code = %v, want INVALID_SIDES", tt.input, tt.output, errors.GetCode(err))
	}
}

func TestBuildRejectsUnknownTypes(t *testing.T) {
	cfg := validConfig()
	cfg.Furnace = "lava-furnace"
	_, err := Build(cfg)
	require.True(t, errors.Is(err, errors.ErrCodeUnknownFurnace))

	cfg = validConfig()
	cfg.Belt = "teleport-belt"
	_, err = Build(cfg)
	require.True(t, errors.Is(err, errors.ErrCodeUnknownBelt))
}

func TestBuildDocumentShape(t *testing.T) {
	cfg := validConfig()
	cfg.Length = 5
	cfg.InputSide = geom.SideWest
	cfg.OutputSide = geom.SideEast

	doc, err := Build(cfg)
	require.NoError(t, err)

	bp := doc.Blueprint
	require.Equal(t, "Test line", bp.Label)
	require.Equal(t, blueprint.ItemBlueprint, bp.Item)
	require.Equal(t, blueprint.FormatVersion, bp.Version)

	require.Len(t, bp.Icons, 1)
	require.Equal(t, blueprint.Signal{Type: "item", Name: "stone-furnace"}, bp.Icons[0].Signal)
	require.Equal(t, 1, bp.Icons[0].Index)

	require.Equal(t, blueprint.Metadata{
		InputSide:    "west",
		OutputSide:   "east",
		Belt:         "transport-belt",
		FurnaceCount: 5,
	}, bp.Metadata)
}

func TestBuildDefaultLabel(t *testing.T) {
	cfg := validConfig()
	cfg.Label = ""
	doc, err := Build(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultLabel, doc.Blueprint.Label)
}
