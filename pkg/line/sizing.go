package line

import "math"

// =============================================================================
// Sizing - Throughput-Driven Line Length
// =============================================================================

const (
	// SmeltingTime is the simulated smelting time in seconds per item,
	// fixed for all furnace types; only the speed multiplier varies
	// effective throughput.
	SmeltingTime = 3.2

	// MinFurnaces is the shortest supported line.
	MinFurnaces = 1

	// MaxFurnaces is the longest supported line.
	MaxFurnaces = 200
)

// ClampLength clamps a requested line length to [MinFurnaces, MaxFurnaces].
func ClampLength(length int) int {
	return max(MinFurnaces, min(length, MaxFurnaces))
}

// FurnacesPerFullBelt returns the number of furnaces of the given type
// needed to exactly saturate one belt of the given type. The result is
// fractional; callers round for placement.
func FurnacesPerFullBelt(furnace FurnaceType, belt BeltType) (float64, error) {
	beltRate, err := belt.Throughput()
	if err != nil {
		return 0, err
	}
	speed, err := furnace.Speed()
	if err != nil {
		return 0, err
	}
	furnaceRate := speed / SmeltingTime
	return beltRate / furnaceRate, nil
}

// FurnaceCount resolves how many furnaces the line should have.
//
// An explicit length in the config wins over the throughput model: user
// intent beats the computed recommendation. Otherwise the count needed to
// saturate the belt is rounded to the nearest integer (ties away from
// zero). Either path is clamped to [MinFurnaces, MaxFurnaces].
func FurnaceCount(cfg Config) (int, error) {
	if cfg.Length > 0 {
		return ClampLength(cfg.Length), nil
	}

	needed, err := FurnacesPerFullBelt(cfg.Furnace, cfg.Belt)
	if err != nil {
		return 0, err
	}
	return ClampLength(int(math.Round(needed))), nil
}
