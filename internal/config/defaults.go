package config

import (
	_ "embed"
)

//go:embed defaults/cubepop.yaml
var defaultCubePopYAML []byte

// DefaultCubePopConfig returns the hardcoded CubePop configuration.
// It matches defaults/cubepop.yaml and is used when the embedded file cannot be parsed.
func DefaultCubePopConfig() CubePopConfig {
	return CubePopConfig{
		Grid: GridConfig{
			Size:      5,
			Colors:    5,
			MoveLimit: 60,
		},
		Rotation: RotationConfig{
			Ticks: 6,
		},
		Scoring: ScoringConfig{
			PointsPerBlock: 10,
			RegionBonus:    5,
		},
		Rules: RulesConfig{
			ChargeNoopMoves: true,
		},
	}
}
