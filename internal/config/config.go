// Package config provides YAML-based game configuration loading and
// difficulty presets for CubePop.
package config

// CubePopConfig contains all configuration for the CubePop game.
type CubePopConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Rotation RotationConfig `yaml:"rotation"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Rules    RulesConfig    `yaml:"rules"`
}

// GridConfig defines how new puzzles are generated.
type GridConfig struct {
	Size      int    `yaml:"size"`       // Cube edge length (1-20)
	Colors    int    `yaml:"colors"`     // Palette size (2-7)
	MoveLimit int    `yaml:"move_limit"` // Moves per puzzle
	Seed      string `yaml:"seed"`       // Fixed seed; empty picks a fresh one per game
}

// RotationConfig controls the rotation animation window.
type RotationConfig struct {
	Ticks int `yaml:"ticks"` // Ticks a rotation blocks further rotations
}

// ScoringConfig defines points awarded for popping.
type ScoringConfig struct {
	PointsPerBlock int `yaml:"points_per_block"`
	RegionBonus    int `yaml:"region_bonus"` // Extra points per block beyond the first in one pop
}

// RulesConfig holds rule variants.
type RulesConfig struct {
	// ChargeNoopMoves makes actions that change nothing still cost a move.
	ChargeNoopMoves bool `yaml:"charge_noop_moves"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Use the config file as-is
)

// ParsePreset converts a flag value into a preset.
// An empty string means DifficultyFixed.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyFixed, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return DifficultyFixed, false
	}
}
