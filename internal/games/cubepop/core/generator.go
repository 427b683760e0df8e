package core

import (
	"fmt"
	"hash/fnv"
)

// Generation limits.
const (
	MinSize      = 1
	MaxSize      = 20
	MinMoveLimit = 1
)

// GenParams is a grid generation request.
type GenParams struct {
	Size      int    // Cube edge length (1-20)
	Colors    int    // Palette size (2-7)
	Seed      string // Any string; same seed gives the same grid
	MoveLimit int    // Moves available to the player (>= 1)
}

// DefaultGenParams returns the parameters of a standard game.
func DefaultGenParams() GenParams {
	return GenParams{
		Size:      5,
		Colors:    5,
		Seed:      "cubepop",
		MoveLimit: 40,
	}
}

// Validate checks the request against the generation limits.
func (p GenParams) Validate() error {
	if p.Size < MinSize || p.Size > MaxSize {
		return fmt.Errorf("%w: size %d not in %d..%d", ErrInvalidParams, p.Size, MinSize, MaxSize)
	}
	if p.Colors < MinColors || p.Colors > MaxColors {
		return fmt.Errorf("%w: colors %d not in %d..%d", ErrInvalidParams, p.Colors, MinColors, MaxColors)
	}
	if p.MoveLimit < MinMoveLimit {
		return fmt.Errorf("%w: move limit %d below %d", ErrInvalidParams, p.MoveLimit, MinMoveLimit)
	}
	return nil
}

// SeedFromString hashes a seed string into an RNG seed (FNV-1a 64).
func SeedFromString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &SimpleRNG{state: seed}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// SelectPalette draws n distinct colors from the superset.
// The draw is a partial Fisher-Yates shuffle, so the order is part of the result.
func SelectPalette(rng *SimpleRNG, n int) Palette {
	all := AllColors()
	if n > len(all) {
		n = len(all)
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(all)-i)
		all[i], all[j] = all[j], all[i]
	}
	return Palette(all[:n])
}

// Generate builds a fully populated cube from p.
// Cells are filled in x, y, z nesting order from a single RNG stream,
// so the layout depends only on (seed, size, colors).
func Generate(p GenParams) (*Registry, Palette, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	rng := NewRNG(SeedFromString(p.Seed))
	palette := SelectPalette(rng, p.Colors)
	reg := NewRegistry(p.Size)

	for x := 0; x < p.Size; x++ {
		for y := 0; y < p.Size; y++ {
			for z := 0; z < p.Size; z++ {
				c := palette[rng.Intn(len(palette))]
				if _, err := reg.Create(P(x, y, z), c); err != nil {
					return nil, nil, fmt.Errorf("generate: %w", err)
				}
			}
		}
	}
	return reg, palette, nil
}
