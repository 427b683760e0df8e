package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cubepop/internal/games/cubepop/core"
)

func TestRotatePosQuarterTurn(t *testing.T) {
	tests := []struct {
		name string
		p    core.Pos
		axis core.Axis
		want core.Pos
	}{
		// (y, z) -> (-z, y)
		{"x corner", core.P(1, 0, 0), core.AxisX, core.P(1, 2, 0)},
		{"x edge", core.P(0, 2, 0), core.AxisX, core.P(0, 2, 2)},
		// (z, x) -> (-x, z)
		{"y corner", core.P(0, 1, 0), core.AxisY, core.P(0, 1, 2)},
		{"y edge", core.P(0, 1, 2), core.AxisY, core.P(2, 1, 2)},
		// (x, y) -> (-y, x)
		{"z corner", core.P(0, 0, 1), core.AxisZ, core.P(2, 0, 1)},
		{"z edge", core.P(2, 0, 1), core.AxisZ, core.P(2, 2, 1)},
		{"center is fixed", core.P(1, 1, 1), core.AxisY, core.P(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.RotatePos(tt.p, tt.axis, 1, 3)
			if got != tt.want {
				t.Errorf("RotatePos(%s, %s) = %s, expected %s", tt.p, tt.axis, got, tt.want)
			}
		})
	}
}

// centered returns p relative to the cube center, doubled so it stays integral.
func centered(p core.Pos, size int) [3]int {
	return [3]int{2*p.X - (size - 1), 2*p.Y - (size - 1), 2*p.Z - (size - 1)}
}

func TestRotatePosMatchesCenteredRule(t *testing.T) {
	const size = 4
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				p := core.P(x, y, z)
				c := centered(p, size)

				gotX := centered(core.RotatePos(p, core.AxisX, 1, size), size)
				assert.Equal(t, [3]int{c[0], -c[2], c[1]}, gotX)

				gotY := centered(core.RotatePos(p, core.AxisY, 1, size), size)
				assert.Equal(t, [3]int{c[2], c[1], -c[0]}, gotY)

				gotZ := centered(core.RotatePos(p, core.AxisZ, 1, size), size)
				assert.Equal(t, [3]int{-c[1], c[0], c[2]}, gotZ)
			}
		}
	}
}

func TestRotatePosInverseAndHalfTurn(t *testing.T) {
	p := core.P(0, 1, 3)
	for _, axis := range []core.Axis{core.AxisX, core.AxisY, core.AxisZ} {
		once := core.RotatePos(p, axis, 1, 5)
		assert.Equal(t, p, core.RotatePos(once, axis, -1, 5))
		assert.Equal(t, core.RotatePos(once, axis, 1, 5), core.RotatePos(p, axis, 2, 5))
		assert.Equal(t, p, core.RotatePos(p, axis, 4, 5))
	}
	assert.Equal(t, 3, core.NormalizeTurns(-1))
	assert.Equal(t, 2, core.NormalizeTurns(6))
}

func TestRotateSliceFourTimesIsIdentity(t *testing.T) {
	r, _, err := core.Generate(core.GenParams{Size: 4, Colors: 4, Seed: "spin", MoveLimit: 1})
	require.NoError(t, err)
	before := r.Blocks()

	for _, axis := range []core.Axis{core.AxisX, core.AxisY, core.AxisZ} {
		for coord := 0; coord < 4; coord++ {
			for i := 0; i < 4; i++ {
				rot, err := core.RotateSlice(r, axis, coord, 1)
				require.NoError(t, err)
				assert.Len(t, rot.Moves, 16)
				require.NoError(t, r.CheckConsistency())
			}
		}
	}

	assert.Equal(t, before, r.Blocks())
}

func TestRotateSliceMovesOnlyTheSlice(t *testing.T) {
	r, _, err := core.Generate(core.GenParams{Size: 3, Colors: 3, Seed: "slice", MoveLimit: 1})
	require.NoError(t, err)
	before := make(map[core.BlockID]core.Block)
	for _, b := range r.Blocks() {
		before[b.ID] = b
	}

	rot, err := core.RotateSlice(r, core.AxisY, 2, 1)
	require.NoError(t, err)
	require.Len(t, rot.Moves, 9)

	moved := make(map[core.BlockID]bool)
	for _, m := range rot.Moves {
		moved[m.ID] = true
		assert.Equal(t, 2, m.From.Y)
		assert.Equal(t, 2, m.To.Y)
		got, _ := r.Get(m.ID)
		assert.Equal(t, m.To, got.Pos)
		assert.Equal(t, before[m.ID].Color, got.Color, "rotation keeps colors")
	}
	for _, b := range r.Blocks() {
		if !moved[b.ID] {
			assert.Equal(t, before[b.ID].Pos, b.Pos)
		}
	}
}

func TestRotatePartialSlices(t *testing.T) {
	r, _, err := core.Generate(core.GenParams{Size: 4, Colors: 2, Seed: "gaps", MoveLimit: 1})
	require.NoError(t, err)

	// Punch holes with a few pops
	for _, p := range []core.Pos{core.P(0, 0, 0), core.P(3, 1, 2), core.P(1, 2, 3)} {
		if b, ok := r.At(p); ok {
			core.PopRegion(r, b.ID)
		}
	}
	require.Less(t, r.Len(), 64)
	count := r.Len()

	for i := 0; i < 3; i++ {
		for _, axis := range []core.Axis{core.AxisX, core.AxisY, core.AxisZ} {
			for coord := 0; coord < 4; coord++ {
				_, err := core.RotateSlice(r, axis, coord, i+1)
				require.NoError(t, err)
				require.NoError(t, r.CheckConsistency())
			}
		}
	}
	assert.Equal(t, count, r.Len())
}

func TestRotateEmptySliceIsNoop(t *testing.T) {
	r := core.NewRegistry(3)
	id, err := r.Create(core.P(0, 0, 0), core.ColorRed)
	require.NoError(t, err)

	rot, err := core.RotateSlice(r, core.AxisX, 2, 1)
	require.NoError(t, err)
	assert.Empty(t, rot.Moves)
	assert.Empty(t, rot.MovedIDs())

	b, _ := r.Get(id)
	assert.Equal(t, core.P(0, 0, 0), b.Pos)
}

func TestRotateSliceUnknownAxis(t *testing.T) {
	r := core.NewRegistry(2)
	_, err := core.RotateSlice(r, core.Axis(9), 0, 1)
	assert.Error(t, err)
}
