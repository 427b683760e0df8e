package core

import (
	"fmt"
	"hash/fnv"
)

// Snapshot is a copy of a session's observable state. It holds slices, so
// compare snapshots through Hash or LayoutHash.
type Snapshot struct {
	Size      int
	Seed      string
	Palette   Palette
	Status    Status
	MovesLeft int
	MovesUsed int
	Rotation  RotationState
	Blocks    []Block // Sorted by id
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Size:      s.params.Size,
		Seed:      s.params.Seed,
		Palette:   append(Palette(nil), s.palette...),
		Status:    s.status,
		MovesLeft: s.movesLeft,
		MovesUsed: s.movesUsed,
		Rotation:  s.rotation,
		Blocks:    s.reg.Blocks(),
	}
}

// Only returns a copy of the snapshot holding just the blocks of color c.
func (sn Snapshot) Only(c Color) Snapshot {
	out := sn
	out.Blocks = nil
	for _, b := range sn.Blocks {
		if b.Color == c {
			out.Blocks = append(out.Blocks, b)
		}
	}
	return out
}

// Cells returns the color at every occupied position.
func (sn Snapshot) Cells() map[Pos]Color {
	cells := make(map[Pos]Color, len(sn.Blocks))
	for _, b := range sn.Blocks {
		cells[b.Pos] = b.Color
	}
	return cells
}

// LayoutHash hashes the color of every lattice cell in x, y, z order.
// Two grids with the same layout hash equally regardless of block ids.
func (sn Snapshot) LayoutHash() uint64 {
	h := fnv.New64a()
	cells := sn.Cells()
	fmt.Fprintf(h, "N:%d;", sn.Size)
	for x := 0; x < sn.Size; x++ {
		for y := 0; y < sn.Size; y++ {
			for z := 0; z < sn.Size; z++ {
				if c, ok := cells[P(x, y, z)]; ok {
					fmt.Fprintf(h, "%d,", c)
				} else {
					h.Write([]byte("-,"))
				}
			}
		}
	}
	return h.Sum64()
}

// Hash returns a hash of the full state, including ids, counters and status.
func (sn Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "L:%d;", sn.LayoutHash())
	fmt.Fprintf(h, "P:")
	for _, c := range sn.Palette {
		fmt.Fprintf(h, "%d,", c)
	}
	fmt.Fprintf(h, ";B:")
	for _, b := range sn.Blocks {
		fmt.Fprintf(h, "%d:%d:%d:%d:%d,", b.ID, b.Pos.X, b.Pos.Y, b.Pos.Z, b.Color)
	}
	fmt.Fprintf(h, ";M:%d:%d;S:%d;R:%d", sn.MovesLeft, sn.MovesUsed, sn.Status, sn.Rotation)
	return h.Sum64()
}
