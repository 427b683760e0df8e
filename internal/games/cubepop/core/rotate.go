package core

import (
	"fmt"
	"sort"
)

// Quarter turns follow the right-hand rule about the positive axis.
// In centered coordinates a positive quarter turn maps
//
//	about X: (y, z) -> (-z, y)
//	about Y: (z, x) -> (-x, z)
//	about Z: (x, y) -> (-y, x)
//
// On the lattice, with n the cube size, negation is n-1-v, so every turn is
// exact integer arithmetic and repeated rotations cannot drift.

// Move records one block relocated by a rotation.
type Move struct {
	ID   BlockID
	From Pos
	To   Pos
}

// Rotation describes a committed slice rotation.
type Rotation struct {
	Axis  Axis
	Coord int
	Turns int    // Normalized to 0..3
	Moves []Move // Sorted by block id
}

// MovedIDs returns the ids of the rotated blocks.
func (rot Rotation) MovedIDs() []BlockID {
	ids := make([]BlockID, len(rot.Moves))
	for i, m := range rot.Moves {
		ids[i] = m.ID
	}
	return ids
}

// NormalizeTurns maps any quarter-turn count to 0..3.
// Negative counts turn the other way.
func NormalizeTurns(turns int) int {
	turns %= 4
	if turns < 0 {
		turns += 4
	}
	return turns
}

// RotatePos applies turns quarter turns about axis to p in a cube of the given size.
func RotatePos(p Pos, axis Axis, turns, size int) Pos {
	last := size - 1
	for i := 0; i < NormalizeTurns(turns); i++ {
		switch axis {
		case AxisX:
			p.Y, p.Z = last-p.Z, p.Y
		case AxisY:
			p.Z, p.X = last-p.X, p.Z
		case AxisZ:
			p.X, p.Y = last-p.Y, p.X
		}
	}
	return p
}

// Slice returns the live blocks whose component along axis equals coord,
// sorted by id. Gaps left by earlier pops make partial slices.
func Slice(r *Registry, axis Axis, coord int) []Block {
	var out []Block
	for _, b := range r.blocks {
		if b.Pos.Component(axis) == coord {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RotateSlice turns the slice at coord along axis by turns quarter turns.
// All target positions are computed and validated before the registry is
// touched, then committed in one batch. An empty slice is a no-op.
func RotateSlice(r *Registry, axis Axis, coord, turns int) (Rotation, error) {
	if !axis.Valid() {
		return Rotation{}, fmt.Errorf("rotate: unknown axis %d", axis)
	}

	rot := Rotation{Axis: axis, Coord: coord, Turns: NormalizeTurns(turns)}
	slice := Slice(r, axis, coord)
	if len(slice) == 0 {
		return rot, nil
	}

	rot.Moves = make([]Move, 0, len(slice))
	moves := make(map[BlockID]Pos, len(slice))
	for _, b := range slice {
		to := RotatePos(b.Pos, axis, rot.Turns, r.size)
		rot.Moves = append(rot.Moves, Move{ID: b.ID, From: b.Pos, To: to})
		moves[b.ID] = to
	}

	if rot.Turns == 0 {
		return rot, nil
	}
	if err := r.Move(moves); err != nil {
		return Rotation{}, fmt.Errorf("rotate %s slice %d: %w", axis, coord, err)
	}
	return rot, nil
}
