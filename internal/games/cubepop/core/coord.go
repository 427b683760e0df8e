// Package core provides the puzzle logic for CubePop: the block registry,
// its spatial index, region popping, slice rotation and the session state machine.
// This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is an integer lattice coordinate inside the cube.
// Each component runs from 0 to size-1.
type Pos struct {
	X int
	Y int
	Z int
}

// P is a convenience constructor for Pos.
func P(x, y, z int) Pos {
	return Pos{X: x, Y: y, Z: z}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Add returns a new Pos offset by (dx, dy, dz).
func (p Pos) Add(dx, dy, dz int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// InBounds reports whether p lies inside a cube of the given size.
func (p Pos) InBounds(size int) bool {
	return p.X >= 0 && p.X < size &&
		p.Y >= 0 && p.Y < size &&
		p.Z >= 0 && p.Z < size
}

// Less orders positions by x, then y, then z.
func (p Pos) Less(o Pos) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.Z < o.Z
}

// offsets6 lists the six orthogonal neighbor offsets in a fixed order.
var offsets6 = [6]Pos{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// Adjacent returns the six orthogonally adjacent positions of p.
// The result may contain positions outside the cube.
func (p Pos) Adjacent() [6]Pos {
	var out [6]Pos
	for i, o := range offsets6 {
		out[i] = p.Add(o.X, o.Y, o.Z)
	}
	return out
}

// Axis identifies one of the three cube axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Valid reports whether a names a real axis.
func (a Axis) Valid() bool {
	return a <= AxisZ
}

// ParseAxis converts "x", "y" or "z" (any case) to an Axis.
func ParseAxis(s string) (Axis, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	case "z":
		return AxisZ, true
	default:
		return AxisX, false
	}
}

// SliceRef names a slice and how far to turn it.
type SliceRef struct {
	Axis  Axis
	Coord int
	Turns int
}

// ParseSlice parses "axis:coord" or "axis:coord:turns", e.g. "y:2" or "x:0:-1".
// Turns default to one quarter turn.
func ParseSlice(s string) (SliceRef, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return SliceRef{}, fmt.Errorf("slice %q: want axis:coord[:turns]", s)
	}
	axis, ok := ParseAxis(parts[0])
	if !ok {
		return SliceRef{}, fmt.Errorf("slice %q: unknown axis %q", s, parts[0])
	}
	coord, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return SliceRef{}, fmt.Errorf("slice %q: bad coordinate: %w", s, err)
	}
	ref := SliceRef{Axis: axis, Coord: coord, Turns: 1}
	if len(parts) == 3 {
		if ref.Turns, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return SliceRef{}, fmt.Errorf("slice %q: bad turns: %w", s, err)
		}
	}
	return ref, nil
}

// Component returns the coordinate of p along axis a.
func (p Pos) Component(a Axis) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}
