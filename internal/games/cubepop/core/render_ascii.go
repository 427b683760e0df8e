package core

import (
	"fmt"
	"strings"
)

// RenderASCII lays out a snapshot as one text block per z layer.
// This is used for debugging, tests and the show command.
//
// Format:
//   - Header with status and move counters
//   - One "z=N" block per layer, rows are y (top row is the highest y),
//     columns are x
//   - Occupied cells show the color letter, empty cells '.'
func RenderASCII(sn Snapshot) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d | Status: %s | Moves: %d left, %d used | Blocks: %d\n",
		sn.Size, sn.Status, sn.MovesLeft, sn.MovesUsed, len(sn.Blocks)))

	sb.WriteString("Palette:")
	for i, c := range sn.Palette {
		sb.WriteString(fmt.Sprintf(" %d=%c", i+1, c.Char()))
	}
	sb.WriteString("\n")

	cells := sn.Cells()
	for z := 0; z < sn.Size; z++ {
		sb.WriteString(fmt.Sprintf("z=%d\n", z))
		sb.WriteString(RenderLayer(cells, sn.Size, z))
	}
	return sb.String()
}

// RenderLayer renders a single z layer, one line per row.
func RenderLayer(cells map[Pos]Color, size, z int) string {
	var sb strings.Builder
	for y := size - 1; y >= 0; y-- {
		for x := 0; x < size; x++ {
			if c, ok := cells[P(x, y, z)]; ok {
				sb.WriteRune(c.Char())
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
