package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubepop/internal/games/cubepop/core"
)

var (
	flagShowSize   int
	flagShowColors int
	flagShowPlain  bool
	flagShowRotate []string
	flagShowOnly   string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a generated cube",
	Long: `Generate a cube from a seed and print it one z layer at a time, top row
first. The layout hash identifies the cube: the same seed, size and colors
always print the same hash.

Examples:
  cubepop show --seed demo
  cubepop show --seed demo --size 3 --colors 3
  cubepop show --seed demo --plain
  cubepop show --seed demo --rotate y:0 --rotate x:2:-1
  cubepop show --seed demo --only red`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagShowSize, "size", 5, "Cube edge length")
	showCmd.Flags().IntVar(&flagShowColors, "colors", 5, "Palette size")
	showCmd.Flags().BoolVar(&flagShowPlain, "plain", false, "Print color letters instead of colored blocks")
	showCmd.Flags().StringArrayVar(&flagShowRotate, "rotate", nil, "Rotate a slice before printing, as axis:coord[:turns] (repeatable)")
	showCmd.Flags().StringVar(&flagShowOnly, "only", "", "Print only blocks of this color (name or letter)")
}

func runShow(_ *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == "" {
		seed = core.DefaultGenParams().Seed
	}
	p := core.GenParams{Size: flagShowSize, Colors: flagShowColors, Seed: seed, MoveLimit: len(flagShowRotate) + 1}

	s, err := core.NewSession(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, ref := range flagShowRotate {
		if err := rotateSlice(s, ref); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	sn := s.Snapshot()
	hash, state := sn.LayoutHash(), sn.Hash()

	if flagShowOnly != "" {
		c, ok := core.ParseColor(flagShowOnly)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown color %q\n", flagShowOnly)
			os.Exit(1)
		}
		sn = sn.Only(c)
	}

	if flagShowPlain {
		fmt.Print(core.RenderASCII(sn))
	} else {
		fmt.Print(renderColored(sn))
	}
	fmt.Printf("Layout hash: %016x | State hash: %016x\n", hash, state)
}

// rotateSlice turns the slice named by ref ("axis:coord[:turns]").
// An empty slice is left alone.
func rotateSlice(s *core.Session, ref string) error {
	slice, err := core.ParseSlice(ref)
	if err != nil {
		return err
	}
	for _, b := range s.Blocks() {
		if b.Pos.Component(slice.Axis) == slice.Coord {
			out := s.Dispatch(core.PickBlock(b.ID), core.RotateTurns(slice.Axis, slice.Turns))
			return out.Err
		}
	}
	return nil
}

// swatch paints two cells in the block's color.
func swatch(c core.Color) string {
	return color.HEX(fmt.Sprintf("%06X", c.Hex())).Sprint("██")
}

func renderColored(sn core.Snapshot) string {
	var b strings.Builder
	dim := color.Style{color.FgGray}

	fmt.Fprintf(&b, "Seed %q | %d³ | %d blocks\n", sn.Seed, sn.Size, len(sn.Blocks))
	b.WriteString("Palette:")
	for i, c := range sn.Palette {
		fmt.Fprintf(&b, " %d=%s %s", i+1, swatch(c), c)
	}
	b.WriteString("\n\n")

	cells := sn.Cells()
	for z := sn.Size - 1; z >= 0; z-- {
		b.WriteString(dim.Sprintf("z=%d", z))
		b.WriteString("\n")
		for y := sn.Size - 1; y >= 0; y-- {
			for x := 0; x < sn.Size; x++ {
				if c, ok := cells[core.P(x, y, z)]; ok {
					b.WriteString(swatch(c))
				} else {
					b.WriteString(dim.Sprint("· "))
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
