package cubepop

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/cubepop/internal/core"
	"github.com/vovakirdan/cubepop/internal/games/cubepop/core"
)

// blockColor maps a puzzle color to a screen color.
func blockColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorCoral
	case core.ColorOrange:
		return platformcore.ColorOrange
	case core.ColorYellow:
		return platformcore.ColorGold
	case core.ColorGreen:
		return platformcore.ColorMint
	case core.ColorBlue:
		return platformcore.ColorSky
	case core.ColorPurple:
		return platformcore.ColorViolet
	case core.ColorPink:
		return platformcore.ColorPink
	default:
		return platformcore.ColorWhite
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.loadErr != nil {
		g.renderOverlay(dst, "Cannot start puzzle", g.loadErr.Error())
		return
	}
	if g.session == nil {
		return
	}

	size := g.session.Size()
	if dst.Width() < size*cellW+4+legendW || dst.Height() < hudHeight+size+4 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderLayer(dst, size)
	g.renderLegend(dst, size)

	switch {
	case g.clearTicks > 0:
		g.renderOverlay(dst, "Level cleared!", fmt.Sprintf("Next: %s", g.campaign[g.levelIndex].Name))
	case g.won:
		if g.mode == ModeCampaign {
			g.renderOverlay(dst, "Campaign complete!", fmt.Sprintf("Score %d | R to play again", g.score))
		} else {
			g.renderOverlay(dst, "Cube cleared!", fmt.Sprintf("Score %d | R for a new cube", g.score))
		}
	case g.gameOver:
		g.renderOverlay(dst, "Out of moves", fmt.Sprintf("%d blocks left | R to retry", g.session.Remaining()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if g.session != nil {
		p := g.session.Params()
		hud += fmt.Sprintf(" | Score: %d | Moves: %d/%d | Blocks: %d | Layer z=%d/%d",
			g.score, g.session.MovesLeft(), p.MoveLimit, g.session.Remaining(), g.cursor.Z, p.Size-1)
		if g.mode == ModeCampaign && len(g.campaign) > 0 {
			lvl := min(g.levelIndex+1, len(g.campaign))
			hud += fmt.Sprintf(" | Level %d/%d", lvl, len(g.campaign))
		}
		if g.session.Rotation() == core.RotationRunning {
			hud += " | ↻"
		}
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
		dst.SetWithColor(x, 3, '─', platformcore.ColorGray)
	}
	dst.DrawTextWithColor(0, 2, " ←↑↓→ move | [ ] layer | 1-7 paint | Space pop | A/S/D rotate x/y/z | P pause",
		platformcore.ColorGray)
}

// Screen position of lattice cell (0, size-1) on the shown layer.
const (
	layerX = 2
	layerY = hudHeight + 1
)

// renderLayer draws the z layer under the cursor; higher y is drawn higher up.
func (g *Game) renderLayer(dst *platformcore.Screen, size int) {
	ox, oy := layerX, layerY
	dst.DrawBox(platformcore.NewRect(ox-1, oy-1, size*cellW+2, size+2), platformcore.ColorDarkGray)

	for y := 0; y < size; y++ {
		sy := oy + (size - 1 - y)
		for x := 0; x < size; x++ {
			sx := ox + x*cellW
			pos := core.P(x, y, g.cursor.Z)
			b, ok := g.session.Lookup(pos)
			hovered := pos == g.cursor

			switch {
			case ok && hovered:
				bg := blockColor(b.Color)
				dst.SetCell(sx, sy, platformcore.Cell{Rune: '[', Fg: platformcore.ColorBrightWhite, Bg: bg})
				dst.SetCell(sx+1, sy, platformcore.Cell{Rune: ']', Fg: platformcore.ColorBrightWhite, Bg: bg})
			case ok:
				dst.SetWithColor(sx, sy, '█', blockColor(b.Color))
				dst.SetWithColor(sx+1, sy, '█', blockColor(b.Color))
			case hovered:
				dst.SetWithColor(sx, sy, '[', platformcore.ColorWhite)
				dst.SetWithColor(sx+1, sy, ']', platformcore.ColorWhite)
			default:
				dst.SetWithColor(sx, sy, '·', platformcore.ColorDarkGray)
				dst.SetWithColor(sx+1, sy, ' ', platformcore.ColorDarkGray)
			}
		}
	}
}

// renderLegend draws the palette keys, the hovered block and recent feedback.
func (g *Game) renderLegend(dst *platformcore.Screen, size int) {
	lx := layerX + size*cellW + 3
	y := layerY

	dst.DrawText(lx, y, "Palette")
	y++
	palette := g.session.Palette()
	counts := g.session.CountByColor()
	for i, c := range palette {
		dst.DrawTextWithColor(lx, y, fmt.Sprintf("%d ", i+1), platformcore.ColorGray)
		dst.SetWithColor(lx+2, y, '█', blockColor(c))
		dst.SetWithColor(lx+3, y, '█', blockColor(c))
		dst.DrawTextWithColor(lx+5, y, fmt.Sprintf("%-7s %3d", c, counts[c]), blockColor(c))
		y++
	}

	y++
	dst.DrawTextWithColor(lx, y, "Cursor "+g.cursor.String(), platformcore.ColorWhite)
	y++
	if b, ok := g.session.Lookup(g.cursor); ok {
		dst.DrawTextWithColor(lx, y, fmt.Sprintf("#%d %s [%d]", b.ID, b.Color, palette.IndexOf(b.Color)), blockColor(b.Color))
		y++
		dst.DrawTextWithColor(lx, y, fmt.Sprintf("pops %d", g.session.RegionSize(b.ID)), platformcore.ColorGray)
	} else {
		dst.DrawTextWithColor(lx, y, "empty", platformcore.ColorDarkGray)
	}
	y += 2

	if g.messageLeft > 0 && g.message != "" {
		dst.DrawTextWithColor(lx, y, g.message, g.messageColor)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	h := 5
	box := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(box, platformcore.Cell{Rune: ' '})
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorGray)
}
