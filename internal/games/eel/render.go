package eel

import (
	"fmt"

	"github.com/vovakirdan/tui-eel/internal/core"
)

// Glyphs used by the text renderer.
const (
	glyphHead = '@'
	glyphBody = 'o'
	glyphFood = '*'
)

// Render draws the HUD, the framed board, the eel and the food.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall || g.state == nil {
		g.renderOverlay(dst, "Window too small", g.requiredSize())
		return
	}

	s := g.state
	dst.DrawBox(core.NewRect(g.offsetX-border, g.offsetY-border, s.Width()+2*border, s.Height()+2*border), core.ColorGray)

	g.renderFood(dst)
	g.renderEel(dst)

	switch {
	case s.Terminal() && s.Len() == s.Width()*s.Height():
		g.renderOverlay(dst, "Board Filled", fmt.Sprintf("Length %d  -  R to restart", s.Len()))
	case s.Terminal():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Length %d  -  R to restart", s.Len()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) requiredSize() string {
	w, h := max(g.boardW, MinBoardSize), max(g.boardH, MinBoardSize)
	return fmt.Sprintf("Need %dx%d", w+2*border, h+hudHeight+2*border)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Length: %d  Eaten: %d  Speed: %d", g.Title(), g.State().Score, g.eaten(), g.Speed())
	if g.state != nil && g.state.GrowthDebt() > 0 {
		hud += fmt.Sprintf("  Growing: +%d", g.state.GrowthDebt())
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) eaten() int {
	if g.state == nil {
		return 0
	}
	return g.state.Eaten()
}

func (g *Game) renderFood(dst *core.Screen) {
	f := g.state.Food()
	x, y := g.offsetX+f.Cell.X, g.offsetY+f.Cell.Y
	if f.Typed {
		dst.SetRGB(x, y, glyphFood, f.Kind.Color())
		return
	}
	dst.SetColored(x, y, glyphFood, core.ColorBrightRed)
}

// renderEel draws the body head to tail; the extended variant colors each
// segment along the gradient.
func (g *Game) renderEel(dst *core.Screen) {
	s := g.state
	n := s.Len()
	grad := s.Gradient()
	for i := range n {
		c := s.Segment(i)
		glyph := glyphBody
		if i == 0 {
			glyph = glyphHead
		}
		x, y := g.offsetX+c.X, g.offsetY+c.Y
		if s.Variant() == VariantExtended {
			dst.SetRGB(x, y, glyph, grad.At(i, n))
			continue
		}
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.SetColored(x, y, glyph, color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
