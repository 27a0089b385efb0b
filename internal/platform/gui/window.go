// Package gui runs a game in a desktop window with Ebitengine. The game's
// text screen is drawn cell by cell as filled squares, so the window shows
// the same board as the terminal shells.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-eel/internal/core"
	"github.com/vovakirdan/tui-eel/internal/platform"
	"github.com/vovakirdan/tui-eel/internal/registry"
)

// Cell geometry in pixels.
const (
	cellW = 12
	cellH = 16
)

// errQuit ends RunGame without reporting an error.
var errQuit = errors.New("quit")

var bgColor = color.RGBA{15, 15, 20, 255}

// window implements ebiten.Game.
type window struct {
	game    registry.Game
	session *platform.Session
	config  core.RuntimeConfig
	buf     *core.Screen
	frame   core.InputFrame
	last    time.Time
}

// Run opens a window sized for cfg.ScreenW x cfg.ScreenH cells and plays
// until the window is closed or q is pressed.
func Run(game registry.Game, session *platform.Session, cfg core.RuntimeConfig) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if session == nil {
		session = platform.NewSession(game, nil, nil)
	}

	w := &window{
		game:    game,
		session: session,
		config:  cfg,
		buf:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:   core.NewInputFrame(),
	}
	w.session.Start(cfg)
	defer w.session.Finish()

	ebiten.SetWindowSize(cfg.ScreenW*cellW, cfg.ScreenH*cellH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

// Update runs one game frame. Ebitengine calls it TPS times per second.
func (w *window) Update() error {
	now := time.Now()
	if !w.last.IsZero() {
		w.frame.Elapsed = now.Sub(w.last)
	}
	w.last = now

	if w.readInput() {
		return errQuit
	}

	w.session.Observe(w.game.Step(w.frame))
	w.frame.Clear()
	return nil
}

// readInput fills the frame from the keyboard. Returns true on quit.
func (w *window) readInput() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}

	for _, b := range directionKeys {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				w.frame.Set(b.action)
			}
		}
	}

	// A real keyboard reports shift as a held key.
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		for _, b := range directionKeys {
			for _, k := range b.keys {
				if ebiten.IsKeyPressed(k) {
					w.frame.Set(core.ActionFast)
				}
			}
		}
	}

	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			w.frame.Set(core.SpeedAction(i + 1))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.frame.Set(core.ActionRestart)
	}
	return false
}

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

type keyBinding struct {
	action core.Action
	keys   []ebiten.Key
}

var directionKeys = []keyBinding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyI, ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyK, ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyJ, ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyL, ebiten.KeyD, ebiten.KeyArrowRight}},
}

// Draw paints the game screen: colored cells become filled squares, other
// glyphs are printed with the debug font, one per cell.
func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	w.game.Render(w.buf)

	for y := range w.buf.Height() {
		for x := range w.buf.Width() {
			cell := w.buf.GetCell(x, y)
			if fill, ok := CellColor(cell); ok {
				vector.DrawFilledRect(screen,
					float32(x*cellW+1), float32(y*cellH+1),
					float32(cellW-2), float32(cellH-2), fill, false)
				continue
			}
			if segs, ok := boxSegments[cell.Rune]; ok {
				drawBoxRune(screen, x*cellW, y*cellH, segs)
				continue
			}
			if cell.Rune != ' ' {
				ebitenutil.DebugPrintAt(screen, string(cell.Rune), x*cellW+3, y*cellH)
			}
		}
	}
}

// Box-drawing segments reaching from the cell center to each edge.
const (
	segLeft = 1 << iota
	segRight
	segUp
	segDown
)

// boxSegments covers the runes core.Screen uses for frames and separators;
// the debug font only has ASCII glyphs.
var boxSegments = map[rune]int{
	'─': segLeft | segRight,
	'│': segUp | segDown,
	'┌': segRight | segDown,
	'┐': segLeft | segDown,
	'└': segRight | segUp,
	'┘': segLeft | segUp,
}

var frameColor = color.RGBA{110, 110, 120, 255}

func drawBoxRune(screen *ebiten.Image, px, py, segs int) {
	cx, cy := float32(px+cellW/2), float32(py+cellH/2)
	left, right := float32(px), float32(px+cellW)
	top, bottom := float32(py), float32(py+cellH)

	if segs&segLeft != 0 {
		vector.StrokeLine(screen, left, cy, cx, cy, 1, frameColor, false)
	}
	if segs&segRight != 0 {
		vector.StrokeLine(screen, cx, cy, right, cy, 1, frameColor, false)
	}
	if segs&segUp != 0 {
		vector.StrokeLine(screen, cx, top, cx, cy, 1, frameColor, false)
	}
	if segs&segDown != 0 {
		vector.StrokeLine(screen, cx, cy, cx, bottom, 1, frameColor, false)
	}
}

// Layout maps the window size to the cell grid.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols := max(1, outsideWidth/cellW)
	rows := max(1, outsideHeight/cellH)
	if cols != w.buf.Width() || rows != w.buf.Height() {
		w.buf.Resize(cols, rows)
		w.config.ScreenW, w.config.ScreenH = cols, rows
		if r, ok := w.game.(interface{ Resize(int, int) }); ok {
			r.Resize(cols, rows)
		}
	}
	return cols * cellW, rows * cellH
}

// CellColor returns the fill color for game pieces. Cells without a color
// (text, blanks, frame) report false and are drawn as text.
func CellColor(c core.Cell) (color.Color, bool) {
	if c.HasRGB {
		return c.Fg, true
	}
	if c.Rune == ' ' {
		return nil, false
	}
	switch c.Color {
	case core.ColorGreen:
		return color.RGBA{39, 174, 96, 255}, true
	case core.ColorBrightGreen:
		return color.RGBA{46, 204, 113, 255}, true
	case core.ColorBrightRed:
		return color.RGBA{231, 76, 60, 255}, true
	}
	return nil, false
}
