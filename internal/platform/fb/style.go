package fb

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-eel/internal/core"
)

// palette maps core colors to the same xterm indices the Bubble Tea shell uses.
var palette = map[core.Color]tcell.Color{
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorBlue:          tcell.PaletteColor(4),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorCyan:          tcell.PaletteColor(6),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightRed:     tcell.PaletteColor(9),
	core.ColorBrightGreen:   tcell.PaletteColor(10),
	core.ColorBrightYellow:  tcell.PaletteColor(11),
	core.ColorBrightBlue:    tcell.PaletteColor(12),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightCyan:    tcell.PaletteColor(14),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorOrange:        tcell.PaletteColor(208),
	core.ColorGray:          tcell.PaletteColor(245),
}

// Style returns the tcell style for a buffer cell.
func Style(c core.Cell) tcell.Style {
	if c.HasRGB {
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if fg, ok := palette[c.Color]; ok {
		return tcell.StyleDefault.Foreground(fg)
	}
	return tcell.StyleDefault
}
