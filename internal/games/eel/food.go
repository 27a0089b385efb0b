package eel

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-eel/internal/core"
)

// FoodKind is the type of a food item in the extended variant.
type FoodKind uint8

const (
	FoodRed FoodKind = iota
	FoodBlue
	FoodYellow
	FoodPurple
	FoodOrange
)

// FoodKinds lists every kind; the spawner draws uniformly from it.
var FoodKinds = [...]FoodKind{FoodRed, FoodBlue, FoodYellow, FoodPurple, FoodOrange}

// Reward returns how many cells the eel grows by when eating this kind.
func (k FoodKind) Reward() int {
	return int(k) + 1
}

// Color returns the display color of the kind. The body gradient's head
// endpoint takes this color when the kind is eaten.
func (k FoodKind) Color() core.RGB {
	switch k {
	case FoodRed:
		return core.RGB{R: 231, G: 76, B: 60}
	case FoodBlue:
		return core.RGB{R: 52, G: 152, B: 219}
	case FoodYellow:
		return core.RGB{R: 241, G: 196, B: 15}
	case FoodPurple:
		return core.RGB{R: 155, G: 89, B: 182}
	default:
		return core.RGB{R: 230, G: 126, B: 34}
	}
}

func (k FoodKind) String() string {
	switch k {
	case FoodRed:
		return "red"
	case FoodBlue:
		return "blue"
	case FoodYellow:
		return "yellow"
	case FoodPurple:
		return "purple"
	case FoodOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Food is a food item on the board. Typed is false in the basic variant,
// where every item is worth one cell.
type Food struct {
	Cell  Cell
	Kind  FoodKind
	Typed bool
}

// Reward returns the growth reward of eating this item.
func (f Food) Reward() int {
	if !f.Typed {
		return 1
	}
	return f.Kind.Reward()
}

// Default gradient endpoints.
var (
	DefaultHeadColor = core.RGB{R: 46, G: 204, B: 113}
	DefaultTailColor = core.RGB{R: 17, G: 84, B: 60}
)

// Gradient holds the body color endpoints of the extended variant.
type Gradient struct {
	Head core.RGB
	Tail core.RGB
}

// At returns the color of segment i of a body of length n, interpolated in
// CIE-Lab space from Head (i = 0) to Tail (i = n-1).
func (g Gradient) At(i, n int) core.RGB {
	if n <= 1 {
		return g.Head
	}
	t := float64(i) / float64(n-1)
	c := toColorful(g.Head).BlendLab(toColorful(g.Tail), t).Clamped()
	r, gr, b := c.RGB255()
	return core.RGB{R: r, G: gr, B: b}
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
