// Package eel implements the eel simulation: a growing, self-colliding
// organism on a toroidal board that eats food at random free cells.
//
// The package is split into three pieces that only share plain data:
// State advances the organism one step at a time, the spawner picks free
// cells by rejection sampling, and Scheduler converts a speed level into a
// step interval and decides how many steps a frame runs. Game adapts all
// three to the registry.Game interface used by the platform shells.
package eel

import "math/rand"

// Cell is a board coordinate with 0 <= X < width and 0 <= Y < height.
type Cell struct {
	X, Y int
}

// Direction represents the eel's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every heading, in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reverse heading on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit offset of one move in this direction.
// Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// RandomDirection draws a heading uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// Variant selects between the classic rules (untyped food worth one cell)
// and the extended rules (five food kinds with different rewards and a body
// color gradient).
type Variant string

const (
	VariantBasic    Variant = "basic"
	VariantExtended Variant = "extended"
)

// ParseVariant maps a config/CLI string to a Variant.
// Unknown values report ok == false.
func ParseVariant(s string) (v Variant, ok bool) {
	switch Variant(s) {
	case VariantBasic, "classic":
		return VariantBasic, true
	case VariantExtended, "":
		return VariantExtended, true
	}
	return VariantExtended, false
}
