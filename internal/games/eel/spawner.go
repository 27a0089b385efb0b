package eel

import "math/rand"

// Occupancy reports whether a cell is taken. *Body implements it.
type Occupancy interface {
	Contains(c Cell) bool
}

// CellSet is a plain set of cells implementing Occupancy.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Contains implements Occupancy.
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// PlaceCell returns a cell drawn uniformly from [0,width)x[0,height) that is
// not occupied, using rejection sampling: draw, and redraw on a hit.
//
// The caller must leave at least one cell free. On a full board this never
// returns, and on a nearly full board it may take many draws.
func PlaceCell(occ Occupancy, width, height int, rng *rand.Rand) Cell {
	for {
		c := Cell{X: rng.Intn(width), Y: rng.Intn(height)}
		if !occ.Contains(c) {
			return c
		}
	}
}

// SpawnFood places a new food item. In the extended variant the kind is
// drawn uniformly after, and independently of, the position.
func SpawnFood(occ Occupancy, width, height int, variant Variant, rng *rand.Rand) Food {
	f := Food{Cell: PlaceCell(occ, width, height, rng)}
	if variant == VariantExtended {
		f.Kind = FoodKinds[rng.Intn(len(FoodKinds))]
		f.Typed = true
	}
	return f
}
