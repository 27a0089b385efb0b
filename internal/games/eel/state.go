package eel

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-eel/internal/core"
)

// MinBoardSize is the smallest accepted board edge.
const MinBoardSize = 3

// InitialLength is the body length of a fresh eel.
const InitialLength = 3

// Construction errors. Step itself never fails.
var (
	ErrBoardTooSmall = errors.New("board too small")
	ErrInvalidBody   = errors.New("invalid body")
	ErrFoodOnBody    = errors.New("food overlaps body")
	ErrNilRand       = errors.New("nil random source")
)

// Options configures a new State.
type Options struct {
	Width   int
	Height  int
	Variant Variant

	// Palette is the starting body gradient of the extended variant.
	// The zero value selects DefaultHeadColor and DefaultTailColor.
	Palette Gradient
}

// Validate checks the options before any state is built.
func (o Options) Validate() error {
	if o.Width < MinBoardSize || o.Height < MinBoardSize {
		return fmt.Errorf("eel: %dx%d: %w (minimum %dx%d)", o.Width, o.Height, ErrBoardTooSmall, MinBoardSize, MinBoardSize)
	}
	return nil
}

// Outcome describes what a single Step did.
type Outcome int

const (
	OutcomeFrozen Outcome = iota // state was already terminal, nothing changed
	OutcomeDied                  // head would have entered the body; state is now terminal
	OutcomeMoved                 // moved one cell, length unchanged
	OutcomeGrew                  // moved one cell and kept the tail to pay growth debt
	OutcomeAte                   // moved onto the food
	OutcomeFilled                // ate the last free cell; state is now terminal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFrozen:
		return "frozen"
	case OutcomeDied:
		return "died"
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeAte:
		return "ate"
	case OutcomeFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// State is the simulation state of one eel game.
//
// It is mutated only by Step and SetDirection. Once terminal it stays frozen;
// a new game is a new State.
type State struct {
	width, height int
	variant       Variant
	rng           *rand.Rand

	body       *Body
	heading    Direction
	food       Food
	growthDebt int
	terminal   bool
	gradient   Gradient

	eaten     int
	steps     uint64
	lastEaten Food
}

// New creates a fresh game: a random heading and a 3-cell body laid out from
// the board center along the reverse of the heading, clamped to the board.
// Cells that collapse onto each other through clamping are dropped.
func New(opts Options, rng *rand.Rand) (*State, error) {
	if rng == nil {
		return nil, fmt.Errorf("eel: %w", ErrNilRand)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	heading := RandomDirection(rng)
	dx, dy := heading.Delta()
	cx, cy := opts.Width/2, opts.Height/2

	s := newState(opts, rng, heading)
	cells := make([]Cell, 0, InitialLength)
	seen := make(CellSet, InitialLength)
	for i := range InitialLength {
		c := Cell{
			X: core.Clamp(cx-dx*i, 0, opts.Width-1),
			Y: core.Clamp(cy-dy*i, 0, opts.Height-1),
		}
		if seen.Contains(c) {
			continue
		}
		seen[c] = struct{}{}
		cells = append(cells, c)
	}
	// cells is head first; the body is built tail first.
	for i := len(cells) - 1; i >= 0; i-- {
		s.body.pushHead(cells[i])
	}

	s.food = SpawnFood(s.body, s.width, s.height, s.variant, rng)
	return s, nil
}

// NewWithBody builds a state from an explicit layout. body is ordered head
// to tail and must be non-empty, in bounds and free of duplicates; food must
// be in bounds and off the body.
func NewWithBody(opts Options, body []Cell, heading Direction, food Food, rng *rand.Rand) (*State, error) {
	if rng == nil {
		return nil, fmt.Errorf("eel: %w", ErrNilRand)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("eel: empty body: %w", ErrInvalidBody)
	}

	s := newState(opts, rng, heading)
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if !s.inBounds(c) {
			return nil, fmt.Errorf("eel: cell (%d,%d) out of bounds: %w", c.X, c.Y, ErrInvalidBody)
		}
		if s.body.Contains(c) {
			return nil, fmt.Errorf("eel: duplicate cell (%d,%d): %w", c.X, c.Y, ErrInvalidBody)
		}
		s.body.pushHead(c)
	}

	if !s.inBounds(food.Cell) {
		return nil, fmt.Errorf("eel: food (%d,%d) out of bounds: %w", food.Cell.X, food.Cell.Y, ErrInvalidBody)
	}
	if s.body.Contains(food.Cell) {
		return nil, fmt.Errorf("eel: food (%d,%d): %w", food.Cell.X, food.Cell.Y, ErrFoodOnBody)
	}
	s.food = food
	return s, nil
}

func newState(opts Options, rng *rand.Rand, heading Direction) *State {
	variant := opts.Variant
	if variant == "" {
		variant = VariantExtended
	}
	palette := opts.Palette
	if palette == (Gradient{}) {
		palette = Gradient{Head: DefaultHeadColor, Tail: DefaultTailColor}
	}
	return &State{
		width:    opts.Width,
		height:   opts.Height,
		variant:  variant,
		rng:      rng,
		body:     newBody(InitialLength),
		heading:  heading,
		gradient: palette,
	}
}

func (s *State) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

// Step advances the simulation by exactly one tick.
func (s *State) Step() Outcome {
	if s.terminal {
		return OutcomeFrozen
	}

	// Leaving one edge re-enters at the opposite edge on the same step.
	dx, dy := s.heading.Delta()
	head := s.body.Head()
	next := Cell{
		X: core.Wrap(head.X+dx, s.width),
		Y: core.Wrap(head.Y+dy, s.height),
	}

	// The tail counts as occupied even though it would move this tick.
	if s.body.Contains(next) {
		s.terminal = true
		return OutcomeDied
	}

	s.body.pushHead(next)
	s.steps++

	if next == s.food.Cell {
		// The new head already accounts for one cell of growth.
		s.growthDebt += s.food.Reward() - 1
		s.eaten++
		s.lastEaten = s.food
		if s.variant == VariantExtended && s.food.Typed {
			s.gradient.Head = s.food.Kind.Color()
		}
		// No free cell is left for the spawner.
		if s.body.Len() == s.width*s.height {
			s.terminal = true
			return OutcomeFilled
		}
		s.food = SpawnFood(s.body, s.width, s.height, s.variant, s.rng)
		return OutcomeAte
	}

	if s.growthDebt > 0 {
		s.growthDebt--
		return OutcomeGrew
	}

	s.body.popTail()
	return OutcomeMoved
}

// SetDirection changes the heading for the next Step. A request for the
// opposite of the current heading is ignored and reports false.
func (s *State) SetDirection(d Direction) bool {
	if d == s.heading.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// Width returns the board width in cells.
func (s *State) Width() int { return s.width }

// Height returns the board height in cells.
func (s *State) Height() int { return s.height }

// Variant returns the rule variant.
func (s *State) Variant() Variant { return s.variant }

// Body returns the body cells ordered head to tail.
func (s *State) Body() []Cell { return s.body.Cells() }

// Segment returns the i-th body cell from the head.
func (s *State) Segment(i int) Cell { return s.body.At(i) }

// Head returns the head cell.
func (s *State) Head() Cell { return s.body.Head() }

// Len returns the body length.
func (s *State) Len() int { return s.body.Len() }

// Occupied reports whether c is part of the body.
func (s *State) Occupied(c Cell) bool { return s.body.Contains(c) }

// Heading returns the current heading.
func (s *State) Heading() Direction { return s.heading }

// Food returns the current food item.
func (s *State) Food() Food { return s.food }

// GrowthDebt returns the number of steps that will still keep the tail.
func (s *State) GrowthDebt() int { return s.growthDebt }

// Terminal reports whether the eel has collided with itself.
func (s *State) Terminal() bool { return s.terminal }

// Gradient returns the body color endpoints (extended variant).
func (s *State) Gradient() Gradient { return s.gradient }

// Eaten returns how many food items have been eaten.
func (s *State) Eaten() int { return s.eaten }

// LastEaten returns the most recently eaten food item.
func (s *State) LastEaten() Food { return s.lastEaten }

// Steps returns how many steps have been committed.
func (s *State) Steps() uint64 { return s.steps }
