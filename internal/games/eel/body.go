package eel

// Body is the eel's ordered sequence of cells. The head is the front.
// Cells are pairwise distinct; membership checks are O(1).
type Body struct {
	cells []Cell // tail first, head last
	set   map[Cell]struct{}
}

func newBody(capacity int) *Body {
	return &Body{
		cells: make([]Cell, 0, capacity),
		set:   make(map[Cell]struct{}, capacity),
	}
}

// Len returns the number of cells.
func (b *Body) Len() int {
	return len(b.cells)
}

// Head returns the front cell. The body is never empty.
func (b *Body) Head() Cell {
	return b.cells[len(b.cells)-1]
}

// Contains reports whether c is occupied by the body.
func (b *Body) Contains(c Cell) bool {
	_, ok := b.set[c]
	return ok
}

// Cells returns a copy of the body ordered head to tail.
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	for i, c := range b.cells {
		out[len(b.cells)-1-i] = c
	}
	return out
}

// At returns the i-th cell counting from the head (0 = head).
func (b *Body) At(i int) Cell {
	return b.cells[len(b.cells)-1-i]
}

func (b *Body) pushHead(c Cell) {
	b.cells = append(b.cells, c)
	b.set[c] = struct{}{}
}

func (b *Body) popTail() {
	delete(b.set, b.cells[0])
	b.cells = b.cells[1:]
}
