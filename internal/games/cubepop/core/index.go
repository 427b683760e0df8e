package core

import "sort"

// Index maps lattice positions to the id of the block occupying them.
// It holds at most one block per cell and is kept as the exact inverse
// of the registry's live block positions.
type Index struct {
	cells map[Pos]BlockID
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{cells: make(map[Pos]BlockID)}
}

// Insert places id at pos.
// Returns a *CollisionError if the cell is already occupied.
func (ix *Index) Insert(pos Pos, id BlockID) error {
	if occupant, ok := ix.cells[pos]; ok {
		return &CollisionError{Pos: pos, Occupant: occupant, Incoming: id}
	}
	ix.cells[pos] = id
	return nil
}

// Remove clears the cell at pos. Clearing an empty cell is a no-op.
func (ix *Index) Remove(pos Pos) {
	delete(ix.cells, pos)
}

// Lookup returns the block at pos, if any.
func (ix *Index) Lookup(pos Pos) (BlockID, bool) {
	id, ok := ix.cells[pos]
	return id, ok
}

// Occupied reports whether a block sits at pos.
func (ix *Index) Occupied(pos Pos) bool {
	_, ok := ix.cells[pos]
	return ok
}

// Neighbors6 returns the occupied positions orthogonally adjacent to pos,
// in +x, -x, +y, -y, +z, -z order.
func (ix *Index) Neighbors6(pos Pos) []Pos {
	out := make([]Pos, 0, 6)
	for _, n := range pos.Adjacent() {
		if ix.Occupied(n) {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of occupied cells.
func (ix *Index) Len() int {
	return len(ix.cells)
}

// Positions returns all occupied positions sorted by x, y, z.
func (ix *Index) Positions() []Pos {
	out := make([]Pos, 0, len(ix.cells))
	for p := range ix.cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}
