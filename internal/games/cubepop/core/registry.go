package core

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// BlockID is a stable block identity. Ids start at 1 and are never reused
// within a registry; 0 means "no block".
type BlockID uint32

// NoBlock is the zero BlockID.
const NoBlock BlockID = 0

// Block is one occupant of the cube.
type Block struct {
	ID    BlockID
	Pos   Pos
	Color Color
}

// Registry owns every live block and keeps the spatial index in step with it.
// All position changes go through the registry so the index never disagrees
// with block positions once a call returns.
type Registry struct {
	size   int
	blocks map[BlockID]*Block
	index  *Index
	nextID BlockID
}

// NewRegistry creates an empty registry for a cube of the given size.
func NewRegistry(size int) *Registry {
	return &Registry{
		size:   size,
		blocks: make(map[BlockID]*Block),
		index:  NewIndex(),
		nextID: 1,
	}
}

// Size returns the cube edge length.
func (r *Registry) Size() int {
	return r.size
}

// Index exposes the spatial index for read-only queries.
func (r *Registry) Index() *Index {
	return r.index
}

// Create adds a new block at pos and returns its id.
func (r *Registry) Create(pos Pos, color Color) (BlockID, error) {
	if !pos.InBounds(r.size) {
		return NoBlock, fmt.Errorf("create at %s: %w", pos, ErrOutOfBounds)
	}
	id := r.nextID
	if err := r.index.Insert(pos, id); err != nil {
		return NoBlock, err
	}
	r.nextID++
	r.blocks[id] = &Block{ID: id, Pos: pos, Color: color}
	return id, nil
}

// Get returns a copy of the block with the given id.
func (r *Registry) Get(id BlockID) (Block, bool) {
	b, ok := r.blocks[id]
	if !ok {
		return Block{}, false
	}
	return *b, true
}

// At returns the block occupying pos, if any.
func (r *Registry) At(pos Pos) (Block, bool) {
	id, ok := r.index.Lookup(pos)
	if !ok {
		return Block{}, false
	}
	return r.Get(id)
}

// SetColor changes a block's color. Returns false if the block is not live.
func (r *Registry) SetColor(id BlockID, color Color) bool {
	b, ok := r.blocks[id]
	if !ok {
		return false
	}
	b.Color = color
	return true
}

// SetPosition moves one block to pos, updating the index in the same call.
func (r *Registry) SetPosition(id BlockID, pos Pos) error {
	return r.Move(map[BlockID]Pos{id: pos})
}

// Move relocates several blocks at once. Every target is validated before
// any entry is touched: each id must be live, each target in bounds and
// distinct, and each target either empty or vacated by another moving block.
// On error nothing has changed.
func (r *Registry) Move(moves map[BlockID]Pos) error {
	if len(moves) == 0 {
		return nil
	}

	ids := make([]BlockID, 0, len(moves))
	for id := range moves {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	targets := mapset.New[Pos]()
	for _, id := range ids {
		if _, ok := r.blocks[id]; !ok {
			return fmt.Errorf("move block %d: %w", id, ErrNotFound)
		}
		to := moves[id]
		if !to.InBounds(r.size) {
			return fmt.Errorf("move block %d to %s: %w", id, to, ErrOutOfBounds)
		}
		if targets.Has(to) {
			return &CollisionError{Pos: to, Occupant: r.claimant(moves, ids, to), Incoming: id}
		}
		targets.Put(to)
		if occupant, ok := r.index.Lookup(to); ok {
			if _, moving := moves[occupant]; !moving {
				return &CollisionError{Pos: to, Occupant: occupant, Incoming: id}
			}
		}
	}

	for _, id := range ids {
		r.index.Remove(r.blocks[id].Pos)
	}
	for _, id := range ids {
		to := moves[id]
		if err := r.index.Insert(to, id); err != nil {
			panic(fmt.Sprintf("registry: index corrupted after validated move: %v", err))
		}
		r.blocks[id].Pos = to
	}
	return nil
}

// claimant finds the first moving block (in id order) that targets pos.
func (r *Registry) claimant(moves map[BlockID]Pos, ids []BlockID, pos Pos) BlockID {
	for _, id := range ids {
		if moves[id] == pos {
			return id
		}
	}
	return NoBlock
}

// Delete removes a block from the registry and the index.
// Returns false if the block is not live.
func (r *Registry) Delete(id BlockID) bool {
	b, ok := r.blocks[id]
	if !ok {
		return false
	}
	r.index.Remove(b.Pos)
	delete(r.blocks, id)
	return true
}

// Len returns the number of live blocks.
func (r *Registry) Len() int {
	return len(r.blocks)
}

// IsEmpty reports whether no blocks remain.
func (r *Registry) IsEmpty() bool {
	return len(r.blocks) == 0
}

// Blocks returns copies of all live blocks sorted by id.
func (r *Registry) Blocks() []Block {
	out := make([]Block, 0, len(r.blocks))
	for _, b := range r.blocks {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CountByColor returns the number of live blocks per color.
func (r *Registry) CountByColor() map[Color]int {
	counts := make(map[Color]int)
	for _, b := range r.blocks {
		counts[b.Color]++
	}
	return counts
}

// CheckConsistency verifies that the index is the exact inverse of block positions.
func (r *Registry) CheckConsistency() error {
	if r.index.Len() != len(r.blocks) {
		return fmt.Errorf("index holds %d cells for %d blocks", r.index.Len(), len(r.blocks))
	}
	for id, b := range r.blocks {
		got, ok := r.index.Lookup(b.Pos)
		if !ok {
			return fmt.Errorf("block %d at %s missing from index", id, b.Pos)
		}
		if got != id {
			return fmt.Errorf("index maps %s to block %d, want %d", b.Pos, got, id)
		}
	}
	for _, p := range r.index.Positions() {
		id, _ := r.index.Lookup(p)
		if b, ok := r.blocks[id]; !ok || b.Pos != p {
			return fmt.Errorf("stale index entry at %s for block %d", p, id)
		}
	}
	return nil
}
