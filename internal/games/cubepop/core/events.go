package core

// Event is a state change reported by a Session to its listeners.
type Event interface {
	// Kind returns a short stable name, used for logs and metric labels.
	Kind() string
	cubeEvent()
}

// BlockRemovedEvent is emitted once per block removed by a pop.
type BlockRemovedEvent struct {
	ID    BlockID
	Pos   Pos
	Color Color
}

func (BlockRemovedEvent) cubeEvent()   {}
func (BlockRemovedEvent) Kind() string { return "block_removed" }

// BlockRecoloredEvent is emitted when a recolor changes a block's color.
type BlockRecoloredEvent struct {
	ID    BlockID
	From  Color
	Color Color
}

func (BlockRecoloredEvent) cubeEvent()   {}
func (BlockRecoloredEvent) Kind() string { return "block_recolored" }

// SliceRotatedEvent is emitted after a slice rotation is committed.
// Moved is empty when the slice held no blocks.
type SliceRotatedEvent struct {
	Axis  Axis
	Coord int
	Moved []BlockID
}

func (SliceRotatedEvent) cubeEvent()   {}
func (SliceRotatedEvent) Kind() string { return "slice_rotated" }

// MoveCountChangedEvent is emitted whenever the remaining move count changes.
type MoveCountChangedEvent struct {
	Moves int
}

func (MoveCountChangedEvent) cubeEvent()   {}
func (MoveCountChangedEvent) Kind() string { return "move_count_changed" }

// SessionWonEvent is emitted when the last block is removed.
type SessionWonEvent struct {
	MovesLeft int
}

func (SessionWonEvent) cubeEvent()   {}
func (SessionWonEvent) Kind() string { return "session_won" }

// SessionLostEvent is emitted when moves run out with blocks remaining.
type SessionLostEvent struct {
	Remaining int
}

func (SessionLostEvent) cubeEvent()   {}
func (SessionLostEvent) Kind() string { return "session_lost" }

// Listener receives session events in the order they happened.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}
