package core

import (
	"sync"
)

// Status is the session lifecycle state.
type Status uint8

const (
	StatusActive Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the status is terminal.
func (s Status) Over() bool {
	return s != StatusActive
}

// RotationState is the single-flight guard for slice rotations.
type RotationState uint8

const (
	RotationIdle RotationState = iota
	RotationRunning
)

func (r RotationState) String() string {
	if r == RotationRunning {
		return "running"
	}
	return "idle"
}

// ActionKind enumerates the player actions a session accepts.
type ActionKind uint8

const (
	ActionRecolor ActionKind = iota
	ActionPop
	ActionRotate
)

func (k ActionKind) String() string {
	switch k {
	case ActionRecolor:
		return "recolor"
	case ActionPop:
		return "pop"
	case ActionRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Action is one player intent applied to the picked block.
type Action struct {
	Kind         ActionKind
	PaletteIndex int  // Recolor: 1-based palette index
	Axis         Axis // Rotate: slice axis
	Turns        int  // Rotate: quarter turns, 0 means 1
}

// Recolor paints the picked block with the palette color at index (1-based).
func Recolor(index int) Action {
	return Action{Kind: ActionRecolor, PaletteIndex: index}
}

// Pop removes the picked block's connected same-color region.
func Pop() Action {
	return Action{Kind: ActionPop}
}

// Rotate turns the slice through the picked block by 90° about axis.
func Rotate(axis Axis) Action {
	return Action{Kind: ActionRotate, Axis: axis, Turns: 1}
}

// RotateTurns turns the picked block's slice by turns quarter turns.
func RotateTurns(axis Axis, turns int) Action {
	return Action{Kind: ActionRotate, Axis: axis, Turns: turns}
}

// Pick identifies the block under the cursor, if any.
type Pick struct {
	ID BlockID
}

// NoPick is an empty pick.
var NoPick = Pick{}

// PickBlock returns a pick for id.
func PickBlock(id BlockID) Pick {
	return Pick{ID: id}
}

// Valid reports whether a block was picked.
func (p Pick) Valid() bool {
	return p.ID != NoBlock
}

// Outcome reports what one Dispatch call did.
type Outcome struct {
	Accepted  bool      // The action passed input validation
	Charged   bool      // A move was consumed
	NoOp      bool      // Accepted but changed nothing
	Err       error     // Why the action was rejected
	Removed   []Block   // Blocks removed by a pop
	Rotation  *Rotation // Committed rotation, if any
	MovesLeft int
	Status    Status
}

// Option configures a Session.
type Option func(*Session)

// WithListener registers a listener for session events.
func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listeners = append(s.listeners, l)
	}
}

// WithRotationTicks sets how many ticks a rotation keeps the guard busy.
// Zero makes rotations complete immediately.
func WithRotationTicks(ticks int) Option {
	return func(s *Session) {
		if ticks < 0 {
			ticks = 0
		}
		s.rotationTicks = ticks
	}
}

// WithChargeNoOps controls whether accepted actions that change nothing
// still consume a move. The default is true.
func WithChargeNoOps(charge bool) Option {
	return func(s *Session) {
		s.chargeNoOps = charge
	}
}

// Session owns one puzzle: the registry, the palette, the move counter
// and the rotation guard. It is safe for concurrent use. Listeners are
// called after the internal lock is released, in commit order across
// concurrent callers. A listener must not call Dispatch or Reset.
type Session struct {
	mu sync.Mutex

	// Delivery turnstile: event batches are handed out in the order
	// their tickets were taken under mu.
	emitMu   sync.Mutex
	emitCond sync.Cond
	ticket   uint64
	serving  uint64

	params    GenParams
	reg       *Registry
	palette   Palette
	movesLeft int
	movesUsed int
	status    Status

	rotation      RotationState
	rotationTicks int
	rotationLeft  int

	chargeNoOps bool
	listeners   []Listener
}

// NewSession generates a grid from p and returns an active session.
func NewSession(p GenParams, opts ...Option) (*Session, error) {
	s := &Session{chargeNoOps: true}
	s.emitCond.L = &s.emitMu
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reset(p); err != nil {
		return nil, err
	}
	return s, nil
}

// AddListener registers l for subsequent events.
func (s *Session) AddListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Reset regenerates the grid from p. Invalid parameters leave the session untouched.
// Listeners are kept.
func (s *Session) Reset(p GenParams) error {
	reg, palette, err := Generate(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.params = p
	s.reg = reg
	s.palette = palette
	s.movesLeft = p.MoveLimit
	s.movesUsed = 0
	s.status = StatusActive
	s.rotation = RotationIdle
	s.rotationLeft = 0
	listeners := s.listeners
	turn := s.takeTicket()
	s.mu.Unlock()

	s.deliver(turn, listeners, []Event{MoveCountChangedEvent{Moves: p.MoveLimit}})
	return nil
}

// Dispatch applies one action to the picked block.
func (s *Session) Dispatch(pick Pick, act Action) Outcome {
	s.mu.Lock()
	out, events := s.dispatchLocked(pick, act)
	listeners := s.listeners
	if len(events) == 0 {
		s.mu.Unlock()
		return out
	}
	turn := s.takeTicket()
	s.mu.Unlock()

	s.deliver(turn, listeners, events)
	return out
}

func (s *Session) dispatchLocked(pick Pick, act Action) (Outcome, []Event) {
	out := Outcome{MovesLeft: s.movesLeft, Status: s.status}
	if s.status.Over() {
		out.Err = ErrSessionOver
		return out, nil
	}
	if !pick.Valid() {
		out.Err = ErrNoPick
		return out, nil
	}

	var events []Event
	switch act.Kind {
	case ActionRecolor:
		color, ok := s.palette.At(act.PaletteIndex)
		if !ok {
			out.Err = ErrPaletteIndex
			return out, nil
		}
		b, live := s.reg.Get(pick.ID)
		if !live || b.Color == color {
			out.NoOp = true
			break
		}
		s.reg.SetColor(b.ID, color)
		events = append(events, BlockRecoloredEvent{ID: b.ID, From: b.Color, Color: color})

	case ActionPop:
		removed := PopRegion(s.reg, pick.ID)
		if len(removed) == 0 {
			out.NoOp = true
			break
		}
		out.Removed = removed
		for _, b := range removed {
			events = append(events, BlockRemovedEvent{ID: b.ID, Pos: b.Pos, Color: b.Color})
		}

	case ActionRotate:
		if s.rotation == RotationRunning {
			out.Err = ErrBusy
			return out, nil
		}
		b, live := s.reg.Get(pick.ID)
		if !live {
			out.NoOp = true
			break
		}
		turns := act.Turns
		if turns == 0 {
			turns = 1
		}
		rot, err := RotateSlice(s.reg, act.Axis, b.Pos.Component(act.Axis), turns)
		if err != nil {
			out.Err = err
			return out, nil
		}
		out.Rotation = &rot
		if s.rotationTicks > 0 {
			s.rotation = RotationRunning
			s.rotationLeft = s.rotationTicks
		}
		events = append(events, SliceRotatedEvent{Axis: rot.Axis, Coord: rot.Coord, Moved: rot.MovedIDs()})

	default:
		out.Err = ErrUnknownAction
		return out, nil
	}

	out.Accepted = true
	if out.NoOp && !s.chargeNoOps {
		return out, events
	}

	s.movesLeft--
	s.movesUsed++
	out.Charged = true
	events = append(events, MoveCountChangedEvent{Moves: s.movesLeft})

	switch {
	case s.reg.IsEmpty():
		s.status = StatusWon
		events = append(events, SessionWonEvent{MovesLeft: s.movesLeft})
	case s.movesLeft <= 0:
		s.status = StatusLost
		events = append(events, SessionLostEvent{Remaining: s.reg.Len()})
	}

	out.MovesLeft = s.movesLeft
	out.Status = s.status
	return out, events
}

// Tick advances the rotation animation window by one tick.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rotation != RotationRunning {
		return
	}
	s.rotationLeft--
	if s.rotationLeft <= 0 {
		s.rotation = RotationIdle
		s.rotationLeft = 0
	}
}

// Rotation returns the rotation guard state.
func (s *Session) Rotation() RotationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// MovesLeft returns the remaining move count.
func (s *Session) MovesLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movesLeft
}

// MovesUsed returns how many moves have been consumed.
func (s *Session) MovesUsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movesUsed
}

// Remaining returns the number of live blocks.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Len()
}

// Params returns the parameters the grid was generated from.
func (s *Session) Params() GenParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Size returns the cube edge length.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.Size
}

// Palette returns a copy of the active palette.
func (s *Session) Palette() Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(Palette(nil), s.palette...)
}

// Block returns the live block with the given id.
func (s *Session) Block(id BlockID) (Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Get(id)
}

// Lookup returns the block occupying pos.
func (s *Session) Lookup(pos Pos) (Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.At(pos)
}

// Blocks returns all live blocks sorted by id.
func (s *Session) Blocks() []Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Blocks()
}

// CountByColor returns the number of live blocks per color.
func (s *Session) CountByColor() map[Color]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.CountByColor()
}

// RegionSize returns how many blocks a pop at id would remove.
func (s *Session) RegionSize(id BlockID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RegionSize(s.reg, id)
}

// CheckConsistency verifies the registry and index agree.
func (s *Session) CheckConsistency() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.CheckConsistency()
}

// takeTicket reserves the next delivery slot. Callers hold mu.
func (s *Session) takeTicket() uint64 {
	t := s.ticket
	s.ticket++
	return t
}

// deliver waits for turn, then calls the listeners without holding mu.
func (s *Session) deliver(turn uint64, listeners []Listener, events []Event) {
	s.emitMu.Lock()
	for s.serving != turn {
		s.emitCond.Wait()
	}
	s.emitMu.Unlock()

	emit(listeners, events)

	s.emitMu.Lock()
	s.serving++
	s.emitCond.Broadcast()
	s.emitMu.Unlock()
}

func emit(listeners []Listener, events []Event) {
	for _, e := range events {
		for _, l := range listeners {
			l.OnEvent(e)
		}
	}
}
