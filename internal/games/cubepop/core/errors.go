package core

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when a rotation is requested while another one is in flight.
	ErrBusy = errors.New("rotation in progress")

	// ErrNotFound is returned by registry operations on ids that are not live.
	// Session actions on such ids are silent no-ops and never surface it.
	ErrNotFound = errors.New("block not found")

	// ErrNoPick is returned when an action arrives without a picked block.
	ErrNoPick = errors.New("no block picked")

	// ErrPaletteIndex is returned for a recolor outside the active palette.
	ErrPaletteIndex = errors.New("palette index out of range")

	// ErrSessionOver is returned for actions after the session was won or lost.
	ErrSessionOver = errors.New("session is over")

	// ErrInvalidParams is returned when generation parameters fail validation.
	ErrInvalidParams = errors.New("invalid generation parameters")

	// ErrUnknownAction is returned for an action kind the session does not handle.
	ErrUnknownAction = errors.New("unknown action")

	// ErrOutOfBounds is returned when a position falls outside the cube.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// CollisionError reports an attempt to place a block on an occupied cell.
type CollisionError struct {
	Pos      Pos
	Occupant BlockID
	Incoming BlockID
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("collision at %s: block %d already occupies the cell (incoming %d)",
		e.Pos, e.Occupant, e.Incoming)
}
