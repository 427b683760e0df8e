// Package observability holds the logging and metrics hooks attached to
// puzzle sessions.
package observability

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubepop/internal/games/cubepop/core"
)

// NewLogger builds a timestamped logger at the named level.
// Unknown level names fall back to info.
func NewLogger(w io.Writer, level, prefix string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}

// EventLogger writes session events to a logger. Block level events go to
// debug, outcomes to info.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger returns a listener that logs through l, tagged with the
// given key/value pairs.
func NewEventLogger(l *log.Logger, keyvals ...any) *EventLogger {
	return &EventLogger{logger: l.With(keyvals...)}
}

// OnEvent implements core.Listener.
func (e *EventLogger) OnEvent(ev core.Event) {
	switch ev := ev.(type) {
	case core.BlockRemovedEvent:
		e.logger.Debug("block removed", "id", ev.ID, "pos", ev.Pos, "color", ev.Color)
	case core.BlockRecoloredEvent:
		e.logger.Debug("block recolored", "id", ev.ID, "from", ev.From, "to", ev.Color)
	case core.SliceRotatedEvent:
		e.logger.Debug("slice rotated", "axis", ev.Axis, "coord", ev.Coord, "moved", len(ev.Moved))
	case core.MoveCountChangedEvent:
		e.logger.Debug("moves left", "moves", ev.Moves)
	case core.SessionWonEvent:
		e.logger.Info("puzzle solved", "moves_left", ev.MovesLeft)
	case core.SessionLostEvent:
		e.logger.Info("out of moves", "remaining", ev.Remaining)
	}
}
