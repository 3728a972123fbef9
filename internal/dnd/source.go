package dnd

// SourceState is the drag-source lifecycle.
type SourceState int

// Drag-source states.
const (
	// SourceIdle: no gesture in progress.
	SourceIdle SourceState = iota
	// SourcePressed: a press was captured, waiting to cross the drag
	// threshold.
	SourcePressed
	// SourceDragging: the payload is offered to the compositor.
	SourceDragging
)

// SourceEvent is a pointer or data-source protocol event delivered to a
// drag source.
type SourceEvent interface{ sourceEvent() }

// Press is a button-down or finger-down at a position.
type Press struct{ Pos Point }

// Motion is pointer movement while the button is held.
type Motion struct{ Pos Point }

// Release is the button-up ending a gesture that never became a drag.
type Release struct{}

// ActionAccepted reports the action set the destination accepted.
type ActionAccepted struct{ Actions Action }

// SourceFinished reports that the destination completed the transfer.
type SourceFinished struct{}

// SourceCancelled reports that the compositor cancelled the drag.
type SourceCancelled struct{}

func (Press) sourceEvent()           {}
func (Motion) sourceEvent()          {}
func (Release) sourceEvent()         {}
func (ActionAccepted) sourceEvent()  {}
func (SourceFinished) sourceEvent()  {}
func (SourceCancelled) sourceEvent() {}

// SourceOutput is a request or notification produced by a source
// transition, dispatched by the surrounding application loop.
type SourceOutput interface{ sourceOutput() }

// StartDrag asks the platform to begin a drag with the given offer.
type StartDrag struct {
	Mimes   []string
	Actions Action
	Payload []byte
	// Icon names the drag icon surface contents.
	Icon string
}

// Finish tells the caller the drag completed. When IsMove is true the
// entry must leave its origin group; a copy leaves the origin unchanged.
type Finish struct{ IsMove bool }

// Cancel tells the caller the drag was abandoned.
type Cancel struct{}

func (StartDrag) sourceOutput() {}
func (Finish) sourceOutput()    {}
func (Cancel) sourceOutput()    {}

// Source promotes a press into a drag and tracks the negotiated action
// until the compositor reports completion. One instance per draggable
// tile; Bounds must be kept current by the owning widget's layout.
type Source struct {
	// Bounds are the tile's current layout bounds.
	Bounds Rect
	// Payload is the serialized entry path offered on promotion.
	Payload []byte
	// Icon is the drag icon name offered on promotion.
	Icon string

	state          SourceState
	origin         Point
	acceptedIsMove bool
}

// State returns the current lifecycle state.
func (s *Source) State() SourceState {
	return s.state
}

// Reset abandons any gesture in progress without emitting anything. The
// caller is responsible for also asking the compositor to cancel a
// pending drag when the panel loses focus mid-drag.
func (s *Source) Reset() {
	s.state = SourceIdle
	s.acceptedIsMove = false
}

// Handle advances the machine by one event and returns the outputs the
// transition produced. Events that do not apply in the current state are
// ignored.
func (s *Source) Handle(ev SourceEvent) []SourceOutput {
	switch s.state {
	case SourceIdle:
		if press, ok := ev.(Press); ok && s.Bounds.Contains(press.Pos) {
			s.state = SourcePressed
			s.origin = press.Pos
		}

	case SourcePressed:
		switch ev := ev.(type) {
		case Motion:
			dx := ev.Pos.X - s.origin.X
			dy := ev.Pos.Y - s.origin.Y
			if dx*dx+dy*dy > DragThreshold {
				s.state = SourceDragging
				s.acceptedIsMove = false

				return []SourceOutput{StartDrag{
					Mimes:   []string{MimeURIList},
					Actions: ActionCopy | ActionMove,
					Payload: s.Payload,
					Icon:    s.Icon,
				}}
			}
		case Release:
			s.state = SourceIdle
		}

	case SourceDragging:
		switch ev := ev.(type) {
		case ActionAccepted:
			s.acceptedIsMove = ev.Actions.Contains(ActionMove)
		case SourceFinished:
			s.state = SourceIdle

			return []SourceOutput{Finish{IsMove: s.acceptedIsMove}}
		case SourceCancelled:
			s.state = SourceIdle

			return []SourceOutput{Cancel{}}
		}
	}

	return nil
}
