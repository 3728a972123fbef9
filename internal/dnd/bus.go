package dnd

// Bus is the in-process stand-in for the compositor's data device: it
// relays one active drag source's offer to every registered drop target
// and routes the targets' protocol requests back to the source.
//
// Every target observes the same event stream in the same order;
// geometry alone decides which one, if any, claims the offer. The bus
// runs synchronously inside the UI event loop and never blocks.
type Bus struct {
	// Targets are the drop tiles, indexed stably by the owning widget.
	Targets []*Target

	source   *Source
	dragging bool
	payload  []byte
}

// Note is an application-level notification produced by relaying one
// pointer event through the bus.
type Note interface{ busNote() }

// NoteOfferStarted reports that the target at Index claimed the offer.
type NoteOfferStarted struct{ Index int }

// NoteOfferLeft reports that the offer left the target at Index.
type NoteOfferLeft struct{ Index int }

// NoteDrop reports a successful drop on the target at Index. Path is the
// decoded origin file of the dragged entry.
type NoteDrop struct {
	Index int
	Path  string
}

// NoteFinish reports drag completion to the source side.
type NoteFinish struct{ IsMove bool }

// NoteCancel reports that the drag was abandoned.
type NoteCancel struct{}

func (NoteOfferStarted) busNote() {}
func (NoteOfferLeft) busNote()    {}
func (NoteDrop) busNote()         {}
func (NoteFinish) busNote()       {}
func (NoteCancel) busNote()       {}

// Dragging reports whether an offer is currently in flight.
func (b *Bus) Dragging() bool {
	return b.dragging
}

// Press starts tracking a gesture on the given source.
func (b *Bus) Press(src *Source, p Point) {
	if b.source != nil && b.source != src {
		b.source.Reset()
	}
	b.source = src
	b.source.Handle(Press{Pos: p})
}

// Motion advances the gesture. A press that crosses the drag threshold
// promotes into a drag here: the source's offer is announced to every
// target and the pointer keeps driving their hit tests.
func (b *Bus) Motion(p Point) []Note {
	if b.source == nil {
		return nil
	}

	var notes []Note

	if !b.dragging {
		for _, out := range b.source.Handle(Motion{Pos: p}) {
			start, ok := out.(StartDrag)
			if !ok {
				continue
			}
			b.dragging = true
			b.payload = start.Payload
			notes = append(notes, b.broadcast(SourceActions{Actions: start.Actions})...)
			notes = append(notes, b.broadcast(OfferEnter{Pos: p, Mimes: start.Mimes})...)
		}

		return notes
	}

	return b.broadcast(OfferMotion{Pos: p})
}

// Release ends the gesture. While dragging it performs the drop; a press
// that never promoted simply returns the source to idle so the caller
// can treat it as a click.
func (b *Bus) Release(p Point) []Note {
	if b.source == nil {
		return nil
	}

	if !b.dragging {
		b.source.Handle(Release{})
		b.source = nil

		return nil
	}

	notes := b.broadcast(DropPerformed{})

	finished := false
	for _, n := range notes {
		if _, ok := n.(NoteFinish); ok {
			finished = true
		}
	}
	if !finished {
		notes = append(notes, b.sourceNotes(SourceCancelled{})...)
	}

	b.endDrag()

	return notes
}

// CancelDrag abandons any gesture or in-flight offer, e.g. when the
// panel loses input focus.
func (b *Bus) CancelDrag() []Note {
	if b.source == nil {
		return nil
	}

	var notes []Note
	if b.dragging {
		notes = b.broadcast(OfferLeave{})
		notes = append(notes, b.sourceNotes(SourceCancelled{})...)
	} else {
		b.source.Reset()
	}

	b.endDrag()

	return notes
}

func (b *Bus) endDrag() {
	b.dragging = false
	b.payload = nil
	b.source = nil
}

// broadcast delivers one offer event to every target in order and
// dispatches each target's outputs.
func (b *Bus) broadcast(ev OfferEvent) []Note {
	var notes []Note
	for i, t := range b.Targets {
		notes = append(notes, b.dispatch(i, t, t.Handle(ev))...)
	}

	return notes
}

// dispatch routes one target's protocol requests: action choices feed
// back into the source's accepted action, data requests are answered
// with the source payload, completion finishes the source side.
func (b *Bus) dispatch(index int, t *Target, outs []TargetOutput) []Note {
	var notes []Note

	for _, out := range outs {
		switch out := out.(type) {
		case SetActions:
			if b.source != nil {
				b.source.Handle(ActionAccepted{Actions: out.Accepted})
			}
		case AcceptMime:
			if out.Mime == "" && b.source != nil {
				b.source.Handle(ActionAccepted{Actions: ActionNone})
			}
		case RequestData:
			notes = append(notes, b.dispatch(index, t, t.Handle(OfferData{
				Mime: out.Mime,
				Data: b.payload,
			}))...)
		case FinishOffer:
			notes = append(notes, b.sourceNotes(SourceFinished{})...)
		case OfferStarted:
			notes = append(notes, NoteOfferStarted{Index: index})
		case OfferLeft:
			notes = append(notes, NoteOfferLeft{Index: index})
		case Drop:
			notes = append(notes, NoteDrop{Index: index, Path: out.Path})
		}
	}

	return notes
}

func (b *Bus) sourceNotes(ev SourceEvent) []Note {
	if b.source == nil {
		return nil
	}

	var notes []Note
	for _, out := range b.source.Handle(ev) {
		switch out := out.(type) {
		case Finish:
			notes = append(notes, NoteFinish{IsMove: out.IsMove})
		case Cancel:
			notes = append(notes, NoteCancel{})
		}
	}

	return notes
}
