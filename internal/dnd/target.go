package dnd

import "slices"

// TargetState is the drop-destination lifecycle.
type TargetState int

// Drop-target states. At most one of the non-idle states is active per
// widget at a time; every target runs its own machine against the same
// offer event stream and geometry alone decides which one claims it.
const (
	// TargetIdle: no offer is being tracked.
	TargetIdle TargetState = iota
	// TargetOutside: an offer exists but the pointer is outside bounds.
	TargetOutside
	// TargetHandling: the offer is over this widget and accepted.
	TargetHandling
	// TargetDropped: the drop happened here, payload not yet delivered.
	TargetDropped
)

// OfferEvent is a compositor-delivered data-offer event.
type OfferEvent interface{ offerEvent() }

// SourceActions announces the actions the drag source supports.
type SourceActions struct{ Actions Action }

// OfferEnter announces a new offer at a position.
type OfferEnter struct {
	Pos   Point
	Mimes []string
}

// OfferMotion is pointer movement while the offer exists.
type OfferMotion struct{ Pos Point }

// OfferLeave announces the offer left the surface.
type OfferLeave struct{}

// DropPerformed announces the drop gesture completed.
type DropPerformed struct{}

// OfferData delivers the requested payload.
type OfferData struct {
	Mime string
	Data []byte
}

func (SourceActions) offerEvent() {}
func (OfferEnter) offerEvent()    {}
func (OfferMotion) offerEvent()   {}
func (OfferLeave) offerEvent()    {}
func (DropPerformed) offerEvent() {}
func (OfferData) offerEvent()     {}

// TargetOutput is a protocol request or application notification
// produced by a target transition.
type TargetOutput interface{ targetOutput() }

// SetActions asks the compositor to negotiate the given actions.
type SetActions struct{ Preferred, Accepted Action }

// AcceptMime accepts the offer with the given mime, or rejects it when
// Mime is empty.
type AcceptMime struct{ Mime string }

// RequestData asks for the payload in the given mime.
type RequestData struct{ Mime string }

// FinishOffer signals protocol completion after a successful transfer.
type FinishOffer struct{}

// OfferStarted notifies the application that this widget claimed the
// offer (highlight the tile).
type OfferStarted struct{}

// OfferLeft notifies the application that the offer left this widget.
type OfferLeft struct{}

// Drop notifies the application that the payload decoded successfully.
type Drop struct{ Path string }

func (SetActions) targetOutput()   {}
func (AcceptMime) targetOutput()   {}
func (RequestData) targetOutput()  {}
func (FinishOffer) targetOutput()  {}
func (OfferStarted) targetOutput() {}
func (OfferLeft) targetOutput()    {}
func (Drop) targetOutput()         {}

// Target tracks one incoming offer over one drop tile. Bounds must be
// kept current by the owning widget's layout.
type Target struct {
	// Bounds are the tile's current layout bounds.
	Bounds Rect

	state   TargetState
	mimes   []string
	actions Action
}

// State returns the current lifecycle state.
func (t *Target) State() TargetState {
	return t.state
}

// Reset abandons any tracked offer without emitting anything.
func (t *Target) Reset() {
	t.state = TargetIdle
	t.mimes = nil
	t.actions = ActionNone
}

// acceptMove is the request pair issued whenever the offer is (re)claimed.
func acceptMove() []TargetOutput {
	return []TargetOutput{
		SetActions{Preferred: ActionMove, Accepted: ActionMove},
		AcceptMime{Mime: MimeURIList},
	}
}

// Handle advances the machine by one event and returns the outputs the
// transition produced. Events that do not apply in the current state are
// ignored rather than treated as errors.
func (t *Target) Handle(ev OfferEvent) []TargetOutput {
	switch t.state {
	case TargetIdle:
		switch ev := ev.(type) {
		case SourceActions:
			t.state = TargetOutside
			t.mimes = nil
			t.actions = ev.Actions
		case OfferEnter:
			if !slices.Contains(ev.Mimes, MimeURIList) {
				return nil
			}
			t.mimes = slices.Clone(ev.Mimes)
			t.actions = ActionNone
			if t.Bounds.Contains(ev.Pos) {
				t.state = TargetHandling

				return append(acceptMove(), OfferStarted{})
			}
			t.state = TargetOutside
		}

	case TargetOutside:
		switch ev := ev.(type) {
		case SourceActions:
			t.actions = ev.Actions
		case OfferMotion:
			if t.Bounds.Contains(ev.Pos) {
				t.state = TargetHandling
				t.actions = ActionNone

				return append(acceptMove(), OfferStarted{})
			}
		case OfferLeave, DropPerformed:
			t.Reset()
		}

	case TargetHandling:
		switch ev := ev.(type) {
		case OfferMotion:
			if t.Bounds.Contains(ev.Pos) {
				return []TargetOutput{SetActions{Preferred: ActionMove, Accepted: ActionMove}}
			}
			t.state = TargetOutside
			t.actions = ActionNone

			return []TargetOutput{OfferLeft{}, AcceptMime{}}
		case OfferLeave:
			t.Reset()

			return []TargetOutput{OfferLeft{}}
		case SourceActions:
			t.actions = ev.Actions

			return []TargetOutput{SetActions{Preferred: ActionMove, Accepted: ActionMove}}
		case DropPerformed:
			t.state = TargetDropped

			return append(acceptMove(), RequestData{Mime: MimeURIList})
		}

	case TargetDropped:
		switch ev := ev.(type) {
		case OfferData:
			t.Reset()
			if ev.Mime != MimeURIList {
				return nil
			}
			path, err := DecodePath(ev.Data)
			if err != nil {
				// Malformed payloads drop the drop; no mutation, no error.
				return nil
			}

			return []TargetOutput{Drop{Path: path}, FinishOffer{}}
		case OfferLeave:
			// Payload never arrived; best-effort cancel.
			t.Reset()

			return []TargetOutput{OfferLeft{}}
		}
	}

	return nil
}
