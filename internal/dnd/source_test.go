package dnd

import (
	"testing"
)

func pressedSource(t *testing.T) *Source {
	t.Helper()

	s := &Source{
		Bounds:  Rect{X: 0, Y: 0, W: 20, H: 10},
		Payload: EncodePath("/usr/share/applications/a.desktop"),
	}
	s.Handle(Press{Pos: Point{X: 5, Y: 5}})
	if s.State() != SourcePressed {
		t.Fatalf("press inside bounds: state = %v, want SourcePressed", s.State())
	}

	return s
}

// TestThresholdActivation pins the promotion rule: the squared pointer
// displacement is compared against the literal threshold constant, so
// the effective activation distance is ~5 cells, not 25.
func TestThresholdActivation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		to   Point
		want SourceState
	}{
		{"no movement", Point{X: 5, Y: 5}, SourcePressed},
		{"under threshold", Point{X: 10, Y: 5}, SourcePressed},   // d² = 25, not > 25
		{"just over threshold", Point{X: 10.1, Y: 5}, SourceDragging}, // d² ≈ 26
		{"well under the nominal 25", Point{X: 11, Y: 5}, SourceDragging},
		{"diagonal", Point{X: 9, Y: 9}, SourceDragging}, // d² = 32
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := pressedSource(t)
			outs := s.Handle(Motion{Pos: tt.to})

			if s.State() != tt.want {
				t.Errorf("state = %v, want %v", s.State(), tt.want)
			}

			if tt.want == SourceDragging {
				if len(outs) != 1 {
					t.Fatalf("outputs = %v, want one StartDrag", outs)
				}
				start, ok := outs[0].(StartDrag)
				if !ok {
					t.Fatalf("output = %T, want StartDrag", outs[0])
				}
				if len(start.Mimes) != 1 || start.Mimes[0] != MimeURIList {
					t.Errorf("mimes = %v", start.Mimes)
				}
				if !start.Actions.Contains(ActionCopy) || !start.Actions.Contains(ActionMove) {
					t.Errorf("actions = %v, want copy|move", start.Actions)
				}
			} else if len(outs) != 0 {
				t.Errorf("unexpected outputs below threshold: %v", outs)
			}
		})
	}
}

func TestPromotesAtMostOncePerPress(t *testing.T) {
	t.Parallel()

	s := pressedSource(t)

	first := s.Handle(Motion{Pos: Point{X: 15, Y: 15}})
	second := s.Handle(Motion{Pos: Point{X: 18, Y: 18}})

	if len(first) != 1 {
		t.Fatalf("first motion outputs = %v", first)
	}
	if len(second) != 0 {
		t.Errorf("second motion must not promote again: %v", second)
	}
}

func TestPressOutsideBoundsIgnored(t *testing.T) {
	t.Parallel()

	s := &Source{Bounds: Rect{X: 0, Y: 0, W: 10, H: 10}}
	s.Handle(Press{Pos: Point{X: 50, Y: 50}})

	if s.State() != SourceIdle {
		t.Errorf("state = %v, want SourceIdle", s.State())
	}
}

func TestReleaseBeforeThresholdResets(t *testing.T) {
	t.Parallel()

	s := pressedSource(t)
	s.Handle(Release{})

	if s.State() != SourceIdle {
		t.Errorf("state = %v, want SourceIdle after a plain click", s.State())
	}
}

func TestFinishReportsAcceptedAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		accepted Action
		wantMove bool
	}{
		{"move accepted", ActionMove, true},
		{"copy accepted", ActionCopy, false},
		{"copy and move accepted", ActionCopy | ActionMove, true},
		{"nothing accepted", ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := pressedSource(t)
			s.Handle(Motion{Pos: Point{X: 15, Y: 15}})
			s.Handle(ActionAccepted{Actions: tt.accepted})

			outs := s.Handle(SourceFinished{})
			if len(outs) != 1 {
				t.Fatalf("outputs = %v, want one Finish", outs)
			}
			finish, ok := outs[0].(Finish)
			if !ok {
				t.Fatalf("output = %T, want Finish", outs[0])
			}
			if finish.IsMove != tt.wantMove {
				t.Errorf("IsMove = %v, want %v", finish.IsMove, tt.wantMove)
			}
			if s.State() != SourceIdle {
				t.Errorf("state = %v, want SourceIdle", s.State())
			}
		})
	}
}

func TestCancelEmitsCancel(t *testing.T) {
	t.Parallel()

	s := pressedSource(t)
	s.Handle(Motion{Pos: Point{X: 15, Y: 15}})

	outs := s.Handle(SourceCancelled{})
	if len(outs) != 1 {
		t.Fatalf("outputs = %v, want one Cancel", outs)
	}
	if _, ok := outs[0].(Cancel); !ok {
		t.Errorf("output = %T, want Cancel", outs[0])
	}
	if s.State() != SourceIdle {
		t.Errorf("state = %v, want SourceIdle", s.State())
	}
}

func TestProtocolEventsIgnoredWhileIdle(t *testing.T) {
	t.Parallel()

	s := &Source{Bounds: Rect{W: 10, H: 10}}

	for _, ev := range []SourceEvent{Motion{Pos: Point{X: 99, Y: 99}}, SourceFinished{}, SourceCancelled{}, ActionAccepted{Actions: ActionMove}} {
		if outs := s.Handle(ev); len(outs) != 0 {
			t.Errorf("idle source reacted to %T: %v", ev, outs)
		}
		if s.State() != SourceIdle {
			t.Fatalf("idle source changed state on %T", ev)
		}
	}
}
