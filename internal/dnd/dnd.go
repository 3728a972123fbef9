// Package dnd implements the drag-and-drop negotiation protocol used to
// move desktop entries between library groups.
//
// Each draggable tile owns a Source machine and each group tile owns a
// Target machine. The machines consume protocol events and return the
// protocol requests and application notifications they produce; nothing
// here stores callbacks or blocks. State is owned exclusively by the
// widget instance that holds the machine.
package dnd

// MimeURIList is the only mime type negotiated for entry drags. The
// payload is one file:// URI identifying the entry's origin file.
const MimeURIList = "text/uri-list"

// DragThreshold is compared against the squared pointer displacement of
// a press before it promotes into a drag. The constant is linear while
// the comparison is quadratic, so the effective activation distance is
// the square root of this value; the mismatch is long-standing behavior
// that users are calibrated to, so it stays.
const DragThreshold = 25.0

// Action is a set of drag-and-drop actions, negotiated between source
// and destination.
type Action uint8

// Negotiable actions. Only copy and move are ever offered.
const (
	ActionNone Action = 0
	ActionCopy Action = 1 << iota
	ActionMove
)

// Contains reports whether every action in a is present in the set.
func (a Action) Contains(other Action) bool {
	return a&other == other
}

// Point is a position in the panel's coordinate space.
type Point struct {
	X, Y float64
}

// Rect is a widget's layout bounds in the panel's coordinate space.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
