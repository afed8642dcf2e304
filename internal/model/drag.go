package model

import "fmt"

// Location addresses a slot on the board by group position and item index.
type Location struct {
	Group int
	Index int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Group, l.Index)
}

// DragResult is what a finished drag gesture reports. A nil Destination
// means the gesture was cancelled or dropped outside every group.
type DragResult struct {
	Source      Location
	Destination *Location
}

// Cancelled reports whether the drag has no destination.
func (r DragResult) Cancelled() bool { return r.Destination == nil }
