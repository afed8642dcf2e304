// Package dnd tracks a drag gesture over the board and reports its
// outcome as a model.DragResult. It owns the drag feedback flags the
// renderer reads; it never touches board state.
package dnd

import "github.com/idilsaglam/listboard/internal/model"

// Controller follows one drag at a time.
type Controller struct {
	active bool
	itemID string
	source model.Location
	over   *model.Location
}

// Start begins dragging the item at src. The source slot is the initial
// drop target, so dropping without moving is a no-op reorder.
func (c *Controller) Start(src model.Location, itemID string) {
	c.active = true
	c.itemID = itemID
	c.source = src
	over := src
	c.over = &over
}

// Active reports whether a drag is in progress.
func (c Controller) Active() bool { return c.active }

// ItemID returns the id of the dragged item.
func (c Controller) ItemID() string { return c.itemID }

// Source returns the slot the drag started from.
func (c Controller) Source() model.Location { return c.source }

// Over returns the hovered drop slot, if any.
func (c Controller) Over() (model.Location, bool) {
	if !c.active || c.over == nil {
		return model.Location{}, false
	}
	return *c.over, true
}

// Hover sets the drop target.
func (c *Controller) Hover(loc model.Location) {
	if !c.active {
		return
	}
	c.over = &loc
}

// Leave clears the drop target; a drop now cancels.
func (c *Controller) Leave() {
	if !c.active {
		return
	}
	c.over = nil
}

// Nudge moves the drop target by whole groups or slots. sizes holds the
// item count of every group on the board. Indexes are clamped to valid
// drop positions: the end of a foreign group is droppable, the end of
// the source group is not because the item is lifted out of it first.
func (c *Controller) Nudge(dGroup, dIndex int, sizes []int) {
	if !c.active || len(sizes) == 0 {
		return
	}
	cur := c.source
	if c.over != nil {
		cur = *c.over
	}
	next := model.Location{Group: clamp(cur.Group+dGroup, 0, len(sizes)-1), Index: cur.Index + dIndex}
	next.Index = clamp(next.Index, 0, c.maxIndex(next.Group, sizes))
	c.over = &next
}

func (c Controller) maxIndex(group int, sizes []int) int {
	if group == c.source.Group {
		return sizes[group] - 1
	}
	return sizes[group]
}

// Drop ends the drag at the hovered target.
func (c *Controller) Drop() model.DragResult {
	r := model.DragResult{Source: c.source}
	if c.active && c.over != nil {
		dst := *c.over
		r.Destination = &dst
	}
	c.reset()
	return r
}

// Cancel ends the drag without a destination.
func (c *Controller) Cancel() model.DragResult {
	r := model.DragResult{Source: c.source}
	c.reset()
	return r
}

func (c *Controller) reset() { *c = Controller{} }

// IsDragging reports whether itemID is the dragged element.
func (c Controller) IsDragging(itemID string) bool {
	return c.active && c.itemID == itemID
}

// IsDraggingOver reports whether group is the current drop target.
func (c Controller) IsDraggingOver(group int) bool {
	return c.active && c.over != nil && c.over.Group == group
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
