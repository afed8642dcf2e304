package model

// Group is an ordered column of items. ID is stable across structural
// changes; drag results still address groups by position.
type Group struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`
}

// Board is the ordered set of groups.
type Board struct {
	Groups []Group `json:"groups"`
}

// NewGroup returns a group holding items under a fresh id.
func NewGroup(newID IDFunc, items ...Item) Group {
	return Group{ID: newID(), Items: items}
}

// Clone returns a deep copy so callers can build the next board value
// without touching slices already handed out.
func (b Board) Clone() Board {
	out := Board{Groups: make([]Group, len(b.Groups))}
	for i, g := range b.Groups {
		out.Groups[i] = Group{ID: g.ID, Items: append([]Item(nil), g.Items...)}
	}
	return out
}

// ItemCount reports the number of items across all groups.
func (b Board) ItemCount() int {
	n := 0
	for _, g := range b.Groups {
		n += len(g.Items)
	}
	return n
}

// Find locates an item by id.
func (b Board) Find(itemID string) (Location, bool) {
	for gi, g := range b.Groups {
		for ii, it := range g.Items {
			if it.ID == itemID {
				return Location{Group: gi, Index: ii}, true
			}
		}
	}
	return Location{}, false
}

// At returns the item at loc.
func (b Board) At(loc Location) (Item, bool) {
	if loc.Group < 0 || loc.Group >= len(b.Groups) {
		return Item{}, false
	}
	items := b.Groups[loc.Group].Items
	if loc.Index < 0 || loc.Index >= len(items) {
		return Item{}, false
	}
	return items[loc.Index], true
}
