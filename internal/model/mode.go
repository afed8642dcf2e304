package model

// ItemMode is the per-item edit state: Viewing, or Editing with a draft.
type ItemMode struct {
	Editing bool
	Draft   string
}

// Viewing is the default mode of every item.
var Viewing = ItemMode{}

// Editing returns the mode of an item under edit.
func Editing(draft string) ItemMode {
	return ItemMode{Editing: true, Draft: draft}
}

// EditSession identifies the item under edit by id, never by position.
type EditSession struct {
	GroupID string
	ItemID  string
	Draft   string
}
