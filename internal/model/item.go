package model

import "fmt"

// Item is one entry on the board. ID stays fixed for the item's lifetime;
// only Content changes.
type Item struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// GenerateItems builds count items titled "item <k+offset>".
func GenerateItems(count, offset int, newID IDFunc) []Item {
	if count <= 0 {
		return nil
	}
	items := make([]Item, 0, count)
	for k := 0; k < count; k++ {
		items = append(items, Item{
			ID:      newID(),
			Content: fmt.Sprintf("item %d", k+offset),
		})
	}
	return items
}
