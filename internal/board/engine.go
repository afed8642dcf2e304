package board

import (
	"fmt"

	"github.com/idilsaglam/listboard/internal/model"
)

// Reorder moves the item at from to position to. The destination index
// refers to the list after the item has been removed.
func Reorder(items []model.Item, from, to int) []model.Item {
	out := make([]model.Item, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	return insertAt(out, to, items[from])
}

// Move takes the item at from out of src and inserts it into dst at to.
func Move(src, dst []model.Item, from, to int) ([]model.Item, []model.Item) {
	moved := src[from]
	newSrc := make([]model.Item, 0, len(src)-1)
	newSrc = append(newSrc, src[:from]...)
	newSrc = append(newSrc, src[from+1:]...)
	newDst := insertAt(append([]model.Item(nil), dst...), to, moved)
	return newSrc, newDst
}

func insertAt(items []model.Item, at int, it model.Item) []model.Item {
	items = append(items, model.Item{})
	copy(items[at+1:], items[at:])
	items[at] = it
	return items
}

// Prune drops every empty group.
func Prune(b model.Board) model.Board {
	out := model.Board{Groups: make([]model.Group, 0, len(b.Groups))}
	for _, g := range b.Groups {
		if len(g.Items) > 0 {
			out.Groups = append(out.Groups, g)
		}
	}
	return out
}

// ApplyDrag computes the board that results from a finished drag. The
// input board is never modified. Empty groups are pruned after every
// applied move, including a group the item just left.
func ApplyDrag(b model.Board, r model.DragResult) (model.Board, error) {
	if r.Cancelled() {
		return b, nil
	}
	if err := validateDrag(b, r); err != nil {
		return b, err
	}
	src, dst := r.Source, *r.Destination
	next := b.Clone()
	if src.Group == dst.Group {
		g := &next.Groups[src.Group]
		g.Items = Reorder(g.Items, src.Index, dst.Index)
	} else {
		s, d := Move(next.Groups[src.Group].Items, next.Groups[dst.Group].Items, src.Index, dst.Index)
		next.Groups[src.Group].Items = s
		next.Groups[dst.Group].Items = d
	}
	return Prune(next), nil
}

func validateDrag(b model.Board, r model.DragResult) error {
	src, dst := r.Source, *r.Destination
	if _, ok := b.At(src); !ok {
		return fmt.Errorf("drag source %s: %w", src, ErrOutOfRange)
	}
	if dst.Group < 0 || dst.Group >= len(b.Groups) {
		return fmt.Errorf("drag destination %s: %w", dst, ErrOutOfRange)
	}
	limit := len(b.Groups[dst.Group].Items)
	if dst.Group == src.Group {
		limit--
	}
	if dst.Index < 0 || dst.Index > limit {
		return fmt.Errorf("drag destination %s: %w", dst, ErrOutOfRange)
	}
	return nil
}
