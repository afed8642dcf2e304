// Package board holds the in-memory board state and the pure functions
// that compute the next board from a drag result.
package board

import (
	"fmt"

	"github.com/idilsaglam/listboard/internal/model"
)

// Store owns the board, the open edit session and the pending new-item
// text. Every mutation swaps in a new Board value; slices returned by
// Board are never written to afterwards.
type Store struct {
	board   model.Board
	edit    *model.EditSession
	pending string
	newID   model.IDFunc
}

// NewStore wraps an initial board. newID must be safe to call for the
// lifetime of the store.
func NewStore(initial model.Board, newID model.IDFunc) *Store {
	return &Store{board: initial.Clone(), newID: newID}
}

// Board returns the current board value.
func (s *Store) Board() model.Board { return s.board }

// Stats reports group and item counts.
func (s *Store) Stats() (groups, items int) {
	return len(s.board.Groups), s.board.ItemCount()
}

// AddGroup appends an empty group. It stays until the next move or delete.
func (s *Store) AddGroup() model.Group {
	g := model.NewGroup(s.newID)
	s.replace(s.withGroup(g))
	return g
}

// AddGeneratedGroup appends a group holding one generated item.
func (s *Store) AddGeneratedGroup() model.Group {
	g := model.NewGroup(s.newID, model.GenerateItems(1, 0, s.newID)...)
	s.replace(s.withGroup(g))
	return g
}

func (s *Store) withGroup(g model.Group) model.Board {
	next := s.board.Clone()
	next.Groups = append(next.Groups, g)
	return next
}

// SetPending sets the new-item input text.
func (s *Store) SetPending(text string) { s.pending = text }

// Pending returns the new-item input text.
func (s *Store) Pending() string { return s.pending }

// AddItem appends an item to the first group, creating that group when
// the board is empty.
func (s *Store) AddItem(content string) model.Item {
	it := model.Item{ID: s.newID(), Content: content}
	next := s.board.Clone()
	if len(next.Groups) == 0 {
		next.Groups = append(next.Groups, model.NewGroup(s.newID))
	}
	next.Groups[0].Items = append(next.Groups[0].Items, it)
	s.replace(next)
	return it
}

// SubmitPending adds the pending text as a new item and clears it.
func (s *Store) SubmitPending() model.Item {
	it := s.AddItem(s.pending)
	s.pending = ""
	return it
}

// BeginEdit opens an edit on the item at (groupIndex, itemIndex), seeded
// with its content. Any open edit is discarded.
func (s *Store) BeginEdit(groupIndex, itemIndex int) error {
	loc := model.Location{Group: groupIndex, Index: itemIndex}
	it, ok := s.board.At(loc)
	if !ok {
		return fmt.Errorf("begin edit at %s: %w", loc, ErrOutOfRange)
	}
	s.edit = &model.EditSession{
		GroupID: s.board.Groups[groupIndex].ID,
		ItemID:  it.ID,
		Draft:   it.Content,
	}
	return nil
}

// UpdateDraft replaces the draft of the open edit.
func (s *Store) UpdateDraft(text string) error {
	if s.edit == nil {
		return ErrNoEdit
	}
	s.edit.Draft = text
	return nil
}

// Editing returns the open edit session, if any.
func (s *Store) Editing() (model.EditSession, bool) {
	if s.edit == nil {
		return model.EditSession{}, false
	}
	return *s.edit, true
}

// CommitEdit writes the draft into the item under edit and closes the
// session. The item is found by id wherever it now lives; if it no
// longer exists the session is dropped and nothing is written.
func (s *Store) CommitEdit() bool {
	if s.edit == nil {
		return false
	}
	sess := *s.edit
	s.edit = nil
	loc, ok := s.locate(sess)
	if !ok {
		return false
	}
	next := s.board.Clone()
	next.Groups[loc.Group].Items[loc.Index].Content = sess.Draft
	s.replace(next)
	return true
}

// CancelEdit closes the session without writing.
func (s *Store) CancelEdit() { s.edit = nil }

// Mode reports whether itemID is being viewed or edited.
func (s *Store) Mode(itemID string) model.ItemMode {
	if s.edit == nil || s.edit.ItemID != itemID {
		return model.Viewing
	}
	return model.Editing(s.edit.Draft)
}

// locate resolves a session against the current board, preferring the
// recorded group and falling back to a full scan when the item moved.
func (s *Store) locate(sess model.EditSession) (model.Location, bool) {
	for gi, g := range s.board.Groups {
		if g.ID != sess.GroupID {
			continue
		}
		for ii, it := range g.Items {
			if it.ID == sess.ItemID {
				return model.Location{Group: gi, Index: ii}, true
			}
		}
	}
	return s.board.Find(sess.ItemID)
}

// DeleteItem removes the item at (groupIndex, itemIndex) and prunes any
// group left empty.
func (s *Store) DeleteItem(groupIndex, itemIndex int) (model.Item, error) {
	loc := model.Location{Group: groupIndex, Index: itemIndex}
	it, ok := s.board.At(loc)
	if !ok {
		return model.Item{}, fmt.Errorf("delete at %s: %w", loc, ErrOutOfRange)
	}
	next := s.board.Clone()
	items := next.Groups[groupIndex].Items
	next.Groups[groupIndex].Items = append(items[:itemIndex:itemIndex], items[itemIndex+1:]...)
	s.replace(Prune(next))
	return it, nil
}

// ApplyDrag replaces the board with the result of a drag. A cancelled
// drag leaves it unchanged.
func (s *Store) ApplyDrag(r model.DragResult) error {
	next, err := ApplyDrag(s.board, r)
	if err != nil {
		return err
	}
	s.replace(next)
	return nil
}

func (s *Store) replace(next model.Board) {
	s.board = next
	if s.edit == nil {
		return
	}
	loc, ok := s.locate(*s.edit)
	if !ok {
		s.edit = nil
		return
	}
	s.edit.GroupID = next.Groups[loc.Group].ID
}
