package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/idilsaglam/listboard/internal/model"
)

// JSON seed files describe the board a session starts from. They are read
// once at startup and only written by `listboard seed`; ids are assigned
// at load time so a seed can be reused freely.

type seedItem struct {
	Content string `json:"content"`
}

// ErrNoSeed is returned by Load when the file does not exist.
var ErrNoSeed = errors.New("seed file not found")

// Load reads a seed file and builds a board with fresh ids. Empty groups
// in the file are skipped so the board starts without any.
func Load(path string, newID model.IDFunc) (model.Board, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Board{}, fmt.Errorf("%s: %w", path, ErrNoSeed)
		}
		return model.Board{}, fmt.Errorf("read file: %w", err)
	}
	var groups [][]seedItem
	if err := json.Unmarshal(b, &groups); err != nil {
		return model.Board{}, fmt.Errorf("json unmarshal: %w", err)
	}
	board := model.Board{Groups: make([]model.Group, 0, len(groups))}
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		items := make([]model.Item, 0, len(g))
		for _, it := range g {
			items = append(items, model.Item{ID: newID(), Content: it.Content})
		}
		board.Groups = append(board.Groups, model.NewGroup(newID, items...))
	}
	return board, nil
}

// Save writes the contents of board as a seed file.
func Save(path string, board model.Board) error {
	groups := make([][]seedItem, 0, len(board.Groups))
	for _, g := range board.Groups {
		items := make([]seedItem, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, seedItem{Content: it.Content})
		}
		groups = append(groups, items)
	}
	b, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Generated builds the default board: one group per entry in sizes, item
// numbering continuing across groups.
func Generated(sizes []int, newID model.IDFunc) model.Board {
	board := model.Board{}
	offset := 0
	for _, n := range sizes {
		if n <= 0 {
			continue
		}
		board.Groups = append(board.Groups, model.NewGroup(newID, model.GenerateItems(n, offset, newID)...))
		offset += n
	}
	return board
}
