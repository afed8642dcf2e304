package dnd

import "github.com/idilsaglam/listboard/internal/model"

// Layout describes where columns and tiles sit on screen so pointer
// coordinates can be mapped back to board slots.
type Layout struct {
	Top        int // first screen row of the column boxes
	ColumnGap  int
	ColumnW    int // outer width of a column box
	HeaderRows int // rows inside a column before the first tile
	TileHeight int
}

// Column returns the group under screen column x.
func (l Layout) Column(x, groups int) (int, bool) {
	if x < 0 || l.ColumnW <= 0 {
		return 0, false
	}
	stride := l.ColumnW + l.ColumnGap
	g := x / stride
	if g >= groups || x-g*stride >= l.ColumnW {
		return 0, false
	}
	return g, true
}

// Tile returns the item under (x, y), if the pointer is on one.
func (l Layout) Tile(x, y int, sizes []int) (model.Location, bool) {
	g, ok := l.Column(x, len(sizes))
	if !ok {
		return model.Location{}, false
	}
	row := y - l.Top - l.HeaderRows
	if row < 0 || l.TileHeight <= 0 {
		return model.Location{}, false
	}
	idx := row / l.TileHeight
	if idx >= sizes[g] {
		return model.Location{}, false
	}
	return model.Location{Group: g, Index: idx}, true
}

// Slot returns the drop slot under (x, y) while dragging from src.
// Anywhere inside a column is droppable; positions past the last tile
// clamp to the end of the column.
func (l Layout) Slot(x, y int, sizes []int, src model.Location) (model.Location, bool) {
	g, ok := l.Column(x, len(sizes))
	if !ok || y < l.Top {
		return model.Location{}, false
	}
	idx := 0
	if row := y - l.Top - l.HeaderRows; row > 0 && l.TileHeight > 0 {
		idx = row / l.TileHeight
	}
	hi := sizes[g]
	if g == src.Group {
		hi--
	}
	return model.Location{Group: g, Index: clamp(idx, 0, hi)}, true
}
