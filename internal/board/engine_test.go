package board

import (
	"errors"
	"reflect"
	"testing"

	"github.com/idilsaglam/listboard/internal/model"
)

func items(ids ...string) []model.Item {
	out := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Item{ID: id, Content: id})
	}
	return out
}

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func boardOf(groups ...[]model.Item) model.Board {
	b := model.Board{}
	for i, g := range groups {
		b.Groups = append(b.Groups, model.Group{ID: "g" + string(rune('a'+i)), Items: g})
	}
	return b
}

func boardIDs(b model.Board) [][]string {
	out := make([][]string, 0, len(b.Groups))
	for _, g := range b.Groups {
		out = append(out, ids(g.Items))
	}
	return out
}

func drag(sg, si, dg, di int) model.DragResult {
	return model.DragResult{
		Source:      model.Location{Group: sg, Index: si},
		Destination: &model.Location{Group: dg, Index: di},
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward", from: 0, to: 2, want: []string{"b", "c", "a"}},
		{name: "backward", from: 2, to: 0, want: []string{"c", "a", "b"}},
		{name: "middle", from: 1, to: 2, want: []string{"a", "c", "b"}},
		{name: "same position", from: 1, to: 1, want: []string{"a", "b", "c"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := items("a", "b", "c")
			got := ids(Reorder(in, tc.from, tc.to))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Reorder(%d, %d) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
			if !reflect.DeepEqual(ids(in), []string{"a", "b", "c"}) {
				t.Fatalf("input mutated: %v", ids(in))
			}
		})
	}
}

func TestMoveLeavesInputsUntouched(t *testing.T) {
	src, dst := items("a", "b"), items("c")
	s, d := Move(src, dst, 0, 1)
	if !reflect.DeepEqual(ids(s), []string{"b"}) || !reflect.DeepEqual(ids(d), []string{"c", "a"}) {
		t.Fatalf("unexpected move result src=%v dst=%v", ids(s), ids(d))
	}
	if len(src) != 2 || len(dst) != 1 || src[0].ID != "a" {
		t.Fatalf("inputs mutated src=%v dst=%v", ids(src), ids(dst))
	}
}

func TestApplyDragCrossGroup(t *testing.T) {
	b := boardOf(items("i0", "i1", "i2"), items("i3", "i4"))
	got, err := ApplyDrag(b, drag(0, 1, 1, 0))
	if err != nil {
		t.Fatalf("ApplyDrag() error = %v", err)
	}
	want := [][]string{{"i0", "i2"}, {"i1", "i3", "i4"}}
	if !reflect.DeepEqual(boardIDs(got), want) {
		t.Fatalf("ApplyDrag() = %v, want %v", boardIDs(got), want)
	}
	if got.ItemCount() != b.ItemCount() {
		t.Fatalf("item count changed %d -> %d", b.ItemCount(), got.ItemCount())
	}
	if !reflect.DeepEqual(boardIDs(b), [][]string{{"i0", "i1", "i2"}, {"i3", "i4"}}) {
		t.Fatalf("input board mutated: %v", boardIDs(b))
	}
}

func TestApplyDragPrunesEmptiedGroup(t *testing.T) {
	b := boardOf(items("a"), items("b"), items("c"))
	got, err := ApplyDrag(b, drag(0, 0, 2, 1))
	if err != nil {
		t.Fatalf("ApplyDrag() error = %v", err)
	}
	want := [][]string{{"b"}, {"c", "a"}}
	if !reflect.DeepEqual(boardIDs(got), want) {
		t.Fatalf("ApplyDrag() = %v, want %v", boardIDs(got), want)
	}
	if got.Groups[0].ID != "gb" || got.Groups[1].ID != "gc" {
		t.Fatalf("group ids not preserved: %q %q", got.Groups[0].ID, got.Groups[1].ID)
	}
}

func TestApplyDragReorderPrunesStrayEmptyGroup(t *testing.T) {
	b := boardOf(items("a", "b"), nil)
	got, err := ApplyDrag(b, drag(0, 0, 0, 1))
	if err != nil {
		t.Fatalf("ApplyDrag() error = %v", err)
	}
	if !reflect.DeepEqual(boardIDs(got), [][]string{{"b", "a"}}) {
		t.Fatalf("ApplyDrag() = %v", boardIDs(got))
	}
}

func TestApplyDragIntoEmptyGroup(t *testing.T) {
	b := boardOf(items("a", "b"), nil)
	got, err := ApplyDrag(b, drag(0, 1, 1, 0))
	if err != nil {
		t.Fatalf("ApplyDrag() error = %v", err)
	}
	if !reflect.DeepEqual(boardIDs(got), [][]string{{"a"}, {"b"}}) {
		t.Fatalf("ApplyDrag() = %v", boardIDs(got))
	}
}

func TestApplyDragSamePositionIsIdentity(t *testing.T) {
	b := boardOf(items("a", "b", "c"), items("d"))
	got, err := ApplyDrag(b, drag(0, 1, 0, 1))
	if err != nil {
		t.Fatalf("ApplyDrag() error = %v", err)
	}
	if !reflect.DeepEqual(got, b) {
		t.Fatalf("expected deep-equal board, got %#v", got)
	}
}

func TestApplyDragCancelled(t *testing.T) {
	b := boardOf(items("a", "b"))
	got, err := ApplyDrag(b, model.DragResult{Source: model.Location{Group: 0, Index: 0}})
	if err != nil {
		t.Fatalf("ApplyDrag() error = %v", err)
	}
	if !reflect.DeepEqual(got, b) {
		t.Fatalf("cancelled drag changed board: %v", boardIDs(got))
	}
}

func TestApplyDragRejectsInvalidCoordinates(t *testing.T) {
	b := boardOf(items("a", "b"), items("c"))
	tests := []struct {
		name string
		r    model.DragResult
	}{
		{name: "source group", r: drag(5, 0, 0, 0)},
		{name: "source index", r: drag(0, 2, 1, 0)},
		{name: "destination group", r: drag(0, 0, 2, 0)},
		{name: "destination past end", r: drag(0, 0, 1, 2)},
		{name: "same group past end", r: drag(0, 0, 0, 2)},
		{name: "negative", r: drag(0, 0, 1, -1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyDrag(b, tc.r)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
			if !reflect.DeepEqual(got, b) {
				t.Fatalf("board changed on error: %v", boardIDs(got))
			}
		})
	}
}

func TestPrune(t *testing.T) {
	b := boardOf(nil, items("a"), nil, items("b"))
	got := Prune(b)
	if !reflect.DeepEqual(boardIDs(got), [][]string{{"a"}, {"b"}}) {
		t.Fatalf("Prune() = %v", boardIDs(got))
	}
	if len(Prune(model.Board{}).Groups) != 0 {
		t.Fatal("expected empty board to stay empty")
	}
}
