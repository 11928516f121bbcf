package container

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/farmhand/go-automate/internal/item"
	"github.com/farmhand/go-automate/internal/storage"
	"github.com/farmhand/go-automate/internal/world"
)

func testItems(t *testing.T) storage.Storer[*item.Definition] {
	t.Helper()

	items := storage.NewMemStore[*item.Definition]()
	for id, def := range map[storage.Identifier]*item.Definition{
		"grape": {Name: "Grape", MaxStack: 10},
		"wine":  {Name: "Wine", MaxStack: 1},
	} {
		if err := items.Save(id, def); err != nil {
			t.Fatalf("saving item %q: %v", id, err)
		}
	}
	return items
}

func testChest(t *testing.T, slots int, contents ...*item.Stack) *Chest {
	t.Helper()

	ent := world.NewEntity(world.KindChest, world.Tile{X: 0, Y: 0})
	ent.Slots = slots
	ent.Contents = contents
	return NewChest(ent, testItems(t))
}

func TestChest_TryPush(t *testing.T) {
	tests := map[string]struct {
		chest     *Chest
		push      *item.Stack
		expOk     bool
		expStacks int
	}{
		"into free slot": {
			chest:     testChest(t, 2),
			push:      item.NewStack("grape", 3),
			expOk:     true,
			expStacks: 1,
		},
		"tops up existing stack": {
			chest:     testChest(t, 1, item.NewStack("grape", 4)),
			push:      item.NewStack("grape", 3),
			expOk:     true,
			expStacks: 1,
		},
		"existing stack full, free slot": {
			chest:     testChest(t, 2, item.NewStack("grape", 9)),
			push:      item.NewStack("grape", 3),
			expOk:     true,
			expStacks: 2,
		},
		"existing stack full, no free slot": {
			chest:     testChest(t, 1, item.NewStack("grape", 9)),
			push:      item.NewStack("grape", 3),
			expOk:     false,
			expStacks: 1,
		},
		"no slots at all": {
			chest:     testChest(t, 0),
			push:      item.NewStack("wine", 1),
			expOk:     false,
			expStacks: 0,
		},
		"nil stack": {
			chest:     testChest(t, 2),
			push:      nil,
			expOk:     false,
			expStacks: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ok := tt.chest.TryPush(tt.push)

			testutil.AssertEqual(t, "pushed", ok, tt.expOk)
			testutil.AssertEqual(t, "stacks", len(tt.chest.Entity().Contents), tt.expStacks)
		})
	}
}

func TestChest_TryPush_IsAtomic(t *testing.T) {
	// Two grape stacks with 1 space each: a push of 2 must not be split.
	chest := testChest(t, 2, item.NewStack("grape", 9), item.NewStack("grape", 9))

	ok := chest.TryPush(item.NewStack("grape", 2))

	testutil.AssertEqual(t, "pushed", ok, false)
	testutil.AssertEqual(t, "first stack", chest.Entity().Contents[0].Qty, 9)
	testutil.AssertEqual(t, "second stack", chest.Entity().Contents[1].Qty, 9)
}

func TestChest_TryPush_ClonesStack(t *testing.T) {
	chest := testChest(t, 1)
	pushed := item.NewStack("grape", 3)

	if !chest.TryPush(pushed) {
		t.Fatal("expected push to succeed")
	}

	pushed.Qty = 99
	testutil.AssertEqual(t, "stored qty", chest.Entity().Contents[0].Qty, 3)
}

func TestChest_TakeMatching(t *testing.T) {
	tests := map[string]struct {
		chest   *Chest
		id      item.ID
		qty     int
		expOk   bool
		expLeft int
	}{
		"takes from matching stack": {
			chest:   testChest(t, 2, item.NewStack("grape", 5)),
			id:      "grape",
			qty:     2,
			expOk:   true,
			expLeft: 3,
		},
		"drains stack completely": {
			chest:   testChest(t, 2, item.NewStack("grape", 2)),
			id:      "grape",
			qty:     2,
			expOk:   true,
			expLeft: 0,
		},
		"no matching item": {
			chest: testChest(t, 2, item.NewStack("wine", 1)),
			id:    "grape",
			qty:   1,
			expOk: false,
		},
		"stack too small": {
			chest: testChest(t, 2, item.NewStack("grape", 1)),
			id:    "grape",
			qty:   2,
			expOk: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.chest.TakeMatching(tt.id, tt.qty)

			if !tt.expOk {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a stack back")
			}
			testutil.AssertEqual(t, "taken item", got.Item, tt.id)
			testutil.AssertEqual(t, "taken qty", got.Qty, tt.qty)

			left := 0
			for _, st := range tt.chest.Entity().Contents {
				left += st.Qty
			}
			testutil.AssertEqual(t, "remaining", left, tt.expLeft)
			if tt.expLeft == 0 {
				testutil.AssertEqual(t, "emptied slot freed", len(tt.chest.Entity().Contents), 0)
			}
		})
	}
}

func TestGroup_PushPriority(t *testing.T) {
	full := testChest(t, 1, item.NewStack("wine", 1))
	empty := testChest(t, 1)
	g := NewGroup(full, empty)

	ok := g.TryPush(item.NewStack("wine", 1))

	testutil.AssertEqual(t, "pushed", ok, true)
	testutil.AssertEqual(t, "full chest untouched", full.Entity().Contents[0].Qty, 1)
	testutil.AssertEqual(t, "landed in second", len(empty.Entity().Contents), 1)
}

func TestGroup_TakePriority(t *testing.T) {
	first := testChest(t, 1, item.NewStack("grape", 5))
	second := testChest(t, 1, item.NewStack("grape", 5))
	g := NewGroup(first, second)

	got := g.TakeMatching("grape", 2)

	if got == nil {
		t.Fatal("expected a stack back")
	}
	testutil.AssertEqual(t, "first chest drained", first.Entity().Contents[0].Qty, 3)
	testutil.AssertEqual(t, "second chest untouched", second.Entity().Contents[0].Qty, 5)
}

func TestGroup_NilIsNoop(t *testing.T) {
	var g *Group

	testutil.AssertEqual(t, "len", g.Len(), 0)
	testutil.AssertEqual(t, "push", g.TryPush(item.NewStack("wine", 1)), false)
	if g.TakeMatching("grape", 1) != nil {
		t.Error("expected nil from empty group")
	}
}
