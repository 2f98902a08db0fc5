package schedule

import "testing"

func TestSlots(t *testing.T) {
	slots := Slots()
	if len(slots) != 28 {
		t.Fatalf("len(Slots()) = %d, want 28", len(slots))
	}
	if slots[0] != "08:00" {
		t.Errorf("first slot = %q, want %q", slots[0], "08:00")
	}
	if slots[len(slots)-1] != "21:30" {
		t.Errorf("last slot = %q, want %q", slots[len(slots)-1], "21:30")
	}
	for _, s := range slots {
		if s == "22:00" {
			t.Error("22:00 is the end boundary, not a slot row")
		}
	}
}

func cellHas(entries []SectionEntry, sectionID uint) bool {
	for _, e := range entries {
		if e.SectionID == sectionID {
			return true
		}
	}
	return false
}

func TestGridCellMembership(t *testing.T) {
	g := NewGrid([]Section{
		{ID: 1, Name: "Math A", Schedule: "Mon 09:00-11:00"},
	})

	tests := []struct {
		name string
		day  string
		slot string
		want bool
	}{
		{name: "first covered slot", day: "Mon", slot: "09:00", want: true},
		{name: "middle slot", day: "Mon", slot: "09:30", want: true},
		{name: "last covered slot", day: "Mon", slot: "10:30", want: true},
		{name: "end boundary excluded", day: "Mon", slot: "11:00", want: false},
		{name: "before start", day: "Mon", slot: "08:30", want: false},
		{name: "other day", day: "Tue", slot: "09:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellHas(g.Cell(tt.day, tt.slot), 1); got != tt.want {
				t.Errorf("Cell(%q, %q) contains section 1: %v, want %v", tt.day, tt.slot, got, tt.want)
			}
		})
	}
}

func TestGridStackedEntriesInOneCell(t *testing.T) {
	// Two sections in the same cell are both listed; the grid does not try to
	// detect or resolve the overlap.
	g := NewGrid([]Section{
		{ID: 1, Name: "Math A", Schedule: "Mon 09:00-10:00"},
		{ID: 2, Name: "Physics B", Schedule: "Mon 09:00-11:00"},
	})

	cell := g.Cell("Mon", "09:00")
	if len(cell) != 2 {
		t.Fatalf("len(Cell) = %d, want 2", len(cell))
	}
	if !cellHas(cell, 1) || !cellHas(cell, 2) {
		t.Errorf("cell missing an expected section: %+v", cell)
	}
}

func TestGridUnscheduledSet(t *testing.T) {
	g := NewGrid([]Section{
		{ID: 1, Name: "Math A", Schedule: "TBD"},
		{ID: 2, Name: "Physics B", Schedule: "Wed 14:00-15:00"},
		{ID: 3, Name: "French C", Schedule: ""},
		{ID: 4, Name: "Arabic D", Schedule: "sometime soon"},
	})

	un := g.Unscheduled()
	if len(un) != 3 {
		t.Fatalf("len(Unscheduled) = %d, want 3", len(un))
	}
	for _, s := range un {
		if s.ID == 2 {
			t.Error("scheduled section 2 reported as unscheduled")
		}
	}
	if len(g.Entries()) != 1 || g.Entries()[0].SectionID != 2 {
		t.Errorf("Entries() = %+v, want only section 2", g.Entries())
	}
}

func TestGridEmptyCell(t *testing.T) {
	g := NewGrid([]Section{
		{ID: 2, Name: "Physics B", Schedule: "Wed 14:00-15:00"},
	})
	if cell := g.Cell("Mon", "09:00"); len(cell) != 0 {
		t.Errorf("empty cell returned %+v", cell)
	}
}
