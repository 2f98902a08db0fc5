package schedule

import "testing"

type callbackRecorder struct {
	calls []struct {
		sectionID uint
		schedule  string
	}
}

func (r *callbackRecorder) record(sectionID uint, schedule string) {
	r.calls = append(r.calls, struct {
		sectionID uint
		schedule  string
	}{sectionID, schedule})
}

func loadedEditor(rec *callbackRecorder) *Editor {
	ed := NewEditor(rec.record, nil)
	ed.Load([]Section{
		{ID: 1, Name: "Math A", Schedule: "TBD"},
		{ID: 2, Name: "Physics B", Schedule: "Wed 14:00-15:00"},
	})
	return ed
}

func TestEditorOpenSeedsDefaults(t *testing.T) {
	ed := loadedEditor(&callbackRecorder{})

	if !ed.Open(1) {
		t.Fatal("Open(1) = false for unscheduled section")
	}
	if ed.State() != Editing {
		t.Errorf("state = %v, want Editing", ed.State())
	}
	if ed.Editing().ID != 1 {
		t.Errorf("editing section %d, want 1", ed.Editing().ID)
	}
	want := Form{Day: Days[0], Start: "09:00", End: "10:00"}
	if ed.Form != want {
		t.Errorf("form = %+v, want %+v", ed.Form, want)
	}
}

func TestEditorOpenRejectsScheduledSection(t *testing.T) {
	ed := loadedEditor(&callbackRecorder{})

	if ed.Open(2) {
		t.Error("Open(2) = true for a section that already has a schedule")
	}
	if ed.State() != Idle {
		t.Errorf("state = %v, want Idle", ed.State())
	}
}

func TestEditorSaveIsSynchronouslyVisible(t *testing.T) {
	rec := &callbackRecorder{}
	ed := loadedEditor(rec)

	ed.Open(1)
	ed.Form = Form{Day: "Mon", Start: "09:00", End: "11:00"}
	if !ed.Save() {
		t.Fatal("Save() = false")
	}

	// The grid reflects the change before any server response: the section has
	// left the unscheduled list and occupies its cells.
	for _, s := range ed.Unscheduled() {
		if s.ID == 1 {
			t.Error("saved section still in unscheduled list")
		}
	}
	if !cellHas(ed.Cell("Mon", "09:00"), 1) {
		t.Error("saved entry missing from its start cell")
	}
	if !cellHas(ed.Cell("Mon", "10:30"), 1) {
		t.Error("saved entry missing from its last covered cell")
	}
	if cellHas(ed.Cell("Mon", "11:00"), 1) {
		t.Error("saved entry present in its exclusive end cell")
	}

	if len(rec.calls) != 1 {
		t.Fatalf("update callback fired %d times, want 1", len(rec.calls))
	}
	if rec.calls[0].sectionID != 1 || rec.calls[0].schedule != "Mon 09:00-11:00" {
		t.Errorf("callback = %+v, want (1, %q)", rec.calls[0], "Mon 09:00-11:00")
	}
	if ed.State() != Idle {
		t.Errorf("state after save = %v, want Idle", ed.State())
	}
}

func TestEditorCancelHasNoSideEffects(t *testing.T) {
	rec := &callbackRecorder{}
	ed := loadedEditor(rec)

	ed.Open(1)
	ed.Cancel()

	if ed.State() != Idle {
		t.Errorf("state = %v, want Idle", ed.State())
	}
	if len(rec.calls) != 0 {
		t.Errorf("callback fired %d times on cancel, want 0", len(rec.calls))
	}
	if len(ed.Unscheduled()) != 1 {
		t.Errorf("unscheduled list changed on cancel: %+v", ed.Unscheduled())
	}
}

func TestEditorRemove(t *testing.T) {
	rec := &callbackRecorder{}
	ed := loadedEditor(rec)

	if !ed.Remove(2) {
		t.Fatal("Remove(2) = false")
	}

	if cellHas(ed.Cell("Wed", "14:00"), 2) {
		t.Error("removed entry still occupies its cell")
	}
	found := false
	for _, s := range ed.Unscheduled() {
		if s.ID == 2 {
			found = true
		}
	}
	if !found {
		t.Error("removed section not re-added to unscheduled list")
	}
	if len(rec.calls) != 1 {
		t.Fatalf("update callback fired %d times, want exactly 1", len(rec.calls))
	}
	if rec.calls[0].sectionID != 2 || rec.calls[0].schedule != Unscheduled {
		t.Errorf("callback = %+v, want (2, %q)", rec.calls[0], Unscheduled)
	}
}

func TestEditorRemoveUnknownSection(t *testing.T) {
	rec := &callbackRecorder{}
	ed := loadedEditor(rec)

	if ed.Remove(99) {
		t.Error("Remove(99) = true for unknown section")
	}
	if len(rec.calls) != 0 {
		t.Errorf("callback fired %d times, want 0", len(rec.calls))
	}
}

func TestEditorLoadRebuildsFromScratch(t *testing.T) {
	rec := &callbackRecorder{}
	ed := loadedEditor(rec)

	ed.Open(1)
	ed.Form = Form{Day: "Mon", Start: "09:00", End: "10:00"}
	ed.Save()

	// A wholesale refresh overwrites optimistic local state with whatever the
	// caller hands in, including server truth that never saw the save.
	ed.Load([]Section{
		{ID: 1, Name: "Math A", Schedule: "TBD"},
	})

	if len(ed.Entries()) != 0 {
		t.Errorf("entries after reload = %+v, want none", ed.Entries())
	}
	if len(ed.Unscheduled()) != 1 || ed.Unscheduled()[0].ID != 1 {
		t.Errorf("unscheduled after reload = %+v, want section 1", ed.Unscheduled())
	}
	if ed.State() != Idle {
		t.Errorf("state after reload = %v, want Idle", ed.State())
	}
}
