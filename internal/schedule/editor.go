package schedule

// UpdateFunc is invoked with the section id and its new schedule string (or
// the Unscheduled sentinel) whenever a schedule is added or removed. The
// callback owns persistence; the editor fires it and moves on without waiting
// for the result.
type UpdateFunc func(sectionID uint, scheduleStr string)

// SectionFunc is part of the editor contract for parity with the hosting page.
// The editor itself never calls it.
type SectionFunc func(s Section)

// State is the editor's UI state.
type State int

const (
	Idle State = iota
	Editing
)

// Form holds the values of the schedule entry form while a section is being
// edited.
type Form struct {
	Day   string
	Start string
	End   string
}

// Default form values for a freshly opened editor.
const (
	defaultStart = "09:00"
	defaultEnd   = "10:00"
)

// Editor drives the add/remove-schedule workflow over an externally owned
// section list. All mutation is local and synchronous; the injected callbacks
// are the only side channel.
type Editor struct {
	state   State
	editing Section
	Form    Form

	sections    []Section
	entries     []SectionEntry
	unscheduled []Section

	onSchedule UpdateFunc
	onSection  SectionFunc
}

// NewEditor builds an editor around the two injected callbacks. Either may be
// nil, in which case the corresponding notification is dropped.
func NewEditor(onSchedule UpdateFunc, onSection SectionFunc) *Editor {
	return &Editor{onSchedule: onSchedule, onSection: onSection}
}

// Load replaces the section list and rebuilds the derived entry and
// unscheduled sets from scratch. An open edit form is discarded: the list it
// was based on no longer exists.
func (ed *Editor) Load(sections []Section) {
	ed.sections = sections
	ed.entries = nil
	ed.unscheduled = nil
	for _, s := range sections {
		e, ok := Parse(s.Schedule)
		if !ok {
			ed.unscheduled = append(ed.unscheduled, s)
			continue
		}
		ed.entries = append(ed.entries, SectionEntry{SectionID: s.ID, SectionName: s.Name, Entry: e})
	}
	ed.state = Idle
	ed.editing = Section{}
}

// State returns the current editor state.
func (ed *Editor) State() State {
	return ed.state
}

// Editing returns the section an open form is targeting. Only meaningful while
// State() == Editing.
func (ed *Editor) Editing() Section {
	return ed.editing
}

// Open begins editing an unscheduled section and seeds the form with the
// default day and time range. It reports false, leaving the state untouched,
// if the section is not in the unscheduled set.
func (ed *Editor) Open(sectionID uint) bool {
	for _, s := range ed.unscheduled {
		if s.ID == sectionID {
			ed.state = Editing
			ed.editing = s
			ed.Form = Form{Day: Days[0], Start: defaultStart, End: defaultEnd}
			return true
		}
	}
	return false
}

// Cancel abandons an open form without side effects.
func (ed *Editor) Cancel() {
	ed.state = Idle
	ed.editing = Section{}
}

// Save commits the open form: it formats the schedule string, hands it to the
// update callback for persistence, and optimistically inserts the entry into
// local state so the grid reflects the change before any server round-trip
// completes. There is no rollback path if persistence later fails; the next
// Load overwrites local state with server truth.
func (ed *Editor) Save() bool {
	if ed.state != Editing {
		return false
	}
	s := ed.editing
	str := Format(ed.Form.Day, ed.Form.Start, ed.Form.End)
	if ed.onSchedule != nil {
		ed.onSchedule(s.ID, str)
	}
	ed.entries = append(ed.entries, SectionEntry{
		SectionID:   s.ID,
		SectionName: s.Name,
		Entry:       Entry{Day: ed.Form.Day, Start: ed.Form.Start, End: ed.Form.End},
	})
	ed.dropUnscheduled(s.ID)
	ed.state = Idle
	ed.editing = Section{}
	return true
}

// Remove deletes a section's entry from local state immediately and notifies
// the update callback with the Unscheduled sentinel, exactly once. It reports
// false if the section has no entry.
func (ed *Editor) Remove(sectionID uint) bool {
	for i, e := range ed.entries {
		if e.SectionID == sectionID {
			ed.entries = append(ed.entries[:i], ed.entries[i+1:]...)
			ed.unscheduled = append(ed.unscheduled, Section{
				ID:       sectionID,
				Name:     e.SectionName,
				Schedule: Unscheduled,
			})
			if ed.onSchedule != nil {
				ed.onSchedule(sectionID, Unscheduled)
			}
			return true
		}
	}
	return false
}

// Cell returns the entries active in the given cell, including any optimistic
// inserts that have not round-tripped through the server yet.
func (ed *Editor) Cell(day, t string) []SectionEntry {
	var out []SectionEntry
	for _, e := range ed.entries {
		if e.Covers(day, t) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns the current entry set.
func (ed *Editor) Entries() []SectionEntry {
	return ed.entries
}

// Unscheduled returns the sections currently without a schedule.
func (ed *Editor) Unscheduled() []Section {
	return ed.unscheduled
}

func (ed *Editor) dropUnscheduled(sectionID uint) {
	for i, s := range ed.unscheduled {
		if s.ID == sectionID {
			ed.unscheduled = append(ed.unscheduled[:i], ed.unscheduled[i+1:]...)
			return
		}
	}
}
