package schedule

import "fmt"

// The weekly grid is a fixed window of half-hour rows between GridStart and
// GridEnd across the seven day columns.
const (
	GridStart   = 8 * 60  // 08:00, minutes since midnight
	GridEnd     = 22 * 60 // 22:00, exclusive end boundary
	SlotMinutes = 30
)

// Slots returns the row labels of the grid: "08:00", "08:30", ... "21:30".
// 22:00 is the end boundary of the last slot, not a row of its own.
func Slots() []string {
	var out []string
	for m := GridStart; m < GridEnd; m += SlotMinutes {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out
}

// Section is the slice of a course section the scheduler works with. The
// section list is owned by the caller and passed in wholesale; the scheduler
// never persists it.
type Section struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Schedule string `json:"schedule"`
}

// SectionEntry ties a parsed entry back to its owning section. Entries are
// ephemeral: the set is rebuilt from scratch whenever the section list changes.
type SectionEntry struct {
	SectionID   uint   `json:"sectionId"`
	SectionName string `json:"sectionName"`
	Entry
}

// Grid indexes the parsed entries of a section list and answers per-cell
// membership queries for the weekly display window.
type Grid struct {
	entries     []SectionEntry
	unscheduled []Section
}

// NewGrid parses every section's schedule string. Sections whose string parses
// to nothing (the sentinel, an empty value, or a malformed string) land in the
// unscheduled set instead of the entry set.
func NewGrid(sections []Section) *Grid {
	g := &Grid{}
	for _, s := range sections {
		e, ok := Parse(s.Schedule)
		if !ok {
			g.unscheduled = append(g.unscheduled, s)
			continue
		}
		g.entries = append(g.entries, SectionEntry{SectionID: s.ID, SectionName: s.Name, Entry: e})
	}
	return g
}

// Cell returns the entries active in the half-hour slot starting at t on the
// given day, in section-list order. A linear scan per cell is fine here: the
// entry count is bounded by the number of sections, not a stream.
func (g *Grid) Cell(day, t string) []SectionEntry {
	var out []SectionEntry
	for _, e := range g.entries {
		if e.Covers(day, t) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns all parsed entries.
func (g *Grid) Entries() []SectionEntry {
	return g.entries
}

// Unscheduled returns the sections that have no parseable schedule.
func (g *Grid) Unscheduled() []Section {
	return g.unscheduled
}
