package schedule

import "strings"

// Unscheduled is the sentinel stored on a section that has no weekly slot yet.
const Unscheduled = "TBD"

// Days lists the recognized day codes in display order (first code seeds the
// editor form default).
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Entry is the parsed form of a section's schedule string. Start and End are
// "HH:MM" wall-clock strings; zero-padded times compare correctly as strings.
type Entry struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Parse decodes a schedule string of the form "Day HH:MM-HH:MM". The
// Unscheduled sentinel, an empty string, or anything missing the time-range
// separator yields ok=false. Malformed input never produces an error: corrupt
// schedule data must degrade to "unscheduled", not break the grid.
func Parse(s string) (Entry, bool) {
	if s == "" || s == Unscheduled {
		return Entry{}, false
	}
	day, times, _ := strings.Cut(s, " ")
	start, end, found := strings.Cut(times, "-")
	if !found {
		return Entry{}, false
	}
	return Entry{Day: day, Start: start, End: end}, true
}

// Format encodes a (day, start, end) triple as a schedule string. It is the
// inverse of Parse for well-formed triples. No validation is performed: the
// arguments are concatenated as-is.
func Format(day, start, end string) string {
	return day + " " + start + "-" + end
}

// String returns the entry in its wire form.
func (e Entry) String() string {
	return Format(e.Day, e.Start, e.End)
}

// Covers reports whether the entry occupies the half-hour slot beginning at t
// on the given day. The start boundary is inclusive and the end boundary is
// exclusive: a section ending at 11:00 does not occupy the 11:00 slot, one
// starting at 11:00 does.
func (e Entry) Covers(day, t string) bool {
	return e.Day == day && e.Start <= t && e.End > t
}
