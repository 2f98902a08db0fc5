package schedule

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Entry
		ok    bool
	}{
		{name: "well-formed", input: "Mon 09:00-11:00", want: Entry{"Mon", "09:00", "11:00"}, ok: true},
		{name: "midweek", input: "Wed 14:00-15:00", want: Entry{"Wed", "14:00", "15:00"}, ok: true},
		{name: "sentinel", input: "TBD", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "no separator", input: "Mon 0900 1100", ok: false},
		{name: "day only", input: "Mon", ok: false},
		{name: "day with trailing space", input: "Mon ", ok: false},
		{name: "free text", input: "to be announced", ok: false},
		// Not validated, parsed best-effort: the codec does not police day
		// codes or time ordering.
		{name: "unknown day code", input: "Xyz 09:00-10:00", want: Entry{"Xyz", "09:00", "10:00"}, ok: true},
		{name: "inverted range", input: "Fri 18:00-09:00", want: Entry{"Fri", "18:00", "09:00"}, ok: true},
		{name: "missing end", input: "Tue 09:00-", want: Entry{"Tue", "09:00", ""}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	tests := []struct {
		day, start, end string
	}{
		{"Mon", "08:00", "09:30"},
		{"Tue", "09:00", "10:00"},
		{"Wed", "14:00", "15:00"},
		{"Sun", "21:30", "22:00"},
	}

	for _, tt := range tests {
		s := Format(tt.day, tt.start, tt.end)
		got, ok := Parse(s)
		if !ok {
			t.Fatalf("Parse(Format(%q, %q, %q)) not ok", tt.day, tt.start, tt.end)
		}
		want := Entry{Day: tt.day, Start: tt.start, End: tt.end}
		if got != want {
			t.Errorf("round trip of %q = %+v, want %+v", s, got, want)
		}
		if got.String() != s {
			t.Errorf("Entry.String() = %q, want %q", got.String(), s)
		}
	}
}

func TestEntryCovers(t *testing.T) {
	e := Entry{Day: "Mon", Start: "09:00", End: "11:00"}

	tests := []struct {
		name string
		day  string
		slot string
		want bool
	}{
		{name: "start slot inclusive", day: "Mon", slot: "09:00", want: true},
		{name: "middle slot", day: "Mon", slot: "10:30", want: true},
		{name: "end slot exclusive", day: "Mon", slot: "11:00", want: false},
		{name: "before start", day: "Mon", slot: "08:30", want: false},
		{name: "wrong day", day: "Tue", slot: "09:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Covers(tt.day, tt.slot); got != tt.want {
				t.Errorf("Covers(%q, %q) = %v, want %v", tt.day, tt.slot, got, tt.want)
			}
		})
	}
}

func TestEntryCoversInvertedRangeNeverMatches(t *testing.T) {
	// start > end degenerates to the empty set under the inclusive/exclusive
	// test; the entry is accepted but occupies no slot.
	e := Entry{Day: "Fri", Start: "18:00", End: "09:00"}
	for _, slot := range Slots() {
		if e.Covers("Fri", slot) {
			t.Fatalf("inverted range covers slot %q", slot)
		}
	}
}
