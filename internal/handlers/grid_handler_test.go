package handlers

import (
	"testing"

	"github.com/nori1432/Laws-sub002/internal/schedule"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare object", input: `{"suggestions":["Mon 18:00-19:00"]}`, want: `{"suggestions":["Mon 18:00-19:00"]}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding prose", input: `Here you go: {"a":1} hope it helps`, want: `{"a":1}`},
		{name: "no object", input: "sorry, cannot help", want: ""},
		{name: "truncated object", input: `{"a":`, want: ""},
		{name: "invalid json between braces", input: `{not json}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	existing := []schedule.SectionEntry{
		{SectionID: 1, Entry: schedule.Entry{Day: "Mon", Start: "09:00", End: "11:00"}},
	}

	tests := []struct {
		name string
		e    schedule.Entry
		want bool
	}{
		{name: "same slot", e: schedule.Entry{Day: "Mon", Start: "09:00", End: "10:00"}, want: true},
		{name: "partial overlap", e: schedule.Entry{Day: "Mon", Start: "10:30", End: "12:00"}, want: true},
		{name: "adjacent after", e: schedule.Entry{Day: "Mon", Start: "11:00", End: "12:00"}, want: false},
		{name: "adjacent before", e: schedule.Entry{Day: "Mon", Start: "08:00", End: "09:00"}, want: false},
		{name: "other day", e: schedule.Entry{Day: "Tue", Start: "09:00", End: "11:00"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collides(tt.e, existing); got != tt.want {
				t.Errorf("collides(%+v) = %v, want %v", tt.e, got, tt.want)
			}
		})
	}
}
