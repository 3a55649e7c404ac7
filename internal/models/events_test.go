package models

import (
	"encoding/json"
	"testing"
)

func TestEventMatches(t *testing.T) {
	jazz := Event{Title: "Jazz Night", Description: "Live music", Status: StatusOngoing}

	if !jazz.Matches("", FilterAll) {
		t.Error("empty search with all filter should match")
	}
	if !jazz.Matches("JAZZ", FilterAll) {
		t.Error("search should be case-insensitive")
	}
	if !jazz.Matches("music", FilterOngoing) {
		t.Error("search should look at the description")
	}
	if jazz.Matches("jazz", FilterDraft) {
		t.Error("status filter should exclude other statuses")
	}
	if jazz.Matches("marathon", FilterAll) {
		t.Error("unrelated term should not match")
	}
}

func TestStatusLookups(t *testing.T) {
	cases := []struct {
		status EventStatus
		label  string
		color  string
	}{
		{StatusOngoing, "Ongoing", "bg-blue-100 text-blue-800"},
		{StatusDraft, "Draft", "bg-yellow-100 text-yellow-800"},
		{StatusCompleted, "Completed", "bg-green-100 text-green-800"},
		{"", "Unknown", "bg-gray-100 text-gray-800"},
		{StatusCancelled, "cancelled", "bg-gray-100 text-gray-800"},
	}
	for _, tc := range cases {
		if got := StatusLabel(tc.status); got != tc.label {
			t.Errorf("StatusLabel(%q) = %q, want %q", tc.status, got, tc.label)
		}
		if got := StatusColorClass(tc.status); got != tc.color {
			t.Errorf("StatusColorClass(%q) = %q, want %q", tc.status, got, tc.color)
		}
	}
}

func TestParseFilterStatus(t *testing.T) {
	if fs, ok := ParseFilterStatus(""); !ok || fs != FilterAll {
		t.Errorf("empty filter = %q, %v", fs, ok)
	}
	if fs, ok := ParseFilterStatus(" Draft "); !ok || fs != FilterDraft {
		t.Errorf("Draft filter = %q, %v", fs, ok)
	}
	if _, ok := ParseFilterStatus("published"); ok {
		t.Error("published is not a feed filter")
	}
}

func TestFlexStringAcceptsNumbersAndStrings(t *testing.T) {
	var e Event
	if err := json.Unmarshal([]byte(`{"id": 12, "title": "x", "category_id": "3", "budget": 1500.5, "created_by": null}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.ID != "12" || e.CategoryID != "3" || e.Budget != "1500.5" || e.CreatedBy != "" {
		t.Errorf("unexpected decode: %+v", e)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-03-09T18:30:00Z"); got != "9 Mar 2024, 18:30" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate("not a date"); got != UnknownDate {
		t.Errorf("FormatDate = %q", got)
	}
}
