package models

import "strings"

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
)

// FilterStatus is the status selector of the feed. FilterAll disables it.
type FilterStatus string

const (
	FilterAll       FilterStatus = "all"
	FilterOngoing   FilterStatus = "ongoing"
	FilterDraft     FilterStatus = "draft"
	FilterCompleted FilterStatus = "completed"
)

func ParseFilterStatus(s string) (FilterStatus, bool) {
	switch fs := FilterStatus(strings.ToLower(strings.TrimSpace(s))); fs {
	case FilterAll, FilterOngoing, FilterDraft, FilterCompleted:
		return fs, true
	case "":
		return FilterAll, true
	}
	return "", false
}

type Event struct {
	ID          FlexString  `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Status      EventStatus `json:"status"`
	Image       string      `json:"image,omitempty"`
	Location    string      `json:"location,omitempty"`
	CategoryID  FlexString  `json:"category_id,omitempty"`
	Budget      FlexString  `json:"budget,omitempty"`
	CurrencyID  FlexString  `json:"currency_id,omitempty"`
	CreatedBy   FlexString  `json:"created_by,omitempty"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

// Matches reports whether the event passes the feed search and status filter.
// The search term is matched case-insensitively against title or description.
func (e Event) Matches(searchTerm string, filter FilterStatus) bool {
	term := strings.ToLower(searchTerm)
	matchesSearch := strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Description), term)
	matchesFilter := filter == FilterAll || string(e.Status) == string(filter)
	return matchesSearch && matchesFilter
}

// StatusLabel is the display label of a status.
func StatusLabel(s EventStatus) string {
	if s == "" {
		return "Unknown"
	}
	switch s {
	case StatusOngoing:
		return "Ongoing"
	case StatusDraft:
		return "Draft"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// StatusColorClass is the badge class of a status.
func StatusColorClass(s EventStatus) string {
	switch s {
	case StatusOngoing:
		return "bg-blue-100 text-blue-800"
	case StatusDraft:
		return "bg-yellow-100 text-yellow-800"
	case StatusCompleted:
		return "bg-green-100 text-green-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}
