package models

import "time"

type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Category    string `json:"category,omitempty"`
	Trending    bool   `json:"trending"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon"`
}

// Navigation is the site menu shared by every page.
var Navigation = []NavItem{
	{Name: "About", Href: "/about", Icon: "home"},
	{Name: "News", Href: "/actus", Icon: "newspaper"},
	{Name: "Contact", Href: "/contact", Icon: "mail"},
	{Name: "Events", Href: "/event", Icon: "calendar"},
}

const (
	DisplayDateLayout = "2 Jan 2006, 15:04"
	UnknownDate       = "Unknown date"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// FormatDate renders the timestamps the remote API returns for cards.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DisplayDateLayout)
		}
	}
	return UnknownDate
}
