package feed

import "github.com/joshua-takyi/eventsphere/internal/models"

// EventCard is an event with the display fields a card needs.
type EventCard struct {
	models.Event
	StatusLabel      string `json:"status_label"`
	StatusColorClass string `json:"status_color_class"`
	StartDateDisplay string `json:"start_date_display"`
}

type Details struct {
	EventID       string                      `json:"event_id"`
	Comments      Result[models.Comment]      `json:"comments"`
	Collaborators Result[models.Collaborator] `json:"collaborators"`
	Partners      Result[models.Partner]      `json:"partners"`
}

// View is a copy of the controller state, safe to render or encode.
type View struct {
	Loading          bool                `json:"loading"`
	Error            string              `json:"error,omitempty"`
	SearchTerm       string              `json:"search_term"`
	FilterStatus     models.FilterStatus `json:"filter_status"`
	Total            int                 `json:"total"`
	Events           []EventCard         `json:"events"`
	SelectedEventID  string              `json:"selected_event_id,omitempty"`
	Details          *Details            `json:"details,omitempty"`
	ExpandedSections map[Section]bool    `json:"expanded_sections"`
	CommentDraft     string              `json:"comment_draft,omitempty"`
}

func NewEventCard(e models.Event) EventCard {
	return EventCard{
		Event:            e,
		StatusLabel:      models.StatusLabel(e.Status),
		StatusColorClass: models.StatusColorClass(e.Status),
		StartDateDisplay: models.FormatDate(e.StartDate),
	}
}

func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Loading:          c.loading,
		Error:            c.errMsg,
		SearchTerm:       c.searchTerm,
		FilterStatus:     c.filterStatus,
		Total:            len(c.events),
		Events:           make([]EventCard, 0, len(c.filtered)),
		SelectedEventID:  c.selectedID,
		ExpandedSections: make(map[Section]bool, len(c.expanded)),
		CommentDraft:     c.commentDraft,
	}
	for _, e := range c.filtered {
		v.Events = append(v.Events, NewEventCard(e))
	}
	for k, val := range c.expanded {
		v.ExpandedSections[k] = val
	}
	if c.selectedID != "" {
		v.Details = &Details{
			EventID:       c.selectedID,
			Comments:      c.comments.clone(),
			Collaborators: c.collaborators.clone(),
			Partners:      c.partners.clone(),
		}
	}
	return v
}
