package models

import (
	"math"
	"strconv"
	"strings"
)

// ClientForm is the client signup form. The same fields are sent to the
// welcome email endpoint and to the remote API.
type ClientForm struct {
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	CIN        string `json:"cin" validate:"required"`
	Occupation string `json:"occupation" validate:"required"`
}

func (f *ClientForm) Sanitize() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.CIN = strings.TrimSpace(f.CIN)
	f.Occupation = strings.TrimSpace(f.Occupation)
}

// EventForm holds the event creation inputs as the page submits them.
type EventForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required,numeric"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Location    string `json:"location"`
	Status      string `json:"status" validate:"required,oneof=draft published ongoing completed cancelled"`
	Budget      string `json:"budget"`
	CurrencyID  string `json:"currency_id" validate:"required,numeric"`
	CreatedBy   string `json:"created_by" validate:"required,numeric"`
}

// EventPayload is the body of POST /api/events.
type EventPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CategoryID  int64    `json:"category_id"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	Budget      *float64 `json:"budget"`
	CurrencyID  int64    `json:"currency_id"`
	CreatedBy   int64    `json:"created_by"`
}

// NewEventForm returns a form with the status select on draft and the
// reference selects on their defaults.
func NewEventForm(rd ReferenceData) EventForm {
	return EventForm{
		Status:     string(StatusDraft),
		CategoryID: rd.DefaultCategoryID,
		CurrencyID: rd.DefaultCurrencyID,
		CreatedBy:  rd.DefaultCreatedBy,
	}
}

// Payload converts the string inputs. Numeric ids are expected to have been
// validated; a blank or non-numeric budget is sent as null.
func (f EventForm) Payload() EventPayload {
	p := EventPayload{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Location:    f.Location,
		Status:      f.Status,
	}
	p.CategoryID, _ = strconv.ParseInt(strings.TrimSpace(f.CategoryID), 10, 64)
	p.CurrencyID, _ = strconv.ParseInt(strings.TrimSpace(f.CurrencyID), 10, 64)
	p.CreatedBy, _ = strconv.ParseInt(strings.TrimSpace(f.CreatedBy), 10, 64)
	if b, err := strconv.ParseFloat(strings.TrimSpace(f.Budget), 64); err == nil && !math.IsNaN(b) && !math.IsInf(b, 0) {
		p.Budget = &b
	}
	return p
}
