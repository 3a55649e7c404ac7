package models

import "testing"

func TestEventFormPayload(t *testing.T) {
	f := EventForm{
		Title:      "  Jazz Night ",
		CategoryID: "2",
		CurrencyID: "5",
		CreatedBy:  "7",
		Status:     "draft",
		Budget:     "1200.50",
	}
	p := f.Payload()
	if p.Title != "Jazz Night" || p.CategoryID != 2 || p.CurrencyID != 5 || p.CreatedBy != 7 {
		t.Errorf("unexpected payload: %+v", p)
	}
	if p.Budget == nil || *p.Budget != 1200.50 {
		t.Errorf("budget = %v", p.Budget)
	}

	for _, raw := range []string{"", "abc", "NaN"} {
		f.Budget = raw
		if b := f.Payload().Budget; b != nil {
			t.Errorf("budget %q should be absent, got %v", raw, *b)
		}
	}
}

func TestEventFormValidation(t *testing.T) {
	f := NewEventForm(NewReferenceData(
		[]Currency{{ID: "4"}}, []Category{{ID: "9"}}, nil,
	))
	if f.Status != "draft" || f.CurrencyID != "4" || f.CategoryID != "9" || f.CreatedBy != DefaultCreator {
		t.Fatalf("unexpected defaults: %+v", f)
	}
	if err := Validate.Struct(f); err == nil {
		t.Error("form without title should not validate")
	}

	f.Title, f.Description = "Jazz", "Live"
	f.StartDate, f.EndDate = "2024-06-01T19:00", "2024-06-01T23:00"
	if err := Validate.Struct(f); err != nil {
		t.Errorf("complete form should validate: %v", err)
	}

	f.Status = "archived"
	if err := Validate.Struct(f); err == nil {
		t.Error("unknown status should not validate")
	}
}

func TestClientFormValidation(t *testing.T) {
	f := ClientForm{FullName: " Ada ", Email: "ada@example.com ", CIN: "AB123", Occupation: "Engineer"}
	f.Sanitize()
	if err := Validate.Struct(f); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}
	f.Email = "not-an-email"
	if err := Validate.Struct(f); err == nil {
		t.Error("invalid email accepted")
	}
}
