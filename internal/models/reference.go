package models

type Currency struct {
	ID     FlexString `json:"id"`
	Code   string     `json:"code,omitempty"`
	Name   string     `json:"name,omitempty"`
	Symbol string     `json:"symbol,omitempty"`
}

type Category struct {
	ID   FlexString `json:"id"`
	Name string     `json:"name"`
}

type User struct {
	ID       FlexString `json:"id"`
	Username string     `json:"username,omitempty"`
	Email    string     `json:"email,omitempty"`
	FullName string     `json:"full_name,omitempty"`
}

// ReferenceData populates the selects of the event creation form.
type ReferenceData struct {
	Currencies []Currency `json:"currencies"`
	Categories []Category `json:"categories"`
	Users      []User     `json:"users"`

	// Defaults are the ids preselected in each select.
	DefaultCurrencyID string `json:"default_currency_id"`
	DefaultCategoryID string `json:"default_category_id"`
	DefaultCreatedBy  string `json:"default_created_by"`
}

// DefaultCreator is used when the users list is empty.
const DefaultCreator = "1"

func NewReferenceData(currencies []Currency, categories []Category, users []User) ReferenceData {
	rd := ReferenceData{
		Currencies:       currencies,
		Categories:       categories,
		Users:            users,
		DefaultCreatedBy: DefaultCreator,
	}
	if len(currencies) > 0 {
		rd.DefaultCurrencyID = currencies[0].ID.String()
	}
	if len(categories) > 0 {
		rd.DefaultCategoryID = categories[0].ID.String()
	}
	if len(users) > 0 {
		rd.DefaultCreatedBy = users[0].ID.String()
	}
	return rd
}

// EmptyReferenceData is what the form shows after a failed prefetch.
func EmptyReferenceData() ReferenceData {
	return ReferenceData{
		Currencies:       []Currency{},
		Categories:       []Category{},
		Users:            []User{},
		DefaultCreatedBy: DefaultCreator,
	}
}
