package models

type Comment struct {
	ID        FlexString `json:"id"`
	EventID   FlexString `json:"event_id"`
	Content   string     `json:"content"`
	Username  string     `json:"username,omitempty"`
	CreatedAt string     `json:"created_at"`
	Avatar    string     `json:"avatar,omitempty"`
}

type NewComment struct {
	EventID string `json:"event_id"`
	Content string `json:"content"`
}

type Collaborator struct {
	ID     FlexString `json:"id"`
	UserID FlexString `json:"user_id"`
	Role   string     `json:"role"`
	Status string     `json:"status,omitempty"`
	Avatar string     `json:"avatar,omitempty"`
	Name   string     `json:"name,omitempty"`
}

type Partner struct {
	ID          FlexString `json:"id"`
	ClientID    FlexString `json:"client_id,omitempty"`
	FullName    string     `json:"full_name"`
	Description string     `json:"description,omitempty"`
	OfferedHelp string     `json:"offered_help,omitempty"`
	Logo        string     `json:"logo,omitempty"`
}
