package models

// Event is a campus event.
type Event struct {
	ID          int64         `db:"id" json:"id"`
	Title       string        `db:"title" json:"title"`
	Category    EventCategory `db:"category" json:"category"`
	Date        string        `db:"date" json:"date"`
	Time        string        `db:"time" json:"time"`
	Venue       string        `db:"venue" json:"venue"`
	Organizer   string        `db:"organizer" json:"organizer"`
	Description *string       `db:"description" json:"description"`
}

// EventQuery carries the caller supplied filters for listing events.
// Zero values mean "not supplied".
type EventQuery struct {
	Date      string `form:"date" mapstructure:"date" json:"date,omitempty"`
	Category  string `form:"category" mapstructure:"category" json:"category,omitempty"`
	DaysAhead *int   `form:"days_ahead" mapstructure:"days_ahead" json:"days_ahead,omitempty"`
}

// EventFilter is the resolved repository filter. Date takes precedence over the From/To window.
type EventFilter struct {
	Date     string
	From     string
	To       string
	Category EventCategory
}

// CreateEventRequest is the admin payload for inserting an event.
type CreateEventRequest struct {
	Title       string        `json:"title" validate:"required,min=1,max=200"`
	Category    EventCategory `json:"category" validate:"required,campus_category"`
	Date        string        `json:"date" validate:"required,iso_date"`
	Time        string        `json:"time" validate:"required,max=20"`
	Venue       string        `json:"venue" validate:"required,min=1,max=200"`
	Organizer   string        `json:"organizer" validate:"required,min=1,max=200"`
	Description *string       `json:"description" validate:"omitempty,max=500"`
}
