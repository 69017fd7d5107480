package models

// Placement is a recruitment drive open to one or more departments.
type Placement struct {
	ID         int64          `db:"id" json:"id"`
	Company    string         `db:"company" json:"company"`
	Role       string         `db:"role" json:"role"`
	Department DepartmentList `db:"department" json:"department"`
	Date       string         `db:"date" json:"date"`
	Time       string         `db:"time" json:"time"`
	Venue      string         `db:"venue" json:"venue"`
}

// PlacementQuery carries the caller supplied filters for listing placements.
type PlacementQuery struct {
	Department string `form:"department" mapstructure:"department" json:"department,omitempty"`
	Company    string `form:"company" mapstructure:"company" json:"company,omitempty"`
	DaysAhead  *int   `form:"days_ahead" mapstructure:"days_ahead" json:"days_ahead,omitempty"`
}

// PlacementFilter is the resolved repository filter.
type PlacementFilter struct {
	From       string
	To         string
	Department string
	Company    string
}

// CreatePlacementRequest is the admin payload for inserting a placement drive.
type CreatePlacementRequest struct {
	Company    string         `json:"company" validate:"required,min=1,max=200"`
	Role       string         `json:"role" validate:"required,min=1,max=200"`
	Department DepartmentList `json:"department" validate:"required,campus_departments"`
	Date       string         `json:"date" validate:"required,iso_date"`
	Time       string         `json:"time" validate:"required,max=20"`
	Venue      string         `json:"venue" validate:"required,min=1,max=200"`
}
