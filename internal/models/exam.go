package models

// Exam is a scheduled examination.
type Exam struct {
	ID         int64      `db:"id" json:"id"`
	ExamName   string     `db:"exam_name" json:"exam_name"`
	Subject    string     `db:"subject" json:"subject"`
	Department Department `db:"department" json:"department"`
	Semester   int        `db:"semester" json:"semester"`
	Date       string     `db:"date" json:"date"`
	Time       string     `db:"time" json:"time"`
	Venue      string     `db:"venue" json:"venue"`
}

// ExamQuery carries the caller supplied filters for listing exams.
type ExamQuery struct {
	Department string `form:"department" mapstructure:"department" json:"department,omitempty"`
	Semester   *int   `form:"semester" mapstructure:"semester" json:"semester,omitempty"`
	Subject    string `form:"subject" mapstructure:"subject" json:"subject,omitempty"`
	DaysAhead  *int   `form:"days_ahead" mapstructure:"days_ahead" json:"days_ahead,omitempty"`
}

// ExamFilter is the resolved repository filter.
type ExamFilter struct {
	From       string
	To         string
	Department Department
	Semester   int
	Subject    string
}

// CreateExamRequest is the admin payload for inserting an exam.
type CreateExamRequest struct {
	ExamName   string     `json:"exam_name" validate:"required,min=1,max=200"`
	Subject    string     `json:"subject" validate:"required,min=1,max=200"`
	Department Department `json:"department" validate:"required,campus_department"`
	Semester   int        `json:"semester" validate:"required,min=1,max=8"`
	Date       string     `json:"date" validate:"required,iso_date"`
	Time       string     `json:"time" validate:"required,max=20"`
	Venue      string     `json:"venue" validate:"required,min=1,max=200"`
}
