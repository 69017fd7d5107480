package models

import "strings"

// DateLayout is the ISO 8601 calendar date format used for every stored date.
const DateLayout = "2006-01-02"

// EventCategory classifies campus events.
type EventCategory string

const (
	CategoryCultural  EventCategory = "cultural"
	CategoryTechnical EventCategory = "technical"
)

// EventCategories lists every recognised category.
var EventCategories = []EventCategory{CategoryCultural, CategoryTechnical}

// Valid reports whether c is a recognised category.
func (c EventCategory) Valid() bool {
	switch c {
	case CategoryCultural, CategoryTechnical:
		return true
	}
	return false
}

// ParseCategory normalises raw input and reports whether it names a known category.
func ParseCategory(raw string) (EventCategory, bool) {
	c := EventCategory(strings.ToLower(strings.TrimSpace(raw)))
	return c, c.Valid()
}

// Department is an academic department code.
type Department string

const (
	DepartmentCSE Department = "CSE"
	DepartmentECE Department = "ECE"
	DepartmentME  Department = "ME"
	DepartmentCE  Department = "CE"
	DepartmentIT  Department = "IT"
	DepartmentEEE Department = "EEE"
)

// Departments lists every recognised department code.
var Departments = []Department{DepartmentCSE, DepartmentECE, DepartmentME, DepartmentCE, DepartmentIT, DepartmentEEE}

// Valid reports whether d is a recognised department code.
func (d Department) Valid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDepartment normalises raw input and reports whether it names a known department.
func ParseDepartment(raw string) (Department, bool) {
	d := Department(strings.ToUpper(strings.TrimSpace(raw)))
	return d, d.Valid()
}

const (
	MinSemester = 1
	MaxSemester = 8
)

// ValidSemester reports whether s lies in the supported semester range.
func ValidSemester(s int) bool {
	return s >= MinSemester && s <= MaxSemester
}

// CategoryValues returns the category enum as plain strings.
func CategoryValues() []string {
	out := make([]string, len(EventCategories))
	for i, c := range EventCategories {
		out[i] = string(c)
	}
	return out
}

// DepartmentValues returns the department enum as plain strings.
func DepartmentValues() []string {
	out := make([]string, len(Departments))
	for i, d := range Departments {
		out[i] = string(d)
	}
	return out
}
