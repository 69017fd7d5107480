package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// DepartmentList is stored as a comma-joined string ("CSE,IT,ECE") and
// exposed as a list of trimmed codes.
type DepartmentList []string

// ParseDepartmentList splits a stored value on commas and trims each entry.
func ParseDepartmentList(raw string) DepartmentList {
	parts := strings.Split(raw, ",")
	out := make(DepartmentList, len(parts))
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}
	return out
}

// String joins the codes the way they are stored.
func (l DepartmentList) String() string {
	trimmed := make([]string, len(l))
	for i, d := range l {
		trimmed[i] = strings.TrimSpace(d)
	}
	return strings.Join(trimmed, ",")
}

// Scan implements sql.Scanner.
func (l *DepartmentList) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*l = ParseDepartmentList(v)
	case []byte:
		*l = ParseDepartmentList(string(v))
	case nil:
		*l = nil
	default:
		return fmt.Errorf("department list: unsupported type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (l DepartmentList) Value() (driver.Value, error) {
	return l.String(), nil
}

// UnmarshalJSON accepts either a list of codes or a comma-joined string.
func (l *DepartmentList) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		if strings.TrimSpace(raw) == "" {
			*l = nil
			return nil
		}
		*l = ParseDepartmentList(raw)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("department must be a string or a list of strings")
	}
	*l = DepartmentList(list)
	return nil
}
