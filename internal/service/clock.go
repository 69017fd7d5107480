package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

// Clock yields the current instant in the campus timezone.
type Clock func() time.Time

// NewClock returns a clock bound to the named IANA zone. "" and "Local" use the host zone.
func NewClock(zone string) (Clock, error) {
	zone = strings.TrimSpace(zone)
	if zone == "" || strings.EqualFold(zone, "local") {
		return func() time.Time { return time.Now() }, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return func() time.Time { return time.Now().In(loc) }, nil
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today formats the current date as YYYY-MM-DD.
func (c Clock) Today() string {
	return c().Format(models.DateLayout)
}

// Window returns the inclusive [today, today+days] date range.
func (c Clock) Window(days int) (string, string) {
	now := c()
	return now.Format(models.DateLayout), now.AddDate(0, 0, days).Format(models.DateLayout)
}
