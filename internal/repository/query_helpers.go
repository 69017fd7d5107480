package repository

import (
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const likeEscape = ` ESCAPE '\'`

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching term literally anywhere.
func containsPattern(term string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(term)) + "%"
}

var clockLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "3PM", "15:04", "15:04:05"}

// clockMinutes parses a display time such as "9:30 AM" or "14:00" into minutes after midnight.
func clockMinutes(raw string) (int, bool) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, ".", "")
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

// sortChronologically orders items by date and then by wall clock time.
// Times that cannot be parsed sort after parseable ones on the same date and
// otherwise keep their incoming order.
func sortChronologically[T any](items []T, key func(T) (date, clock string)) {
	sort.SliceStable(items, func(i, j int) bool {
		di, ci := key(items[i])
		dj, cj := key(items[j])
		if di != dj {
			return di < dj
		}
		mi, okI := clockMinutes(ci)
		mj, okJ := clockMinutes(cj)
		switch {
		case okI && okJ:
			return mi < mj
		case okI != okJ:
			return okI
		default:
			return false
		}
	})
}

func execOrDB(exec sqlx.ExtContext, db *sqlx.DB) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return db
}
