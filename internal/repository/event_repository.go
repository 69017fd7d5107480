package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

const eventColumns = "id, title, category, date, time, venue, organizer, description"

// EventRepository persists campus events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns events matching the filter ordered by date and time.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Date != "" {
		where = append(where, "date = ?")
		args = append(args, filter.Date)
	} else {
		if filter.From != "" {
			where = append(where, "date >= ?")
			args = append(args, filter.From)
		}
		if filter.To != "" {
			where = append(where, "date <= ?")
			args = append(args, filter.To)
		}
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, string(filter.Category))
	}

	query := fmt.Sprintf("SELECT %s FROM events WHERE %s ORDER BY date ASC, time ASC, id ASC", eventColumns, strings.Join(where, " AND "))
	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	sortChronologically(events, func(e models.Event) (string, string) { return e.Date, e.Time })
	return events, nil
}

// ListAll returns every event, newest date first.
func (r *EventRepository) ListAll(ctx context.Context) ([]models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events ORDER BY date DESC, id DESC", eventColumns)
	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list all events: %w", err)
	}
	return events, nil
}

// Create inserts an event and sets its generated ID.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.CreateWith(ctx, nil, event)
}

// CreateWith inserts through exec, falling back to the repository handle when exec is nil.
func (r *EventRepository) CreateWith(ctx context.Context, exec sqlx.ExtContext, event *models.Event) error {
	target := execOrDB(exec, r.db)
	query := target.Rebind(`INSERT INTO events (title, category, date, time, venue, organizer, description)
VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	row := target.QueryRowxContext(ctx, query, event.Title, string(event.Category), event.Date, event.Time, event.Venue, event.Organizer, event.Description)
	if err := row.Scan(&event.ID); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Delete removes an event and reports whether a row was deleted.
func (r *EventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM events WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete event rows affected: %w", err)
	}
	return affected > 0, nil
}
