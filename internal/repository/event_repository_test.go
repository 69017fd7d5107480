package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/pkg/database"
)

func seedEvents(t *testing.T, repo *EventRepository, events ...models.Event) {
	t.Helper()
	for i := range events {
		require.NoError(t, repo.Create(context.Background(), &events[i]))
		require.NotZero(t, events[i].ID)
	}
}

func TestEventRepositoryListByExactDate(t *testing.T) {
	repo := NewEventRepository(newSQLiteDB(t))
	seedEvents(t, repo,
		models.Event{Title: "AI Workshop", Category: models.CategoryTechnical, Date: "2025-06-01", Time: "10:00 AM", Venue: "Lab 1", Organizer: "CSE"},
		models.Event{Title: "Dance Night", Category: models.CategoryCultural, Date: "2025-06-02", Time: "6:00 PM", Venue: "Auditorium", Organizer: "Council"},
	)

	events, err := repo.List(context.Background(), models.EventFilter{Date: "2025-06-01", From: "2025-01-01", To: "2025-12-31"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "AI Workshop", events[0].Title)
	assert.Nil(t, events[0].Description)
}

func TestEventRepositoryListWindowAndCategory(t *testing.T) {
	repo := NewEventRepository(newSQLiteDB(t))
	seedEvents(t, repo,
		models.Event{Title: "Past Talk", Category: models.CategoryTechnical, Date: "2025-05-31", Time: "10:00 AM", Venue: "A", Organizer: "X"},
		models.Event{Title: "Hackathon", Category: models.CategoryTechnical, Date: "2025-06-02", Time: "9:00 AM", Venue: "B", Organizer: "X"},
		models.Event{Title: "Fest", Category: models.CategoryCultural, Date: "2025-06-08", Time: "2:00 PM", Venue: "C", Organizer: "Y", Description: strPtr("Music")},
		models.Event{Title: "Far Away", Category: models.CategoryCultural, Date: "2025-06-09", Time: "2:00 PM", Venue: "D", Organizer: "Y"},
	)

	events, err := repo.List(context.Background(), models.EventFilter{From: "2025-06-01", To: "2025-06-08"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Hackathon", events[0].Title)
	assert.Equal(t, "Fest", events[1].Title)
	require.NotNil(t, events[1].Description)
	assert.Equal(t, "Music", *events[1].Description)

	cultural, err := repo.List(context.Background(), models.EventFilter{From: "2025-06-01", To: "2025-06-08", Category: models.CategoryCultural})
	require.NoError(t, err)
	require.Len(t, cultural, 1)
	assert.Equal(t, models.CategoryCultural, cultural[0].Category)
}

// Lexicographic order would put "10:00 AM" before "2:00 PM" before "9:30 AM".
func TestEventRepositoryListSortsTimesChronologically(t *testing.T) {
	repo := NewEventRepository(newSQLiteDB(t))
	seedEvents(t, repo,
		models.Event{Title: "Afternoon", Category: models.CategoryCultural, Date: "2025-06-01", Time: "2:00 PM", Venue: "A", Organizer: "X"},
		models.Event{Title: "Late Morning", Category: models.CategoryTechnical, Date: "2025-06-01", Time: "10:00 AM", Venue: "A", Organizer: "X"},
		models.Event{Title: "Morning", Category: models.CategoryTechnical, Date: "2025-06-01", Time: "9:30 AM", Venue: "A", Organizer: "X"},
		models.Event{Title: "Whenever", Category: models.CategoryTechnical, Date: "2025-06-01", Time: "TBA", Venue: "A", Organizer: "X"},
		models.Event{Title: "Next Day", Category: models.CategoryTechnical, Date: "2025-06-02", Time: "8:00 AM", Venue: "A", Organizer: "X"},
	)

	events, err := repo.List(context.Background(), models.EventFilter{From: "2025-06-01", To: "2025-06-02"})
	require.NoError(t, err)

	titles := make([]string, len(events))
	for i, e := range events {
		titles[i] = e.Title
	}
	assert.Equal(t, []string{"Morning", "Late Morning", "Afternoon", "Whenever", "Next Day"}, titles)

	again, err := repo.List(context.Background(), models.EventFilter{From: "2025-06-01", To: "2025-06-02"})
	require.NoError(t, err)
	assert.Equal(t, events, again)
}

func TestEventRepositoryCreateRejectsUnknownCategory(t *testing.T) {
	repo := NewEventRepository(newSQLiteDB(t))
	err := repo.Create(context.Background(), &models.Event{Title: "Match", Category: "sports", Date: "2025-06-01", Time: "1:00 PM", Venue: "Ground", Organizer: "Club"})
	require.Error(t, err)
	assert.True(t, database.IsCheckViolation(err))

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEventRepositoryListAllAndDelete(t *testing.T) {
	repo := NewEventRepository(newSQLiteDB(t))
	seedEvents(t, repo,
		models.Event{Title: "Old", Category: models.CategoryTechnical, Date: "2025-01-01", Time: "9:00 AM", Venue: "A", Organizer: "X"},
		models.Event{Title: "New", Category: models.CategoryTechnical, Date: "2025-12-01", Time: "9:00 AM", Venue: "A", Organizer: "X"},
	)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "New", all[0].Title)

	deleted, err := repo.Delete(context.Background(), all[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), all[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestEventRepositoryListBuildsParameterizedQuery(t *testing.T) {
	db, mock, cleanup := newCampusRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, category, date, time, venue, organizer, description FROM events WHERE 1=1 AND date >= ? AND date <= ? AND category = ? ORDER BY date ASC, time ASC, id ASC")).
		WithArgs("2025-06-01", "2025-06-08", "technical").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "date", "time", "venue", "organizer", "description"}).
			AddRow(1, "AI Workshop", "technical", "2025-06-01", "10:00 AM", "Lab", "CSE", nil))

	events, err := repo.List(context.Background(), models.EventFilter{From: "2025-06-01", To: "2025-06-08", Category: models.CategoryTechnical})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListPropagatesStorageFault(t *testing.T) {
	db, mock, cleanup := newCampusRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	fault := errors.New("database is locked")
	mock.ExpectQuery("SELECT .* FROM events").WillReturnError(fault)

	_, err := repo.List(context.Background(), models.EventFilter{Date: "2025-06-01"})
	require.Error(t, err)
	assert.ErrorIs(t, err, fault)
	assert.Contains(t, err.Error(), "list events")
}
