package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

type memoryStore struct {
	events     []models.Event
	exams      []models.Exam
	placements []models.Placement
	failExams  error
	resets     int
}

func (m *memoryStore) CreateEvent(ctx context.Context, e *models.Event) error {
	m.events = append(m.events, *e)
	return nil
}

func (m *memoryStore) CreateExam(ctx context.Context, e *models.Exam) error {
	if m.failExams != nil {
		return m.failExams
	}
	m.exams = append(m.exams, *e)
	return nil
}

func (m *memoryStore) CreatePlacement(ctx context.Context, p *models.Placement) error {
	m.placements = append(m.placements, *p)
	return nil
}

func (m *memoryStore) Reset(ctx context.Context) error {
	m.resets++
	m.events, m.exams, m.placements = nil, nil, nil
	return nil
}

// transactor applies fn to a copy of committed and keeps the copy only when fn succeeds.
func transactor(committed *memoryStore) Transactor {
	return func(ctx context.Context, fn func(Store) error) error {
		work := &memoryStore{
			events:     append([]models.Event(nil), committed.events...),
			exams:      append([]models.Exam(nil), committed.exams...),
			placements: append([]models.Placement(nil), committed.placements...),
			failExams:  committed.failExams,
			resets:     committed.resets,
		}
		if err := fn(work); err != nil {
			return err
		}
		*committed = *work
		return nil
	}
}

var seedDay = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestDefaultFixturesAreValid(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	require.Len(t, f.Events, 5)
	require.Len(t, f.Exams, 5)
	require.Len(t, f.Placements, 5)

	for _, e := range f.EventRows(seedDay) {
		assert.True(t, e.Category.Valid(), e.Title)
	}
	for _, e := range f.ExamRows(seedDay) {
		assert.True(t, e.Department.Valid(), e.Subject)
		assert.True(t, models.ValidSemester(e.Semester), e.Subject)
	}
	for _, p := range f.PlacementRows(seedDay) {
		for _, d := range p.Department {
			assert.True(t, models.Department(d).Valid(), p.Company)
		}
	}
}

func TestFixturesResolveOffsets(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	events := f.EventRows(seedDay)
	assert.Equal(t, "2025-06-01", events[0].Date)
	assert.Equal(t, "2025-06-02", events[2].Date)
	assert.Equal(t, "2025-06-08", events[4].Date)
	require.NotNil(t, events[0].Description)

	placements := f.PlacementRows(seedDay)
	assert.Equal(t, "2025-06-21", placements[4].Date)
	assert.Equal(t, models.DepartmentList{"CSE", "IT", "ECE"}, placements[1].Department)
}

func TestSeederRun(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	store := &memoryStore{events: []models.Event{{Title: "stale"}}}
	s := NewSeeder(transactor(store), nil, nil)

	summary, err := s.Run(context.Background(), f, Options{Today: seedDay, Reset: true})
	require.NoError(t, err)
	assert.Equal(t, Summary{Events: 5, Exams: 5, Placements: 5}, summary)
	assert.Equal(t, 1, store.resets)
	assert.Len(t, store.events, 5)
	assert.Equal(t, "Infosys", store.placements[0].Company)
}

func TestSeederDiscardsEverythingOnError(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	store := &memoryStore{events: []models.Event{{Title: "Orientation"}}, failExams: errors.New("constraint")}
	s := NewSeeder(transactor(store), nil, nil)

	summary, err := s.Run(context.Background(), f, Options{Today: seedDay, Reset: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed exam")
	assert.Equal(t, Summary{}, summary)
	assert.Zero(t, store.resets)
	require.Len(t, store.events, 1)
	assert.Equal(t, "Orientation", store.events[0].Title)
}

func TestSeederDefaultsToClockDateInItsZone(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	kiritimati := time.FixedZone("LINT", 14*60*60)
	// 2025-05-31 11:30 UTC is already 2025-06-01 on the campus clock.
	now := time.Date(2025, 5, 31, 11, 30, 0, 0, time.UTC).In(kiritimati)

	store := &memoryStore{}
	s := NewSeeder(transactor(store), func() time.Time { return now }, nil)
	_, err = s.Run(context.Background(), f, Options{})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", store.events[0].Date)
	assert.Equal(t, "2025-06-01", store.events[1].Date)
	assert.Equal(t, "2025-06-02", store.events[2].Date)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("events: [unterminated"))
	assert.Error(t, err)
}
