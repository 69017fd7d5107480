// Package seed loads the demo campus dataset.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the on-disk dataset. Offsets are days relative to the seeding date.
type Fixtures struct {
	Events     []EventFixture     `yaml:"events"`
	Exams      []ExamFixture      `yaml:"exams"`
	Placements []PlacementFixture `yaml:"placements"`
}

type EventFixture struct {
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Offset      int    `yaml:"offset"`
	Time        string `yaml:"time"`
	Venue       string `yaml:"venue"`
	Organizer   string `yaml:"organizer"`
	Description string `yaml:"description"`
}

type ExamFixture struct {
	ExamName   string `yaml:"exam_name"`
	Subject    string `yaml:"subject"`
	Department string `yaml:"department"`
	Semester   int    `yaml:"semester"`
	Offset     int    `yaml:"offset"`
	Time       string `yaml:"time"`
	Venue      string `yaml:"venue"`
}

type PlacementFixture struct {
	Company     string   `yaml:"company"`
	Role        string   `yaml:"role"`
	Departments []string `yaml:"departments"`
	Offset      int      `yaml:"offset"`
	Time        string   `yaml:"time"`
	Venue       string   `yaml:"venue"`
}

// Parse decodes a fixtures document.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// Default returns the embedded demo dataset.
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// EventRows materialises the event fixtures against today.
func (f *Fixtures) EventRows(today time.Time) []models.Event {
	out := make([]models.Event, 0, len(f.Events))
	for _, e := range f.Events {
		event := models.Event{
			Title:     e.Title,
			Category:  models.EventCategory(e.Category),
			Date:      dateAt(today, e.Offset),
			Time:      e.Time,
			Venue:     e.Venue,
			Organizer: e.Organizer,
		}
		if e.Description != "" {
			desc := e.Description
			event.Description = &desc
		}
		out = append(out, event)
	}
	return out
}

// ExamRows materialises the exam fixtures against today.
func (f *Fixtures) ExamRows(today time.Time) []models.Exam {
	out := make([]models.Exam, 0, len(f.Exams))
	for _, e := range f.Exams {
		out = append(out, models.Exam{
			ExamName:   e.ExamName,
			Subject:    e.Subject,
			Department: models.Department(e.Department),
			Semester:   e.Semester,
			Date:       dateAt(today, e.Offset),
			Time:       e.Time,
			Venue:      e.Venue,
		})
	}
	return out
}

// PlacementRows materialises the placement fixtures against today.
func (f *Fixtures) PlacementRows(today time.Time) []models.Placement {
	out := make([]models.Placement, 0, len(f.Placements))
	for _, p := range f.Placements {
		out = append(out, models.Placement{
			Company:    p.Company,
			Role:       p.Role,
			Department: models.DepartmentList(p.Departments),
			Date:       dateAt(today, p.Offset),
			Time:       p.Time,
			Venue:      p.Venue,
		})
	}
	return out
}

func dateAt(today time.Time, offset int) string {
	return today.AddDate(0, 0, offset).Format(models.DateLayout)
}

// Store receives seed rows. Implementations are bound to one unit of work.
type Store interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	CreateExam(ctx context.Context, exam *models.Exam) error
	CreatePlacement(ctx context.Context, placement *models.Placement) error
	Reset(ctx context.Context) error
}

// Transactor runs fn against a Store as a single unit of work. When fn fails,
// none of its writes are kept.
type Transactor func(ctx context.Context, fn func(Store) error) error

// Summary counts the rows written by a seed run.
type Summary struct {
	Events     int `json:"events"`
	Exams      int `json:"exams"`
	Placements int `json:"placements"`
}

// Seeder writes fixtures through a Transactor.
type Seeder struct {
	tx     Transactor
	now    func() time.Time
	logger *zap.Logger
}

// NewSeeder constructs a Seeder. now supplies the default seeding date and
// should report time in the campus timezone.
func NewSeeder(tx Transactor, now func() time.Time, logger *zap.Logger) *Seeder {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{tx: tx, now: now, logger: logger}
}

// Options control a seed run. A zero Today means the seeder clock's current date.
type Options struct {
	Today time.Time
	Reset bool
}

// Run inserts every fixture row, optionally clearing the tables first. Either
// all rows are written or none are.
func (s *Seeder) Run(ctx context.Context, f *Fixtures, opts Options) (Summary, error) {
	if opts.Today.IsZero() {
		opts.Today = s.now()
	}

	var summary Summary
	err := s.tx(ctx, func(store Store) error {
		summary = Summary{}
		if opts.Reset {
			if err := store.Reset(ctx); err != nil {
				return fmt.Errorf("reset campus tables: %w", err)
			}
		}
		for _, event := range f.EventRows(opts.Today) {
			if err := store.CreateEvent(ctx, &event); err != nil {
				return fmt.Errorf("seed event %q: %w", event.Title, err)
			}
			summary.Events++
		}
		for _, exam := range f.ExamRows(opts.Today) {
			if err := store.CreateExam(ctx, &exam); err != nil {
				return fmt.Errorf("seed exam %q: %w", exam.Subject, err)
			}
			summary.Exams++
		}
		for _, placement := range f.PlacementRows(opts.Today) {
			if err := store.CreatePlacement(ctx, &placement); err != nil {
				return fmt.Errorf("seed placement %q: %w", placement.Company, err)
			}
			summary.Placements++
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	s.logger.Info("seeded campus data",
		zap.String("date", opts.Today.Format(models.DateLayout)),
		zap.Bool("reset", opts.Reset),
		zap.Int("events", summary.Events),
		zap.Int("exams", summary.Exams),
		zap.Int("placements", summary.Placements),
	)
	return summary, nil
}
