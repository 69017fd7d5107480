package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/pkg/database"
)

// CampusWriter routes inserts and table resets through a single executor, usually a transaction.
type CampusWriter struct {
	exec       sqlx.ExtContext
	events     *EventRepository
	exams      *ExamRepository
	placements *PlacementRepository
}

func NewCampusWriter(exec sqlx.ExtContext, events *EventRepository, exams *ExamRepository, placements *PlacementRepository) *CampusWriter {
	return &CampusWriter{exec: exec, events: events, exams: exams, placements: placements}
}

func (w *CampusWriter) CreateEvent(ctx context.Context, event *models.Event) error {
	return w.events.CreateWith(ctx, w.exec, event)
}

func (w *CampusWriter) CreateExam(ctx context.Context, exam *models.Exam) error {
	return w.exams.CreateWith(ctx, w.exec, exam)
}

func (w *CampusWriter) CreatePlacement(ctx context.Context, placement *models.Placement) error {
	return w.placements.CreateWith(ctx, w.exec, placement)
}

// Reset deletes every campus row.
func (w *CampusWriter) Reset(ctx context.Context) error {
	return database.Truncate(ctx, w.exec)
}
