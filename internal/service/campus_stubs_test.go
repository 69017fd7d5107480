package service

import (
	"context"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

type eventRepoStub struct {
	rows       []models.Event
	all        []models.Event
	lastFilter models.EventFilter
	calls      int
	listErr    error
	createErr  error
	created    *models.Event
	deleted    bool
	deleteErr  error
}

func (s *eventRepoStub) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	s.calls++
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.rows, nil
}

func (s *eventRepoStub) ListAll(ctx context.Context) ([]models.Event, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.all, nil
}

func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	if s.createErr != nil {
		return s.createErr
	}
	event.ID = 42
	s.created = event
	return nil
}

func (s *eventRepoStub) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleted, s.deleteErr
}

type examRepoStub struct {
	rows       []models.Exam
	all        []models.Exam
	lastFilter models.ExamFilter
	listErr    error
	createErr  error
	created    *models.Exam
	deleted    bool
	deleteErr  error
}

func (s *examRepoStub) List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.rows, nil
}

func (s *examRepoStub) ListAll(ctx context.Context) ([]models.Exam, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.all, nil
}

func (s *examRepoStub) Create(ctx context.Context, exam *models.Exam) error {
	if s.createErr != nil {
		return s.createErr
	}
	exam.ID = 7
	s.created = exam
	return nil
}

func (s *examRepoStub) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleted, s.deleteErr
}

type placementRepoStub struct {
	rows       []models.Placement
	all        []models.Placement
	lastFilter models.PlacementFilter
	listErr    error
	createErr  error
	created    *models.Placement
	deleted    bool
	deleteErr  error
}

func (s *placementRepoStub) List(ctx context.Context, filter models.PlacementFilter) ([]models.Placement, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.rows, nil
}

func (s *placementRepoStub) ListAll(ctx context.Context) ([]models.Placement, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.all, nil
}

func (s *placementRepoStub) Create(ctx context.Context, placement *models.Placement) error {
	if s.createErr != nil {
		return s.createErr
	}
	placement.ID = 3
	s.created = placement
	return nil
}

func (s *placementRepoStub) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleted, s.deleteErr
}

func intPtr(v int) *int { return &v }

func strRef(v string) *string { return &v }
