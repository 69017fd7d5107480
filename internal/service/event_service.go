package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/pkg/database"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
)

type eventRepository interface {
	ListAll(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// EventService implements the administrative event use cases.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewEventService constructs an EventService.
func NewEventService(repo eventRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &EventService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns every stored event, newest date first.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return events, nil
}

// Create validates and stores a new event.
func (s *EventService) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Category = models.EventCategory(strings.ToLower(strings.TrimSpace(string(req.Category))))
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Venue = strings.TrimSpace(req.Venue)
	req.Organizer = strings.TrimSpace(req.Organizer)
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed == "" {
			req.Description = nil
		} else {
			req.Description = &trimmed
		}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err, "invalid event payload"))
	}

	event := &models.Event{
		Title:       req.Title,
		Category:    req.Category,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Organizer:   req.Organizer,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		if database.IsCheckViolation(err) {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "event violates a storage constraint")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}

	_ = s.cache.Invalidate(ctx, cachePrefixEvents+":*")
	s.logger.Info("event created", zap.Int64("id", event.ID), zap.String("category", string(event.Category)), zap.String("date", event.Date))
	return event, nil
}

// Delete removes an event by ID.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	_ = s.cache.Invalidate(ctx, cachePrefixEvents+":*")
	s.logger.Info("event deleted", zap.Int64("id", id))
	return nil
}
