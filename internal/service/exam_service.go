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

type examRepository interface {
	ListAll(ctx context.Context) ([]models.Exam, error)
	Create(ctx context.Context, exam *models.Exam) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// ExamService implements the administrative exam use cases.
type ExamService struct {
	repo      examRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewExamService constructs an ExamService.
func NewExamService(repo examRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *ExamService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &ExamService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns every stored exam, newest date first.
func (s *ExamService) List(ctx context.Context) ([]models.Exam, error) {
	exams, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exams")
	}
	return exams, nil
}

// Create validates and stores a new exam.
func (s *ExamService) Create(ctx context.Context, req models.CreateExamRequest) (*models.Exam, error) {
	req.ExamName = strings.TrimSpace(req.ExamName)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Department = models.Department(strings.ToUpper(strings.TrimSpace(string(req.Department))))
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Venue = strings.TrimSpace(req.Venue)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err, "invalid exam payload"))
	}

	exam := &models.Exam{
		ExamName:   req.ExamName,
		Subject:    req.Subject,
		Department: req.Department,
		Semester:   req.Semester,
		Date:       req.Date,
		Time:       req.Time,
		Venue:      req.Venue,
	}
	if err := s.repo.Create(ctx, exam); err != nil {
		if database.IsCheckViolation(err) {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "exam violates a storage constraint")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create exam")
	}

	_ = s.cache.Invalidate(ctx, cachePrefixExams+":*")
	s.logger.Info("exam created", zap.Int64("id", exam.ID), zap.String("department", string(exam.Department)), zap.Int("semester", exam.Semester))
	return exam, nil
}

// Delete removes an exam by ID.
func (s *ExamService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete exam")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	_ = s.cache.Invalidate(ctx, cachePrefixExams+":*")
	s.logger.Info("exam deleted", zap.Int64("id", id))
	return nil
}
