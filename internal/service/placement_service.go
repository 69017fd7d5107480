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

type placementRepository interface {
	ListAll(ctx context.Context) ([]models.Placement, error)
	Create(ctx context.Context, placement *models.Placement) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// PlacementService implements the administrative placement drive use cases.
type PlacementService struct {
	repo      placementRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewPlacementService constructs a PlacementService.
func NewPlacementService(repo placementRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *PlacementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &PlacementService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns every stored placement drive, newest date first.
func (s *PlacementService) List(ctx context.Context) ([]models.Placement, error) {
	placements, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list placements")
	}
	return placements, nil
}

// Create validates and stores a new placement drive.
func (s *PlacementService) Create(ctx context.Context, req models.CreatePlacementRequest) (*models.Placement, error) {
	req.Company = strings.TrimSpace(req.Company)
	req.Role = strings.TrimSpace(req.Role)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Venue = strings.TrimSpace(req.Venue)
	departments := make(models.DepartmentList, 0, len(req.Department))
	for _, code := range req.Department {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			departments = append(departments, code)
		}
	}
	req.Department = departments
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err, "invalid placement payload"))
	}

	placement := &models.Placement{
		Company:    req.Company,
		Role:       req.Role,
		Department: req.Department,
		Date:       req.Date,
		Time:       req.Time,
		Venue:      req.Venue,
	}
	if err := s.repo.Create(ctx, placement); err != nil {
		if database.IsCheckViolation(err) {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "placement violates a storage constraint")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create placement")
	}

	_ = s.cache.Invalidate(ctx, cachePrefixPlacements+":*")
	s.logger.Info("placement created", zap.Int64("id", placement.ID), zap.String("company", placement.Company))
	return placement, nil
}

// Delete removes a placement drive by ID.
func (s *PlacementService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete placement")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "placement not found")
	}
	_ = s.cache.Invalidate(ctx, cachePrefixPlacements+":*")
	s.logger.Info("placement deleted", zap.Int64("id", id))
	return nil
}
