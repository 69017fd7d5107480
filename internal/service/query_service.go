package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
)

type eventQueryRepository interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

type examQueryRepository interface {
	List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, error)
}

type placementQueryRepository interface {
	List(ctx context.Context, filter models.PlacementFilter) ([]models.Placement, error)
}

// QueryOptions tune the look-ahead windows and the notion of "today".
type QueryOptions struct {
	Clock               Clock
	EventsDaysAhead     int
	ExamsDaysAhead      int
	PlacementsDaysAhead int
	MaxDaysAhead        int
	CacheTTL            time.Duration
}

func (o QueryOptions) withDefaults() QueryOptions {
	if o.Clock == nil {
		o.Clock = func() time.Time { return time.Now() }
	}
	if o.EventsDaysAhead <= 0 {
		o.EventsDaysAhead = 7
	}
	if o.ExamsDaysAhead <= 0 {
		o.ExamsDaysAhead = 30
	}
	if o.PlacementsDaysAhead <= 0 {
		o.PlacementsDaysAhead = 30
	}
	if o.MaxDaysAhead <= 0 {
		o.MaxDaysAhead = 365
	}
	return o
}

// QueryService answers the read-only campus lookups used by the chat tools and the public API.
// Filter values outside the known enums are ignored rather than rejected.
type QueryService struct {
	events     eventQueryRepository
	exams      examQueryRepository
	placements placementQueryRepository
	cache      *CacheService
	metrics    *MetricsService
	logger     *zap.Logger
	opts       QueryOptions
}

// NewQueryService constructs a QueryService.
func NewQueryService(events eventQueryRepository, exams examQueryRepository, placements placementQueryRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger, opts QueryOptions) *QueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryService{
		events:     events,
		exams:      exams,
		placements: placements,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
		opts:       opts.withDefaults(),
	}
}

// Today returns the current campus date.
func (s *QueryService) Today() string {
	return s.opts.Clock.Today()
}

// ListEvents returns events on an exact date, or within [today, today+days_ahead] when no date is given.
func (s *QueryService) ListEvents(ctx context.Context, q models.EventQuery) ([]models.Event, error) {
	filter := models.EventFilter{}
	if date := strings.TrimSpace(q.Date); date != "" {
		filter.Date = date
	} else {
		filter.From, filter.To = s.opts.Clock.Window(s.daysAhead(q.DaysAhead, s.opts.EventsDaysAhead))
	}
	if q.Category != "" {
		if category, ok := models.ParseCategory(q.Category); ok {
			filter.Category = category
		} else {
			s.logger.Debug("ignoring unknown event category", zap.String("category", q.Category))
		}
	}

	key := cacheKey(cachePrefixEvents, filter.Date, filter.From, filter.To, string(filter.Category))
	var events []models.Event
	if hit, _ := s.cache.Get(ctx, key, &events); hit {
		return events, nil
	}

	start := time.Now()
	events, err := s.events.List(ctx, filter)
	s.metrics.ObserveDBQuery("events.list", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	_ = s.cache.Set(ctx, key, events, s.opts.CacheTTL)
	return events, nil
}

// ListTodayEvents returns every event scheduled for today.
func (s *QueryService) ListTodayEvents(ctx context.Context) ([]models.Event, error) {
	return s.ListEvents(ctx, models.EventQuery{Date: s.Today()})
}

// ListExams returns exams within [today, today+days_ahead] narrowed by department, semester and subject.
func (s *QueryService) ListExams(ctx context.Context, q models.ExamQuery) ([]models.Exam, error) {
	filter := models.ExamFilter{}
	filter.From, filter.To = s.opts.Clock.Window(s.daysAhead(q.DaysAhead, s.opts.ExamsDaysAhead))
	if q.Department != "" {
		if dept, ok := models.ParseDepartment(q.Department); ok {
			filter.Department = dept
		} else {
			s.logger.Debug("ignoring unknown exam department", zap.String("department", q.Department))
		}
	}
	if q.Semester != nil && models.ValidSemester(*q.Semester) {
		filter.Semester = *q.Semester
	}
	filter.Subject = strings.TrimSpace(q.Subject)

	key := cacheKey(cachePrefixExams, filter.From, filter.To, string(filter.Department), strconv.Itoa(filter.Semester), strings.ToLower(filter.Subject))
	var exams []models.Exam
	if hit, _ := s.cache.Get(ctx, key, &exams); hit {
		return exams, nil
	}

	start := time.Now()
	exams, err := s.exams.List(ctx, filter)
	s.metrics.ObserveDBQuery("exams.list", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exams")
	}
	_ = s.cache.Set(ctx, key, exams, s.opts.CacheTTL)
	return exams, nil
}

// ListPlacements returns placement drives within [today, today+days_ahead] narrowed by department and company.
func (s *QueryService) ListPlacements(ctx context.Context, q models.PlacementQuery) ([]models.Placement, error) {
	filter := models.PlacementFilter{
		Department: strings.TrimSpace(q.Department),
		Company:    strings.TrimSpace(q.Company),
	}
	filter.From, filter.To = s.opts.Clock.Window(s.daysAhead(q.DaysAhead, s.opts.PlacementsDaysAhead))

	key := cacheKey(cachePrefixPlacements, filter.From, filter.To, strings.ToLower(filter.Department), strings.ToLower(filter.Company))
	var placements []models.Placement
	if hit, _ := s.cache.Get(ctx, key, &placements); hit {
		return placements, nil
	}

	start := time.Now()
	placements, err := s.placements.List(ctx, filter)
	s.metrics.ObserveDBQuery("placements.list", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list placements")
	}
	_ = s.cache.Set(ctx, key, placements, s.opts.CacheTTL)
	return placements, nil
}

// daysAhead applies the default and clamps the window to [0, MaxDaysAhead].
func (s *QueryService) daysAhead(requested *int, fallback int) int {
	days := fallback
	if requested != nil {
		days = *requested
	}
	if days < 0 {
		return 0
	}
	if days > s.opts.MaxDaysAhead {
		return s.opts.MaxDaysAhead
	}
	return days
}
