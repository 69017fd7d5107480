package tools

import (
	"context"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

// Campus tool names.
const (
	ListEvents      = "list_events"
	ListTodayEvents = "list_today_events"
	ListExams       = "list_exams"
	ListPlacements  = "list_placements"
)

// Default look-ahead windows advertised to the model.
const (
	DefaultEventsDaysAhead     = 7
	DefaultExamsDaysAhead      = 30
	DefaultPlacementsDaysAhead = 30
	MaxDaysAhead               = 365
)

// CampusQuerier is the read side the campus tools delegate to.
type CampusQuerier interface {
	ListEvents(ctx context.Context, q models.EventQuery) ([]models.Event, error)
	ListTodayEvents(ctx context.Context) ([]models.Event, error)
	ListExams(ctx context.Context, q models.ExamQuery) ([]models.Exam, error)
	ListPlacements(ctx context.Context, q models.PlacementQuery) ([]models.Placement, error)
}

// NewCampusRegistry registers the four campus lookups backed by q.
func NewCampusRegistry(q CampusQuerier) *Registry {
	r := NewRegistry()
	r.MustRegister(listEventsTool(q))
	r.MustRegister(listTodayEventsTool(q))
	r.MustRegister(listExamsTool(q))
	r.MustRegister(listPlacementsTool(q))
	return r
}

func listEventsTool(q CampusQuerier) *Tool {
	return &Tool{
		Name:        ListEvents,
		Description: "Retrieve campus events (cultural or technical)",
		Parameters: []Parameter{
			{Name: "date", Type: TypeString, Description: "Exact date in YYYY-MM-DD format. Overrides days_ahead."},
			{Name: "category", Type: TypeString, Description: "Event category", Enum: models.CategoryValues()},
			daysAheadParameter("Number of days ahead to include", DefaultEventsDaysAhead),
		},
		Execute: func(ctx context.Context, args Args) (any, error) {
			var query models.EventQuery
			if err := args.Decode(&query); err != nil {
				return nil, err
			}
			events, err := q.ListEvents(ctx, query)
			if err != nil {
				return nil, err
			}
			return toRecords(events)
		},
	}
}

func listTodayEventsTool(q CampusQuerier) *Tool {
	return &Tool{
		Name:        ListTodayEvents,
		Description: "Quick access to today's events",
		Parameters:  []Parameter{},
		Execute: func(ctx context.Context, _ Args) (any, error) {
			events, err := q.ListTodayEvents(ctx)
			if err != nil {
				return nil, err
			}
			return toRecords(events)
		},
	}
}

func listExamsTool(q CampusQuerier) *Tool {
	return &Tool{
		Name:        ListExams,
		Description: "Retrieve exam schedules",
		Parameters: []Parameter{
			{Name: "department", Type: TypeString, Description: "Department code", Enum: models.DepartmentValues()},
			{Name: "semester", Type: TypeInteger, Description: "Semester number", Minimum: intRef(models.MinSemester), Maximum: intRef(models.MaxSemester)},
			{Name: "subject", Type: TypeString, Description: "Subject name or part of it"},
			daysAheadParameter("Number of days ahead to include", DefaultExamsDaysAhead),
		},
		Execute: func(ctx context.Context, args Args) (any, error) {
			var query models.ExamQuery
			if err := args.Decode(&query); err != nil {
				return nil, err
			}
			exams, err := q.ListExams(ctx, query)
			if err != nil {
				return nil, err
			}
			return toRecords(exams)
		},
	}
}

func listPlacementsTool(q CampusQuerier) *Tool {
	return &Tool{
		Name:        ListPlacements,
		Description: "Retrieve placement drive information",
		Parameters: []Parameter{
			{Name: "department", Type: TypeString, Description: "Eligible department code, matched as a substring"},
			{Name: "company", Type: TypeString, Description: "Company name or part of it"},
			daysAheadParameter("Number of days ahead to include", DefaultPlacementsDaysAhead),
		},
		Execute: func(ctx context.Context, args Args) (any, error) {
			var query models.PlacementQuery
			if err := args.Decode(&query); err != nil {
				return nil, err
			}
			placements, err := q.ListPlacements(ctx, query)
			if err != nil {
				return nil, err
			}
			return toRecords(placements)
		},
	}
}

func daysAheadParameter(description string, def int) Parameter {
	return Parameter{
		Name:        "days_ahead",
		Type:        TypeInteger,
		Description: description,
		Default:     def,
		Minimum:     intRef(0),
		Maximum:     intRef(MaxDaysAhead),
	}
}

func intRef(v int) *int { return &v }
