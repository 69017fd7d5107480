package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
	"github.com/noah-isme/campus-concierge-api/pkg/export"
)

// ExportFormat names a supported download format.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportTable names an exportable campus table.
type ExportTable string

const (
	ExportTableEvents     ExportTable = "events"
	ExportTableExams      ExportTable = "exams"
	ExportTablePlacements ExportTable = "placements"
)

type eventLister interface {
	ListAll(ctx context.Context) ([]models.Event, error)
}

type examLister interface {
	ListAll(ctx context.Context) ([]models.Exam, error)
}

type placementLister interface {
	ListAll(ctx context.Context) ([]models.Placement, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders the admin listings as CSV or PDF documents.
type ExportService struct {
	events     eventLister
	exams      examLister
	placements placementLister
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
	now        func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(events eventLister, exams examLister, placements placementLister, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		events:     events,
		exams:      exams,
		placements: placements,
		csv:        csv,
		pdf:        pdf,
		logger:     logger,
		now:        time.Now,
	}
}

// ParseExportFormat normalises a query value, defaulting to CSV.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatPDF:
		return ExportFormatPDF, nil
	}
	return "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
}

// Export renders every row of table in the requested format.
func (s *ExportService) Export(ctx context.Context, table ExportTable, format ExportFormat) (*ExportFile, error) {
	dataset, err := s.buildDataset(ctx, table)
	if err != nil {
		return nil, err
	}

	var (
		payload     []byte
		contentType string
	)
	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	filename := fmt.Sprintf("%s_%s.%s", table, s.now().UTC().Format("20060102_150405"), format)
	s.logger.Info("export rendered", zap.String("table", string(table)), zap.String("format", string(format)), zap.Int("rows", len(dataset.Rows)))
	return &ExportFile{Filename: filename, ContentType: contentType, Payload: payload}, nil
}

func (s *ExportService) buildDataset(ctx context.Context, table ExportTable) (export.Dataset, error) {
	switch table {
	case ExportTableEvents:
		events, err := s.events.ListAll(ctx)
		if err != nil {
			return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
		}
		return eventsDataset(events), nil
	case ExportTableExams:
		exams, err := s.exams.ListAll(ctx)
		if err != nil {
			return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exams")
		}
		return examsDataset(exams), nil
	case ExportTablePlacements:
		placements, err := s.placements.ListAll(ctx)
		if err != nil {
			return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list placements")
		}
		return placementsDataset(placements), nil
	}
	return export.Dataset{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown table %q", table))
}

func eventsDataset(events []models.Event) export.Dataset {
	ds := export.Dataset{
		Title:   "Campus Events",
		Headers: []string{"ID", "Title", "Category", "Date", "Time", "Venue", "Organizer", "Description"},
		Rows:    make([][]string, 0, len(events)),
	}
	for _, e := range events {
		ds.Rows = append(ds.Rows, []string{
			strconv.FormatInt(e.ID, 10), e.Title, string(e.Category), e.Date, e.Time, e.Venue, e.Organizer, deref(e.Description),
		})
	}
	return ds
}

func examsDataset(exams []models.Exam) export.Dataset {
	ds := export.Dataset{
		Title:   "Exam Schedule",
		Headers: []string{"ID", "Exam", "Subject", "Department", "Semester", "Date", "Time", "Venue"},
		Rows:    make([][]string, 0, len(exams)),
	}
	for _, e := range exams {
		ds.Rows = append(ds.Rows, []string{
			strconv.FormatInt(e.ID, 10), e.ExamName, e.Subject, string(e.Department), strconv.Itoa(e.Semester), e.Date, e.Time, e.Venue,
		})
	}
	return ds
}

func placementsDataset(placements []models.Placement) export.Dataset {
	ds := export.Dataset{
		Title:   "Placement Drives",
		Headers: []string{"ID", "Company", "Role", "Departments", "Date", "Time", "Venue"},
		Rows:    make([][]string, 0, len(placements)),
	}
	for _, p := range placements {
		ds.Rows = append(ds.Rows, []string{
			strconv.FormatInt(p.ID, 10), p.Company, p.Role, p.Department.String(), p.Date, p.Time, p.Venue,
		})
	}
	return ds
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
