package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

const examColumns = "id, exam_name, subject, department, semester, date, time, venue"

// ExamRepository persists exam schedules.
type ExamRepository struct {
	db *sqlx.DB
}

// NewExamRepository constructs an exam repository.
func NewExamRepository(db *sqlx.DB) *ExamRepository {
	return &ExamRepository{db: db}
}

// List returns exams matching the filter ordered by date and time.
func (r *ExamRepository) List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.From != "" {
		where = append(where, "date >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		where = append(where, "date <= ?")
		args = append(args, filter.To)
	}
	if filter.Department != "" {
		where = append(where, "department = ?")
		args = append(args, string(filter.Department))
	}
	if filter.Semester != 0 {
		where = append(where, "semester = ?")
		args = append(args, filter.Semester)
	}
	if filter.Subject != "" {
		where = append(where, "LOWER(subject) LIKE ?"+likeEscape)
		args = append(args, containsPattern(filter.Subject))
	}

	query := fmt.Sprintf("SELECT %s FROM exams WHERE %s ORDER BY date ASC, time ASC, id ASC", examColumns, strings.Join(where, " AND "))
	exams := []models.Exam{}
	if err := r.db.SelectContext(ctx, &exams, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	sortChronologically(exams, func(e models.Exam) (string, string) { return e.Date, e.Time })
	return exams, nil
}

// ListAll returns every exam, newest date first.
func (r *ExamRepository) ListAll(ctx context.Context) ([]models.Exam, error) {
	query := fmt.Sprintf("SELECT %s FROM exams ORDER BY date DESC, id DESC", examColumns)
	exams := []models.Exam{}
	if err := r.db.SelectContext(ctx, &exams, query); err != nil {
		return nil, fmt.Errorf("list all exams: %w", err)
	}
	return exams, nil
}

// Create inserts an exam and sets its generated ID.
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	return r.CreateWith(ctx, nil, exam)
}

// CreateWith inserts through exec, falling back to the repository handle when exec is nil.
func (r *ExamRepository) CreateWith(ctx context.Context, exec sqlx.ExtContext, exam *models.Exam) error {
	target := execOrDB(exec, r.db)
	query := target.Rebind(`INSERT INTO exams (exam_name, subject, department, semester, date, time, venue)
VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	row := target.QueryRowxContext(ctx, query, exam.ExamName, exam.Subject, string(exam.Department), exam.Semester, exam.Date, exam.Time, exam.Venue)
	if err := row.Scan(&exam.ID); err != nil {
		return fmt.Errorf("create exam: %w", err)
	}
	return nil
}

// Delete removes an exam and reports whether a row was deleted.
func (r *ExamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM exams WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("delete exam: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete exam rows affected: %w", err)
	}
	return affected > 0, nil
}
