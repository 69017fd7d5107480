package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

const placementColumns = "id, company, role, department, date, time, venue"

// PlacementRepository persists placement drives.
type PlacementRepository struct {
	db *sqlx.DB
}

// NewPlacementRepository constructs a placement repository.
func NewPlacementRepository(db *sqlx.DB) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// List returns placement drives matching the filter ordered by date and time.
// Department and company match case-insensitively anywhere in the stored value.
func (r *PlacementRepository) List(ctx context.Context, filter models.PlacementFilter) ([]models.Placement, error) {
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
		where = append(where, "LOWER(department) LIKE ?"+likeEscape)
		args = append(args, containsPattern(filter.Department))
	}
	if filter.Company != "" {
		where = append(where, "LOWER(company) LIKE ?"+likeEscape)
		args = append(args, containsPattern(filter.Company))
	}

	query := fmt.Sprintf("SELECT %s FROM placements WHERE %s ORDER BY date ASC, time ASC, id ASC", placementColumns, strings.Join(where, " AND "))
	placements := []models.Placement{}
	if err := r.db.SelectContext(ctx, &placements, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	sortChronologically(placements, func(p models.Placement) (string, string) { return p.Date, p.Time })
	return placements, nil
}

// ListAll returns every placement drive, newest date first.
func (r *PlacementRepository) ListAll(ctx context.Context) ([]models.Placement, error) {
	query := fmt.Sprintf("SELECT %s FROM placements ORDER BY date DESC, id DESC", placementColumns)
	placements := []models.Placement{}
	if err := r.db.SelectContext(ctx, &placements, query); err != nil {
		return nil, fmt.Errorf("list all placements: %w", err)
	}
	return placements, nil
}

// Create inserts a placement drive and sets its generated ID.
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	return r.CreateWith(ctx, nil, placement)
}

// CreateWith inserts through exec, falling back to the repository handle when exec is nil.
func (r *PlacementRepository) CreateWith(ctx context.Context, exec sqlx.ExtContext, placement *models.Placement) error {
	target := execOrDB(exec, r.db)
	query := target.Rebind(`INSERT INTO placements (company, role, department, date, time, venue)
VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	row := target.QueryRowxContext(ctx, query, placement.Company, placement.Role, placement.Department, placement.Date, placement.Time, placement.Venue)
	if err := row.Scan(&placement.ID); err != nil {
		return fmt.Errorf("create placement: %w", err)
	}
	return nil
}

// Delete removes a placement drive and reports whether a row was deleted.
func (r *PlacementRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM placements WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("delete placement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete placement rows affected: %w", err)
	}
	return affected > 0, nil
}
