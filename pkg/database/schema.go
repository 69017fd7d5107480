package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	categoryCheck   = "category IN ('cultural', 'technical')"
	departmentCheck = "department IN ('CSE', 'ECE', 'ME', 'CE', 'IT', 'EEE')"
	semesterCheck   = "semester BETWEEN 1 AND 8"
)

// Tables lists the campus tables in creation order.
var Tables = []string{"events", "exams", "placements"}

func schemaStatements(driver string) []string {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "postgres" {
		pk = "BIGSERIAL PRIMARY KEY"
	}

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS events (
			id %s,
			title TEXT NOT NULL,
			category TEXT NOT NULL CHECK (%s),
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			venue TEXT NOT NULL,
			organizer TEXT NOT NULL,
			description TEXT
		)`, pk, categoryCheck),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS exams (
			id %s,
			exam_name TEXT NOT NULL,
			subject TEXT NOT NULL,
			department TEXT NOT NULL CHECK (%s),
			semester INTEGER NOT NULL CHECK (%s),
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			venue TEXT NOT NULL
		)`, pk, departmentCheck, semesterCheck),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS placements (
			id %s,
			company TEXT NOT NULL,
			role TEXT NOT NULL,
			department TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			venue TEXT NOT NULL
		)`, pk),
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events (date)`,
		`CREATE INDEX IF NOT EXISTS idx_exams_date ON exams (date)`,
		`CREATE INDEX IF NOT EXISTS idx_placements_date ON placements (date)`,
	}
}

// Migrate creates the campus tables when they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements(db.DriverName()) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}

// Truncate removes every row from the campus tables. exec may be a *sqlx.DB or a *sqlx.Tx.
func Truncate(ctx context.Context, exec sqlx.ExecerContext) error {
	for _, table := range Tables {
		if _, err := exec.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// WithTx runs fn inside a transaction, committing when fn returns nil and rolling back otherwise.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
