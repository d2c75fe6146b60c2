// Package remote mirrors task writes to an optional Postgres document
// store. The local document stays authoritative: mirror failures are
// logged by callers and never block local persistence.
package remote

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/daykeep/daykeep/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS daykeep_tasks (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	time         TEXT NOT NULL,
	date         TEXT NOT NULL,
	duration_min INTEGER NOT NULL,
	must_do      BOOLEAN NOT NULL,
	notes        TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL,
	skip_reason  TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL,
	completed_at TIMESTAMPTZ,
	skipped_at   TIMESTAMPTZ
)`

type Postgres struct {
	db *sql.DB
}

// Open connects to the remote mirror and ensures its schema exists.
func Open(connStr string) (*Postgres, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure remote schema: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) SaveTask(ctx context.Context, task models.Task) error {
	_, err := p.db.ExecContext(ctx, `
INSERT INTO daykeep_tasks
	(id, title, time, date, duration_min, must_do, notes, status, skip_reason, created_at, completed_at, skipped_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	time = EXCLUDED.time,
	date = EXCLUDED.date,
	duration_min = EXCLUDED.duration_min,
	must_do = EXCLUDED.must_do,
	notes = EXCLUDED.notes,
	status = EXCLUDED.status,
	skip_reason = EXCLUDED.skip_reason,
	completed_at = EXCLUDED.completed_at,
	skipped_at = EXCLUDED.skipped_at`,
		task.ID, task.Title, task.Time, task.Date, task.DurationMin, task.MustDo,
		task.Notes, string(task.Status), task.SkipReason, task.CreatedAt,
		task.CompletedAt, task.SkippedAt,
	)
	return err
}

func (p *Postgres) DeleteTask(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, "DELETE FROM daykeep_tasks WHERE id = $1", id)
	return err
}

// LoadTasks pulls the full mirrored task set, for seeding a new device.
func (p *Postgres) LoadTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := p.db.QueryContext(ctx, `
SELECT id, title, time, date, duration_min, must_do, notes, status, skip_reason, created_at, completed_at, skipped_at
FROM daykeep_tasks ORDER BY date, time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var status string
		var completedAt, skippedAt sql.NullTime
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Time, &t.Date, &t.DurationMin, &t.MustDo,
			&t.Notes, &status, &t.SkipReason, &t.CreatedAt, &completedAt, &skippedAt,
		); err != nil {
			return nil, err
		}
		t.Status = models.TaskStatus(status)
		if completedAt.Valid {
			t.CompletedAt = &completedAt.Time
		}
		if skippedAt.Valid {
			t.SkippedAt = &skippedAt.Time
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
