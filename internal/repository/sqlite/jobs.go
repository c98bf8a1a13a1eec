package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

const TableJobs = "jobs"

var jobColumns = []string{
	"id",
	"artifact_path",
	"state",
	"progress_percent",
	"status_message",
	"stage_one_output",
	"stage_one_error",
	"started_at",
	"ended_at",
	"created_at",
	"updated_at",
}

type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// JobsRepository is a status store for single-node deployments.
type JobsRepository struct {
	db  *sql.DB
	qb  sq.StatementBuilderType
	now func() time.Time
}

func NewJobsRepository(db *sql.DB) *JobsRepository {
	return &JobsRepository{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *JobsRepository) Create(ctx context.Context, jobID, artifactPath string) error {
	job := domain.NewJob(jobID, artifactPath, r.now())

	query, args, err := r.qb.
		Insert(TableJobs).
		Columns(
			"id",
			"artifact_path",
			"state",
			"progress_percent",
			"status_message",
			"created_at",
			"updated_at",
		).
		Values(
			job.ID,
			job.ArtifactPath,
			job.State,
			job.ProgressPercent,
			job.StatusMessage,
			job.CreatedAt,
			job.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return executeQueryError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return executeQueryError(err)
	}

	if affected == 0 {
		return fmt.Errorf("job %q: %w", jobID, domain.ErrConflict)
	}

	return nil
}

func (r *JobsRepository) Read(ctx context.Context, jobID string) (*domain.Job, error) {
	return r.selectJob(ctx, r.db, jobID)
}

func (r *JobsRepository) Write(ctx context.Context, jobID string, update domain.JobUpdate) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return txError("begin", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	job, err := r.selectJob(ctx, tx, jobID)
	if err != nil {
		return err
	}

	if err := job.Apply(update, r.now()); err != nil {
		return err
	}

	query, args, err := r.qb.
		Update(TableJobs).
		SetMap(map[string]any{
			"state":            job.State,
			"progress_percent": job.ProgressPercent,
			"status_message":   job.StatusMessage,
			"stage_one_output": job.StageOneOutput,
			"stage_one_error":  job.StageOneError,
			"started_at":       utc(job.StartedAt),
			"ended_at":         utc(job.EndedAt),
			"updated_at":       job.UpdatedAt,
		}).
		Where(sq.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return executeQueryError(err)
	}

	if err := tx.Commit(); err != nil {
		return txError("commit", err)
	}

	return nil
}

func (r *JobsRepository) FailInterrupted(ctx context.Context, message string) (int64, error) {
	now := r.now()

	query, args, err := r.qb.
		Update(TableJobs).
		Set("state", domain.StateFailed).
		Set("progress_percent", domain.ProgressComplete).
		Set("status_message", "Pipeline analysis failed").
		Set("stage_one_error", message).
		Set("ended_at", now).
		Set("updated_at", now).
		Where(sq.Eq{"state": []domain.State{domain.StatePending, domain.StateRunning}}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, executeQueryError(err)
	}

	return affected, nil
}

func (r *JobsRepository) selectJob(ctx context.Context, db queryer, jobID string) (*domain.Job, error) {
	query, args, err := r.qb.
		Select(jobColumns...).
		From(TableJobs).
		Where(sq.Eq{"id": jobID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	var job domain.Job
	err = db.QueryRowContext(ctx, query, args...).Scan(
		&job.ID,
		&job.ArtifactPath,
		&job.State,
		&job.ProgressPercent,
		&job.StatusMessage,
		&job.StageOneOutput,
		&job.StageOneError,
		&job.StartedAt,
		&job.EndedAt,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("job %q: %w", jobID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, scanRowError(err)
	}

	return &job, nil
}

// utc drops the monotonic clock reading and location so timestamps round-trip
// through the text column unchanged.
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
