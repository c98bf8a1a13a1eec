package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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

type JobsRepository struct {
	pool      *pgxpool.Pool
	qb        sq.StatementBuilderType
	txManager *TxManager
	now       func() time.Time
}

func NewJobsRepository(pool *pgxpool.Pool, txManager *TxManager) *JobsRepository {
	return &JobsRepository{
		pool:      pool,
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
		now:       time.Now,
	}
}

func (r *JobsRepository) Create(ctx context.Context, jobID, artifactPath string) error {
	db := extractDB(ctx, r.pool)

	job := domain.NewJob(jobID, artifactPath, r.now())

	sql, args, err := r.qb.
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

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %q: %w", jobID, domain.ErrConflict)
	}

	return nil
}

func (r *JobsRepository) Read(ctx context.Context, jobID string) (*domain.Job, error) {
	return r.selectJob(ctx, jobID, false)
}

// Write merges update into the stored job. The row is locked for the
// duration of the transaction so readers only ever see whole records.
func (r *JobsRepository) Write(ctx context.Context, jobID string, update domain.JobUpdate) error {
	return r.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		job, err := r.selectJob(ctx, jobID, true)
		if err != nil {
			return err
		}

		if err := job.Apply(update, r.now()); err != nil {
			return err
		}

		return r.updateJob(ctx, job)
	})
}

func (r *JobsRepository) FailInterrupted(ctx context.Context, message string) (int64, error) {
	db := extractDB(ctx, r.pool)

	now := r.now()

	sql, args, err := r.qb.
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

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func (r *JobsRepository) selectJob(ctx context.Context, jobID string, forUpdate bool) (*domain.Job, error) {
	db := extractDB(ctx, r.pool)

	query := r.qb.
		Select(jobColumns...).
		From(TableJobs).
		Where(sq.Eq{"id": jobID})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	job, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Job])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("job %q: %w", jobID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return job, nil
}

func (r *JobsRepository) updateJob(ctx context.Context, job *domain.Job) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableJobs).
		SetMap(map[string]any{
			"state":            job.State,
			"progress_percent": job.ProgressPercent,
			"status_message":   job.StatusMessage,
			"stage_one_output": job.StageOneOutput,
			"stage_one_error":  job.StageOneError,
			"started_at":       job.StartedAt,
			"ended_at":         job.EndedAt,
			"updated_at":       job.UpdatedAt,
		}).
		Where(sq.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
