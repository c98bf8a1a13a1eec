package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/kurochkinivan/scan_analyzer/internal/stage"
)

const (
	statusStarting = "starting"

	// writeTimeout bounds status writes made after the runner was stopped.
	writeTimeout = 10 * time.Second
)

var ErrRunnerStopped = errors.New("runner is stopped")

// NewJobID returns a fresh random job id.
func NewJobID() string {
	return uuid.NewString()
}

// Runner executes stage one for submitted artifacts in the background and is
// the only writer of the job records it creates.
type Runner struct {
	log      *slog.Logger
	creator  JobCreator
	writer   JobWriter
	stageOne StageInvoker
	now      func() time.Time

	lifetime context.Context
	stop     context.CancelFunc

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

func NewRunner(log *slog.Logger, creator JobCreator, writer JobWriter, stageOne StageInvoker) *Runner {
	lifetime, stop := context.WithCancel(context.Background())

	return &Runner{
		log:      log,
		creator:  creator,
		writer:   writer,
		stageOne: stageOne,
		now:      time.Now,
		lifetime: lifetime,
		stop:     stop,
	}
}

// Start records a pending job and returns as soon as the record exists.
// Stage one then runs detached from ctx: cancelling the caller's request does
// not stop it.
func (r *Runner) Start(ctx context.Context, artifact *domain.Artifact, jobID string) error {
	if artifact == nil || artifact.Path == "" {
		return fmt.Errorf("%w: artifact is required", domain.ErrInput)
	}
	if jobID == "" {
		return fmt.Errorf("%w: job id is required", domain.ErrInput)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		return ErrRunnerStopped
	}

	if err := r.creator.Create(ctx, jobID, artifact.Path); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	log := r.log.With(
		slog.String("job_id", jobID),
		slog.String("artifact_path", artifact.Path),
	)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(r.lifetime, log, artifact.Path, jobID)
	}()

	return nil
}

func (r *Runner) run(ctx context.Context, log *slog.Logger, artifactPath, jobID string) {
	if err := r.write(ctx, jobID, domain.Running(statusStarting, r.now())); err != nil {
		log.Error("failed to mark job running", slog.String("err", err.Error()))

		if err := r.write(ctx, jobID, domain.Failed(err.Error(), r.now())); err != nil {
			log.Error("failed to mark job failed", slog.String("err", err.Error()))
		}
		return
	}

	log.Info("stage one started")
	start := time.Now()

	output, err := r.stageOne.Invoke(ctx, stage.Request{Args: []string{artifactPath}})

	var update domain.JobUpdate
	if err != nil {
		log.Warn("stage one failed",
			slog.String("err", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		update = domain.Failed(err.Error(), r.now())
	} else {
		log.Info("stage one completed",
			slog.Int("output_len", len(output)),
			slog.Duration("duration", time.Since(start)),
		)
		update = domain.Completed(output, r.now())
	}

	if err := r.write(ctx, jobID, update); err != nil {
		log.Error("failed to write final job status", slog.String("err", err.Error()))
	}
}

// write keeps working after the runner was stopped so an interrupted stage
// still leaves a terminal record behind.
func (r *Runner) write(ctx context.Context, jobID string, update domain.JobUpdate) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	return r.writer.Write(ctx, jobID, update)
}

// Shutdown stops accepting jobs and waits for running ones. When ctx expires
// first, the remaining stage processes are killed and their jobs are marked
// failed.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.stop()
		return nil
	case <-ctx.Done():
		r.log.Warn("shutdown deadline reached, interrupting running jobs")
		r.stop()
		<-done
		return ctx.Err()
	}
}
