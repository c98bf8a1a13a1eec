package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/scan_analyzer/internal/contextrecord"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/kurochkinivan/scan_analyzer/internal/stage"
	"golang.org/x/sync/singleflight"
)

const maxMemoizedResults = 1024

type AggregateRequest struct {
	JobID          string
	ArtifactPath   string
	StageOneOutput string
	Context        *domain.ContextRecord
}

// Aggregator runs stage two over a finished stage one and assembles the
// final result. Requests naming the same job share one stage two run and
// its result for the lifetime of the process.
type Aggregator struct {
	log       *slog.Logger
	artifacts ArtifactChecker
	stageTwo  StageInvoker
	workDir   string
	reports   chan<- *domain.AnalysisResult
	now       func() time.Time

	group singleflight.Group

	mu      sync.Mutex
	results map[string]*domain.AnalysisResult
	order   []string
}

// NewAggregator creates an Aggregator. Produced results are offered to
// reports without blocking; reports may be nil.
func NewAggregator(
	log *slog.Logger,
	artifacts ArtifactChecker,
	stageTwo StageInvoker,
	workDir string,
	reports chan<- *domain.AnalysisResult,
) *Aggregator {
	return &Aggregator{
		log:       log,
		artifacts: artifacts,
		stageTwo:  stageTwo,
		workDir:   workDir,
		reports:   reports,
		now:       time.Now,
		results:   make(map[string]*domain.AnalysisResult),
	}
}

// Aggregate returns the analysis result for req. When stage two fails the
// returned result is non-nil with Succeeded unset and the error wraps
// domain.ErrAggregation.
func (a *Aggregator) Aggregate(ctx context.Context, req AggregateRequest) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(req.ArtifactPath) == "" {
		return nil, fmt.Errorf("%w: artifact path is required", domain.ErrInput)
	}
	if req.JobID != "" {
		if err := uuid.Validate(req.JobID); err != nil {
			return nil, fmt.Errorf("%w: malformed job id: %w", domain.ErrInput, err)
		}
	}
	if !a.artifacts.Exists(req.ArtifactPath) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingArtifact, req.ArtifactPath)
	}

	if req.JobID == "" {
		return a.aggregate(ctx, req)
	}

	if result, ok := a.memoized(req.JobID); ok {
		return resultErr(result)
	}

	v, err, shared := a.group.Do(req.JobID, func() (any, error) {
		if result, ok := a.memoized(req.JobID); ok {
			return result, nil
		}

		// Shared by every waiter, so one caller going away must not cancel it.
		result, err := a.aggregate(context.WithoutCancel(ctx), req)
		if result != nil {
			a.memoize(req.JobID, result)
		}
		return result, err
	})
	if shared {
		a.log.Debug("joined running aggregation", slog.String("job_id", req.JobID))
	}

	result, _ := v.(*domain.AnalysisResult)
	if result == nil {
		return nil, err
	}

	return resultErr(result)
}

func (a *Aggregator) aggregate(ctx context.Context, req AggregateRequest) (*domain.AnalysisResult, error) {
	log := a.log.With(
		slog.String("job_id", req.JobID),
		slog.String("artifact_path", req.ArtifactPath),
	)

	result := &domain.AnalysisResult{
		JobID:          req.JobID,
		StageOneOutput: req.StageOneOutput,
		ContextUsed:    req.Context != nil,
	}

	args := []string{req.ArtifactPath}

	if req.Context != nil {
		path, err := a.writeContext(req.Context)
		if err != nil {
			return a.fail(ctx, log, result, err)
		}
		defer func() {
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.Warn("failed to remove context file", slog.String("err", err.Error()))
			}
		}()

		args = append(args, "--context", path)
	}

	log.InfoContext(ctx, "stage two started", slog.Bool("context_used", result.ContextUsed))

	output, err := a.stageTwo.Invoke(ctx, stage.Request{
		Args:  args,
		Stdin: req.StageOneOutput,
	})
	if err != nil {
		return a.fail(ctx, log, result, err)
	}
	if strings.TrimSpace(output) == "" {
		return a.fail(ctx, log, result, fmt.Errorf("%w: empty output", domain.ErrStageInvocation))
	}

	result.StageTwoOutput = output
	result.Succeeded = true
	result.ProducedAt = a.now()

	log.InfoContext(ctx, "stage two completed", slog.Int("output_len", len(output)))
	a.publish(log, result)

	return result, nil
}

func (a *Aggregator) fail(
	ctx context.Context,
	log *slog.Logger,
	result *domain.AnalysisResult,
	cause error,
) (*domain.AnalysisResult, error) {
	result.Error = cause.Error()
	result.ProducedAt = a.now()

	log.WarnContext(ctx, "aggregation failed", slog.String("err", cause.Error()))
	a.publish(log, result)

	return result, fmt.Errorf("%w: %w", domain.ErrAggregation, cause)
}

func (a *Aggregator) writeContext(record *domain.ContextRecord) (string, error) {
	f, err := os.CreateTemp(a.workDir, "context-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create context file: %w", err)
	}

	_, err = f.WriteString(contextrecord.Format(record))
	err = errors.Join(err, f.Close())
	if err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write context file: %w", err)
	}

	return f.Name(), nil
}

func (a *Aggregator) publish(log *slog.Logger, result *domain.AnalysisResult) {
	if a.reports == nil || result.JobID == "" {
		return
	}

	select {
	case a.reports <- result:
	default:
		log.Warn("report queue is full, skipping report generation")
	}
}

func (a *Aggregator) memoized(jobID string) (*domain.AnalysisResult, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	result, ok := a.results[jobID]
	return result, ok
}

func (a *Aggregator) memoize(jobID string, result *domain.AnalysisResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.results[jobID]; ok {
		return
	}

	if len(a.order) >= maxMemoizedResults {
		oldest := a.order[0]
		a.order = a.order[1:]
		delete(a.results, oldest)
	}

	a.results[jobID] = result
	a.order = append(a.order, jobID)
}

// resultErr hands out a copy so callers cannot alter the memoized result.
func resultErr(result *domain.AnalysisResult) (*domain.AnalysisResult, error) {
	out := *result
	if !out.Succeeded {
		return &out, fmt.Errorf("%w: %s", domain.ErrAggregation, out.Error)
	}
	return &out, nil
}
