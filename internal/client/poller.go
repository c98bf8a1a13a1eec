package client

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/kurochkinivan/scan_analyzer/internal/pipeline"
)

const (
	DefaultPollInterval      = 2 * time.Second
	DefaultEstimatedDuration = 120 * time.Second
	DefaultTimeout           = 300 * time.Second

	// MaxRunningProgress caps the estimated progress of a job that has not
	// finished yet.
	MaxRunningProgress = 95

	TimedOutInput  = "Pipeline analysis timed out"
	FailedInput    = "Pipeline analysis failed"
	ProceededInput = "Pipeline completed"
)

var ErrProceedTooEarly = errors.New("analysis is not expected to be finished yet")

type State int

const (
	StateIdle State = iota
	StatePolling
	StateAggregating
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePolling:
		return "polling"
	case StateAggregating:
		return "aggregating"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

type StatusReader interface {
	Get(ctx context.Context, jobID string) (*domain.Job, error)
}

type Aggregator interface {
	Aggregate(ctx context.Context, req pipeline.AggregateRequest) (*domain.AnalysisResult, error)
}

type ResultCache interface {
	Result(jobID string) (*domain.AnalysisResult, bool)
	StoreResult(result *domain.AnalysisResult) error
}

// Target is the job a Poller waits for.
type Target struct {
	JobID        string
	ArtifactPath string
	Context      *domain.ContextRecord
}

type Settings struct {
	PollInterval      time.Duration
	EstimatedDuration time.Duration
	Timeout           time.Duration
}

func (s Settings) withDefaults() Settings {
	if s.PollInterval <= 0 {
		s.PollInterval = DefaultPollInterval
	}
	if s.EstimatedDuration <= 0 {
		s.EstimatedDuration = DefaultEstimatedDuration
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	return s
}

// Snapshot is what a client renders after every step of the state machine.
type Snapshot struct {
	State    State
	Progress int
	Job      *domain.Job
	Result   *domain.AnalysisResult
	// CanProceed is set once the estimate says the job should be finished.
	CanProceed bool
}

type Observer func(Snapshot)

// Poller drives one job from submission to a cached result:
// Idle -> Polling -> Aggregating -> Done. All transitions happen on the
// goroutine running Run; Proceed only signals it.
type Poller struct {
	log        *slog.Logger
	status     StatusReader
	aggregator Aggregator
	cache      ResultCache
	settings   Settings
	target     Target
	now        func() time.Time

	proceed chan struct{}

	mu           sync.Mutex
	snapshot     Snapshot
	observers    []Observer
	pollStarted  time.Time
	runningSince time.Time
}

func NewPoller(
	log *slog.Logger,
	status StatusReader,
	aggregator Aggregator,
	cache ResultCache,
	settings Settings,
	target Target,
) *Poller {
	return &Poller{
		log:        log.With(slog.String("job_id", target.JobID)),
		status:     status,
		aggregator: aggregator,
		cache:      cache,
		settings:   settings.withDefaults(),
		target:     target,
		now:        time.Now,
		proceed:    make(chan struct{}, 1),
	}
}

// Observe registers o to be called with every new snapshot. Observers run on
// the polling goroutine and must not block.
func (p *Poller) Observe(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.observers = append(p.observers, o)
}

func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snapshot
}

// Proceed asks the poller to stop waiting for stage one and aggregate now.
// It is accepted once the estimated duration has elapsed; calling it again or
// after aggregation started has no further effect.
func (p *Poller) Proceed() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.snapshot.State {
	case StateAggregating, StateDone:
		return nil
	case StatePolling:
		if !p.snapshot.CanProceed {
			return ErrProceedTooEarly
		}
	default:
		return ErrProceedTooEarly
	}

	select {
	case p.proceed <- struct{}{}:
	default:
	}

	return nil
}

// Run polls until the job settles, the timeout passes or Proceed is called,
// then aggregates once and caches the result. A cached result short-circuits
// the whole machine. Cancelling ctx ends in Done without a result.
func (p *Poller) Run(ctx context.Context) (*domain.AnalysisResult, error) {
	if result, ok := p.cache.Result(p.target.JobID); ok {
		p.log.Debug("using cached analysis result")
		p.transition(func(s *Snapshot) {
			s.State = StateDone
			s.Progress = domain.ProgressComplete
			s.Result = result
		})
		return result, nil
	}

	p.mu.Lock()
	p.pollStarted = p.now()
	p.mu.Unlock()

	p.transition(func(s *Snapshot) { s.State = StatePolling })

	ticker := time.NewTicker(p.settings.PollInterval)
	defer ticker.Stop()

	for {
		if input, done := p.poll(ctx); done {
			return p.aggregate(ctx, input)
		}

		select {
		case <-ctx.Done():
			p.transition(func(s *Snapshot) { s.State = StateDone })
			return nil, ctx.Err()
		case <-p.proceed:
			p.log.Info("proceeding before stage one settled")
			return p.aggregate(ctx, p.proceedInput())
		case <-ticker.C:
		}
	}
}

// poll reads the job once and reports whether aggregation should start, and
// with which stage one text.
func (p *Poller) poll(ctx context.Context) (string, bool) {
	job, err := p.status.Get(ctx, p.target.JobID)
	if err != nil {
		if ctx.Err() == nil {
			p.log.Warn("failed to read job status, retrying", slog.String("err", err.Error()))
		}
	}

	now := p.now()

	if job != nil {
		switch job.State {
		case domain.StateCompleted:
			p.transition(func(s *Snapshot) {
				s.Job = job
				s.Progress = domain.ProgressComplete
			})
			return deref(job.StageOneOutput), true

		case domain.StateFailed:
			p.transition(func(s *Snapshot) {
				s.Job = job
				s.Progress = domain.ProgressComplete
			})
			if text := deref(job.StageOneError); text != "" {
				return text, true
			}
			return FailedInput, true

		case domain.StateRunning:
			p.mu.Lock()
			if p.runningSince.IsZero() {
				p.runningSince = now
			}
			p.mu.Unlock()
		}
	}

	p.mu.Lock()
	origin := p.runningSince
	if origin.IsZero() {
		origin = p.pollStarted
	}
	timedOut := now.Sub(origin) > p.settings.Timeout
	p.mu.Unlock()

	p.transition(func(s *Snapshot) {
		if job != nil {
			s.Job = job
		}
		if s.Job != nil && s.Job.State == domain.StateRunning {
			progress, finished := p.estimate(s.Job, now)
			s.Progress = max(s.Progress, progress)
			s.CanProceed = finished
		}
	})

	if timedOut {
		p.log.Warn("timed out waiting for stage one", slog.Duration("timeout", p.settings.Timeout))
		return TimedOutInput, true
	}

	return "", false
}

// estimate turns elapsed running time into a progress percentage capped below
// completion, and reports whether the estimated duration has fully elapsed.
func (p *Poller) estimate(job *domain.Job, now time.Time) (int, bool) {
	startedAt := p.runningSince
	if job.StartedAt != nil && !job.StartedAt.After(now) {
		startedAt = *job.StartedAt
	}

	ratio := float64(now.Sub(startedAt)) / float64(p.settings.EstimatedDuration)
	progress := int(ratio * domain.ProgressComplete)
	progress = min(max(progress, 0), MaxRunningProgress)

	return progress, ratio >= 1
}

func (p *Poller) proceedInput() string {
	snapshot := p.Snapshot()
	if snapshot.Job != nil {
		if out := deref(snapshot.Job.StageOneOutput); out != "" {
			return out
		}
	}
	return ProceededInput
}

func (p *Poller) aggregate(ctx context.Context, stageOneText string) (*domain.AnalysisResult, error) {
	p.transition(func(s *Snapshot) { s.State = StateAggregating })

	result, err := p.aggregator.Aggregate(ctx, pipeline.AggregateRequest{
		JobID:          p.target.JobID,
		ArtifactPath:   p.target.ArtifactPath,
		StageOneOutput: stageOneText,
		Context:        p.target.Context,
	})
	if err != nil {
		p.log.Warn("aggregation failed", slog.String("err", err.Error()))

		if ctx.Err() != nil {
			p.transition(func(s *Snapshot) { s.State = StateDone })
			return nil, ctx.Err()
		}

		if result == nil {
			result = &domain.AnalysisResult{
				JobID:          p.target.JobID,
				StageOneOutput: stageOneText,
				ContextUsed:    p.target.Context != nil,
				ProducedAt:     p.now(),
				Error:          err.Error(),
			}
		}
	}

	if err := p.cache.StoreResult(result); err != nil {
		p.log.Error("failed to cache analysis result", slog.String("err", err.Error()))
	}

	p.transition(func(s *Snapshot) {
		s.State = StateDone
		s.Progress = domain.ProgressComplete
		s.Result = result
	})

	return result, nil
}

func (p *Poller) transition(update func(*Snapshot)) {
	p.mu.Lock()
	update(&p.snapshot)
	snapshot := p.snapshot
	observers := append([]Observer(nil), p.observers...)
	p.mu.Unlock()

	for _, o := range observers {
		o(snapshot)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
