package domain

import (
	"fmt"
	"time"
)

const ProgressComplete = 100

type Job struct {
	ID              string     `db:"id"               json:"job_id"`
	ArtifactPath    string     `db:"artifact_path"    json:"artifact_path"`
	State           State      `db:"state"            json:"state"`
	ProgressPercent int        `db:"progress_percent" json:"progress_percent"`
	StatusMessage   string     `db:"status_message"   json:"status_message"`
	StageOneOutput  *string    `db:"stage_one_output" json:"stage_one_output,omitempty"`
	StageOneError   *string    `db:"stage_one_error"  json:"stage_one_error,omitempty"`
	StartedAt       *time.Time `db:"started_at"       json:"started_at,omitempty"`
	EndedAt         *time.Time `db:"ended_at"         json:"ended_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"       json:"updated_at"`
}

func NewJob(id, artifactPath string, now time.Time) *Job {
	return &Job{
		ID:           id,
		ArtifactPath: artifactPath,
		State:        StatePending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// JobUpdate is a partial update merged into a stored job. Nil fields are left
// untouched.
type JobUpdate struct {
	State           *State
	ProgressPercent *int
	StatusMessage   *string
	StageOneOutput  *string
	StageOneError   *string
	StartedAt       *time.Time
	EndedAt         *time.Time
}

// Apply merges u into j and checks the job invariants. j is left unchanged
// when an error is returned.
func (j *Job) Apply(u JobUpdate, now time.Time) error {
	if j.State.Terminal() {
		return fmt.Errorf("%w: job %s is already %s", ErrInvalidTransition, j.ID, j.State)
	}

	next := *j

	if u.State != nil {
		if !u.State.Valid() {
			return fmt.Errorf("%w: unknown state %q", ErrInvalidTransition, *u.State)
		}
		if !j.State.CanTransitionTo(*u.State) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, j.State, *u.State)
		}
		next.State = *u.State
	}

	if u.ProgressPercent != nil {
		p := *u.ProgressPercent
		if p < 0 || p > ProgressComplete {
			return fmt.Errorf("%w: progress %d out of range", ErrInvalidTransition, p)
		}
		if p < j.ProgressPercent {
			return fmt.Errorf("%w: progress %d below %d", ErrInvalidTransition, p, j.ProgressPercent)
		}
		next.ProgressPercent = p
	}

	if u.StatusMessage != nil {
		next.StatusMessage = *u.StatusMessage
	}
	if u.StageOneOutput != nil {
		next.StageOneOutput = u.StageOneOutput
	}
	if u.StageOneError != nil {
		next.StageOneError = u.StageOneError
	}
	if u.StartedAt != nil {
		next.StartedAt = u.StartedAt
	}
	if u.EndedAt != nil {
		next.EndedAt = u.EndedAt
	}

	if next.State == StateRunning && next.StartedAt == nil {
		next.StartedAt = &now
	}

	if next.State.Terminal() {
		if next.EndedAt == nil {
			next.EndedAt = &now
		}
		next.ProgressPercent = ProgressComplete
	} else {
		if next.EndedAt != nil {
			return fmt.Errorf("%w: ended_at set on %s job", ErrInvalidTransition, next.State)
		}
		if next.ProgressPercent == ProgressComplete {
			return fmt.Errorf("%w: progress 100 on %s job", ErrInvalidTransition, next.State)
		}
	}

	next.UpdatedAt = now
	*j = next

	return nil
}

// Running builds the update written when stage one starts.
func Running(message string, startedAt time.Time) JobUpdate {
	return JobUpdate{
		State:         ptr(StateRunning),
		StatusMessage: &message,
		StartedAt:     &startedAt,
	}
}

// Completed builds the terminal update for a successful stage one.
func Completed(output string, endedAt time.Time) JobUpdate {
	return JobUpdate{
		State:           ptr(StateCompleted),
		ProgressPercent: ptr(ProgressComplete),
		StatusMessage:   ptr("Pipeline analysis completed"),
		StageOneOutput:  &output,
		EndedAt:         &endedAt,
	}
}

// Failed builds the terminal update for a failed stage one.
func Failed(errText string, endedAt time.Time) JobUpdate {
	return JobUpdate{
		State:           ptr(StateFailed),
		ProgressPercent: ptr(ProgressComplete),
		StatusMessage:   ptr("Pipeline analysis failed"),
		StageOneError:   &errText,
		EndedAt:         &endedAt,
	}
}

func ptr[T any](v T) *T {
	return &v
}
