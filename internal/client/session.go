package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

// CurrentJob is the job a session is waiting on or last finished.
type CurrentJob struct {
	JobID        string    `json:"job_id"`
	ArtifactPath string    `json:"artifact_path"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type SessionData struct {
	Context    *domain.ContextRecord             `json:"context,omitempty"`
	CurrentJob *CurrentJob                       `json:"current_job,omitempty"`
	Results    map[string]*domain.AnalysisResult `json:"results,omitempty"`
}

// Session persists the client's context record, current job and cached
// results in a JSON file. Concurrent processes are serialized by a lock file
// next to it.
type Session struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

func OpenSession(path string) (*Session, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	return &Session{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (s *Session) Load() (*SessionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	return s.read()
}

func (s *Session) SetContext(record *domain.ContextRecord) error {
	return s.update(func(data *SessionData) {
		data.Context = record
	})
}

// SetCurrentJob switches the session to job. Results cached for other jobs
// are dropped.
func (s *Session) SetCurrentJob(job CurrentJob) error {
	return s.update(func(data *SessionData) {
		data.CurrentJob = &job

		for id := range data.Results {
			if id != job.JobID {
				delete(data.Results, id)
			}
		}
	})
}

func (s *Session) Result(jobID string) (*domain.AnalysisResult, bool) {
	data, err := s.Load()
	if err != nil {
		return nil, false
	}

	result, ok := data.Results[jobID]
	return result, ok && result != nil
}

func (s *Session) StoreResult(result *domain.AnalysisResult) error {
	if result == nil || result.JobID == "" {
		return errors.New("result has no job id")
	}

	return s.update(func(data *SessionData) {
		if data.Results == nil {
			data.Results = make(map[string]*domain.AnalysisResult)
		}
		data.Results[result.JobID] = result
	})
}

func (s *Session) update(fn func(*SessionData)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock session: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := s.read()
	if err != nil {
		return err
	}

	fn(data)

	return s.write(data)
}

func (s *Session) read() (*SessionData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &SessionData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var data SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", s.path, err)
	}

	return &data, nil
}

func (s *Session) write(data *SessionData) (err error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	_, err = f.Write(raw)
	if err = errors.Join(err, f.Close()); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	if err = os.Rename(f.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace session: %w", err)
	}

	return nil
}
