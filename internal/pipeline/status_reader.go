package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

// StatusReader is the read-only view of job progress used by pollers.
type StatusReader struct {
	reader JobReader
}

func NewStatusReader(reader JobReader) *StatusReader {
	return &StatusReader{reader: reader}
}

func (s *StatusReader) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, fmt.Errorf("%w: empty job id", domain.ErrNotFound)
	}

	job, err := s.reader.Read(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to read job %s: %w", jobID, err)
	}

	return job, nil
}
